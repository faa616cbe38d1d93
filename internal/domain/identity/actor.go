package identity

import (
	"strings"
	"time"

	"github.com/chocodealers/backend/internal/domain/shared"
)

// Role determines what an actor is allowed to do
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// IsValid returns true if the role is one of the defined values
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Actor represents a person performing inventory operations. ExternalID is
// the identifier from the messaging platform the actor signs in with.
type Actor struct {
	shared.BaseAggregateRoot
	ExternalID  int64  `gorm:"not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(100);not null"`
	Role        Role   `gorm:"type:varchar(20);not null;default:'staff'"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Actor) TableName() string {
	return "actors"
}

// NewActor creates a new actor
func NewActor(externalID int64, displayName string, role Role) (*Actor, error) {
	if externalID <= 0 {
		return nil, shared.NewDomainError("INVALID_ACTOR_ID", "External ID must be positive")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, shared.NewDomainError("INVALID_ACTOR_NAME", "Display name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown actor role")
	}

	return &Actor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ExternalID:        externalID,
		DisplayName:       displayName,
		Role:              role,
		IsActive:          true,
	}, nil
}

// IsPrivileged returns true if the actor may see admin-only items and issue
// corrections
func (a *Actor) IsPrivileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// ChangeRole updates the actor's role
func (a *Actor) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown actor role")
	}
	a.Role = role
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// Deactivate blocks the actor from performing operations
func (a *Actor) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}
