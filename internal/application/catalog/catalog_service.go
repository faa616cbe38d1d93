package catalog

import (
	"context"
	"errors"

	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CatalogService handles catalog queries and administration. Items in
// admin-only categories are hidden from non-privileged actors.
type CatalogService struct {
	itemRepo catalog.Repository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(itemRepo catalog.Repository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// List retrieves catalog items visible to the actor
func (s *CatalogService) List(ctx context.Context, actor *identity.Actor, query ListQuery) (shared.Paginated[ItemResponse], error) {
	var empty shared.Paginated[ItemResponse]
	if err := s.authorize(actor); err != nil {
		return empty, err
	}

	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.PageSize > 0 {
		filter.PageSize = query.PageSize
	}
	filter.Search = query.Search
	filter.OrderBy = "name"
	filter.OrderDir = "asc"
	if query.Category != nil {
		filter.Filters["category"] = query.Category.String()
	}
	if !actor.IsPrivileged() {
		filter.Filters["exclude_admin_only"] = true
	}

	page, err := s.itemRepo.FindAll(ctx, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]ItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		responses = append(responses, ToItemResponse(item))
	}
	return shared.NewPaginated(responses, page.Total, page.Page, page.PageSize), nil
}

// Get retrieves one catalog item
func (s *CatalogService) Get(ctx context.Context, actor *identity.Actor, itemID uuid.UUID) (*ItemResponse, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrItemNotFound
		}
		return nil, err
	}
	if item.IsAdminOnly() && !actor.IsPrivileged() {
		return nil, shared.ErrForbidden
	}
	response := ToItemResponse(item)
	return &response, nil
}

// Categories returns the categories visible to the actor
func (s *CatalogService) Categories(_ context.Context, actor *identity.Actor) ([]string, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	categories := catalog.PublicCategories()
	if actor.IsPrivileged() {
		categories = catalog.AllCategories()
	}
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.String())
	}
	return names, nil
}

// Create registers a new catalog item, privileged actors only
func (s *CatalogService) Create(ctx context.Context, actor *identity.Actor, req CreateItemRequest) (*ItemResponse, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if !actor.IsPrivileged() {
		return nil, shared.ErrForbidden
	}

	item, err := catalog.NewItem(req.Code, req.Name, catalog.Category(req.Category))
	if err != nil {
		return nil, err
	}
	if req.PerUnitWeight > 0 {
		if err := item.SetPerUnitWeight(req.PerUnitWeight); err != nil {
			return nil, err
		}
	}
	if req.UnitsPerPackage > 0 {
		if err := item.SetUnitsPerPackage(req.UnitsPerPackage); err != nil {
			return nil, err
		}
	}

	if _, err := s.itemRepo.FindByCode(ctx, item.Code); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

func (s *CatalogService) authorize(actor *identity.Actor) error {
	if actor == nil || !actor.IsActive {
		return shared.ErrUnauthorized
	}
	return nil
}
