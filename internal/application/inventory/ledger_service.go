package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/domain/measure"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LedgerService commits inventory operations. Every commit converts the
// entered quantity to the item's canonical unit, applies it to the stock
// level under a row lock and appends exactly one audit record, all within
// one database transaction.
type LedgerService struct {
	itemRepo       catalog.Repository
	stockRepo      inventory.StockLevelRepository
	recordRepo     inventory.TransactionRecordRepository
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	itemRepo catalog.Repository,
	stockRepo inventory.StockLevelRepository,
	recordRepo inventory.TransactionRecordRepository,
	scope TransactionScope,
) *LedgerService {
	return &LedgerService{
		itemRepo:   itemRepo,
		stockRepo:  stockRepo,
		recordRepo: recordRepo,
		scope:      scope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *LedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Commit validates, converts and applies one ledger operation. Concurrent
// commits against the same item serialize on the stock level's row lock, so
// no update is ever lost.
func (s *LedgerService) Commit(ctx context.Context, actor *identity.Actor, cmd CommitCommand) (*CommitResult, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if !cmd.Operation.IsValid() {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Unknown ledger operation")
	}

	item, err := s.loadItem(ctx, actor, cmd.ItemID)
	if err != nil {
		return nil, err
	}
	if cmd.Operation == inventory.OperationCorrection && !actor.IsPrivileged() {
		return nil, shared.ErrForbidden
	}

	quantity, err := measure.ConvertInput(cmd.Quantity, item.Metadata())
	if err != nil {
		return nil, err
	}

	var (
		level  *inventory.StockLevel
		record *inventory.TransactionRecord
	)
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		fresh, err := inventory.NewStockLevel(item.ID, item.CanonicalUnit)
		if err != nil {
			return err
		}
		level, err = repos.StockLevelRepo().GetOrCreateForUpdate(ctx, fresh)
		if err != nil {
			return err
		}

		before := level.Quantity
		switch cmd.Operation {
		case inventory.OperationAdd:
			err = level.Add(quantity.Canonical)
		case inventory.OperationConsume:
			err = level.Consume(quantity.Canonical)
		case inventory.OperationCorrection:
			err = level.Correct(quantity.Canonical)
		}
		if err != nil {
			return err
		}

		if err := repos.StockLevelRepo().Save(ctx, level); err != nil {
			return err
		}

		record, err = inventory.NewTransactionRecord(
			item.ID,
			item.Name,
			item.Category.String(),
			actor.ID,
			actor.DisplayName,
			cmd.Operation,
			quantity,
			before,
			level.Quantity,
		)
		if err != nil {
			return err
		}
		record.WithNotes(cmd.Notes).WithAdminOnly(item.IsAdminOnly())

		return repos.RecordRepo().Create(ctx, record)
	})
	if err != nil {
		return nil, s.classifyCommitError(err)
	}

	s.publishDomainEvents(ctx, level)

	result := &CommitResult{
		RecordID:      record.ID,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Operation:     cmd.Operation.String(),
		Display:       quantity.Display,
		Canonical:     quantity.Canonical,
		CanonicalUnit: quantity.Unit.String(),
		BalanceBefore: record.BalanceBefore,
		BalanceAfter:  record.BalanceAfter,
		StockDisplay:  measure.FormatStock(level.Quantity, level.Unit, item.Metadata()),
	}
	if !quantity.Recognized {
		result.Warning = fmt.Sprintf("unit %q was not recognized, value stored as entered", quantity.OriginalUnit)
	}
	return result, nil
}

// Preview converts a quantity expression for an item without committing
func (s *LedgerService) Preview(ctx context.Context, actor *identity.Actor, itemID uuid.UUID, quantityExpr string) (*PreviewResult, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	item, err := s.loadItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	quantity, err := measure.ConvertInput(quantityExpr, item.Metadata())
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		ItemID:        item.ID,
		ItemName:      item.Name,
		Canonical:     quantity.Canonical,
		CanonicalUnit: quantity.Unit.String(),
		Display:       quantity.Display,
		Recognized:    quantity.Recognized,
	}, nil
}

// History retrieves audit records, newest first. Records of admin-only
// items are hidden from non-privileged actors.
func (s *LedgerService) History(ctx context.Context, actor *identity.Actor, query HistoryQuery) (shared.Paginated[RecordResponse], error) {
	var empty shared.Paginated[RecordResponse]
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
	filter.OrderBy = "transaction_date"

	records, err := s.recordRepo.Find(ctx, inventory.RecordQuery{
		ItemID:           query.ItemID,
		ActorID:          query.ActorID,
		Operation:        query.Operation,
		From:             query.From,
		To:               query.To,
		IncludeAdminOnly: actor.IsPrivileged(),
	}, filter)
	if err != nil {
		return empty, err
	}

	responses := make([]RecordResponse, 0, len(records.Items))
	for _, record := range records.Items {
		responses = append(responses, ToRecordResponse(record))
	}
	return shared.NewPaginated(responses, records.Total, records.Page, records.PageSize), nil
}

// StockOverview returns the current stock of every visible item
func (s *LedgerService) StockOverview(ctx context.Context, actor *identity.Actor) ([]StockResponse, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	levels, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toStockResponses(ctx, actor, levels)
}

// LowStock returns the visible items currently below their minimum threshold
func (s *LedgerService) LowStock(ctx context.Context, actor *identity.Actor) ([]StockResponse, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	levels, err := s.stockRepo.FindBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}
	return s.toStockResponses(ctx, actor, levels)
}

// StockForItem returns the current stock of one item. Items that were never
// stocked report zero.
func (s *LedgerService) StockForItem(ctx context.Context, actor *identity.Actor, itemID uuid.UUID) (*StockResponse, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	item, err := s.loadItem(ctx, actor, itemID)
	if err != nil {
		return nil, err
	}

	level, err := s.stockRepo.FindByItem(ctx, itemID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		level, err = inventory.NewStockLevel(item.ID, item.CanonicalUnit)
		if err != nil {
			return nil, err
		}
	}

	response := s.toStockResponse(item, level)
	return &response, nil
}

// SetThresholds updates the alert thresholds for an item's stock level
func (s *LedgerService) SetThresholds(ctx context.Context, actor *identity.Actor, itemID uuid.UUID, min, max int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if !actor.IsPrivileged() {
		return shared.ErrForbidden
	}
	item, err := s.loadItem(ctx, actor, itemID)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		fresh, err := inventory.NewStockLevel(item.ID, item.CanonicalUnit)
		if err != nil {
			return err
		}
		level, err := repos.StockLevelRepo().GetOrCreateForUpdate(ctx, fresh)
		if err != nil {
			return err
		}
		if err := level.SetThresholds(min, max); err != nil {
			return err
		}
		return repos.StockLevelRepo().Save(ctx, level)
	})
}

func (s *LedgerService) authorize(actor *identity.Actor) error {
	if actor == nil || !actor.IsActive {
		return shared.ErrUnauthorized
	}
	return nil
}

func (s *LedgerService) loadItem(ctx context.Context, actor *identity.Actor, itemID uuid.UUID) (*catalog.Item, error) {
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
	return item, nil
}

func (s *LedgerService) toStockResponses(ctx context.Context, actor *identity.Actor, levels []*inventory.StockLevel) ([]StockResponse, error) {
	responses := make([]StockResponse, 0, len(levels))
	for _, level := range levels {
		item, err := s.itemRepo.FindByID(ctx, level.ItemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if item.IsAdminOnly() && !actor.IsPrivileged() {
			continue
		}
		responses = append(responses, s.toStockResponse(item, level))
	}
	return responses, nil
}

func (s *LedgerService) toStockResponse(item *catalog.Item, level *inventory.StockLevel) StockResponse {
	return StockResponse{
		ItemID:       item.ID,
		ItemName:     item.Name,
		ItemCategory: item.Category.String(),
		Quantity:     level.Quantity,
		Unit:         level.Unit.String(),
		Display:      measure.FormatStock(level.Quantity, level.Unit, item.Metadata()),
		MinThreshold: level.MinThreshold,
		BelowMinimum: level.IsBelowMinimum(),
		LastCounted:  level.LastCountedAt,
	}
}

// classifyCommitError passes domain failures through unchanged and wraps
// everything else as a store failure so callers never see raw driver errors
func (s *LedgerService) classifyCommitError(err error) error {
	var domainErr *shared.DomainError
	var stockErr *inventory.InsufficientStockError
	if errors.As(err, &domainErr) || errors.As(err, &stockErr) {
		return err
	}
	return fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
}

func (s *LedgerService) publishDomainEvents(ctx context.Context, level *inventory.StockLevel) {
	if s.eventPublisher == nil || level == nil {
		return
	}
	events := level.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
	level.ClearDomainEvents()
}
