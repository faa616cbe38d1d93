package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeItemRepo is an in-memory catalog repository
type fakeItemRepo struct {
	items map[uuid.UUID]*catalog.Item
}

func newFakeItemRepo(items ...*catalog.Item) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[uuid.UUID]*catalog.Item)}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeItemRepo) Create(_ context.Context, item *catalog.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *catalog.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) FindByCode(_ context.Context, code string) (*catalog.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeItemRepo) FindAll(_ context.Context, filter shared.Filter) (shared.Paginated[*catalog.Item], error) {
	items := make([]*catalog.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return shared.NewPaginated(items, int64(len(items)), filter.Page, filter.PageSize), nil
}

func (r *fakeItemRepo) FindByCategory(_ context.Context, category catalog.Category) ([]*catalog.Item, error) {
	var items []*catalog.Item
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// fakeStockRepo is an in-memory stock level repository keyed by item
type fakeStockRepo struct {
	levels map[uuid.UUID]*inventory.StockLevel
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: make(map[uuid.UUID]*inventory.StockLevel)}
}

func (r *fakeStockRepo) Create(_ context.Context, level *inventory.StockLevel) error {
	r.levels[level.ItemID] = level
	return nil
}

func (r *fakeStockRepo) Save(_ context.Context, level *inventory.StockLevel) error {
	clone := *level
	r.levels[level.ItemID] = &clone
	return nil
}

func (r *fakeStockRepo) FindByItem(_ context.Context, itemID uuid.UUID) (*inventory.StockLevel, error) {
	level, ok := r.levels[itemID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return level, nil
}

func (r *fakeStockRepo) FindByItemForUpdate(ctx context.Context, itemID uuid.UUID) (*inventory.StockLevel, error) {
	return r.FindByItem(ctx, itemID)
}

func (r *fakeStockRepo) GetOrCreateForUpdate(_ context.Context, level *inventory.StockLevel) (*inventory.StockLevel, error) {
	// Hand out a copy the way a real transaction hands out its own row
	if existing, ok := r.levels[level.ItemID]; ok {
		clone := *existing
		return &clone, nil
	}
	r.levels[level.ItemID] = level
	return level, nil
}

func (r *fakeStockRepo) FindAll(_ context.Context) ([]*inventory.StockLevel, error) {
	levels := make([]*inventory.StockLevel, 0, len(r.levels))
	for _, level := range r.levels {
		levels = append(levels, level)
	}
	return levels, nil
}

func (r *fakeStockRepo) FindBelowMinimum(_ context.Context) ([]*inventory.StockLevel, error) {
	var levels []*inventory.StockLevel
	for _, level := range r.levels {
		if level.IsBelowMinimum() {
			levels = append(levels, level)
		}
	}
	return levels, nil
}

// fakeRecordRepo is an in-memory append-only record repository
type fakeRecordRepo struct {
	records []*inventory.TransactionRecord
}

func (r *fakeRecordRepo) Create(_ context.Context, record *inventory.TransactionRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.TransactionRecord, error) {
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeRecordRepo) Find(_ context.Context, query inventory.RecordQuery, filter shared.Filter) (shared.Paginated[*inventory.TransactionRecord], error) {
	var matched []*inventory.TransactionRecord
	for _, record := range r.records {
		if query.ItemID != nil && record.ItemID != *query.ItemID {
			continue
		}
		if query.ActorID != nil && record.ActorID != *query.ActorID {
			continue
		}
		if query.Operation != nil && record.Operation != *query.Operation {
			continue
		}
		if record.IsAdminOnly && !query.IncludeAdminOnly {
			continue
		}
		matched = append(matched, record)
	}
	return shared.NewPaginated(matched, int64(len(matched)), filter.Page, filter.PageSize), nil
}

// fakeScope serializes Execute calls with a mutex, mirroring the row lock
// the real implementation takes on the stock level
type fakeScope struct {
	mu        sync.Mutex
	stockRepo *fakeStockRepo
	recorder  *fakeRecordRepo
}

func (s *fakeScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (s *fakeScope) StockLevelRepo() inventory.StockLevelRepository {
	return s.stockRepo
}

func (s *fakeScope) RecordRepo() inventory.TransactionRecordRepository {
	return s.recorder
}

type ledgerFixture struct {
	service   *LedgerService
	itemRepo  *fakeItemRepo
	stockRepo *fakeStockRepo
	recorder  *fakeRecordRepo
}

func newLedgerFixture(t *testing.T, items ...*catalog.Item) *ledgerFixture {
	t.Helper()
	itemRepo := newFakeItemRepo(items...)
	stockRepo := newFakeStockRepo()
	recorder := &fakeRecordRepo{}
	scope := &fakeScope{stockRepo: stockRepo, recorder: recorder}
	return &ledgerFixture{
		service:   NewLedgerService(itemRepo, stockRepo, recorder, scope),
		itemRepo:  itemRepo,
		stockRepo: stockRepo,
		recorder:  recorder,
	}
}

func newWeightItem(t *testing.T) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("CHOC-001", "Dark chocolate", catalog.CategoryBars)
	require.NoError(t, err)
	require.NoError(t, item.SetPerUnitWeight(100))
	return item
}

func newStaff(t *testing.T) *identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(100, "Alice", identity.RoleStaff)
	require.NoError(t, err)
	return actor
}

func newManager(t *testing.T) *identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(200, "Bob", identity.RoleManager)
	require.NoError(t, err)
	return actor
}

func TestLedgerService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("first add lazily creates the stock level", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)

		result, err := fix.service.Commit(ctx, newStaff(t), CommitCommand{
			ItemID:    item.ID,
			Operation: inventory.OperationAdd,
			Quantity:  "5 kg",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.Canonical)
		assert.Equal(t, "5000g (5kg)", result.Display)
		assert.Equal(t, int64(0), result.BalanceBefore)
		assert.Equal(t, int64(5000), result.BalanceAfter)
		assert.Empty(t, result.Warning)

		level, err := fix.stockRepo.FindByItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), level.Quantity)
	})

	t.Run("every commit appends exactly one record", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)
		staff := newStaff(t)

		_, err := fix.service.Commit(ctx, staff, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 kg"})
		require.NoError(t, err)
		_, err = fix.service.Commit(ctx, staff, CommitCommand{ItemID: item.ID, Operation: inventory.OperationConsume, Quantity: "300 g", Notes: "tasting"})
		require.NoError(t, err)

		require.Len(t, fix.recorder.records, 2)
		consume := fix.recorder.records[1]
		assert.Equal(t, inventory.OperationConsume, consume.Operation)
		assert.Equal(t, "Dark chocolate", consume.ItemName)
		assert.Equal(t, "Alice", consume.ActorName)
		assert.Equal(t, int64(1000), consume.BalanceBefore)
		assert.Equal(t, int64(700), consume.BalanceAfter)
		assert.Equal(t, "tasting", consume.Notes)
	})

	t.Run("insufficient stock fails with shortfall and changes nothing", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)
		staff := newStaff(t)

		_, err := fix.service.Commit(ctx, staff, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "100 g"})
		require.NoError(t, err)

		_, err = fix.service.Commit(ctx, staff, CommitCommand{ItemID: item.ID, Operation: inventory.OperationConsume, Quantity: "250 g"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))

		var stockErr *inventory.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, int64(150), stockErr.Shortfall())

		level, err := fix.stockRepo.FindByItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), level.Quantity)
		assert.Len(t, fix.recorder.records, 1)
	})

	t.Run("correction sets an absolute quantity", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)
		manager := newManager(t)

		_, err := fix.service.Commit(ctx, manager, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "2 kg"})
		require.NoError(t, err)

		result, err := fix.service.Commit(ctx, manager, CommitCommand{ItemID: item.ID, Operation: inventory.OperationCorrection, Quantity: "750 g"})
		require.NoError(t, err)
		assert.Equal(t, int64(2000), result.BalanceBefore)
		assert.Equal(t, int64(750), result.BalanceAfter)

		level, err := fix.stockRepo.FindByItem(ctx, item.ID)
		require.NoError(t, err)
		assert.NotNil(t, level.LastCountedAt)
	})

	t.Run("correction requires a privileged actor", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)

		_, err := fix.service.Commit(ctx, newStaff(t), CommitCommand{ItemID: item.ID, Operation: inventory.OperationCorrection, Quantity: "1 kg"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin-only item hidden from staff", func(t *testing.T) {
		item, err := catalog.NewItem("ADM-001", "Subscription", catalog.CategoryAdminExpenses)
		require.NoError(t, err)
		fix := newLedgerFixture(t, item)

		_, err = fix.service.Commit(ctx, newStaff(t), CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 pcs"})
		assert.ErrorIs(t, err, shared.ErrForbidden)

		_, err = fix.service.Commit(ctx, newManager(t), CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 pcs"})
		assert.NoError(t, err)
	})

	t.Run("unknown item", func(t *testing.T) {
		fix := newLedgerFixture(t)
		_, err := fix.service.Commit(ctx, newStaff(t), CommitCommand{ItemID: uuid.New(), Operation: inventory.OperationAdd, Quantity: "1 kg"})
		assert.ErrorIs(t, err, shared.ErrItemNotFound)
	})

	t.Run("inactive actor rejected", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)
		actor := newStaff(t)
		actor.Deactivate()

		_, err := fix.service.Commit(ctx, actor, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 kg"})
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("unrecognized unit commits with a warning", func(t *testing.T) {
		item, err := catalog.NewItem("CHOC-002", "Gift box", catalog.CategoryGiftSets)
		require.NoError(t, err)
		fix := newLedgerFixture(t, item)

		result, err := fix.service.Commit(ctx, newStaff(t), CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "5 xyz"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.Canonical)
		assert.NotEmpty(t, result.Warning)
	})

	t.Run("malformed quantity rejected before any write", func(t *testing.T) {
		item := newWeightItem(t)
		fix := newLedgerFixture(t, item)

		_, err := fix.service.Commit(ctx, newStaff(t), CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "plenty"})
		require.Error(t, err)
		assert.Empty(t, fix.recorder.records)
		_, err = fix.stockRepo.FindByItem(ctx, item.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLedgerService_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	item := newWeightItem(t)
	fix := newLedgerFixture(t, item)
	staff := newStaff(t)

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fix.service.Commit(ctx, staff, CommitCommand{
				ItemID:    item.ID,
				Operation: inventory.OperationAdd,
				Quantity:  "1 g",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	level, err := fix.stockRepo.FindByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), level.Quantity)
	assert.Len(t, fix.recorder.records, workers)
}

func TestLedgerService_Preview(t *testing.T) {
	ctx := context.Background()
	item := newWeightItem(t)
	fix := newLedgerFixture(t, item)

	result, err := fix.service.Preview(ctx, newStaff(t), item.ID, "3 pieces")
	require.NoError(t, err)
	assert.Equal(t, int64(300), result.Canonical)
	assert.Equal(t, "300g (3 pieces)", result.Display)
	assert.True(t, result.Recognized)

	// Preview never touches stock
	_, err = fix.stockRepo.FindByItem(ctx, item.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Empty(t, fix.recorder.records)
}

func TestLedgerService_History(t *testing.T) {
	ctx := context.Background()
	item := newWeightItem(t)
	adminItem, err := catalog.NewItem("ADM-001", "Subscription", catalog.CategoryAdminExpenses)
	require.NoError(t, err)
	fix := newLedgerFixture(t, item, adminItem)
	manager := newManager(t)
	staff := newStaff(t)

	_, err = fix.service.Commit(ctx, staff, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 kg"})
	require.NoError(t, err)
	_, err = fix.service.Commit(ctx, manager, CommitCommand{ItemID: adminItem.ID, Operation: inventory.OperationAdd, Quantity: "1 pcs"})
	require.NoError(t, err)

	t.Run("staff only sees public records", func(t *testing.T) {
		page, err := fix.service.History(ctx, staff, HistoryQuery{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, item.ID, page.Items[0].ItemID)
	})

	t.Run("manager sees everything", func(t *testing.T) {
		page, err := fix.service.History(ctx, manager, HistoryQuery{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("filter by operation", func(t *testing.T) {
		op := inventory.OperationConsume
		page, err := fix.service.History(ctx, manager, HistoryQuery{Operation: &op})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}

func TestLedgerService_StockOverview(t *testing.T) {
	ctx := context.Background()
	item := newWeightItem(t)
	adminItem, err := catalog.NewItem("ADM-001", "Subscription", catalog.CategoryAdminExpenses)
	require.NoError(t, err)
	fix := newLedgerFixture(t, item, adminItem)
	manager := newManager(t)

	_, err = fix.service.Commit(ctx, manager, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "5 kg"})
	require.NoError(t, err)
	_, err = fix.service.Commit(ctx, manager, CommitCommand{ItemID: adminItem.ID, Operation: inventory.OperationAdd, Quantity: "2 pcs"})
	require.NoError(t, err)

	t.Run("staff overview excludes admin-only items", func(t *testing.T) {
		overview, err := fix.service.StockOverview(ctx, newStaff(t))
		require.NoError(t, err)
		require.Len(t, overview, 1)
		assert.Equal(t, "5000g (50 pieces)", overview[0].Display)
	})

	t.Run("manager overview includes everything", func(t *testing.T) {
		overview, err := fix.service.StockOverview(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, overview, 2)
	})

	t.Run("never stocked item reports zero", func(t *testing.T) {
		fresh, err := catalog.NewItem("CHOC-009", "Truffles", catalog.CategoryCandies)
		require.NoError(t, err)
		require.NoError(t, fix.itemRepo.Create(ctx, fresh))

		stock, err := fix.service.StockForItem(ctx, newStaff(t), fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stock.Quantity)
	})
}

func TestLedgerService_LowStock(t *testing.T) {
	ctx := context.Background()
	item := newWeightItem(t)
	fix := newLedgerFixture(t, item)
	manager := newManager(t)

	_, err := fix.service.Commit(ctx, manager, CommitCommand{ItemID: item.ID, Operation: inventory.OperationAdd, Quantity: "1 kg"})
	require.NoError(t, err)
	require.NoError(t, fix.service.SetThresholds(ctx, manager, item.ID, 500, 0))

	low, err := fix.service.LowStock(ctx, manager)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = fix.service.Commit(ctx, manager, CommitCommand{ItemID: item.ID, Operation: inventory.OperationConsume, Quantity: "700 g"})
	require.NoError(t, err)

	low, err = fix.service.LowStock(ctx, manager)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].BelowMinimum)
	assert.Equal(t, int64(300), low[0].Quantity)
}

func TestLowStockHandler(t *testing.T) {
	ctx := context.Background()
	level, err := inventory.NewStockLevel(uuid.New(), "g")
	require.NoError(t, err)
	require.NoError(t, level.Add(1000))
	require.NoError(t, level.SetThresholds(500, 0))
	require.NoError(t, level.Consume(600))

	var event *inventory.StockBelowThresholdEvent
	for _, e := range level.GetDomainEvents() {
		if evt, ok := e.(*inventory.StockBelowThresholdEvent); ok {
			event = evt
		}
	}
	require.NotNil(t, event)

	handler := NewLowStockHandler(zaptest.NewLogger(t))
	notifier := &capturingNotifier{}
	handler.WithNotifier(notifier)

	require.NoError(t, handler.Handle(ctx, event))
	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, "low_stock", notifier.alerts[0].AlertType)
	assert.Equal(t, int64(400), notifier.alerts[0].CurrentQuantity)
}

type capturingNotifier struct {
	alerts []StockAlert
}

func (n *capturingNotifier) SendAlert(_ context.Context, alert StockAlert) error {
	n.alerts = append(n.alerts, alert)
	return nil
}
