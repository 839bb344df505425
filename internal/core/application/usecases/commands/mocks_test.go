package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pizzaparty/internal/core/application/usecases/commands"
	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/core/ports"
	"pizzaparty/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByCode(ctx context.Context, code order.Code) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllInWaitingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountInPreparingStatus(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) TakeCharge(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// fakeOrderStore is an in-memory stand-in for the real storage adapter.
// It keeps snapshots rather than live aggregates so concurrent handlers
// never share mutable state, and its TakeCharge applies the same
// conditional check-then-set contract the SQL adapter implements.
type fakeOrderStore struct {
	mu      sync.Mutex
	records map[kernel.UUID]orderRecord
}

type orderRecord struct {
	id          kernel.UUID
	code        order.Code
	description string
	status      order.Status
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{records: make(map[kernel.UUID]orderRecord)}
}

func snapshot(o *order.Order) orderRecord {
	return orderRecord{
		id:          o.ID(),
		code:        o.Code(),
		description: o.Description(),
		status:      o.Status(),
	}
}

func (r orderRecord) restore() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.code, r.description, r.status)
}

type fakeOrderRepo struct{ store *fakeOrderStore }

func (r fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records[o.ID()] = snapshot(o)
	return nil
}

func (r fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records[o.ID()] = snapshot(o)
	return nil
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.records[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order id", id)
	}
	return rec.restore()
}

func (r fakeOrderRepo) GetByCode(_ context.Context, code order.Code) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rec := range r.store.records {
		if rec.code.IsEqual(code) {
			return rec.restore()
		}
	}
	return nil, errs.NewObjectNotFoundError("order code", code)
}

func (r fakeOrderRepo) ExistsByCode(_ context.Context, code order.Code) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rec := range r.store.records {
		if rec.code.IsEqual(code) {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeOrderRepo) GetAllInWaitingStatus(_ context.Context) ([]*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*order.Order
	for _, rec := range r.store.records {
		if rec.status == order.Waiting {
			restored, err := rec.restore()
			if err != nil {
				return nil, err
			}
			result = append(result, restored)
		}
	}
	return result, nil
}

func (r fakeOrderRepo) CountInPreparingStatus(_ context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.countPreparingLocked(), nil
}

func (r fakeOrderRepo) TakeCharge(_ context.Context, o *order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.records[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order id", o.ID())
	}
	if rec.status != order.Waiting {
		return order.ErrInvalidStateTransition
	}
	if r.store.countPreparingLocked() > 0 {
		return order.ErrAnotherOrderInPreparation
	}
	rec.status = order.Preparing
	r.store.records[o.ID()] = rec
	return nil
}

func (s *fakeOrderStore) countPreparingLocked() int {
	count := 0
	for _, rec := range s.records {
		if rec.status == order.Preparing {
			count++
		}
	}
	return count
}

type fakeOrderUoW struct{ store *fakeOrderStore }

func (u fakeOrderUoW) Begin(_ context.Context) error    { return nil }
func (u fakeOrderUoW) Commit(_ context.Context) error   { return nil }
func (u fakeOrderUoW) Rollback(_ context.Context) error { return nil }
func (u fakeOrderUoW) OrderRepository() ports.OrderRepository {
	return fakeOrderRepo{store: u.store}
}

type fakeOrderUoWFactory struct{ store *fakeOrderStore }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW {
	return fakeOrderUoW{store: f.store}
}

func newWaitingOrder(t *testing.T, sequence int) *order.Order {
	t.Helper()
	code, err := order.NewCode(time.Now(), sequence)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), code, "Margherita")
	require.NoError(t, err)
	return o
}

func newPreparingOrder(t *testing.T, sequence int) *order.Order {
	t.Helper()
	o := newWaitingOrder(t, sequence)
	require.NoError(t, o.TakeCharge(0))
	return o
}

func newReadyOrder(t *testing.T, sequence int) *order.Order {
	t.Helper()
	o := newPreparingOrder(t, sequence)
	require.NoError(t, o.Complete())
	return o
}
