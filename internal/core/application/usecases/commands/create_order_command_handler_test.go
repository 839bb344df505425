package commands_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"pizzaparty/internal/core/application/usecases/commands"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("Margherita")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsByCode", mock.Anything, mock.AnythingOfType("order.Code")).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Waiting, created.Status())
	assert.Equal(t, "Margherita", created.Description())
	assert.Equal(t,
		fmt.Sprintf("COD-%s-0001", time.Now().Format(order.CodeDateLayout)),
		created.Code().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("Margherita")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnCodeCollision(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("Quattro Formaggi")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsByCode", mock.Anything, mock.AnythingOfType("order.Code")).Return(true, nil).Once(),
		repo.On("ExistsByCode", mock.Anything, mock.AnythingOfType("order.Code")).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// the first candidate (0001) collided, so the order carries the second
	assert.Equal(t,
		fmt.Sprintf("COD-%s-0002", time.Now().Format(order.CodeDateLayout)),
		created.Code().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CodeGenerationFailed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("Diavola")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsByCode", mock.Anything, mock.AnythingOfType("order.Code")).Return(true, nil).Times(5),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCodeGenerationFailed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("Capricciosa")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ExistsByCode", mock.Anything, mock.AnythingOfType("order.Code")).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ConcurrentCreatesGetUniqueCodes(t *testing.T) {
	ctx := t.Context()
	store := newFakeOrderStore()
	h := commands.NewCreateOrderCommandHandler(
		fakeOrderUoWFactory{store: store},
		services.NewCodeGenerator(),
	)

	const workers = 50

	var wg sync.WaitGroup
	results := make(chan *order.Order, workers)
	failures := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewCreateOrderCommand(fmt.Sprintf("pizza %d", i))
			if err != nil {
				failures <- err
				return
			}
			created, err := h.Handle(ctx, cmd)
			if err != nil {
				failures <- err
				return
			}
			results <- created
		}()
	}
	wg.Wait()
	close(results)
	close(failures)

	for err := range failures {
		require.NoError(t, err)
	}

	codes := make(map[string]bool)
	for created := range results {
		assert.Equal(t, order.Waiting, created.Status())
		assert.False(t, codes[created.Code().String()], "duplicate code %s", created.Code())
		codes[created.Code().String()] = true
	}
	assert.Len(t, codes, workers)
}
