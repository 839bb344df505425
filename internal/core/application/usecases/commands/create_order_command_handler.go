package commands

import (
	"context"
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/core/domain/services"
	"pizzaparty/internal/core/ports"
)

// maxCodeMintAttempts bounds the mint-then-check retry loop. The generator's
// atomic counter makes collisions impossible in a single process; the loop
// exists as defense-in-depth against counter loss (restart) racing the store.
const maxCodeMintAttempts = 5

// ErrCodeGenerationFailed is returned when every minted candidate code
// already existed in storage. Repeated collision indicates an
// internal-consistency problem and is surfaced as a server error.
var ErrCodeGenerationFailed = errors.New("failed to generate a unique order code")

// CreateOrderCommandHandler handles the business logic for order creation:
// mint a code, verify it is unused, and persist the order in Waiting status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewCodeGenerator())
//	cmd, _ := NewCreateOrderCommand("Margherita")
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s is waiting\n", created.Code())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	generator  *services.CodeGenerator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and the
// process-wide CodeGenerator instance.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	generator *services.CodeGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the order creation command and returns the persisted order.
//
// Codes come from the generator's atomic counter; each candidate is checked
// against storage and re-minted on collision, at most maxCodeMintAttempts
// times. services.ErrSequenceExhausted propagates unchanged, and exhausting
// the retries yields ErrCodeGenerationFailed.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	code, err := h.mintUnusedCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), code, cmd.Description())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// mintUnusedCode asks the generator for candidates until one is unused in
// storage or the attempt budget runs out.
func (h CreateOrderCommandHandler) mintUnusedCode(
	ctx context.Context,
	orderRepo ports.OrderRepository,
) (order.Code, error) {
	for range maxCodeMintAttempts {
		candidate, err := h.generator.Next()
		if err != nil {
			return order.Code{}, err
		}

		exists, err := orderRepo.ExistsByCode(ctx, candidate)
		if err != nil {
			return order.Code{}, err
		}
		if !exists {
			return candidate, nil
		}
	}

	return order.Code{}, ErrCodeGenerationFailed
}
