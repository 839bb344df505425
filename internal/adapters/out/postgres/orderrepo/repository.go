package orderrepo

import (
	"context"
	"errors"

	"pizzaparty/internal/core/domain/model/kernel"
	"pizzaparty/internal/core/domain/model/order"
	"pizzaparty/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code order.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByCode reports whether any order carries the given code.
func (r *GormOrderRepository) ExistsByCode(ctx context.Context, code order.Code) (bool, error) {
	if err := code.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("code = ?", code.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllInWaitingStatus retrieves all orders with Waiting status, sorted by code.
func (r *GormOrderRepository) GetAllInWaitingStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "status = ?", int(order.Waiting)).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountInPreparingStatus returns how many orders currently occupy the
// preparation slot.
func (r *GormOrderRepository) CountInPreparingStatus(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", int(order.Preparing)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// takeChargeLockID keys the advisory lock that serializes preparation slot
// claims across processes.
const takeChargeLockID = 727001

// TakeCharge persists the Waiting to Preparing transition as one conditional
// update. The row changes only while its status is still Waiting and no other
// row is Preparing.
//
// An advisory transaction lock is taken first so two transactions cannot
// evaluate the slot condition against the same snapshot. Callers must run
// TakeCharge inside a unit of work transaction for the lock to span the
// update.
func (r *GormOrderRepository) TakeCharge(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Exec(
		`SELECT pg_advisory_xact_lock(?)`, takeChargeLockID,
	).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET status = ?
		WHERE id = ?
		  AND status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM orders AS busy WHERE busy.status = ?
		  )
	`, int(order.Preparing), aggregate.ID().Bytes(), int(order.Waiting), int(order.Preparing))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyTakeChargeConflict(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyTakeChargeConflict reloads the row to report why the conditional
// update matched nothing.
func (r *GormOrderRepository) classifyTakeChargeConflict(ctx context.Context, id kernel.UUID) error {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return err
	}

	if dto.Status != int(order.Waiting) {
		return order.ErrInvalidStateTransition
	}

	return order.ErrAnotherOrderInPreparation
}
