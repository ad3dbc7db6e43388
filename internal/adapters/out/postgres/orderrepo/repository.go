package orderrepo

import (
	"context"

	"orderbot/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository. The connection
// may be a plain DB handle or an open transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextOrderID allocates the next durable order id. Ids grow from the
// highest one already stored; an empty table starts at 1. The allocation
// is only race-free inside a transaction that spans the subsequent inserts.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(order_id), 0) + 1
		FROM order_items
	`).Row().Scan(&next)
	if err != nil {
		return 0, err
	}

	return next, nil
}

// AddItem records one line item of an order.
func (r *GormOrderRepository) AddItem(ctx context.Context, item string, quantity int, orderID int64) error {
	dto := OrderItemDTO{
		OrderID:  orderID,
		Item:     item,
		Quantity: quantity,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SetTracking records the order's tracking status, replacing any prior row.
func (r *GormOrderRepository) SetTracking(ctx context.Context, orderID int64, status order.Status) error {
	dto := OrderTrackingDTO{
		OrderID: orderID,
		Status:  status.String(),
	}
	return r.db.WithContext(ctx).Save(&dto).Error
}

// GetTotalPrice computes the order total by joining line items against the
// menu price list. Items missing from the menu price at zero; an order with
// no line items totals zero.
func (r *GormOrderRepository) GetTotalPrice(ctx context.Context, orderID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * COALESCE(mi.price, 0)), 0)
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.item = oi.item
		WHERE oi.order_id = ?
	`, orderID).Row().Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}
