// Package orderrepo persists completed orders. An order is stored as a set
// of line item rows plus one tracking row; there is no orders header table.
// The menu_items table holds the price list consulted when totaling.
package orderrepo

// OrderItemDTO is one line item row of a completed order.
type OrderItemDTO struct {
	OrderID  int64  `gorm:"primaryKey;autoIncrement:false;column:order_id"`
	Item     string `gorm:"primaryKey;column:item"`
	Quantity int    `gorm:"column:quantity"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderTrackingDTO is the tracking status row of a completed order.
type OrderTrackingDTO struct {
	OrderID int64  `gorm:"primaryKey;autoIncrement:false;column:order_id"`
	Status  string `gorm:"column:status"`
}

// TableName overrides GORM's default naming to use "order_tracking".
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}

// MenuItemDTO is one row of the menu price list.
type MenuItemDTO struct {
	Item  string  `gorm:"primaryKey;column:item"`
	Price float64 `gorm:"column:price"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}
