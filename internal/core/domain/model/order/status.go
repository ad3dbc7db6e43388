package order

// Status is the tracking state of a persisted order. The backend only ever
// records StatusInProgress at completion time; downstream fulfillment systems
// advance the status, and track queries surface whatever the database holds.
type Status string

const (
	// StatusInProgress is the initial tracking status written when a
	// session's order is persisted.
	StatusInProgress Status = "in progress"

	// StatusInTransit marks an order handed to delivery.
	StatusInTransit Status = "in transit"

	// StatusDelivered marks a fulfilled order.
	StatusDelivered Status = "delivered"
)

// String returns the status text as stored in the tracking table.
func (s Status) String() string {
	return string(s)
}
