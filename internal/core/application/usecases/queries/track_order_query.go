// Package queries contains read operations for retrieving order state.
// Queries bypass the session store and domain model and read the
// database directly, returning flat read models.
package queries

import (
	"errors"
	"math"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the tracking status of a completed order by
// its durable id. The id comes straight from the caller's utterance, so
// the constructor rejects non-positive values before any I/O happens.
type TrackOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the given order id.
func NewTrackOrderQuery(orderID int64) (TrackOrderQuery, error) {
	if orderID <= 0 {
		return TrackOrderQuery{}, errs.NewValueIsOutOfRangeError(
			"orderID", orderID, 1, int64(math.MaxInt64))
	}

	return TrackOrderQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackOrderQueryResponse is the read model for order tracking.
type TrackOrderQueryResponse struct {
	OrderID int64
	Status  string
}
