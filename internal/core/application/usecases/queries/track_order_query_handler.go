package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads an order's tracking status from the database.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle returns the tracking status for the queried order id.
// An id with no tracking row yields an ObjectNotFoundError; the caller
// turns it into a "no order found" reply rather than a failure.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var status string
	err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM order_tracking
		WHERE order_id = ?
	`, query.OrderID()).Row().Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"orderID", query.OrderID(), err)
		}
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		OrderID: query.OrderID(),
		Status:  status,
	}, nil
}
