// Package http exposes the conversational order webhook over HTTP.
// It decodes Dialogflow fulfillment payloads, dispatches by intent to the
// application layer, and renders the outcome as fulfillment text. Handled
// conversational outcomes reply 200 even when they describe a problem;
// only undecodable payloads and unknown intents reply 500.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	intentAddToOrder      = "order.add"
	intentRemoveFromOrder = "order.remove"
	intentCompleteOrder   = "order.complete"
	intentTrackOrder      = "track.order-ongoing"
)

const clarifyText = "Sorry I didn't understand. Can you please specify food items and quantities clearly?"

// Server handles the webhook and liveness endpoints. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	addItemsHandler      commands.AddItemsCommandHandler
	removeItemsHandler   commands.RemoveItemsCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	trackOrderHandler    queries.TrackOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	addItemsHandler commands.AddItemsCommandHandler,
	removeItemsHandler commands.RemoveItemsCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addItemsHandler:      addItemsHandler,
		removeItemsHandler:   removeItemsHandler,
		completeOrderHandler: completeOrderHandler,
		trackOrderHandler:    trackOrderHandler,
		logger:               logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches the webhook and liveness endpoints to echo.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/", s.Webhook)
}

// Health handles GET /health for liveness probing.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "Server is running!"})
}

// Webhook handles POST / fulfillment requests. Every conversational outcome,
// including "order not found" style replies, is a 200 with fulfillment text:
// the caller is a dialog agent, not an API client.
func (s *Server) Webhook(ctx echo.Context) error {
	logger := requestLogger(ctx, s.logger)

	var req WebhookRequest
	if err := ctx.Bind(&req); err != nil {
		logger.Error("failed to decode webhook payload", "error", err)
		return webhookError(ctx, fmt.Errorf("invalid request body: %w", err))
	}

	if len(req.QueryResult.OutputContexts) == 0 {
		return webhookError(ctx, errors.New("no output contexts in request"))
	}

	sessionID := ExtractSessionID(req.QueryResult.OutputContexts[0].Name)
	intent := req.QueryResult.Intent.DisplayName
	logger.Info("webhook request received", "intent", intent, "session_id", sessionID)

	switch intent {
	case intentAddToOrder:
		return s.addToOrder(ctx, sessionID, req.QueryResult.Parameters)
	case intentRemoveFromOrder:
		return s.removeFromOrder(ctx, sessionID, req.QueryResult.Parameters)
	case intentCompleteOrder:
		return s.completeOrder(ctx, sessionID)
	case intentTrackOrder:
		return s.trackOrder(ctx, req.QueryResult.Parameters)
	default:
		return webhookError(ctx, fmt.Errorf("unsupported intent %q", intent))
	}
}

func (s *Server) addToOrder(ctx echo.Context, sessionID string, params Parameters) error {
	if sessionID == "" {
		return webhookError(ctx, errors.New("no session id in output context"))
	}
	if params.FoodItems == nil {
		return webhookError(ctx, errors.New("missing food-item parameter"))
	}

	cmd, err := commands.NewAddItemsCommand(sessionID, params.FoodItems, params.Number.Ints())
	if err != nil {
		// Mismatched, empty or non-positive pairs all read as an unclear
		// utterance; ask the caller to rephrase.
		return fulfill(ctx, clarifyText)
	}

	result, err := s.addItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return webhookError(ctx, err)
	}

	return fulfill(ctx, fmt.Sprintf(
		"So far you have: %s. Do you need anything else?",
		order.FormatLines(result.Lines)))
}

func (s *Server) removeFromOrder(ctx echo.Context, sessionID string, params Parameters) error {
	if sessionID == "" {
		return webhookError(ctx, errors.New("no session id in output context"))
	}
	if params.FoodItems == nil {
		return webhookError(ctx, errors.New("missing food-item parameter"))
	}

	cmd, err := commands.NewRemoveItemsCommand(sessionID, params.FoodItems)
	if err != nil {
		return webhookError(ctx, err)
	}

	result, err := s.removeItemsHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoActiveOrder) {
		return fulfill(ctx, "I'm having a trouble finding your order. Sorry! Can you place a new order please?")
	}
	if err != nil {
		return webhookError(ctx, err)
	}

	clauses := make([]string, 0, 3)
	if len(result.Removed) > 0 {
		clauses = append(clauses, fmt.Sprintf("Removed %s from your order!", strings.Join(result.Removed, ",")))
	}
	if len(result.Missing) > 0 {
		clauses = append(clauses, fmt.Sprintf("Your current order does not have %s", strings.Join(result.Missing, ",")))
	}
	if len(result.Remaining) == 0 {
		clauses = append(clauses, "Your order is empty!")
	} else {
		clauses = append(clauses, fmt.Sprintf("Here is what is left in your order: %s", order.FormatLines(result.Remaining)))
	}

	return fulfill(ctx, strings.Join(clauses, " "))
}

func (s *Server) completeOrder(ctx echo.Context, sessionID string) error {
	if sessionID == "" {
		return webhookError(ctx, errors.New("no session id in output context"))
	}

	cmd, err := commands.NewCompleteOrderCommand(sessionID)
	if err != nil {
		return webhookError(ctx, err)
	}

	result, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoActiveOrder) {
		return fulfill(ctx, "I am having trouble finding your order. Sorry! Can you please place a new order.")
	}
	if err != nil {
		requestLogger(ctx, s.logger).Error("order completion failed", "error", err)
		return fulfill(ctx,
			"Sorry, I couldn't process your order due to a backend error. Please place a new order again.")
	}

	return fulfill(ctx, fmt.Sprintf(
		"Awesome. We have placed your order. Here is your order id #%d. "+
			"Your order total is %s which you can pay at the time of delivery!",
		result.OrderID, strconv.FormatFloat(result.Total, 'f', -1, 64)))
}

func (s *Server) trackOrder(ctx echo.Context, params Parameters) error {
	if len(params.Number) == 0 {
		return fulfill(ctx, "No order ID provided.")
	}

	query, err := queries.NewTrackOrderQuery(int64(params.Number[0]))
	if err != nil {
		return fulfill(ctx, "No order ID provided.")
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fulfill(ctx, fmt.Sprintf("No order found with order ID %d.", query.OrderID()))
	}
	if err != nil {
		requestLogger(ctx, s.logger).Error("order tracking lookup failed", "error", err)
		return fulfill(ctx, "Database error occurred.")
	}

	return fulfill(ctx, fmt.Sprintf(
		"The order status for order ID %d is: %s", result.OrderID, result.Status))
}

func fulfill(ctx echo.Context, text string) error {
	return ctx.JSON(http.StatusOK, WebhookResponse{FulfillmentText: text})
}

// webhookError reports an unprocessable request. The error text goes into
// the fulfillment reply the way the dialog platform expects failures.
func webhookError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, WebhookResponse{
		FulfillmentText: "Webhook error: " + err.Error(),
	})
}
