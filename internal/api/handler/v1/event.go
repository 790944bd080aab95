package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvents(ctx context.Context, city string) ([]domain.Event, error)
	PurchaseTickets(ctx context.Context, eventID uint, quantity int) (domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  tickets_vendidos always starts at 0
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "event"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /eventos/ [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgEventVenueNotFound))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			response.RenderErr(ctx, response.ErrValidation(err))
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetEvents godoc
// @Summary      List events
// @Description  Optionally filtered by the city of their venue, case-insensitive substring match
// @Tags         eventos
// @Produce      json
// @Param        ciudad  query     string  false  "city filter"
// @Success      200     {array}   domain.Event
// @Failure      500     {object}  response.Err
// @Router       /eventos/ [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context(), ctx.Query("ciudad"))
	if err != nil {
		err = fmt.Errorf("HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandlePurchaseTickets godoc
// @Summary      Buy tickets for an event
// @Description  Fails without side effects when the venue capacity would be exceeded
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "event ID"
// @Param        request  body      request.PurchaseRequest  true  "quantity"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /eventos/{id}/comprar [patch]
func (h *EventHandler) HandlePurchaseTickets(ctx *gin.Context) {
	id, respErr := parseID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	event, err := h.svc.PurchaseTickets(ctx.Request.Context(), id, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(msgEventNotFound))
		case errors.Is(err, service.ErrCapacityExceeded):
			response.RenderErr(ctx, response.ErrBadRequest(errors.New(msgCapacityExceeded)))
		case errors.Is(err, domain.ErrValidation):
			response.RenderErr(ctx, response.ErrValidation(err))
		default:
			err = fmt.Errorf("HandlePurchaseTickets -> h.svc.PurchaseTickets -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, event)
}
