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

type VenueService interface {
	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	UpdateVenue(ctx context.Context, id uint, venue domain.Venue) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{
		svc: svc,
	}
}

// HandleCreateVenue godoc
// @Summary      Create a venue
// @Tags         recintos
// @Accept       json
// @Produce      json
// @Param        request  body      request.VenueRequest  true  "venue"
// @Success      200      {object}  domain.Venue
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /recintos/ [post]
func (h *VenueHandler) HandleCreateVenue(ctx *gin.Context) {
	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			response.RenderErr(ctx, response.ErrValidation(err))
			return
		}

		err = fmt.Errorf("HandleCreateVenue -> h.svc.CreateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleGetVenues godoc
// @Summary      List venues
// @Tags         recintos
// @Produce      json
// @Success      200  {array}   domain.Venue
// @Failure      500  {object}  response.Err
// @Router       /recintos/ [get]
func (h *VenueHandler) HandleGetVenues(ctx *gin.Context) {
	venues, err := h.svc.GetVenues(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetVenues -> h.svc.GetVenues -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleUpdateVenue godoc
// @Summary      Replace a venue
// @Tags         recintos
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "venue ID"
// @Param        request  body      request.VenueRequest  true  "venue"
// @Success      200      {object}  domain.Venue
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /recintos/{id} [put]
func (h *VenueHandler) HandleUpdateVenue(ctx *gin.Context) {
	id, respErr := parseID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.VenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	venue, err := h.svc.UpdateVenue(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgVenueNotFound))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			response.RenderErr(ctx, response.ErrValidation(err))
			return
		}

		err = fmt.Errorf("HandleUpdateVenue -> h.svc.UpdateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue and its events
// @Tags         recintos
// @Produce      json
// @Param        id   path      int  true  "venue ID"
// @Success      200  {object}  response.Message
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /recintos/{id} [delete]
func (h *VenueHandler) HandleDeleteVenue(ctx *gin.Context) {
	id, respErr := parseID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteVenue(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgVenueNotFound))
			return
		}

		err = fmt.Errorf("HandleDeleteVenue -> h.svc.DeleteVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Detail: msgVenueDeleted})
}
