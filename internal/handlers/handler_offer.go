package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/middleware"
	"github.com/guibecker772/advisor-control/internal/utils"
	"github.com/guibecker772/advisor-control/internal/utils/offers"
)

// offerHandler handles HTTP requests related to offers and their reservations.
type offerHandler struct {
	offerService  portssvc.OfferSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newOfferHandler(svc portssvc.OfferSvcFacade, posthogClient *utils.PosthogClientWrapper) *offerHandler {
	return &offerHandler{offerService: svc, posthogClient: posthogClient}
}

// RegisterOfferRoutes registers routes related to offers. posthogClient may be nil.
func RegisterOfferRoutes(rg *gin.RouterGroup, offerService portssvc.OfferSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	registerValidators()
	h := newOfferHandler(offerService, posthogClient)

	offerRoutes := rg.Group("/offers")
	{
		offerRoutes.POST("", h.createOffer)
		offerRoutes.GET("", h.listOffers)
		offerRoutes.GET("/:id", h.getOffer)
		offerRoutes.PUT("/:id", h.updateOffer)
		offerRoutes.DELETE("/:id", h.deleteOffer)
		offerRoutes.GET("/:id/totals", h.getOfferTotals)
		offerRoutes.POST("/:id/reservations", h.addReservation)
	}
}

// reservationStatus is the HTTP status of a refused reservation.
var reservationStatus = map[offers.ReservationFailure]int{
	offers.ReasonOfferNotFound:   http.StatusNotFound,
	offers.ReasonOfferLocked:     http.StatusConflict,
	offers.ReasonDuplicateClient: http.StatusConflict,
	offers.ReasonInvalidInput:    http.StatusBadRequest,
}

// createOffer godoc
// @Summary Create an offer
// @Description The offer is normalized before saving: legacy fields are folded, rates become decimals and the status is derived.
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   offer body dto.OfferRequest true "Offer details"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /offers [post]
func (h *offerHandler) createOffer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	offer, err := h.offerService.CreateOffer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create offer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

// listOffers godoc
// @Summary List offers
// @Tags offers
// @Produce  json
// @Param   competenceMonth query string false "Competence month (YYYY-MM)"
// @Param   status query string false "pendente, reservada, liquidada or cancelada"
// @Success 200 {array} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /offers [get]
func (h *offerHandler) listOffers(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListOffersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	filter := domain.OfferFilter{CompetenceMonth: params.CompetenceMonth, Status: domain.OfferStatus(params.Status)}
	list, err := h.offerService.ListOffers(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "Failed to list offers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOfferResponse(list))
}

// getOffer godoc
// @Summary Get an offer by ID
// @Description The response embeds the commission totals of the offer.
// @Tags offers
// @Produce  json
// @Param   id path string true "Offer ID"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [get]
func (h *offerHandler) getOffer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	offer, err := h.offerService.GetOfferByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// updateOffer godoc
// @Summary Update an offer
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   id path string true "Offer ID"
// @Param   offer body dto.OfferRequest true "Offer details"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Failure 409 {object} dto.ErrorResponse "Offer changed since it was read"
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *offerHandler) updateOffer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	offer, err := h.offerService.UpdateOffer(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update offer")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// deleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Param   id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *offerHandler) deleteOffer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.offerService.DeleteOffer(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete offer")
		return
	}
	c.Status(http.StatusNoContent)
}

// getOfferTotals godoc
// @Summary Offer commission totals
// @Tags offers
// @Produce  json
// @Param   id path string true "Offer ID"
// @Success 200 {object} dto.OfferTotalsResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Security BearerAuth
// @Router /offers/{id}/totals [get]
func (h *offerHandler) getOfferTotals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	totals, err := h.offerService.GetOfferTotals(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute offer totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToOfferTotalsResponse(totals))
}

// addReservation godoc
// @Summary Reserve part of an offer for a client
// @Description Refusals come back with ok=false and a reason: OFFER_NOT_FOUND, OFFER_LOCKED, INVALID_INPUT or DUPLICATE_CLIENT.
// @Tags offers
// @Accept  json
// @Produce  json
// @Param   id path string true "Offer ID"
// @Param   reservation body dto.ReservationRequest true "Reservation"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ReservationResponse "INVALID_INPUT"
// @Failure 403 {object} dto.ErrorResponse "Client belongs to another advisor (LINK_FORBIDDEN)"
// @Failure 404 {object} dto.ReservationResponse "OFFER_NOT_FOUND"
// @Failure 409 {object} dto.ReservationResponse "OFFER_LOCKED or DUPLICATE_CLIENT"
// @Security BearerAuth
// @Router /offers/{id}/reservations [post]
func (h *offerHandler) addReservation(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	offerID := c.Param("id")
	result, err := h.offerService.AddReservationToOffer(c.Request.Context(), userID, offerID, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to add reservation")
		return
	}

	if !result.OK {
		status, known := reservationStatus[result.Reason]
		if !known {
			status = http.StatusUnprocessableEntity
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Reservation refused",
			slog.String("offer_id", offerID), slog.String("reason", string(result.Reason)))
		c.JSON(status, dto.ToReservationResponse(result))
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, utils.EventOfferReservationAdded, map[string]any{
		"offer_id":  offerID,
		"client_id": req.ClientID,
	})
	c.JSON(http.StatusOK, dto.ToReservationResponse(result))
}
