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
)

// prospectHandler handles HTTP requests related to the sales pipeline.
type prospectHandler struct {
	prospectService portssvc.ProspectSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

func newProspectHandler(ps portssvc.ProspectSvcFacade, posthogClient *utils.PosthogClientWrapper) *prospectHandler {
	return &prospectHandler{prospectService: ps, posthogClient: posthogClient}
}

// RegisterProspectRoutes registers routes related to prospects. posthogClient may be nil.
func RegisterProspectRoutes(rg *gin.RouterGroup, prospectService portssvc.ProspectSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	registerValidators()
	h := newProspectHandler(prospectService, posthogClient)

	prospects := rg.Group("/prospects")
	{
		prospects.POST("", h.createProspect)
		prospects.GET("", h.listProspects)
		prospects.GET("/:id", h.getProspect)
		prospects.PUT("/:id", h.updateProspect)
		prospects.DELETE("/:id", h.deleteProspect)
	}
}

// createProspect godoc
// @Summary Create a prospect
// @Description Creates a prospect. A won status converts it into a client and books its captação entry.
// @Tags prospects
// @Accept  json
// @Produce  json
// @Param   prospect body dto.ProspectRequest true "Prospect details"
// @Success 201 {object} dto.ProspectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Linked client belongs to another advisor (LINK_FORBIDDEN)"
// @Failure 422 {object} dto.ErrorResponse "Won without realized value or date (PROSPECT_CONVERSION_REQUIREMENTS)"
// @Security BearerAuth
// @Router /prospects [post]
func (h *prospectHandler) createProspect(c *gin.Context) {
	h.saveProspect(c, "", http.StatusCreated)
}

// updateProspect godoc
// @Summary Update a prospect
// @Description Replaces the prospect, converting, refreshing or reverting its conversion as the status changes.
// @Tags prospects
// @Accept  json
// @Produce  json
// @Param   id path string true "Prospect ID"
// @Param   prospect body dto.ProspectRequest true "Prospect details"
// @Success 200 {object} dto.ProspectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Prospect not found"
// @Failure 409 {object} dto.ErrorResponse "Prospect changed since it was read"
// @Failure 422 {object} dto.ErrorResponse "Won without realized value or date (PROSPECT_CONVERSION_REQUIREMENTS)"
// @Security BearerAuth
// @Router /prospects/{id} [put]
func (h *prospectHandler) updateProspect(c *gin.Context) {
	h.saveProspect(c, c.Param("id"), http.StatusOK)
}

func (h *prospectHandler) saveProspect(c *gin.Context, prospectID string, successStatus int) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.ProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	prospect, transition, err := h.prospectService.SaveProspect(c.Request.Context(), userID, prospectID, req)
	if err != nil {
		respondError(c, err, "Failed to save prospect")
		return
	}

	switch transition {
	case domain.TransitionConverted:
		middleware.PosthogEvent(c, h.posthogClient, utils.EventProspectConverted, map[string]any{
			"prospect_id": prospect.ProspectID,
			"client_id":   prospect.ConvertedClientID,
		})
	case domain.TransitionReverted:
		middleware.PosthogEvent(c, h.posthogClient, utils.EventProspectReverted, map[string]any{
			"prospect_id": prospect.ProspectID,
		})
	}
	if transition != domain.TransitionNone {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Prospect conversion changed",
			slog.String("prospect_id", prospect.ProspectID),
			slog.String("transition", string(transition)))
	}

	c.JSON(successStatus, dto.ToProspectResponse(prospect))
}

// listProspects godoc
// @Summary List prospects
// @Tags prospects
// @Produce  json
// @Success 200 {array} dto.ProspectResponse
// @Security BearerAuth
// @Router /prospects [get]
func (h *prospectHandler) listProspects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	list, err := h.prospectService.ListProspects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list prospects")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProspectResponse(list))
}

// getProspect godoc
// @Summary Get a prospect by ID
// @Tags prospects
// @Produce  json
// @Param   id path string true "Prospect ID"
// @Success 200 {object} dto.ProspectResponse
// @Failure 404 {object} dto.ErrorResponse "Prospect not found"
// @Security BearerAuth
// @Router /prospects/{id} [get]
func (h *prospectHandler) getProspect(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	prospect, err := h.prospectService.GetProspectByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve prospect")
		return
	}
	c.JSON(http.StatusOK, dto.ToProspectResponse(prospect))
}

// deleteProspect godoc
// @Summary Delete a prospect
// @Description Deleting a converted prospect books the reversal of its captação entry.
// @Tags prospects
// @Param   id path string true "Prospect ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Prospect not found"
// @Security BearerAuth
// @Router /prospects/{id} [delete]
func (h *prospectHandler) deleteProspect(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.prospectService.DeleteProspect(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete prospect")
		return
	}
	c.Status(http.StatusNoContent)
}
