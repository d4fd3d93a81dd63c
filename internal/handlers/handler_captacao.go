package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/guibecker772/advisor-control/internal/core/ports/services"
	"github.com/guibecker772/advisor-control/internal/dto"
	"github.com/guibecker772/advisor-control/internal/middleware"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// captacaoHandler handles HTTP requests related to the captação ledger.
type captacaoHandler struct {
	captacaoService portssvc.CaptacaoSvcFacade
}

func newCaptacaoHandler(cs portssvc.CaptacaoSvcFacade) *captacaoHandler {
	return &captacaoHandler{captacaoService: cs}
}

// RegisterCaptacaoRoutes registers the ledger, summary and spreadsheet routes.
func RegisterCaptacaoRoutes(rg *gin.RouterGroup, captacaoService portssvc.CaptacaoSvcFacade) {
	registerValidators()
	h := newCaptacaoHandler(captacaoService)

	captacao := rg.Group("/captacao")
	{
		captacao.GET("/summary", h.getMonthlySummary)
		captacao.GET("/export", h.exportXLSX)
		captacao.POST("/import", h.importLancamentos)

		lancamentos := captacao.Group("/lancamentos")
		lancamentos.POST("", h.createLancamento)
		lancamentos.GET("", h.listLancamentos)
		lancamentos.GET("/:id", h.getLancamento)
		lancamentos.PUT("/:id", h.updateLancamento)
		lancamentos.DELETE("/:id", h.deleteLancamento)
	}
}

// createLancamento godoc
// @Summary Create a manual captação entry
// @Tags captacao
// @Accept  json
// @Produce  json
// @Param   lancamento body dto.LancamentoRequest true "Entry details"
// @Success 201 {object} dto.LancamentoResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Client belongs to another advisor (LINK_FORBIDDEN)"
// @Security BearerAuth
// @Router /captacao/lancamentos [post]
func (h *captacaoHandler) createLancamento(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	entry, err := h.captacaoService.CreateLancamento(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create captação entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLancamentoResponse(entry))
}

// listLancamentos godoc
// @Summary List captação entries
// @Description Newest first, paginated with an opaque nextToken.
// @Tags captacao
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   ano query int false "Year filter"
// @Param   mes query int false "Month filter (1-12)"
// @Success 200 {object} dto.ListLancamentosResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /captacao/lancamentos [get]
func (h *captacaoHandler) listLancamentos(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListLancamentosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	resp, err := h.captacaoService.ListLancamentos(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list captação entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getLancamento godoc
// @Summary Get a captação entry by ID
// @Tags captacao
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.LancamentoResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /captacao/lancamentos/{id} [get]
func (h *captacaoHandler) getLancamento(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	entry, err := h.captacaoService.GetLancamentoByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve captação entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLancamentoResponse(entry))
}

// updateLancamento godoc
// @Summary Update a manual captação entry
// @Description Entries written by conversions are read-only.
// @Tags captacao
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   lancamento body dto.LancamentoRequest true "Entry details"
// @Success 200 {object} dto.LancamentoResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is automated or changed since it was read"
// @Security BearerAuth
// @Router /captacao/lancamentos/{id} [put]
func (h *captacaoHandler) updateLancamento(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.LancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	entry, err := h.captacaoService.UpdateLancamento(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update captação entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLancamentoResponse(entry))
}

// deleteLancamento godoc
// @Summary Delete a manual captação entry
// @Tags captacao
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is automated"
// @Security BearerAuth
// @Router /captacao/lancamentos/{id} [delete]
func (h *captacaoHandler) deleteLancamento(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.captacaoService.DeleteLancamento(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete captação entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// getMonthlySummary godoc
// @Summary Monthly captação summary
// @Description Sums the entries dated from the first day of the month up to, not including, the first day of the next.
// @Tags captacao
// @Produce  json
// @Param   ano query int true "Year"
// @Param   mes query int true "Month (1-12)"
// @Success 200 {object} dto.CaptacaoSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /captacao/summary [get]
func (h *captacaoHandler) getMonthlySummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	summary, err := h.captacaoService.GetMonthlySummary(c.Request.Context(), userID, params.Year, params.Month)
	if err != nil {
		respondError(c, err, "Failed to summarize captação")
		return
	}
	c.JSON(http.StatusOK, dto.ToCaptacaoSummaryResponse(summary))
}

// exportXLSX godoc
// @Summary Export captação entries
// @Description Downloads the entries of a month range as an XLSX workbook.
// @Tags captacao
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   from query string true "First month (YYYY-MM)"
// @Param   to query string true "Last month (YYYY-MM)"
// @Param   ownerId query string false "Advisor whose entries are exported; defaults to the caller"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Failure 403 {object} dto.ErrorResponse "Another advisor's entries (EXPORT_FORBIDDEN)"
// @Security BearerAuth
// @Router /captacao/export [get]
func (h *captacaoHandler) exportXLSX(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}
	content, err := h.captacaoService.ExportXLSX(c.Request.Context(), userID, params.OwnerID, params.From, params.To)
	if err != nil {
		respondError(c, err, "Failed to export captação")
		return
	}

	filename := fmt.Sprintf("captacao_%s_%s.xlsx", dates.NormalizeMonth(params.From), dates.NormalizeMonth(params.To))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Captação exported",
		slog.String("file", filename), slog.Int("bytes", len(content)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

// importLancamentos godoc
// @Summary Import captação entries
// @Description Spreadsheet import is not available. Imports into another advisor's book are refused.
// @Tags captacao
// @Param   ownerId query string false "Target advisor; defaults to the caller"
// @Failure 403 {object} dto.ErrorResponse "Another advisor's book (IMPORT_FORBIDDEN)"
// @Failure 501 {object} dto.ErrorResponse "Import not supported"
// @Security BearerAuth
// @Router /captacao/import [post]
func (h *captacaoHandler) importLancamentos(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		ownerID = userID
	}
	if err := h.captacaoService.ImportLancamentos(c.Request.Context(), userID, ownerID); err != nil {
		respondError(c, err, "Failed to import captação")
		return
	}
	c.Status(http.StatusNoContent)
}
