package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/i18n"
	"github.com/freteops/frete-service/internal/middleware"
	"github.com/freteops/frete-service/internal/service"
	"github.com/freteops/frete-service/internal/tabular"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListFretes handles GET /api/fretes requests.
//
// @Summary      List freight quotes
// @Description  Lists freight quotes with optional state, carrier, cost and lead-time filters. Sort with ?sort=frete&order=desc.
// @Tags         Fretes
// @Produce      json
// @Param        uf query []string false "Filter by state (repeatable)"
// @Param        transportadora query []string false "Filter by carrier (repeatable)"
// @Param        cep query string false "CEP substring match"
// @Param        frete_min query number false "Minimum cost"
// @Param        frete_max query number false "Maximum cost"
// @Param        prazo_min query int false "Minimum lead time (days)"
// @Param        prazo_max query int false "Maximum lead time (days)"
// @Param        sort query string false "Sort field (frete, prazo, cep, uf, transportadora)"
// @Param        order query string false "Sort order (asc, desc)"
// @Success      200 {object} dto.SuccessResponse "Freight quotes"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes [get]
func (h *Handler) ListFretes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, sort, err := bindListQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	fretes, err := h.freteRepo.ListWithFilters(c.Request.Context(), filter, sort)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(fretes)
}

// ResumoPorUF handles GET /api/fretes/resumo/uf requests.
//
// @Summary      Freight summary by state
// @Description  Returns per-state aggregates: quote count, mean cost and mean lead time. Responses are cached briefly.
// @Tags         Fretes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Per-state summary"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/resumo/uf [get]
func (h *Handler) ResumoPorUF(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if cached := h.resumoUFCache.get(); cached != nil {
		if summaries, ok := cached.([]model.FreteSummary); ok {
			builder.SuccessOK(summaries)
			return
		}
	}

	summaries, err := h.summaryService.ByUF(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.resumoUFCache.set(summaries)
	builder.SuccessOK(summaries)
}

// ResumoPorTransportadora handles GET /api/fretes/resumo/transportadora requests.
//
// @Summary      Freight summary by carrier
// @Description  Returns per-carrier aggregates with the states each carrier serves. Responses are cached briefly.
// @Tags         Fretes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Per-carrier summary"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/resumo/transportadora [get]
func (h *Handler) ResumoPorTransportadora(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if cached := h.resumoTransportadoraCache.get(); cached != nil {
		if summaries, ok := cached.([]model.TransportadoraSummary); ok {
			builder.SuccessOK(summaries)
			return
		}
	}

	summaries, err := h.summaryService.ByTransportadora(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.resumoTransportadoraCache.set(summaries)
	builder.SuccessOK(summaries)
}

// ListFiltros handles GET /api/fretes/filtros requests.
//
// @Summary      List available catalog filters
// @Description  Returns the distinct states and carriers present in the catalog, for populating filter controls.
// @Tags         Fretes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Distinct filter values"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/filtros [get]
func (h *Handler) ListFiltros(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ufs, err := h.freteRepo.DistinctUFs(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	transportadoras, err := h.freteRepo.DistinctTransportadoras(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.FiltrosResponse{UFs: ufs, Transportadoras: transportadoras})
}

// PivotFretes handles GET /api/fretes/pivot requests.
//
// @Summary      Pivot the freight catalog
// @Description  Returns a destination-by-carrier matrix of the catalog, with non-serving cells marked. Accepts the same filters as the list endpoint.
// @Tags         Fretes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Pivot matrix"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/pivot [get]
func (h *Handler) PivotFretes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, sort, err := bindListQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	fretes, err := h.freteRepo.ListWithFilters(c.Request.Context(), filter, sort)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	pivot := service.BuildPivot(service.PivotRowsFromFretes(fretes))
	builder.SuccessOK(pivot)
}

// ExportFretes handles GET /api/fretes/export requests.
//
// @Summary      Export the freight catalog as xlsx
// @Description  Streams the filtered catalog as a spreadsheet with one row per destination and per-carrier cost/lead-time columns. Failures never return a partial file.
// @Tags         Fretes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} binary "Catalog workbook"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/export [get]
func (h *Handler) ExportFretes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	filter, sort, err := bindListQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	fretes, err := h.freteRepo.ListWithFilters(c.Request.Context(), filter, sort)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// The workbook is built in full before any byte is written, so a
	// failed build responds with JSON instead of a truncated file.
	payload, err := service.BuildCatalogWorkbook(fretes)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	serveWorkbook(c, service.ExportFilename("fretes", time.Now()), payload)
}

// UploadFretes handles POST /api/fretes/upload requests.
//
// @Summary      Upload a freight quote spreadsheet
// @Description  Ingests an xlsx of freight quotes. Rows missing CEP or UF are dropped and counted; the rest are inserted in chunks. Summary and auction caches are invalidated on success.
// @Tags         Fretes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Spreadsheet (.xlsx)"
// @Success      200 {object} dto.SuccessResponse "Ingestion report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing or unreadable file"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/upload [post]
func (h *Handler) UploadFretes(c *gin.Context) {
	h.handleUpload(c, "frete", h.ingestService.IngestFretes)
}

// handleUpload runs one spreadsheet ingestion and maps its errors.
// Order-row validation failures carry the offending row number.
func (h *Handler) handleUpload(c *gin.Context, entity string, ingest func(ctx context.Context, r io.Reader, filename string) (*dto.UploadResponse, error)) {
	builder := NewResponseBuilder(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUploadFileRequired, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUploadInvalidSheet, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	report, err := ingest(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		var validationErr *dto.ValidationError
		switch {
		case errors.Is(err, tabular.ErrEmptyWorkbook):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUploadInvalidSheet, err)
		case errors.As(err, &validationErr):
			// Surface the row-numbered detail so the client can fix the sheet.
			builder.ErrorWithDetail(http.StatusBadRequest, i18n.ErrKeyValidationPedidos, validationErr.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	h.invalidateCatalogCaches()

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "upload_"+entity, "Spreadsheet ingested", map[string]interface{}{
				"filename":      report.Filename,
				"rows_read":     report.RowsRead,
				"rows_dropped":  report.RowsDropped,
				"rows_inserted": report.RowsInserted,
			})
		}
	}

	builder.SuccessOK(report)
}

// DeleteFretesByUF handles DELETE /api/fretes/uf/{uf} requests.
//
// @Summary      Delete freight quotes by state
// @Tags         Fretes
// @Produce      json
// @Param        uf path string true "State code (e.g. SP)"
// @Success      200 {object} dto.SuccessResponse "Delete report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/uf/{uf} [delete]
func (h *Handler) DeleteFretesByUF(c *gin.Context) {
	h.handleCatalogDelete(c, "uf", c.Param("uf"), h.freteRepo.DeleteByUF)
}

// DeleteFretesByTransportadora handles DELETE /api/fretes/transportadora/{transportadora} requests.
//
// @Summary      Delete freight quotes by carrier
// @Tags         Fretes
// @Produce      json
// @Param        transportadora path string true "Carrier name"
// @Success      200 {object} dto.SuccessResponse "Delete report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/fretes/transportadora/{transportadora} [delete]
func (h *Handler) DeleteFretesByTransportadora(c *gin.Context) {
	h.handleCatalogDelete(c, "transportadora", c.Param("transportadora"), h.freteRepo.DeleteByTransportadora)
}

// handleCatalogDelete scopes a bulk delete, invalidates the caches and
// reports the deleted count through the audit log.
func (h *Handler) handleCatalogDelete(c *gin.Context, scope, value string, del func(ctx context.Context, value string) (int64, error)) {
	builder := NewResponseBuilder(c)

	deleted, err := del(c.Request.Context(), value)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCatalogCaches()

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_fretes", "Freight quotes deleted", map[string]interface{}{
				"scope":   scope,
				"value":   value,
				"deleted": deleted,
			})
		}
	}

	builder.SuccessOK(dto.DeleteResponse{Scope: scope, Value: value, Count: deleted, Deleted: deleted > 0})
}

// serveWorkbook writes an xlsx payload as a file attachment.
func serveWorkbook(c *gin.Context, filename string, payload []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, payload)
}
