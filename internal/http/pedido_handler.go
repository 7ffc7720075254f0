package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/i18n"
	"github.com/freteops/frete-service/internal/middleware"
	"github.com/freteops/frete-service/internal/service"
)

// ListPedidos handles GET /api/pedidos requests.
//
// @Summary      List stored orders
// @Description  Lists orders with optional state, CEP-substring and customer filters.
// @Tags         Pedidos
// @Produce      json
// @Param        uf query []string false "Filter by state (repeatable)"
// @Param        cep query string false "CEP substring match"
// @Param        cliente query string false "Customer name substring match"
// @Success      200 {object} dto.SuccessResponse "Orders"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pedidos [get]
func (h *Handler) ListPedidos(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	pedidos, err := h.pedidoRepo.ListWithFilters(c.Request.Context(), filter, nil)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(pedidos)
}

// UploadPedidos handles POST /api/pedidos/upload requests.
//
// @Summary      Upload an order spreadsheet
// @Description  Ingests an xlsx of orders. Unlike the freight path, any row missing CEP or UF aborts the whole upload with the offending row number; nothing is inserted.
// @Tags         Pedidos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Spreadsheet (.xlsx)"
// @Success      200 {object} dto.SuccessResponse "Ingestion report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or invalid row"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pedidos/upload [post]
func (h *Handler) UploadPedidos(c *gin.Context) {
	h.handleUpload(c, "pedido", h.ingestService.IngestPedidos)
}

// DeletePedidos handles DELETE /api/pedidos requests.
//
// @Summary      Delete all stored orders
// @Tags         Pedidos
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Delete report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pedidos [delete]
func (h *Handler) DeletePedidos(c *gin.Context) {
	builder := NewResponseBuilder(c)

	deleted, err := h.pedidoRepo.DeleteAll(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_pedidos", "All orders deleted", map[string]interface{}{
				"deleted": deleted,
			})
		}
	}

	builder.SuccessOK(dto.DeleteResponse{Scope: "all", Count: deleted, Deleted: deleted > 0})
}

// DeletePedidosByUF handles DELETE /api/pedidos/uf/{uf} requests.
//
// @Summary      Delete stored orders by state
// @Tags         Pedidos
// @Produce      json
// @Param        uf path string true "State code (e.g. SP)"
// @Success      200 {object} dto.SuccessResponse "Delete report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - admin only"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pedidos/uf/{uf} [delete]
func (h *Handler) DeletePedidosByUF(c *gin.Context) {
	builder := NewResponseBuilder(c)

	uf := c.Param("uf")
	deleted, err := h.pedidoRepo.DeleteByUF(c.Request.Context(), uf)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "delete_pedidos", "Orders deleted by state", map[string]interface{}{
				"uf":      uf,
				"deleted": deleted,
			})
		}
	}

	builder.SuccessOK(dto.DeleteResponse{Scope: "uf", Value: uf, Count: deleted, Deleted: deleted > 0})
}
