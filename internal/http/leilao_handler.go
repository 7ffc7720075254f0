package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/i18n"
	"github.com/freteops/frete-service/internal/middleware"
	"github.com/freteops/frete-service/internal/service"
)

// SimularLeilao handles POST /api/leilao/simulate requests.
//
// @Summary      Auction one destination
// @Description  Resolves every carrier's best offer for an ad-hoc order and flags the cheapest and fastest. An unserved destination returns an empty carrier list, not an error.
// @Tags         Leilao
// @Accept       json
// @Produce      json
// @Param        request body dto.SimularLeilaoRequest true "Destination to auction"
// @Success      200 {object} dto.SuccessResponse "Auction result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/leilao/simulate [post]
func (h *Handler) SimularLeilao(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SimularLeilaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	pedido := model.Pedido{
		CEP:      req.CEP,
		UF:       req.UF,
		PedidoID: req.PedidoID,
		Cliente:  req.Cliente,
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "leilao_simulate", "Freight auction requested", map[string]interface{}{
				"cep": req.CEP,
				"uf":  req.UF,
			})
		}
	}

	result, err := h.leilaoService.RunAuction(c.Request.Context(), pedido)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(result)
}

// LeilaoBatch handles POST /api/leilao/batch requests.
//
// @Summary      Auction stored orders
// @Description  Auctions every order matching the filter, in store order. Destinations are resolved concurrently and each failure fills only its own slot.
// @Tags         Leilao
// @Accept       json
// @Produce      json
// @Param        request body dto.LeilaoBatchRequest true "Order selection"
// @Success      200 {object} dto.SuccessResponse "One outcome per order, in input order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/leilao/batch [post]
func (h *Handler) LeilaoBatch(c *gin.Context) {
	builder := NewResponseBuilder(c)

	outcomes, ok := h.runBatch(c, builder, "leilao_batch")
	if !ok {
		return
	}

	builder.SuccessOK(outcomes)
}

// LeilaoBatchExport handles POST /api/leilao/batch/export requests.
//
// @Summary      Auction stored orders and export as xlsx
// @Description  Runs the same batch auction and streams the results as a workbook with an auction sheet and a per-carrier detail sheet. Failures never return a partial file.
// @Tags         Leilao
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request body dto.LeilaoBatchRequest true "Order selection"
// @Success      200 {file} binary "Auction workbook"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/leilao/batch/export [post]
func (h *Handler) LeilaoBatchExport(c *gin.Context) {
	builder := NewResponseBuilder(c)

	outcomes, ok := h.runBatch(c, builder, "leilao_batch_export")
	if !ok {
		return
	}

	payload, err := service.BuildLeilaoWorkbook(outcomes)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	serveWorkbook(c, service.ExportFilename("leilao", time.Now()), payload)
}

// runBatch selects the orders for a batch auction and runs it. A false
// return means the response was already written.
func (h *Handler) runBatch(c *gin.Context, builder *ResponseBuilder, action string) ([]model.LeilaoOutcome, bool) {
	var req dto.LeilaoBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}

	pedidos, err := h.pedidoRepo.ListWithFilters(c.Request.Context(), req.Filter, req.Sort)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return nil, false
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, "Batch freight auction requested", map[string]interface{}{
				"pedidos": len(pedidos),
			})
		}
	}

	return h.leilaoService.RunAuctionBatch(c.Request.Context(), pedidos), true
}
