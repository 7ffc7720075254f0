package http

import (
	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/model"
	"github.com/freteops/frete-service/internal/middleware"
)

// FreteRoutes handles freight, order and auction route registration.
type FreteRoutes struct {
	handler     *Handler
	userHandler *UserHandler
}

// NewFreteRoutes creates a new FreteRoutes instance.
func NewFreteRoutes(handler *Handler, userHandler *UserHandler) *FreteRoutes {
	return &FreteRoutes{
		handler:     handler,
		userHandler: userHandler,
	}
}

// RegisterPublicRoutes registers freight routes without role gates
// (when auth is disabled).
func (r *FreteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.registerCatalogRoutes(rg, nil)
}

// RegisterProtectedRoutes registers freight routes with admin gates on the
// destructive endpoints (when auth is enabled).
func (r *FreteRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	r.registerCatalogRoutes(protected, adminOnly)

	if r.userHandler != nil {
		users := protected.Group("/users", adminOnly)
		{
			users.GET("", r.userHandler.ListUsers)
			users.PATCH("/:id", r.userHandler.UpdateUser)
		}
	}
}

// registerCatalogRoutes registers the freight, order and auction endpoints.
// A nil adminOnly leaves the destructive endpoints ungated.
func (r *FreteRoutes) registerCatalogRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	gated := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if adminOnly == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{adminOnly}, handlers...)
	}

	fretes := rg.Group("/fretes")
	{
		fretes.GET("", r.handler.ListFretes)
		fretes.GET("/resumo/uf", r.handler.ResumoPorUF)
		fretes.GET("/resumo/transportadora", r.handler.ResumoPorTransportadora)
		fretes.GET("/filtros", r.handler.ListFiltros)
		fretes.GET("/pivot", r.handler.PivotFretes)
		fretes.GET("/export", r.handler.ExportFretes)
		fretes.POST("/upload", r.handler.UploadFretes)
		fretes.DELETE("/uf/:uf", gated(r.handler.DeleteFretesByUF)...)
		fretes.DELETE("/transportadora/:transportadora", gated(r.handler.DeleteFretesByTransportadora)...)
	}

	pedidos := rg.Group("/pedidos")
	{
		pedidos.GET("", r.handler.ListPedidos)
		pedidos.POST("/upload", r.handler.UploadPedidos)
		pedidos.DELETE("", gated(r.handler.DeletePedidos)...)
		pedidos.DELETE("/uf/:uf", gated(r.handler.DeletePedidosByUF)...)
	}

	leilao := rg.Group("/leilao")
	{
		leilao.POST("/simulate", r.handler.SimularLeilao)
		leilao.POST("/batch", r.handler.LeilaoBatch)
		leilao.POST("/batch/export", r.handler.LeilaoBatchExport)
	}
}

// GetHandler returns the underlying freight handler.
func (r *FreteRoutes) GetHandler() *Handler {
	return r.handler
}
