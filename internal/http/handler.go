package http

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/repository"
	"github.com/freteops/frete-service/internal/service"
)

// summaryCache provides thread-safe caching of one summary payload.
type summaryCache struct {
	value     atomic.Value // holds the cached payload
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newSummaryCache creates a summary cache with the given TTL.
func newSummaryCache(ttl time.Duration) *summaryCache {
	c := &summaryCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached payload if valid, or nil if expired/empty.
func (c *summaryCache) get() interface{} {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return c.value.Load()
		}
	}
	return nil
}

// set stores a payload in the cache with TTL.
func (c *summaryCache) set(v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.value.Store(v)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *summaryCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the freight catalog, order and
// auction routes.
type Handler struct {
	freteRepo      repository.FreteRepositoryInterface
	pedidoRepo     repository.PedidoRepositoryInterface
	ingestService  *service.IngestService
	leilaoService  *service.LeilaoService
	summaryService *service.SummaryService

	resumoUFCache             *summaryCache
	resumoTransportadoraCache *summaryCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSummaryCacheTTL sets the TTL for summary response caching.
func WithSummaryCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.resumoUFCache = newSummaryCache(ttl)
		h.resumoTransportadoraCache = newSummaryCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(
	freteRepo repository.FreteRepositoryInterface,
	pedidoRepo repository.PedidoRepositoryInterface,
	ingestService *service.IngestService,
	leilaoService *service.LeilaoService,
	summaryService *service.SummaryService,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		freteRepo:      freteRepo,
		pedidoRepo:     pedidoRepo,
		ingestService:  ingestService,
		leilaoService:  leilaoService,
		summaryService: summaryService,
		// Default 30s cache
		resumoUFCache:             newSummaryCache(30 * time.Second),
		resumoTransportadoraCache: newSummaryCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// invalidateCatalogCaches drops the summary caches and the auction
// resolution cache. Call it after any catalog write so summaries and
// auctions never serve pre-write offers.
func (h *Handler) invalidateCatalogCaches() {
	h.resumoUFCache.invalidate()
	h.resumoTransportadoraCache.invalidate()
	if h.leilaoService != nil {
		h.leilaoService.InvalidateResolutions()
	}
}

// bindListQuery decodes the freight filter and optional sort from the
// query string. The sort is nil when no sort field was given.
func bindListQuery(c *gin.Context) (dto.FreteFilter, *dto.Sort, error) {
	var filter dto.FreteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return dto.FreteFilter{}, nil, err
	}

	var sort dto.Sort
	if err := c.ShouldBindQuery(&sort); err != nil {
		return dto.FreteFilter{}, nil, err
	}
	if sort.Field == "" {
		return filter, nil, nil
	}
	return filter, &sort, nil
}
