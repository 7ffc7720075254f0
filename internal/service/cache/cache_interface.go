package cache

import "github.com/freteops/frete-service/internal/domain/model"

// Cache defines the interface for CEP resolution caching.
type Cache interface {
	Get(cep string) ([]model.TransportadoraFrete, bool)
	Set(cep string, value []model.TransportadoraFrete)
	Invalidate(cep string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
