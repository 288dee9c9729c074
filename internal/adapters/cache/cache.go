package cache

import (
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

// New returns the cache selected by settings.
func New(settings domain.LessSettings, opts ...Option) (ports.Cache, error) {
	switch settings.CacheDriver {
	case domain.CacheDriverFile:
		return NewFile(settings.CachePath, opts...)
	case domain.CacheDriverMemory, "":
		return NewMemory(opts...), nil
	default:
		return nil, zerr.With(domain.Annotate(domain.ErrInvalidConfig, "field", "less.cache_driver"), "value", settings.CacheDriver)
	}
}
