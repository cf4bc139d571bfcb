package caching

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry é o valor decodificado de um documento e o instante da última gravação
type Entry[T any] struct {
	Value    T
	LastSync time.Time
}

// IsFresh informa se a entrada ainda está dentro do TTL
func (e *Entry[T]) IsFresh(ttl time.Duration, now time.Time) bool {
	return e != nil && now.Sub(e.LastSync) < ttl
}

// Collection é uma visão tipada sobre uma coleção do armazenamento de documentos
type Collection[T any] struct {
	store documentstore.Store
	name  string
}

func NewCollection[T any](store documentstore.Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Get retorna nil, nil quando a chave não existe
func (c *Collection[T]) Get(ctx context.Context, key string) (*Entry[T], error) {
	doc, err := c.store.Get(ctx, c.name, key)
	if err != nil {
		if errors.Is(err, documentstore.ErrNotFound) {
			metrics.CacheLookups.WithLabelValues(c.name, metrics.CacheMiss).Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler %s/%s: %w", c.name, key, err)
	}

	var value T
	if err := json.Unmarshal(doc.Payload, &value); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s/%s: %w", c.name, key, err)
	}

	metrics.CacheLookups.WithLabelValues(c.name, metrics.CacheHit).Inc()
	return &Entry[T]{Value: value, LastSync: doc.LastSync}, nil
}

func (c *Collection[T]) Put(ctx context.Context, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar %s/%s: %w", c.name, key, err)
	}

	if err := c.store.Put(ctx, c.name, key, payload); err != nil {
		return fmt.Errorf("erro ao gravar %s/%s: %w", c.name, key, err)
	}

	return nil
}

// IsValid verifica pela idade do documento se ele ainda está dentro do TTL
func (c *Collection[T]) IsValid(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	age, err := c.store.Age(ctx, c.name, key)
	if err != nil {
		if errors.Is(err, documentstore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	valid := age < ttl
	if !valid {
		metrics.CacheLookups.WithLabelValues(c.name, metrics.CacheStale).Inc()
	}
	return valid, nil
}
