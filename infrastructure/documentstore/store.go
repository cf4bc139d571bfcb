package documentstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/multiplatform-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
)

// Coleções lógicas do núcleo
const (
	CollectionConnections  = "advertising_connections"
	CollectionCampaigns    = "advertising_campaigns"
	CollectionCredentials  = "advertising_credentials"
	CollectionManagerLinks = "google_ads_manager_links"
)

var ErrNotFound = errors.New("documento não encontrado")

// Document é o conteúdo serializado de uma chave e o instante da última gravação
type Document struct {
	Payload  []byte
	LastSync time.Time
}

// Store é o armazenamento chave/valor com marcação de atualização.
// Gravações concorrentes na mesma chave seguem a regra da última escrita.
type Store interface {
	Get(ctx context.Context, collection, key string) (*Document, error)
	Put(ctx context.Context, collection, key string, payload []byte) error
	Age(ctx context.Context, collection, key string) (time.Duration, error)
}

// Clock permite controlar o tempo nos testes
type Clock func() time.Time

// New escolhe o backend de acordo com DOCUMENT_STORE_DRIVER
func New(cfg *config.Config, db postgres.Queryer) (Store, error) {
	switch cfg.DocumentStore.Driver {
	case "", "postgres":
		if db == nil {
			return nil, fmt.Errorf("driver postgres exige conexão com o banco")
		}
		return NewPostgresStore(db, time.Now), nil
	case "redis":
		return NewRedisStore(cfg.Redis, time.Now), nil
	case "memory":
		return NewMemoryStore(time.Now), nil
	default:
		return nil, fmt.Errorf("driver de documentos desconhecido: %s", cfg.DocumentStore.Driver)
	}
}
