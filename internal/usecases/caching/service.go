package caching

import (
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/documentstore"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

// Caches agrupa as coleções tipadas usadas pelo orquestrador
type Caches struct {
	Connections  *Collection[domain.PlatformConnection]
	Campaigns    *Collection[[]domain.UnifiedCampaign]
	ManagerLinks *Collection[domain.ManagerLink]
}

func New(store documentstore.Store) *Caches {
	return &Caches{
		Connections:  NewCollection[domain.PlatformConnection](store, documentstore.CollectionConnections),
		Campaigns:    NewCollection[[]domain.UnifiedCampaign](store, documentstore.CollectionCampaigns),
		ManagerLinks: NewCollection[domain.ManagerLink](store, documentstore.CollectionManagerLinks),
	}
}
