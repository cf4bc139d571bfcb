package advertising

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

// GetAllCampaigns junta as campanhas de todas as redes conectadas, ordenadas por ROAS decrescente.
// Cada rede usa o cache dentro do TTL e cai para o cache vencido se a busca ao vivo falhar.
func (s *Service) GetAllCampaigns(ctx context.Context, companyID string) domain.Response[[]domain.UnifiedCampaign] {
	if companyID == "" {
		return fail[[]domain.UnifiedCampaign](ErrCompanyRequired, apiErrors.ErrFetchCampaigns)
	}

	results := fanOut(ctx, s, func(ctx context.Context, platform domain.Platform, adapter PlatformAdapter) []domain.UnifiedCampaign {
		return s.platformCampaigns(ctx, companyID, platform, adapter)
	})

	campaigns := make([]domain.UnifiedCampaign, 0)
	for _, platformCampaigns := range results {
		campaigns = append(campaigns, platformCampaigns...)
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].Metrics.ROAS > campaigns[j].Metrics.ROAS
	})

	return domain.Ok(campaigns)
}

func (s *Service) platformCampaigns(ctx context.Context, companyID string, platform domain.Platform, adapter PlatformAdapter) []domain.UnifiedCampaign {
	key := domain.DocumentKey(companyID, platform)
	fields := logrus.Fields{
		"company_id": companyID,
		"platform":   platform,
	}

	creds, err := s.credentials(ctx, companyID, platform)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao carregar credenciais")
		return nil
	}
	if creds == nil {
		return nil
	}

	cached, err := s.caches.Campaigns.Get(ctx, key)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao ler campanhas em cache")
	}
	if cached.IsFresh(s.cfg.Cache.CampaignTTL, s.now()) {
		return cached.Value
	}

	campaigns, err := adapter.GetCampaigns(ctx, *creds)
	if err != nil {
		if cached != nil {
			logrus.WithFields(fields).WithFields(logrus.Fields{
				"last_sync": cached.LastSync,
				"error":     err.Error(),
			}).Warn("Busca de campanhas falhou, usando cache vencido")
			return cached.Value
		}

		logrus.WithFields(fields).WithError(err).Error("Busca de campanhas falhou e não há cache")
		return nil
	}

	if err := s.caches.Campaigns.Put(ctx, key, campaigns); err != nil {
		logrus.WithFields(fields).WithError(err).Warn("Erro ao gravar campanhas em cache")
	}

	return campaigns
}

// CreateCampaign encaminha o rascunho para o integrador da plataforma
func (s *Service) CreateCampaign(ctx context.Context, companyID string, platform domain.Platform, draft domain.CampaignDraft) domain.Response[*domain.UnifiedCampaign] {
	if companyID == "" {
		return fail[*domain.UnifiedCampaign](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}

	adapter, ok := s.adapter(platform)
	if !ok {
		return domain.Fail[*domain.UnifiedCampaign](apiErrors.ErrUnsupportedPlatform,
			"plataforma não suportada: "+platform.String(), platform)
	}

	creds, err := s.credentials(ctx, companyID, platform)
	if err != nil {
		return domain.Fail[*domain.UnifiedCampaign](apiErrors.ErrCampaignCreation, err.Error(), platform)
	}
	if creds == nil {
		return domain.Fail[*domain.UnifiedCampaign](apiErrors.ErrMissingCredentials, ErrNoCredentials.Error(), platform)
	}

	campaign, err := adapter.CreateCampaign(ctx, *creds, draft)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id":    companyID,
			"platform":      platform,
			"campaign_name": draft.Name,
			"error":         err.Error(),
		}).Error("Falha ao criar campanha")
		return domain.Fail[*domain.UnifiedCampaign](apiErrors.CodeOf(err, apiErrors.ErrCampaignCreation), err.Error(), platform)
	}

	logrus.WithFields(logrus.Fields{
		"company_id":  companyID,
		"platform":    platform,
		"campaign_id": campaign.ID,
	}).Info("Campanha criada")

	return domain.Ok(campaign)
}
