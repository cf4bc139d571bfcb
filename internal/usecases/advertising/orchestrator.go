package advertising

import (
	"context"

	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

// Orchestrator é a fachada multi-plataforma consumida pela camada HTTP
//
//go:generate mockgen -source=orchestrator.go -destination=mocks/orchestrator.go -package=mocks
type Orchestrator interface {
	ConnectPlatform(ctx context.Context, companyID string, platform domain.Platform, authData map[string]string) domain.Response[*domain.PlatformConnection]
	GetAllPlatformConnections(ctx context.Context, companyID string) domain.Response[[]domain.PlatformConnection]
	GetAllCampaigns(ctx context.Context, companyID string) domain.Response[[]domain.UnifiedCampaign]
	CreateCampaign(ctx context.Context, companyID string, platform domain.Platform, draft domain.CampaignDraft) domain.Response[*domain.UnifiedCampaign]
	GetUnifiedAnalytics(ctx context.Context, companyID string, dateRange *domain.DateRange) domain.Response[*domain.UnifiedAnalytics]
	GetAnalyticsHistory(ctx context.Context, companyID string, limit uint64) domain.Response[[]*domain.AnalyticsSnapshot]
	CreateComprehensiveCampaign(ctx context.Context, companyID string, spec domain.ComprehensiveCampaignSpec) domain.Response[*domain.ComprehensiveCampaignResult]
	SendManagerInvitation(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult]
	ReactivateManagerLink(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult]
	AcceptManagerInvitation(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult]
	CheckManagerLink(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkCheck]
	GetServiceStatus() domain.Response[*domain.ServiceStatus]
}

var _ Orchestrator = (*Service)(nil)
