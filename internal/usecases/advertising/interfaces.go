package advertising

import (
	"context"

	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

// PlatformAdapter é o contrato comum dos integradores de cada rede
//
//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks
type PlatformAdapter interface {
	Platform() domain.Platform
	CheckConnection(ctx context.Context, creds domain.PlatformCredentials) (*domain.AccountInfo, error)
	GetCampaigns(ctx context.Context, creds domain.PlatformCredentials) ([]domain.UnifiedCampaign, error)
	GetAnalytics(ctx context.Context, creds domain.PlatformCredentials, dateRange domain.DateRange) (*domain.PlatformAnalytics, error)
	CreateCampaign(ctx context.Context, creds domain.PlatformCredentials, draft domain.CampaignDraft) (*domain.UnifiedCampaign, error)
}

// CredentialPreparer é implementado pelos integradores que trocam tokens no connect
type CredentialPreparer interface {
	PrepareCredentials(ctx context.Context, creds domain.PlatformCredentials) (domain.PlatformCredentials, error)
}

// CredentialStore guarda as credenciais de cada tenant
type CredentialStore interface {
	Save(ctx context.Context, companyID string, creds domain.PlatformCredentials) error
	Load(ctx context.Context, companyID string, platform domain.Platform) (*domain.PlatformCredentials, error)
}

// GoogleAdsAccess resolve a autenticação do tenant e da conta gerente na rede principal
type GoogleAdsAccess interface {
	Auth(ctx context.Context, creds domain.PlatformCredentials) (googleadsclient.Auth, *googleadsdomain.Credentials, error)
	ManagerAuth(ctx context.Context) (googleadsclient.Auth, error)
}

// ManagerLinker é a máquina de estados do vínculo com a conta gerente
type ManagerLinker interface {
	ManagerID() string
	IsLinkedToManager(ctx context.Context, auth googleadsclient.Auth, customerID, managerID string) (*domain.LinkCheck, error)
	SendInvitation(ctx context.Context, companyID, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error)
	Reactivate(ctx context.Context, companyID, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error)
	Accept(ctx context.Context, companyID, customerID string, userAuth, managerAuth googleadsclient.Auth) (*domain.LinkResult, error)
}

// CampaignBuilder executa a construção completa de campanha na rede principal
type CampaignBuilder interface {
	Build(ctx context.Context, auth googleadsclient.Auth, spec domain.ComprehensiveCampaignSpec) (*domain.ComprehensiveCampaignResult, error)
}
