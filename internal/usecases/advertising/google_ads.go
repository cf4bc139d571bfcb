package advertising

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/campaignbuilding"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

// tenantAuth carrega as credenciais do tenant na rede principal e resolve o token
func (s *Service) tenantAuth(ctx context.Context, companyID string) (googleadsclient.Auth, string, error) {
	creds, err := s.credentials(ctx, companyID, domain.PlatformGoogleAds)
	if err != nil {
		return googleadsclient.Auth{}, "", err
	}
	if creds == nil {
		return googleadsclient.Auth{}, "", apiErrors.Wrap(ErrNoCredentials, apiErrors.ErrMissingCredentials, "Google Ads não conectado").
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	auth, decoded, err := s.google.Auth(ctx, *creds)
	if err != nil {
		return googleadsclient.Auth{}, "", err
	}

	return auth, decoded.CustomerID, nil
}

func googleAdsFail[T any](err error, fallback string) domain.Response[T] {
	resp := fail[T](err, fallback)
	if resp.Error.Platform == "" {
		resp.Error.Platform = domain.PlatformGoogleAds
	}
	return resp
}

func (s *Service) googleAdsReady() bool {
	return s.google != nil && s.links != nil
}

// CreateComprehensiveCampaign monta a campanha completa na conta indicada pelo tenant
func (s *Service) CreateComprehensiveCampaign(ctx context.Context, companyID string, spec domain.ComprehensiveCampaignSpec) domain.Response[*domain.ComprehensiveCampaignResult] {
	if _, err := campaignbuilding.ValidateCustomerID(spec.CustomerID); err != nil {
		return domain.Fail[*domain.ComprehensiveCampaignResult](apiErrors.ErrComprehensiveCampaignCreation,
			"customer_id inválido: selecione a conta do Google Ads antes de criar a campanha", domain.PlatformGoogleAds)
	}
	if companyID == "" {
		return fail[*domain.ComprehensiveCampaignResult](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}
	if s.google == nil || s.builder == nil {
		return googleAdsFail[*domain.ComprehensiveCampaignResult](ErrGoogleAdsNotAvailable, apiErrors.ErrConfiguration)
	}

	auth, _, err := s.tenantAuth(ctx, companyID)
	if err != nil {
		return googleAdsFail[*domain.ComprehensiveCampaignResult](err, apiErrors.ErrComprehensiveCampaignCreation)
	}

	result, err := s.builder.Build(ctx, auth, spec)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id":    companyID,
			"customer_id":   spec.CustomerID,
			"campaign_name": spec.Name,
			"error":         err.Error(),
		}).Error("Falha na criação da campanha completa")
		return domain.Fail[*domain.ComprehensiveCampaignResult](apiErrors.ErrComprehensiveCampaignCreation, err.Error(), domain.PlatformGoogleAds)
	}

	return domain.Ok(result)
}

// SendManagerInvitation envia o convite da conta gerente para a conta do tenant
func (s *Service) SendManagerInvitation(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult] {
	return s.managerOperation(ctx, companyID, customerID, apiErrors.ErrInvitationFailed,
		func(ctx context.Context, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
			return s.links.SendInvitation(ctx, companyID, customerID, managerAuth)
		})
}

// ReactivateManagerLink reabre um vínculo cancelado ou inativo
func (s *Service) ReactivateManagerLink(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult] {
	return s.managerOperation(ctx, companyID, customerID, apiErrors.ErrReactivateFailed,
		func(ctx context.Context, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
			return s.links.Reactivate(ctx, companyID, customerID, managerAuth)
		})
}

// AcceptManagerInvitation aceita o convite pendente usando o token do próprio tenant
func (s *Service) AcceptManagerInvitation(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkResult] {
	return s.managerOperation(ctx, companyID, customerID, apiErrors.ErrAcceptFailed,
		func(ctx context.Context, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
			userAuth, _, err := s.tenantAuth(ctx, companyID)
			if err != nil {
				return nil, err
			}
			userAuth.LoginCustomerID = customerID
			return s.links.Accept(ctx, companyID, customerID, userAuth, managerAuth)
		})
}

func (s *Service) managerOperation(
	ctx context.Context,
	companyID, customerID, fallback string,
	operation func(ctx context.Context, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error),
) domain.Response[*domain.LinkResult] {
	if companyID == "" {
		return fail[*domain.LinkResult](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}
	if !s.googleAdsReady() {
		return googleAdsFail[*domain.LinkResult](ErrGoogleAdsNotAvailable, apiErrors.ErrConfiguration)
	}

	customerID, err := campaignbuilding.ValidateCustomerID(customerID)
	if err != nil {
		return domain.Fail[*domain.LinkResult](apiErrors.ErrInvalidCustomerID, "customer_id inválido", domain.PlatformGoogleAds)
	}

	managerAuth, err := s.google.ManagerAuth(ctx)
	if err != nil {
		return googleAdsFail[*domain.LinkResult](err, fallback)
	}

	result, err := operation(ctx, customerID, managerAuth)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id":  companyID,
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("Operação de vínculo com a conta gerente falhou")
		return googleAdsFail[*domain.LinkResult](err, fallback)
	}

	return domain.Ok(result)
}

// CheckManagerLink verifica o vínculo da conta do tenant; sem customerID usa a conta conectada
func (s *Service) CheckManagerLink(ctx context.Context, companyID, customerID string) domain.Response[*domain.LinkCheck] {
	if companyID == "" {
		return fail[*domain.LinkCheck](ErrCompanyRequired, apiErrors.ErrMissingRequiredData)
	}
	if !s.googleAdsReady() {
		return googleAdsFail[*domain.LinkCheck](ErrGoogleAdsNotAvailable, apiErrors.ErrConfiguration)
	}

	auth, connectedCustomer, err := s.tenantAuth(ctx, companyID)
	if err != nil {
		return googleAdsFail[*domain.LinkCheck](err, apiErrors.ErrConnection)
	}

	customerID = config.NormalizeCustomerID(customerID)
	if customerID == "" {
		customerID = connectedCustomer
	}
	auth.LoginCustomerID = customerID

	check, err := s.links.IsLinkedToManager(ctx, auth, customerID, s.links.ManagerID())
	if err != nil {
		return googleAdsFail[*domain.LinkCheck](err, apiErrors.ErrConnection)
	}

	return domain.Ok(check)
}
