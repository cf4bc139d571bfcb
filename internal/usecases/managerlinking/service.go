package managerlinking

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/usecases/caching"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

// Service conduz o vínculo entre a conta do tenant e a conta gerente.
// Toda transição observada é gravada na coleção de vínculos.
type Service struct {
	links     googleads.LinkManager
	store     *caching.Collection[domain.ManagerLink]
	managerID string
	now       func() time.Time
}

func NewService(links googleads.LinkManager, store *caching.Collection[domain.ManagerLink], managerID string) *Service {
	return &Service{
		links:     links,
		store:     store,
		managerID: config.NormalizeCustomerID(managerID),
		now:       time.Now,
	}
}

func (s *Service) ManagerID() string {
	return s.managerID
}

func LinkKey(companyID, customerID string) string {
	return fmt.Sprintf("%s_%s", companyID, customerID)
}

func linkError(err, cause error, code, message string) *apiErrors.CoreError {
	if cause != nil {
		err = fmt.Errorf("%w: %w", err, cause)
	}
	return apiErrors.Wrap(err, code, message).WithPlatform(domain.PlatformGoogleAds.String())
}

// IsLinkedToManager verifica, com o token do usuário, se a conta tem vínculo ACTIVE com o gerente.
// Conta de teste é considerada vinculada. Token de desenvolvedor de teste contra conta de
// produção devolve canVerify=false, que nunca significa "não vinculado".
func (s *Service) IsLinkedToManager(ctx context.Context, auth googleadsclient.Auth, customerID, managerID string) (*domain.LinkCheck, error) {
	customerID = config.NormalizeCustomerID(customerID)
	managerID = config.NormalizeCustomerID(managerID)

	customer, err := s.links.GetCustomer(ctx, auth, customerID)
	if err != nil {
		if isTestTokenError(err) {
			logrus.WithField("customer_id", customerID).Warn("Token de teste não consegue consultar conta de produção")
			return &domain.LinkCheck{Linked: false, CanVerify: false, Reason: domain.LinkReasonTestTokenProduction}, nil
		}
		return nil, err
	}

	if customer.TestAccount {
		return &domain.LinkCheck{Linked: true, CanVerify: true, Reason: domain.LinkReasonTestAccount}, nil
	}

	link, err := s.links.FindManagerLink(ctx, auth, customerID, managerID)
	if err != nil {
		if isTestTokenError(err) {
			return &domain.LinkCheck{Linked: false, CanVerify: false, Reason: domain.LinkReasonTestTokenProduction}, nil
		}
		return nil, err
	}

	if link == nil {
		return &domain.LinkCheck{Linked: false, CanVerify: true, Reason: domain.LinkReasonNoLink, Status: domain.ManagerLinkStatusNone}, nil
	}

	status := domain.ParseManagerLinkStatus(link.Status)
	if status == domain.ManagerLinkStatusActive {
		return &domain.LinkCheck{Linked: true, CanVerify: true, Reason: domain.LinkReasonActive, Status: status}, nil
	}
	return &domain.LinkCheck{Linked: false, CanVerify: true, Reason: domain.LinkReasonNotActive, Status: status}, nil
}

func isTestTokenError(err error) bool {
	if apiErrors.HasCode(err, apiErrors.ErrTestTokenProductionAccount) {
		return true
	}
	apiErr, ok := googleadsdomain.AsAPIError(err)
	return ok && apiErr.IsDeveloperTokenNotApproved()
}

// SendInvitation cria o convite PENDING agindo como gerente. Convite duplicado tenta
// reativar o vínculo e, se não conseguir, devolve sucesso com alreadyInvited.
func (s *Service) SendInvitation(ctx context.Context, companyID, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
	customerID = config.NormalizeCustomerID(customerID)
	if customerID == "" {
		return nil, linkError(ErrCustomerRequired, nil, apiErrors.ErrInvalidCustomerID, "customer_id obrigatório")
	}
	if s.managerID == "" {
		return nil, linkError(ErrManagerNotDefined, nil, apiErrors.ErrConfiguration, "conta gerente não configurada")
	}

	fields := logrus.Fields{
		"company_id":  companyID,
		"customer_id": customerID,
		"manager_id":  s.managerID,
	}

	resourceName, err := s.links.CreateClientLink(ctx, managerAuth, s.managerID, customerID)
	if err == nil {
		linkID := googleadsdomain.LinkIDFromResourceName(resourceName)
		s.persist(ctx, companyID, customerID, linkID, domain.ManagerLinkStatusPending)

		logrus.WithFields(fields).WithField("link_id", linkID).Info("Convite de vínculo enviado")
		return &domain.LinkResult{
			CustomerID: customerID,
			ManagerID:  s.managerID,
			LinkID:     linkID,
			Status:     domain.ManagerLinkStatusPending,
			Message:    "Convite enviado",
		}, nil
	}

	apiErr, ok := googleadsdomain.AsAPIError(err)
	if !ok || !apiErr.IsDuplicateInvitation() {
		logrus.WithFields(fields).WithError(err).Error("Falha ao enviar convite de vínculo")
		return nil, linkError(ErrInvitation, err, apiErrors.ErrInvitationFailed, "falha ao enviar convite")
	}

	logrus.WithFields(fields).Info("Convite duplicado, tentando reativar o vínculo existente")

	result, reactivateErr := s.reactivate(ctx, companyID, customerID, managerAuth)
	if reactivateErr == nil {
		result.AlreadyInvited = true
		return result, nil
	}

	logrus.WithFields(fields).WithError(reactivateErr).Warn("Reativação falhou, convite já existente é mantido")

	// status fica vazio quando o vínculo não pôde ser observado
	degraded := &domain.LinkResult{
		CustomerID:     customerID,
		ManagerID:      s.managerID,
		AlreadyInvited: true,
		Message:        "Convite já enviado anteriormente",
	}
	if result != nil {
		degraded.LinkID = result.LinkID
		degraded.Status = result.Status
	}
	return degraded, nil
}

// Reactivate leva um vínculo CANCELED ou INACTIVE de volta a PENDING. PENDING e ACTIVE não mudam.
// CANCELED tenta a transição direta e depois INACTIVE→PENDING; se ambas falharem o vínculo
// precisa ser removido manualmente.
func (s *Service) Reactivate(ctx context.Context, companyID, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
	result, err := s.reactivate(ctx, companyID, customerID, managerAuth)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reactivate devolve, junto do erro de transição, o último status observado do vínculo
func (s *Service) reactivate(ctx context.Context, companyID, customerID string, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
	customerID = config.NormalizeCustomerID(customerID)
	fields := logrus.Fields{
		"company_id":  companyID,
		"customer_id": customerID,
		"manager_id":  s.managerID,
	}

	link, err := s.links.FindClientLink(ctx, managerAuth, s.managerID, customerID)
	if err != nil {
		return nil, linkError(ErrLinkLookup, err, apiErrors.ErrReactivateFailed, "falha ao consultar vínculo")
	}
	if link == nil {
		return nil, linkError(ErrLinkNotFound, nil, apiErrors.ErrLinkNotFound, "nenhum vínculo encontrado para reativar")
	}

	result := &domain.LinkResult{
		CustomerID: customerID,
		ManagerID:  s.managerID,
		LinkID:     link.ManagerLinkID,
	}

	status := domain.ParseManagerLinkStatus(link.Status)
	switch status {
	case domain.ManagerLinkStatusPending, domain.ManagerLinkStatusActive:
		s.persist(ctx, companyID, customerID, link.ManagerLinkID, status)
		result.Status = status
		result.Message = "Vínculo já está " + string(status)
		return result, nil

	case domain.ManagerLinkStatusCanceled:
		err = s.links.UpdateClientLinkStatus(ctx, managerAuth, s.managerID, link.ResourceName, string(domain.ManagerLinkStatusPending))
		if err != nil {
			logrus.WithFields(fields).WithError(err).Warn("Transição direta CANCELED→PENDING falhou, tentando via INACTIVE")
			err = s.links.UpdateClientLinkStatus(ctx, managerAuth, s.managerID, link.ResourceName, string(domain.ManagerLinkStatusInactive))
			if err == nil {
				s.persist(ctx, companyID, customerID, link.ManagerLinkID, domain.ManagerLinkStatusInactive)
				status = domain.ManagerLinkStatusInactive
				err = s.links.UpdateClientLinkStatus(ctx, managerAuth, s.managerID, link.ResourceName, string(domain.ManagerLinkStatusPending))
			}
		}

	default:
		err = s.links.UpdateClientLinkStatus(ctx, managerAuth, s.managerID, link.ResourceName, string(domain.ManagerLinkStatusPending))
	}

	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Vínculo não pode ser reativado")
		result.Status = status
		return result, linkError(ErrReactivate, err, apiErrors.ErrReactivateFailed,
			"vínculo não pode ser reativado automaticamente; remova o vínculo manualmente e envie um novo convite")
	}

	s.persist(ctx, companyID, customerID, link.ManagerLinkID, domain.ManagerLinkStatusPending)
	logrus.WithFields(fields).Info("Vínculo reativado")

	result.Status = domain.ManagerLinkStatusPending
	result.Message = "Vínculo reativado"
	return result, nil
}

// Accept aceita o convite com o token do usuário. Vínculo CANCELED ou INACTIVE passa
// pela reativação com o token do gerente antes do aceite.
func (s *Service) Accept(ctx context.Context, companyID, customerID string, userAuth, managerAuth googleadsclient.Auth) (*domain.LinkResult, error) {
	customerID = config.NormalizeCustomerID(customerID)
	fields := logrus.Fields{
		"company_id":  companyID,
		"customer_id": customerID,
		"manager_id":  s.managerID,
	}

	link, err := s.links.FindManagerLink(ctx, userAuth, customerID, s.managerID)
	if err != nil {
		return nil, linkError(ErrLinkLookup, err, apiErrors.ErrAcceptFailed, "falha ao consultar vínculo")
	}
	if link == nil {
		return nil, linkError(ErrLinkNotFound, nil, apiErrors.ErrLinkNotFound, "nenhum convite encontrado para aceitar")
	}

	result := &domain.LinkResult{
		CustomerID: customerID,
		ManagerID:  s.managerID,
		LinkID:     link.ManagerLinkID,
	}

	switch domain.ParseManagerLinkStatus(link.Status) {
	case domain.ManagerLinkStatusActive:
		s.persist(ctx, companyID, customerID, link.ManagerLinkID, domain.ManagerLinkStatusActive)
		result.Status = domain.ManagerLinkStatusActive
		result.Message = "Vínculo já está ativo"
		return result, nil

	case domain.ManagerLinkStatusPending:
		// segue para o aceite

	case domain.ManagerLinkStatusCanceled, domain.ManagerLinkStatusInactive:
		logrus.WithFields(fields).WithField("status", link.Status).Info("Recuperando vínculo antes do aceite")
		if _, err := s.Reactivate(ctx, companyID, customerID, managerAuth); err != nil {
			return nil, linkError(ErrCanceledForever, err, apiErrors.ErrLinkCanceledPermanently,
				"vínculo cancelado não pode ser recuperado; remova o vínculo manualmente")
		}

	default:
		return nil, linkError(ErrCanceledForever, nil, apiErrors.ErrLinkCanceledPermanently,
			fmt.Sprintf("vínculo em estado %s não pode ser aceito", link.Status))
	}

	err = s.links.UpdateManagerLinkStatus(ctx, userAuth, customerID, link.ResourceName, string(domain.ManagerLinkStatusActive))
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Falha ao aceitar convite")
		return nil, linkError(ErrAccept, err, apiErrors.ErrAcceptFailed, "falha ao aceitar convite")
	}

	s.persist(ctx, companyID, customerID, link.ManagerLinkID, domain.ManagerLinkStatusActive)
	logrus.WithFields(fields).Info("Convite aceito")

	result.Status = domain.ManagerLinkStatusActive
	result.Message = "Convite aceito"
	return result, nil
}

// Stored devolve o último estado gravado do vínculo, ou nil
func (s *Service) Stored(ctx context.Context, companyID, customerID string) (*domain.ManagerLink, error) {
	entry, err := s.store.Get(ctx, LinkKey(companyID, config.NormalizeCustomerID(customerID)))
	if err != nil || entry == nil {
		return nil, err
	}
	return &entry.Value, nil
}

// persist não interrompe a operação: o estado na rede já mudou
func (s *Service) persist(ctx context.Context, companyID, customerID, linkID string, status domain.ManagerLinkStatus) {
	link := domain.ManagerLink{
		CompanyID:  companyID,
		CustomerID: customerID,
		ManagerID:  s.managerID,
		LinkID:     linkID,
		Status:     status,
		UpdatedAt:  s.now().UTC(),
	}

	if err := s.store.Put(ctx, LinkKey(companyID, customerID), link); err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id":  companyID,
			"customer_id": customerID,
			"status":      status,
			"error":       err.Error(),
		}).Error("Erro ao gravar estado do vínculo")
	}
}
