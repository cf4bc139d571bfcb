package campaignbuilding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads"
	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/metrics"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

// Passos registrados no relatório
const (
	StepLinkCheck = "link_check"
	StepBudget    = "budget"
	StepCampaign  = "campaign"
	StepAdGroup   = "ad_group"
	StepKeywords  = "keywords"
	StepAd        = "ad"
	StepTargeting = "targeting"
)

var (
	ErrPlaceholderCustomer = errors.New("customer ID is a placeholder")
	ErrBudgetCreation      = errors.New("Budget creation failed")
	ErrCampaignCreation    = errors.New("Campaign creation failed")
)

// Valores que o front envia antes de o usuário escolher a conta
var placeholderCustomerIDs = map[string]struct{}{
	"":                  {},
	"auto-detect":       {},
	"pending_selection": {},
	"pending":           {},
	"select_account":    {},
	"undefined":         {},
	"null":              {},
}

type LinkChecker interface {
	IsLinkedToManager(ctx context.Context, auth googleadsclient.Auth, customerID, managerID string) (*domain.LinkCheck, error)
}

// Pipeline monta a hierarquia orçamento → campanha → grupos → palavras-chave/anúncios.
// Orçamento e campanha são fatais; os demais passos são pulados e registrados.
type Pipeline struct {
	resources     googleads.ResourceBuilder
	links         LinkChecker
	managerID     string
	maxConcurrent int
}

func NewPipeline(resources googleads.ResourceBuilder, links LinkChecker, managerID string, cfg config.CampaignBuild) *Pipeline {
	maxConcurrent := cfg.MaxConcurrentAdGroups
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Pipeline{
		resources:     resources,
		links:         links,
		managerID:     config.NormalizeCustomerID(managerID),
		maxConcurrent: maxConcurrent,
	}
}

// ValidateCustomerID rejeita ids de espera e ids não numéricos
func ValidateCustomerID(customerID string) (string, error) {
	trimmed := strings.TrimSpace(customerID)
	if _, placeholder := placeholderCustomerIDs[strings.ToLower(trimmed)]; placeholder {
		return "", ErrPlaceholderCustomer
	}

	normalized := config.NormalizeCustomerID(trimmed)
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return "", ErrPlaceholderCustomer
		}
	}
	return normalized, nil
}

type report struct {
	steps    []domain.StepOutcome
	warnings []string
}

func (r *report) record(step, target string, status domain.StepStatus, resourceName string, err error) {
	outcome := domain.StepOutcome{
		Step:         step,
		Target:       target,
		Status:       status,
		ResourceName: resourceName,
	}
	if err != nil {
		outcome.Error = err.Error()
	}
	r.steps = append(r.steps, outcome)

	label := metrics.OutcomeSuccess
	switch status {
	case domain.StepStatusFailed:
		label = metrics.OutcomeError
	case domain.StepStatusSkipped:
		label = metrics.OutcomeSkipped
	}
	metrics.PipelineSteps.WithLabelValues(step, label).Inc()
}

func (r *report) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

type adGroupReport struct {
	report
	adGroupID string
	adIDs     []string
	keywords  int
}

// Build executa a construção completa. O resultado reflete apenas o que foi criado.
func (p *Pipeline) Build(ctx context.Context, auth googleadsclient.Auth, spec domain.ComprehensiveCampaignSpec) (*domain.ComprehensiveCampaignResult, error) {
	customerID, err := ValidateCustomerID(spec.CustomerID)
	if err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrCampaignCreation,
			fmt.Sprintf("customer_id inválido: %q; selecione a conta do Google Ads antes de criar a campanha", spec.CustomerID)).
			WithPlatform(domain.PlatformGoogleAds.String())
	}

	fields := logrus.Fields{
		"customer_id":   customerID,
		"campaign_name": spec.Name,
	}

	var rep report
	p.checkLink(ctx, auth, customerID, &rep)

	// A partir daqui os recursos são criados na rede e o cancelamento do chamador é ignorado
	ctx = context.WithoutCancel(ctx)

	budgetResource, err := p.resources.CreateCampaignBudget(ctx, auth, customerID, spec.Name, spec.DailyBudget)
	if err != nil {
		rep.record(StepBudget, spec.Name, domain.StepStatusFailed, "", err)
		logrus.WithFields(fields).WithError(err).Error("Falha ao criar orçamento")
		return nil, apiErrors.Wrap(fmt.Errorf("%w: %w", ErrBudgetCreation, err), apiErrors.ErrComprehensiveCampaignCreation, "Budget creation failed").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	rep.record(StepBudget, spec.Name, domain.StepStatusSucceeded, budgetResource, nil)

	campaignResource, err := p.resources.CreateCampaignResource(ctx, auth, customerID, googleads.CampaignInput{
		Name:            spec.Name,
		ChannelType:     spec.ChannelType,
		BudgetResource:  budgetResource,
		BiddingStrategy: spec.BiddingStrategy,
		TargetCPA:       spec.TargetCPA,
		StartDate:       spec.StartDate,
		EndDate:         spec.EndDate,
	})
	if err != nil {
		rep.record(StepCampaign, spec.Name, domain.StepStatusFailed, "", err)
		logrus.WithFields(fields).WithField("budget_resource", budgetResource).WithError(err).Error("Falha ao criar campanha")
		return nil, apiErrors.Wrap(fmt.Errorf("%w: %w", ErrCampaignCreation, err), apiErrors.ErrComprehensiveCampaignCreation, "Campaign creation failed").
			WithPlatform(domain.PlatformGoogleAds.String())
	}
	rep.record(StepCampaign, spec.Name, domain.StepStatusSucceeded, campaignResource, nil)

	reports := make([]adGroupReport, len(spec.AdGroups))
	var g errgroup.Group
	g.SetLimit(p.maxConcurrent)
	for i, adGroup := range spec.AdGroups {
		i, adGroup := i, adGroup
		g.Go(func() error {
			reports[i] = p.buildAdGroup(ctx, auth, customerID, campaignResource, adGroup)
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.ComprehensiveCampaignResult{
		CampaignID:           googleadsdomain.ResourceID(campaignResource),
		CampaignResourceName: campaignResource,
		BudgetResourceName:   budgetResource,
		AdGroupIDs:           make([]string, 0, len(spec.AdGroups)),
		AdIDs:                make([]string, 0),
	}

	for _, adGroupRep := range reports {
		rep.steps = append(rep.steps, adGroupRep.steps...)
		rep.warnings = append(rep.warnings, adGroupRep.warnings...)
		if adGroupRep.adGroupID != "" {
			result.AdGroupIDs = append(result.AdGroupIDs, adGroupRep.adGroupID)
		}
		result.AdIDs = append(result.AdIDs, adGroupRep.adIDs...)
		result.KeywordsCreated += adGroupRep.keywords
	}

	if !spec.Targeting.IsEmpty() {
		rep.record(StepTargeting, spec.Name, domain.StepStatusSkipped, "", nil)
		rep.warn("Segmentação recebida mas não aplicada; configure-a diretamente na plataforma")
	}
	result.TargetingApplied = false

	result.Steps = rep.steps
	result.Warnings = rep.warnings

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"campaign_id":      result.CampaignID,
		"ad_groups":        len(result.AdGroupIDs),
		"ads":              len(result.AdIDs),
		"keywords_created": result.KeywordsCreated,
		"warnings":         len(result.Warnings),
	}).Info("Campanha completa criada")

	return result, nil
}

// checkLink nunca bloqueia: sem verificação ou sem vínculo a construção segue com aviso
func (p *Pipeline) checkLink(ctx context.Context, auth googleadsclient.Auth, customerID string, rep *report) {
	if p.links == nil || p.managerID == "" {
		rep.record(StepLinkCheck, customerID, domain.StepStatusSkipped, "", nil)
		rep.warn("Conta gerente não configurada; vínculo não verificado")
		return
	}

	check, err := p.links.IsLinkedToManager(ctx, auth, customerID, p.managerID)
	switch {
	case err != nil:
		rep.record(StepLinkCheck, customerID, domain.StepStatusFailed, "", err)
		rep.warn("Não foi possível verificar o vínculo com a conta gerente: %s", err.Error())
	case !check.CanVerify:
		rep.record(StepLinkCheck, customerID, domain.StepStatusSkipped, "", nil)
		rep.warn("Vínculo com a conta gerente não pode ser verificado (%s)", check.Reason)
	case !check.Linked:
		rep.record(StepLinkCheck, customerID, domain.StepStatusFailed, "", nil)
		rep.warn("Conta não vinculada à conta gerente (%s); a criação pode falhar", check.Reason)
	default:
		rep.record(StepLinkCheck, customerID, domain.StepStatusSucceeded, "", nil)
	}

	if err != nil || !check.CanVerify || !check.Linked {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"manager_id":  p.managerID,
		}).Warn("Seguindo com a criação sem vínculo confirmado")
	}
}

// buildAdGroup é sequencial dentro do grupo; falhas pulam apenas o recurso afetado
func (p *Pipeline) buildAdGroup(ctx context.Context, auth googleadsclient.Auth, customerID, campaignResource string, spec domain.AdGroupSpec) adGroupReport {
	var rep adGroupReport

	adGroupResource, err := p.resources.CreateAdGroup(ctx, auth, customerID, campaignResource, spec)
	if err != nil {
		rep.record(StepAdGroup, spec.Name, domain.StepStatusFailed, "", err)
		rep.warn("Grupo de anúncios %q não foi criado: %s", spec.Name, err.Error())
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"ad_group":    spec.Name,
			"error":       err.Error(),
		}).Warn("Falha ao criar grupo de anúncios, pulando")
		return rep
	}
	rep.adGroupID = googleadsdomain.ResourceID(adGroupResource)
	rep.record(StepAdGroup, spec.Name, domain.StepStatusSucceeded, adGroupResource, nil)

	if len(spec.Keywords) > 0 {
		created, err := p.resources.CreateKeywords(ctx, auth, customerID, adGroupResource, spec.Keywords)
		if err != nil {
			rep.record(StepKeywords, spec.Name, domain.StepStatusFailed, "", err)
			rep.warn("Palavras-chave do grupo %q não foram criadas: %s", spec.Name, err.Error())
		} else {
			rep.keywords = len(created)
			rep.record(StepKeywords, spec.Name, domain.StepStatusSucceeded, "", nil)
		}
	}

	for i, creative := range spec.Ads {
		target := fmt.Sprintf("%s#%d", spec.Name, i+1)

		valid, err := ValidateCreative(creative)
		if err != nil {
			rep.record(StepAd, target, domain.StepStatusSkipped, "", err)
			rep.warn("Anúncio %d do grupo %q ignorado: %s", i+1, spec.Name, err.Error())
			continue
		}

		adResource, err := p.resources.CreateResponsiveSearchAd(ctx, auth, customerID, adGroupResource, valid)
		if err != nil {
			rep.record(StepAd, target, domain.StepStatusFailed, "", err)
			rep.warn("Anúncio %d do grupo %q não foi criado: %s", i+1, spec.Name, err.Error())
			continue
		}

		rep.adIDs = append(rep.adIDs, googleadsdomain.ResourceID(adResource))
		rep.record(StepAd, target, domain.StepStatusSucceeded, adResource, nil)
	}

	return rep
}
