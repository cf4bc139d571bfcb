package googleads

import (
	"context"
	"fmt"
	"time"

	googleadsdomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/utils"
)

const (
	BiddingManualCPC           = "MANUAL_CPC"
	BiddingMaximizeConversions = "MAXIMIZE_CONVERSIONS"
	BiddingTargetCPA           = "TARGET_CPA"
)

type CampaignInput struct {
	Name            string
	ChannelType     string
	BudgetResource  string
	BiddingStrategy string
	// TargetCPA em centavos, usado apenas com TARGET_CPA
	TargetCPA int64
	StartDate *time.Time
	EndDate   *time.Time
}

// ResourceBuilder cria os recursos da hierarquia de campanha da rede principal
//
//go:generate mockgen -source=resources.go -destination=mocks/resources.go -package=mocks
type ResourceBuilder interface {
	CreateCampaignBudget(ctx context.Context, auth googleadsclient.Auth, customerID, name string, amount int64) (string, error)
	CreateCampaignResource(ctx context.Context, auth googleadsclient.Auth, customerID string, input CampaignInput) (string, error)
	CreateAdGroup(ctx context.Context, auth googleadsclient.Auth, customerID, campaignResource string, spec domain.AdGroupSpec) (string, error)
	CreateKeywords(ctx context.Context, auth googleadsclient.Auth, customerID, adGroupResource string, keywords []domain.KeywordSpec) ([]string, error)
	CreateResponsiveSearchAd(ctx context.Context, auth googleadsclient.Auth, customerID, adGroupResource string, creative domain.Creative) (string, error)
}

// CreateCampaignBudget cria um orçamento diário não compartilhado; amount em centavos
func (s *GoogleAdsIntegrator) CreateCampaignBudget(ctx context.Context, auth googleadsclient.Auth, customerID, name string, amount int64) (string, error) {
	op := googleadsdomain.MutateOperation{Create: googleadsdomain.CampaignBudgetResource{
		Name:           fmt.Sprintf("%s Budget #%d", name, time.Now().UnixMilli()),
		AmountMicros:   utils.CentsToMicros(amount),
		DeliveryMethod: "STANDARD",
	}}

	results, err := s.Client.Mutate(ctx, auth, customerID, "campaignBudgets", []googleadsdomain.MutateOperation{op})
	if err != nil {
		return "", err
	}
	return results[0].ResourceName, nil
}

// CreateCampaignResource cria a campanha sempre PAUSED
func (s *GoogleAdsIntegrator) CreateCampaignResource(ctx context.Context, auth googleadsclient.Auth, customerID string, input CampaignInput) (string, error) {
	campaign := googleadsdomain.CampaignResource{
		Name:                   input.Name,
		AdvertisingChannelType: input.ChannelType,
		Status:                 "PAUSED",
		CampaignBudget:         input.BudgetResource,
		StartDate:              formatDate(input.StartDate),
		EndDate:                formatDate(input.EndDate),
	}

	switch input.BiddingStrategy {
	case BiddingMaximizeConversions:
		campaign.MaximizeConversions = &googleadsdomain.Empty{}
	case BiddingTargetCPA:
		campaign.TargetCpa = &googleadsdomain.TargetCpa{TargetCpaMicros: utils.CentsToMicros(input.TargetCPA)}
	default:
		campaign.ManualCpc = &googleadsdomain.Empty{}
	}

	if input.ChannelType == "SEARCH" {
		campaign.NetworkSettings = &googleadsdomain.NetworkSettings{
			TargetGoogleSearch:  true,
			TargetSearchNetwork: true,
		}
	}

	results, err := s.Client.Mutate(ctx, auth, customerID, "campaigns", []googleadsdomain.MutateOperation{{Create: campaign}})
	if err != nil {
		return "", err
	}
	return results[0].ResourceName, nil
}

func (s *GoogleAdsIntegrator) CreateAdGroup(ctx context.Context, auth googleadsclient.Auth, customerID, campaignResource string, spec domain.AdGroupSpec) (string, error) {
	adGroup := googleadsdomain.AdGroupResource{
		Name:         spec.Name,
		Campaign:     campaignResource,
		Status:       "ENABLED",
		Type:         "SEARCH_STANDARD",
		CpcBidMicros: utils.CentsToMicros(spec.CPCBid),
	}

	results, err := s.Client.Mutate(ctx, auth, customerID, "adGroups", []googleadsdomain.MutateOperation{{Create: adGroup}})
	if err != nil {
		return "", err
	}
	return results[0].ResourceName, nil
}

// CreateKeywords envia todas as palavras-chave do grupo em um único lote
func (s *GoogleAdsIntegrator) CreateKeywords(ctx context.Context, auth googleadsclient.Auth, customerID, adGroupResource string, keywords []domain.KeywordSpec) ([]string, error) {
	ops := make([]googleadsdomain.MutateOperation, 0, len(keywords))
	for _, keyword := range keywords {
		matchType := keyword.MatchType
		if matchType == "" {
			matchType = domain.KeywordMatchBroad
		}

		ops = append(ops, googleadsdomain.MutateOperation{Create: googleadsdomain.AdGroupCriterionResource{
			AdGroup: adGroupResource,
			Status:  "ENABLED",
			Keyword: &googleadsdomain.KeywordInfo{Text: keyword.Text, MatchType: string(matchType)},
		}})
	}

	results, err := s.Client.Mutate(ctx, auth, customerID, "adGroupCriteria", ops)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, result := range results {
		names = append(names, result.ResourceName)
	}
	return names, nil
}

// CreateResponsiveSearchAd espera um criativo já validado e truncado
func (s *GoogleAdsIntegrator) CreateResponsiveSearchAd(ctx context.Context, auth googleadsclient.Auth, customerID, adGroupResource string, creative domain.Creative) (string, error) {
	rsa := &googleadsdomain.ResponsiveSearchAdInfo{
		Headlines:    make([]googleadsdomain.AdTextAsset, 0, len(creative.Headlines)),
		Descriptions: make([]googleadsdomain.AdTextAsset, 0, len(creative.Descriptions)),
	}
	for _, headline := range creative.Headlines {
		rsa.Headlines = append(rsa.Headlines, googleadsdomain.AdTextAsset{Text: headline})
	}
	for _, description := range creative.Descriptions {
		rsa.Descriptions = append(rsa.Descriptions, googleadsdomain.AdTextAsset{Text: description})
	}

	adGroupAd := googleadsdomain.AdGroupAdResource{
		AdGroup: adGroupResource,
		Status:  "ENABLED",
		Ad: googleadsdomain.Ad{
			FinalUrls:          creative.FinalURLs,
			ResponsiveSearchAd: rsa,
		},
	}

	results, err := s.Client.Mutate(ctx, auth, customerID, "adGroupAds", []googleadsdomain.MutateOperation{{Create: adGroupAd}})
	if err != nil {
		return "", err
	}
	return results[0].ResourceName, nil
}
