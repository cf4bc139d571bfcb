package tabooladomain

// Credentials do tenant no Backstage. O par client_id/client_secret gera o token.
type Credentials struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AccountID    string `mapstructure:"account_id"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AccountID    string `json:"account_id"`
	Currency     string `json:"currency"`
	TimeZoneName string `json:"time_zone_name"`
}

// Spending limit models do Backstage
const (
	SpendingLimitEntire  = "ENTIRE"
	SpendingLimitMonthly = "MONTHLY"
	SpendingLimitNone    = "NONE"
)

// Campaign tem valores monetários na unidade maior da moeda
type Campaign struct {
	ID                 string  `json:"id,omitempty"`
	AdvertiserID       string  `json:"advertiser_id,omitempty"`
	Name               string  `json:"name"`
	BrandingText       string  `json:"branding_text,omitempty"`
	Status             string  `json:"status,omitempty"`
	IsActive           bool    `json:"is_active"`
	CPC                float64 `json:"cpc,omitempty"`
	DailyCap           float64 `json:"daily_cap,omitempty"`
	SpendingLimit      float64 `json:"spending_limit,omitempty"`
	SpendingLimitModel string  `json:"spending_limit_model,omitempty"`
	Spent              float64 `json:"spent,omitempty"`
	StartDate          string  `json:"start_date,omitempty"`
	EndDate            string  `json:"end_date,omitempty"`
	MarketingObjective string  `json:"marketing_objective,omitempty"`
}

type CampaignsResponse struct {
	Results []Campaign `json:"results"`
}

// ReportRow é uma linha do campaign-summary com dimensão dia.
// Date vem no formato "2024-05-01 00:00:00.0".
type ReportRow struct {
	Date             string  `json:"date"`
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	Spent            float64 `json:"spent"`
	CpaActionsNum    float64 `json:"cpa_actions_num"`
	ConversionsValue float64 `json:"conversions_value"`
	Currency         string  `json:"currency"`
}

type ReportResponse struct {
	LastUsedRawdataUpdateTime string      `json:"last-used-rawdata-update-time,omitempty"`
	Results                   []ReportRow `json:"results"`
}

// Day devolve a data no formato YYYY-MM-DD
func (r ReportRow) Day() string {
	if len(r.Date) >= 10 {
		return r.Date[:10]
	}
	return r.Date
}
