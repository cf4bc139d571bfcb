package linkedindomain

// Credentials do tenant no LinkedIn Ads
type Credentials struct {
	AccessToken string `mapstructure:"access_token"`
	AccountID   string `mapstructure:"account_id"`
}

// Money representa valores monetários como string decimal na unidade maior da moeda
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type RunSchedule struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

type AdAccount struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type Campaign struct {
	ID          int64        `json:"id,omitempty"`
	Account     string       `json:"account,omitempty"`
	Name        string       `json:"name"`
	Status      string       `json:"status"`
	Type        string       `json:"type"`
	CostType    string       `json:"costType,omitempty"`
	DailyBudget *Money       `json:"dailyBudget,omitempty"`
	TotalBudget *Money       `json:"totalBudget,omitempty"`
	RunSchedule *RunSchedule `json:"runSchedule,omitempty"`
	Locale      *Locale      `json:"locale,omitempty"`
}

type Locale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

type CampaignsResponse struct {
	Elements []Campaign `json:"elements"`
}

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// AnalyticsElement é uma linha diária do /adAnalytics
type AnalyticsElement struct {
	Impressions                    int64     `json:"impressions"`
	Clicks                         int64     `json:"clicks"`
	CostInLocalCurrency            string    `json:"costInLocalCurrency"`
	ExternalWebsiteConversions     float64   `json:"externalWebsiteConversions"`
	ConversionValueInLocalCurrency string    `json:"conversionValueInLocalCurrency"`
	DateRange                      DateRange `json:"dateRange"`
}

type AnalyticsResponse struct {
	Elements []AnalyticsElement `json:"elements"`
}
