package outbraindomain

// Credentials do tenant no Amplify. O login com usuário e senha devolve o OB-TOKEN-V1.
type Credentials struct {
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	MarketerID string `mapstructure:"marketer_id"`
}

const TokenHeader = "OB-TOKEN-V1"

type LoginResponse struct {
	Token string `json:"OB-TOKEN-V1"`
}

type Marketer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	Currency string `json:"currency"`
}

// Tipos de orçamento do Amplify
const (
	BudgetTypeDaily    = "DAILY"
	BudgetTypeMonthly  = "MONTHLY"
	BudgetTypeCampaign = "CAMPAIGN"
)

// Budget tem valores na unidade maior da moeda
type Budget struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	AmountSpent     float64 `json:"amountSpent,omitempty"`
	AmountRemaining float64 `json:"amountRemaining,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	Type            string  `json:"type"`
	Pacing          string  `json:"pacing,omitempty"`
	RunForever      bool    `json:"runForever"`
	StartDate       string  `json:"startDate,omitempty"`
	EndDate         string  `json:"endDate,omitempty"`
}

type LiveStatus struct {
	CampaignOnAir bool   `json:"campaignOnAir"`
	OnAirReason   string `json:"onAirReason,omitempty"`
}

type Campaign struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name"`
	Enabled    bool        `json:"enabled"`
	Archived   bool        `json:"archived,omitempty"`
	CPC        float64     `json:"cpc,omitempty"`
	BudgetID   string      `json:"budgetId,omitempty"`
	Budget     *Budget     `json:"budget,omitempty"`
	LiveStatus *LiveStatus `json:"liveStatus,omitempty"`
	Objective  string      `json:"objective,omitempty"`
}

type CampaignsResponse struct {
	Campaigns  []Campaign `json:"campaigns"`
	TotalCount int        `json:"totalCount"`
}

type PeriodicMetadata struct {
	ID       string `json:"id"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// PeriodicMetrics vem do relatório periódico; spend e sumValue na unidade maior
type PeriodicMetrics struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions float64 `json:"conversions"`
	SumValue    float64 `json:"sumValue"`
}

type PeriodicResult struct {
	Metadata PeriodicMetadata `json:"metadata"`
	Metrics  PeriodicMetrics  `json:"metrics"`
}

type PeriodicResponse struct {
	Results    []PeriodicResult `json:"results"`
	TotalCount int              `json:"totalResults"`
}
