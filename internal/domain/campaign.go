package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
	CampaignStatusDraft   CampaignStatus = "DRAFT"
)

type BudgetPeriod string

const (
	BudgetPeriodDaily    BudgetPeriod = "DAILY"
	BudgetPeriodLifetime BudgetPeriod = "LIFETIME"
)

// Budget tem valores em centavos da moeda da conta
type Budget struct {
	Amount    int64        `json:"amount"`
	Currency  string       `json:"currency"`
	Period    BudgetPeriod `json:"period"`
	Spent     *int64       `json:"spent,omitempty"`
	Remaining *int64       `json:"remaining,omitempty"`
}

type Targeting struct {
	Locations []string `json:"locations,omitempty"`
	Languages []string `json:"languages,omitempty"`
	AgeRanges []string `json:"ageRanges,omitempty"`
	Genders   []string `json:"genders,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Devices   []string `json:"devices,omitempty"`
}

func (t *Targeting) IsEmpty() bool {
	return t == nil || (len(t.Locations) == 0 && len(t.Languages) == 0 && len(t.AgeRanges) == 0 &&
		len(t.Genders) == 0 && len(t.Interests) == 0 && len(t.Keywords) == 0 && len(t.Devices) == 0)
}

type Creative struct {
	Headlines    []string `json:"headlines,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
	FinalURLs    []string `json:"finalUrls,omitempty"`
	ImageURLs    []string `json:"imageUrls,omitempty"`
	CallToAction string   `json:"callToAction,omitempty"`
}

// UnifiedCampaign é a campanha normalizada de qualquer rede.
// Metrics.ROAS segue UnifiedMetrics.Recompute.
type UnifiedCampaign struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Platform     Platform          `json:"platform"`
	Status       CampaignStatus    `json:"status"`
	Type         string            `json:"type,omitempty"`
	StartDate    *time.Time        `json:"startDate,omitempty"`
	EndDate      *time.Time        `json:"endDate,omitempty"`
	Budget       Budget            `json:"budget"`
	Targeting    *Targeting        `json:"targeting,omitempty"`
	Creative     *Creative         `json:"creative,omitempty"`
	Metrics      UnifiedMetrics    `json:"metrics"`
	PlatformData map[string]string `json:"platformData,omitempty"`
}

// CampaignDraft é a entrada para criação de campanha simples em qualquer rede
type CampaignDraft struct {
	Name      string     `json:"name"`
	Type      string     `json:"type,omitempty"`
	Budget    Budget     `json:"budget"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Targeting *Targeting `json:"targeting,omitempty"`
	Creative  *Creative  `json:"creative,omitempty"`
}
