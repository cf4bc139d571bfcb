package domain

import "time"

type KeywordMatchType string

const (
	KeywordMatchExact  KeywordMatchType = "EXACT"
	KeywordMatchPhrase KeywordMatchType = "PHRASE"
	KeywordMatchBroad  KeywordMatchType = "BROAD"
)

type KeywordSpec struct {
	Text      string           `json:"text"`
	MatchType KeywordMatchType `json:"matchType"`
}

type AdGroupSpec struct {
	Name string `json:"name"`
	// CPCBid em centavos, zero deixa a rede decidir
	CPCBid   int64         `json:"cpcBid,omitempty"`
	Keywords []KeywordSpec `json:"keywords,omitempty"`
	Ads      []Creative    `json:"ads,omitempty"`
}

// ComprehensiveCampaignSpec é a especificação plana de uma campanha completa na rede principal
type ComprehensiveCampaignSpec struct {
	CustomerID      string        `json:"customerId"`
	Name            string        `json:"name"`
	DailyBudget     int64         `json:"dailyBudget"`
	ChannelType     string        `json:"channelType,omitempty"`
	BiddingStrategy string        `json:"biddingStrategy,omitempty"`
	TargetCPA       int64         `json:"targetCpa,omitempty"`
	StartDate       *time.Time    `json:"startDate,omitempty"`
	EndDate         *time.Time    `json:"endDate,omitempty"`
	AdGroups        []AdGroupSpec `json:"adGroups"`
	Targeting       *Targeting    `json:"targeting,omitempty"`
}

type StepStatus string

const (
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// StepOutcome registra o resultado de um passo da construção da campanha
type StepOutcome struct {
	Step         string     `json:"step"`
	Target       string     `json:"target,omitempty"`
	Status       StepStatus `json:"status"`
	ResourceName string     `json:"resourceName,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// ComprehensiveCampaignResult reflete apenas o que foi de fato criado na rede
type ComprehensiveCampaignResult struct {
	CampaignID           string        `json:"campaignId"`
	CampaignResourceName string        `json:"campaignResourceName"`
	BudgetResourceName   string        `json:"budgetResourceName"`
	AdGroupIDs           []string      `json:"adGroupIds"`
	AdIDs                []string      `json:"adIds"`
	KeywordsCreated      int           `json:"keywordsCreated"`
	TargetingApplied     bool          `json:"targetingApplied"`
	Steps                []StepOutcome `json:"steps"`
	Warnings             []string      `json:"warnings,omitempty"`
}
