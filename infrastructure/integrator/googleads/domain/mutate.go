package googleadsdomain

// Empty serializa como {} para estratégias de lance sem parâmetros
type Empty struct{}

type MutateOperation struct {
	Create     any    `json:"create,omitempty"`
	Update     any    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

type MutateRequest struct {
	Operations     []MutateOperation `json:"operations"`
	PartialFailure bool              `json:"partialFailure,omitempty"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}

type MutateResponse struct {
	Results []MutateResult `json:"results"`
}

// customerClientLinks:mutate recebe uma única operação
type ClientLinkMutateRequest struct {
	Operation MutateOperation `json:"operation"`
}

type ClientLinkMutateResponse struct {
	Result MutateResult `json:"result"`
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

type CampaignBudgetResource struct {
	Name             string `json:"name"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

type TargetCpa struct {
	TargetCpaMicros int64 `json:"targetCpaMicros,string"`
}

type NetworkSettings struct {
	TargetGoogleSearch  bool `json:"targetGoogleSearch"`
	TargetSearchNetwork bool `json:"targetSearchNetwork"`
}

type CampaignResource struct {
	Name                   string           `json:"name"`
	AdvertisingChannelType string           `json:"advertisingChannelType"`
	Status                 string           `json:"status"`
	CampaignBudget         string           `json:"campaignBudget"`
	StartDate              string           `json:"startDate,omitempty"`
	EndDate                string           `json:"endDate,omitempty"`
	ManualCpc              *Empty           `json:"manualCpc,omitempty"`
	MaximizeConversions    *Empty           `json:"maximizeConversions,omitempty"`
	TargetCpa              *TargetCpa       `json:"targetCpa,omitempty"`
	NetworkSettings        *NetworkSettings `json:"networkSettings,omitempty"`
}

type AdGroupResource struct {
	Name         string `json:"name"`
	Campaign     string `json:"campaign"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CpcBidMicros int64  `json:"cpcBidMicros,omitempty,string"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type AdGroupCriterionResource struct {
	AdGroup string       `json:"adGroup"`
	Status  string       `json:"status"`
	Keyword *KeywordInfo `json:"keyword"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type ResponsiveSearchAdInfo struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
}

type Ad struct {
	FinalUrls          []string                `json:"finalUrls"`
	ResponsiveSearchAd *ResponsiveSearchAdInfo `json:"responsiveSearchAd"`
}

type AdGroupAdResource struct {
	AdGroup string `json:"adGroup"`
	Status  string `json:"status"`
	Ad      Ad     `json:"ad"`
}

type CustomerClientLinkResource struct {
	ResourceName   string `json:"resourceName,omitempty"`
	ClientCustomer string `json:"clientCustomer,omitempty"`
	Status         string `json:"status"`
}

type CustomerManagerLinkResource struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
}
