package googleadsdomain

import "strings"

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// Row é uma linha de resultado GAQL. Somente os recursos selecionados vêm preenchidos.
type Row struct {
	Customer            *Customer            `json:"customer,omitempty"`
	Campaign            *Campaign            `json:"campaign,omitempty"`
	CampaignBudget      *CampaignBudget      `json:"campaignBudget,omitempty"`
	Metrics             *Metrics             `json:"metrics,omitempty"`
	Segments            *Segments            `json:"segments,omitempty"`
	CustomerClientLink  *CustomerClientLink  `json:"customerClientLink,omitempty"`
	CustomerManagerLink *CustomerManagerLink `json:"customerManagerLink,omitempty"`
}

type Customer struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	TestAccount     bool   `json:"testAccount"`
	Manager         bool   `json:"manager"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
	StartDate              string `json:"startDate,omitempty"`
	EndDate                string `json:"endDate,omitempty"`
}

type CampaignBudget struct {
	ResourceName   string `json:"resourceName"`
	AmountMicros   int64  `json:"amountMicros,string"`
	DeliveryMethod string `json:"deliveryMethod"`
}

// Metrics usa int64 serializado como string, como na API REST
type Metrics struct {
	Impressions      int64   `json:"impressions,string"`
	Clicks           int64   `json:"clicks,string"`
	CostMicros       int64   `json:"costMicros,string"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type Segments struct {
	Date string `json:"date"`
}

// CustomerClientLink é o vínculo visto pelo lado do gerente
type CustomerClientLink struct {
	ResourceName   string `json:"resourceName"`
	ClientCustomer string `json:"clientCustomer"`
	ManagerLinkID  string `json:"managerLinkId"`
	Status         string `json:"status"`
}

// CustomerManagerLink é o vínculo visto pelo lado do cliente
type CustomerManagerLink struct {
	ResourceName    string `json:"resourceName"`
	ManagerCustomer string `json:"managerCustomer"`
	ManagerLinkID   string `json:"managerLinkId"`
	Status          string `json:"status"`
}

// ResourceID retorna o último segmento de um resource name (customers/1/campaigns/2 -> 2)
func ResourceID(resourceName string) string {
	idx := strings.LastIndex(resourceName, "/")
	if idx < 0 {
		return resourceName
	}
	return resourceName[idx+1:]
}

// LinkIDFromResourceName extrai o manager_link_id de customers/M/customerClientLinks/C~L
func LinkIDFromResourceName(resourceName string) string {
	id := ResourceID(resourceName)
	if idx := strings.LastIndex(id, "~"); idx >= 0 {
		return id[idx+1:]
	}
	return ""
}
