package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha do /insights. Spend e action_values vêm na unidade maior da moeda.
type Insight struct {
	CampaignID   string   `json:"campaign_id,omitempty"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions,omitempty"`
	ActionValues []Action `json:"action_values,omitempty"`
}

// Tipos de ação contados como conversão
var ConversionActionTypes = map[string]struct{}{
	"purchase":                             {},
	"offsite_conversion.fb_pixel_purchase": {},
	"lead":                                 {},
	"offsite_conversion.fb_pixel_lead":     {},
	"complete_registration":                {},
}

// GetConversions soma as ações de conversão. O pixel e o evento agregado "purchase"
// reportam a mesma compra, então só o maior dos dois é considerado.
func (i *Insight) GetConversions() float64 {
	return sumConversionActions(i.Actions)
}

func (i *Insight) GetConversionValue() float64 {
	return sumConversionActions(i.ActionValues)
}

func sumConversionActions(actions []Action) float64 {
	values := make(map[string]float64)
	for _, action := range actions {
		if _, ok := ConversionActionTypes[action.ActionType]; !ok {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("meta: valor de ação inválido")
			continue
		}
		values[action.ActionType] += value
	}

	total := max(values["purchase"], values["offsite_conversion.fb_pixel_purchase"])
	total += max(values["lead"], values["offsite_conversion.fb_pixel_lead"])
	total += values["complete_registration"]
	return total
}
