package campaignbuilding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

// Limites do anúncio responsivo de pesquisa
const (
	MinHeadlines       = 3
	MaxHeadlines       = 15
	MaxHeadlineLength  = 30
	MinDescriptions    = 2
	MaxDescriptions    = 4
	MaxDescriptionSize = 90
)

// ValidateCreative descarta textos vazios ou longos demais, corta os excedentes
// e verifica os mínimos. Retorna o criativo pronto para envio.
func ValidateCreative(creative domain.Creative) (domain.Creative, error) {
	headlines := fitting(creative.Headlines, MaxHeadlineLength, MaxHeadlines)
	if len(headlines) < MinHeadlines {
		return domain.Creative{}, fmt.Errorf("são necessários ao menos %d títulos com até %d caracteres, recebidos %d válidos",
			MinHeadlines, MaxHeadlineLength, len(headlines))
	}

	descriptions := fitting(creative.Descriptions, MaxDescriptionSize, MaxDescriptions)
	if len(descriptions) < MinDescriptions {
		return domain.Creative{}, fmt.Errorf("são necessárias ao menos %d descrições com até %d caracteres, recebidas %d válidas",
			MinDescriptions, MaxDescriptionSize, len(descriptions))
	}

	urls := make([]string, 0, len(creative.FinalURLs))
	for _, u := range creative.FinalURLs {
		u = strings.TrimSpace(u)
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return domain.Creative{}, fmt.Errorf("é necessária ao menos uma URL final http(s)")
	}

	return domain.Creative{
		Headlines:    headlines,
		Descriptions: descriptions,
		FinalURLs:    urls,
		ImageURLs:    creative.ImageURLs,
		CallToAction: creative.CallToAction,
	}, nil
}

func fitting(texts []string, maxLength, maxCount int) []string {
	valid := make([]string, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" || utf8.RuneCountInString(text) > maxLength {
			continue
		}
		valid = append(valid, text)
		if len(valid) == maxCount {
			break
		}
	}
	return valid
}
