package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

type ResponseInsights struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// GetAdAccountDailyInsights busca os insights da conta com um registro por dia
func (c *MetaClient) GetAdAccountDailyInsights(ctx context.Context, token, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error) {
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", dateRange.StartDate.Format(time.DateOnly), dateRange.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "impressions,clicks,spend,actions,action_values")
	params.Add("level", "account")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("access_token", token)

	next := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.URL, accountID, params.Encode())

	insights := make([]metadomain.Insight, 0)
	for next != "" {
		var response ResponseInsights
		if err := c.get(ctx, next, "insights", &response); err != nil {
			return nil, err
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	return insights, nil
}

func (c *MetaClient) postForm(ctx context.Context, endpoint, operation string, params url.Values, out any) error {
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(ctx, req, operation)
	if err != nil {
		return err
	}

	body, err := HandleResponse(resp, operation)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrParse, fmt.Sprintf("erro ao decodificar resposta de %s", operation)).
			WithPlatform(domain.PlatformMeta.String())
	}
	return nil
}
