package taboolaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	tabooladomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/taboola/domain"
	"github.com/vfg2006/multiplatform-ads-api/internal/domain"
)

// GetDailyReport busca o campaign-summary da conta quebrado por dia
func (c *TaboolaClient) GetDailyReport(ctx context.Context, creds tabooladomain.Credentials, dateRange domain.DateRange) ([]tabooladomain.ReportRow, error) {
	query := url.Values{}
	query.Set("start_date", dateRange.StartString())
	query.Set("end_date", dateRange.EndString())

	path := fmt.Sprintf("/api/1.0/%s/reports/campaign-summary/dimensions/day?%s", url.PathEscape(creds.AccountID), query.Encode())

	var response tabooladomain.ReportResponse
	if err := c.do(ctx, creds, http.MethodGet, path, "report", nil, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}
