package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/multiplatform-ads-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdCampaignsByAccountID percorre todas as páginas seguindo o paging.next
func (c *MetaClient) GetAdCampaignsByAccountID(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,objective,daily_budget,lifetime_budget,start_time,stop_time")
	params.Add("limit", "100")
	params.Add("access_token", token)

	next := fmt.Sprintf("%s/act_%s/campaigns?%s", c.Cfg.URL, accountID, params.Encode())

	campaigns := make([]metadomain.Campaign, 0)
	for next != "" {
		var response ResponseAdCampaign
		if err := c.get(ctx, next, "campaigns", &response); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		next = response.Paging.Next
	}

	return campaigns, nil
}

// CreateAdCampaign cria a campanha e devolve o id
func (c *MetaClient) CreateAdCampaign(ctx context.Context, token, accountID string, params url.Values) (string, error) {
	params.Set("access_token", token)

	var created metadomain.CreatedObject
	endpoint := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.URL, accountID)
	if err := c.postForm(ctx, endpoint, "create_campaign", params, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
