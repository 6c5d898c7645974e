package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
)

// GetCampaignsByAccountID lista todas as campanhas da conta, inclusive pausadas, para resolver objetivos de meses antigos
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,objective,status")
	params.Add("limit", strconv.Itoa(c.pageLimit()))

	return fetchAll[metadomain.Campaign](ctx, c, c.buildURL(fmt.Sprintf("act_%s/campaigns", accountID), params))
}
