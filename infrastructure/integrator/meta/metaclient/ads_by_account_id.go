package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
)

const adFields = "id,name,adset_id,campaign_id,status,creative{id,name,title,body,image_url,thumbnail_url,video_id,link_url}"

func (c *MetaClient) GetAdsByAccountID(ctx context.Context, accountID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", strconv.Itoa(c.pageLimit()))

	return fetchAll[metadomain.Ad](ctx, c, c.buildURL(fmt.Sprintf("act_%s/ads", accountID), params))
}
