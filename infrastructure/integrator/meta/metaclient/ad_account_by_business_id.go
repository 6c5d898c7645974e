package metaclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdAccountsByBusinessID(ctx context.Context, businessID string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency,account_status")
	params.Add("limit", strconv.Itoa(c.pageLimit()))

	accounts, err := fetchAll[metadomain.AdAccount](ctx, c, c.buildURL(businessID+"/owned_ad_accounts", params))
	if err != nil {
		logrus.WithError(err).WithField("business_id", businessID).Error("meta: erro ao listar contas do business manager")
		return nil, err
	}

	for i := range accounts {
		accounts[i].BusinessManagerID = businessID
	}

	return accounts, nil
}

func (c *MetaClient) pageLimit() int {
	if c.Cfg.Meta.PageLimit <= 0 {
		return 25
	}
	return c.Cfg.Meta.PageLimit
}
