package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/meta/domain"
)

var (
	adSetInsightFields = []string{
		"account_id", "campaign_id", "campaign_name", "adset_id", "adset_name", "objective",
		"spend", "impressions", "clicks", "reach", "actions", "action_values",
	}
	adInsightFields = append([]string{"ad_id", "ad_name"}, adSetInsightFields...)
)

// GetInsights pagina /act_{id}/insights para um nível e breakdown
func (c *MetaClient) GetInsights(ctx context.Context, accountID string, query metadomain.InsightQuery) ([]metadomain.Insight, error) {
	fields := adSetInsightFields
	if query.Level == metadomain.LevelAd {
		fields = adInsightFields
	}

	level := query.Level
	if level == "" {
		level = metadomain.LevelAdSet
	}

	timeIncrement := query.TimeIncrement
	if timeIncrement == "" {
		timeIncrement = "monthly"
	}

	params := url.Values{}
	params.Add("level", string(level))
	params.Add("fields", strings.Join(fields, ","))
	params.Add("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", query.Since, query.Until))
	params.Add("time_increment", timeIncrement)
	params.Add("limit", strconv.Itoa(c.pageLimit()))
	if query.Breakdown != metadomain.BreakdownNone {
		params.Add("breakdowns", string(query.Breakdown))
	}

	return fetchAll[metadomain.Insight](ctx, c, c.buildURL(fmt.Sprintf("act_%s/insights", accountID), params))
}
