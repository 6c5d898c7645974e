package comparing

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// SortByCombinedSpend ordena pelo investimento somado dos dois períodos, maior primeiro
func SortByCombinedSpend(records []*domain.ComparisonRecord) []*domain.ComparisonRecord {
	sort.SliceStable(records, func(i, j int) bool {
		si, sj := records[i].CombinedSpend(), records[j].CombinedSpend()
		if si == sj {
			return records[i].Key < records[j].Key
		}
		return si > sj
	})
	return records
}

// GroupByObjective agrupa as campanhas por objetivo. Grupos e campanhas dentro deles seguem o investimento somado.
func GroupByObjective(campaigns []*domain.ComparisonRecord) []*domain.ObjectiveGroup {
	groups := make(map[string]*domain.ObjectiveGroup)
	order := make([]*domain.ObjectiveGroup, 0)

	for _, campaign := range campaigns {
		objective := campaign.Objective
		if objective == "" {
			objective = domain.UnknownObjective
		}

		group, ok := groups[objective]
		if !ok {
			group = &domain.ObjectiveGroup{
				ComparisonRecord: domain.ComparisonRecord{
					Key:       objective,
					Label:     domain.ObjectiveLabel(objective),
					Objective: objective,
				},
				ObjectiveLabel: domain.ObjectiveLabel(objective),
			}
			groups[objective] = group
			order = append(order, group)
		}

		group.PeriodA.Merge(&campaign.PeriodA)
		group.PeriodB.Merge(&campaign.PeriodB)
		group.Campaigns = append(group.Campaigns, campaign)
	}

	for _, group := range order {
		group.PeriodA.Finalize()
		group.PeriodB.Finalize()
		group.Changes = domain.MetricChanges(&group.PeriodA, &group.PeriodB)
		SortByCombinedSpend(group.Campaigns)
	}

	sort.SliceStable(order, func(i, j int) bool {
		si, sj := order[i].CombinedSpend(), order[j].CombinedSpend()
		if si == sj {
			return order[i].Key < order[j].Key
		}
		return si > sj
	})

	return order
}
