package comparing

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// KeyFunc devolve a chave de agrupamento da linha; ok=false descarta a linha
type KeyFunc func(row *domain.InsightRow) (key string, ok bool)

// ObjectiveResolver resolve o objetivo usado pela política de resultados
type ObjectiveResolver func(row *domain.InsightRow) string

// NewObjectiveResolver usa o cadastro da campanha e, na falta dele, o objetivo da própria linha
func NewObjectiveResolver(metadata map[string]domain.EntityMetadata) ObjectiveResolver {
	return func(row *domain.InsightRow) string {
		if meta, ok := metadata[row.CampaignID]; ok && meta.Objective != "" {
			return meta.Objective
		}
		return row.Objective
	}
}

// Aggregate soma as linhas por chave e recalcula CTR, CPC e CPM de cada grupo
func Aggregate(rows []*domain.InsightRow, keyFn KeyFunc, objectiveOf ObjectiveResolver) map[string]*domain.AggregatedMetrics {
	groups := make(map[string]*domain.AggregatedMetrics)

	for _, row := range rows {
		if row == nil {
			continue
		}

		key, ok := keyFn(row)
		if !ok {
			continue
		}

		group, exists := groups[key]
		if !exists {
			group = &domain.AggregatedMetrics{}
			groups[key] = group
		}

		objective := row.Objective
		if objectiveOf != nil {
			objective = objectiveOf(row)
		}
		group.Add(row, domain.ResultsContribution(row, objective))
	}

	for _, group := range groups {
		group.Finalize()
	}

	return groups
}

// Compare agrega os dois períodos com a mesma chave. Grupos ausentes em um dos lados entram zerados.
// A ordem devolvida é a das chaves; a ordenação de exibição fica com quem chama.
func Compare(rowsA, rowsB []*domain.InsightRow, keyFn KeyFunc, objectiveOf ObjectiveResolver) []*domain.ComparisonRecord {
	groupsA := Aggregate(rowsA, keyFn, objectiveOf)
	groupsB := Aggregate(rowsB, keyFn, objectiveOf)

	keys := make([]string, 0, len(groupsA)+len(groupsB))
	for key := range groupsA {
		keys = append(keys, key)
	}
	for key := range groupsB {
		if _, ok := groupsA[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	records := make([]*domain.ComparisonRecord, 0, len(keys))
	for _, key := range keys {
		record := &domain.ComparisonRecord{Key: key, Label: key}
		if a, ok := groupsA[key]; ok {
			record.PeriodA = *a
		}
		if b, ok := groupsB[key]; ok {
			record.PeriodB = *b
		}
		record.Changes = domain.MetricChanges(&record.PeriodA, &record.PeriodB)
		records = append(records, record)
	}

	return records
}

// Totals resume as duas listas inteiras em um único registro
func Totals(rowsA, rowsB []*domain.InsightRow, objectiveOf ObjectiveResolver) domain.ComparisonRecord {
	all := func(*domain.InsightRow) (string, bool) { return "total", true }

	records := Compare(rowsA, rowsB, all, objectiveOf)
	if len(records) == 0 {
		empty := domain.ComparisonRecord{Key: "total", Label: "total"}
		empty.Changes = domain.MetricChanges(&empty.PeriodA, &empty.PeriodB)
		return empty
	}

	return *records[0]
}
