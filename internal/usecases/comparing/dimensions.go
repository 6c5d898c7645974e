package comparing

import (
	"sort"
	"strings"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const ageGenderSeparator = "_"

func byCampaign(row *domain.InsightRow) (string, bool) {
	return row.CampaignID, row.CampaignID != ""
}

func byAdSetName(row *domain.InsightRow) (string, bool) {
	name := strings.TrimSpace(row.AdSetName)
	if name == "" {
		name = row.AdSetID
	}
	return name, name != ""
}

// Galeria agrupa pelo nome do anúncio, a visão da conta agrupa pelo criativo
func byAdName(row *domain.InsightRow) (string, bool) {
	name := strings.TrimSpace(row.AdName)
	if name == "" {
		name = row.AdID
	}
	return name, name != ""
}

func byCreativeID(row *domain.InsightRow) (string, bool) {
	return row.CreativeID, row.CreativeID != ""
}

func byAge(row *domain.InsightRow) (string, bool) {
	return segment(row.AgeGroup), true
}

func byGender(row *domain.InsightRow) (string, bool) {
	return segment(row.Gender), true
}

func byAgeGender(row *domain.InsightRow) (string, bool) {
	return segment(row.AgeGroup) + ageGenderSeparator + segment(row.Gender), true
}

func byPlatform(row *domain.InsightRow) (string, bool) {
	return row.PublisherPlatform, row.PublisherPlatform != ""
}

func segment(value string) string {
	if value == "" {
		return domain.UnknownSegment
	}
	return value
}

// CampaignComparison compara campanhas e preenche nome, objetivo e status a partir do cadastro
func CampaignComparison(rowsA, rowsB []*domain.InsightRow, metadata map[string]domain.EntityMetadata, objectiveOf ObjectiveResolver) []*domain.ComparisonRecord {
	records := Compare(rowsA, rowsB, byCampaign, objectiveOf)

	names := rowNames(func(r *domain.InsightRow) (string, string) { return r.CampaignID, r.CampaignName }, rowsA, rowsB)
	objectives := rowNames(func(r *domain.InsightRow) (string, string) { return r.CampaignID, objectiveOf(r) }, rowsA, rowsB)

	for _, record := range records {
		record.Label = names[record.Key]
		record.Objective = objectives[record.Key]

		if meta, ok := metadata[record.Key]; ok {
			if meta.Name != "" {
				record.Label = meta.Name
			}
			if meta.Objective != "" {
				record.Objective = meta.Objective
			}
			record.Status = meta.Status
		}
		if record.Label == "" {
			record.Label = record.Key
		}
		if record.Objective == "" {
			record.Objective = domain.UnknownObjective
		}
	}

	return records
}

// AdSetComparison agrupa pelo nome de exibição e guarda todos os ids que compartilham o nome
func AdSetComparison(rowsA, rowsB []*domain.InsightRow, objectiveOf ObjectiveResolver) []*domain.ComparisonRecord {
	records := Compare(rowsA, rowsB, byAdSetName, objectiveOf)

	ids := collectIDs(byAdSetName, func(r *domain.InsightRow) string { return r.AdSetID }, rowsA, rowsB)
	for _, record := range records {
		record.AdSetIDs = ids[record.Key]
	}

	return records
}

// CreativeComparison agrupa por nome de anúncio ou por id do criativo e conta os anúncios distintos
func CreativeComparison(rowsA, rowsB []*domain.InsightRow, byID bool, objectiveOf ObjectiveResolver) []*domain.ComparisonRecord {
	keyFn := KeyFunc(byAdName)
	if byID {
		keyFn = byCreativeID
	}

	records := Compare(rowsA, rowsB, keyFn, objectiveOf)

	ads := collectIDs(keyFn, func(r *domain.InsightRow) string { return r.AdID }, rowsA, rowsB)
	for _, record := range records {
		record.AdCount = len(ads[record.Key])
	}

	if byID {
		names := make(map[string]string)
		for _, rows := range [][]*domain.InsightRow{rowsA, rowsB} {
			for _, row := range rows {
				if _, ok := names[row.CreativeID]; !ok && row.AdName != "" {
					names[row.CreativeID] = row.AdName
				}
			}
		}
		for _, record := range records {
			if name, ok := names[record.Key]; ok {
				record.Label = name
			}
		}
	}

	return records
}

// DemographicComparisons calcula idade, gênero e idade×gênero sobre a mesma busca
func DemographicComparisons(rowsA, rowsB []*domain.InsightRow, objectiveOf ObjectiveResolver) domain.DemographicComparison {
	byAgeRecords := Compare(rowsA, rowsB, byAge, objectiveOf)
	for _, record := range byAgeRecords {
		record.AgeGroup = record.Key
	}

	byGenderRecords := Compare(rowsA, rowsB, byGender, objectiveOf)
	for _, record := range byGenderRecords {
		record.Gender = record.Key
	}

	byAgeGenderRecords := Compare(rowsA, rowsB, byAgeGender, objectiveOf)
	for _, record := range byAgeGenderRecords {
		// faixas de idade não contêm "_", o gênero fica depois do último separador
		idx := strings.LastIndex(record.Key, ageGenderSeparator)
		record.AgeGroup = record.Key[:idx]
		record.Gender = record.Key[idx+1:]
		record.Label = record.AgeGroup + " " + record.Gender
	}

	return domain.DemographicComparison{
		ByAge:       SortByCombinedSpend(byAgeRecords),
		ByGender:    SortByCombinedSpend(byGenderRecords),
		ByAgeGender: SortByCombinedSpend(byAgeGenderRecords),
	}
}

func PlatformComparison(rowsA, rowsB []*domain.InsightRow, objectiveOf ObjectiveResolver) []*domain.ComparisonRecord {
	return Compare(rowsA, rowsB, byPlatform, objectiveOf)
}

func rowNames(pick func(*domain.InsightRow) (string, string), lists ...[]*domain.InsightRow) map[string]string {
	names := make(map[string]string)
	for _, rows := range lists {
		for _, row := range rows {
			key, name := pick(row)
			if key == "" || name == "" {
				continue
			}
			if _, ok := names[key]; !ok {
				names[key] = name
			}
		}
	}
	return names
}

func collectIDs(keyFn KeyFunc, id func(*domain.InsightRow) string, lists ...[]*domain.InsightRow) map[string][]string {
	sets := make(map[string]map[string]struct{})
	for _, rows := range lists {
		for _, row := range rows {
			key, ok := keyFn(row)
			if !ok || id(row) == "" {
				continue
			}
			if sets[key] == nil {
				sets[key] = make(map[string]struct{})
			}
			sets[key][id(row)] = struct{}{}
		}
	}

	ids := make(map[string][]string, len(sets))
	for key, set := range sets {
		list := make([]string, 0, len(set))
		for value := range set {
			list = append(list, value)
		}
		sort.Strings(list)
		ids[key] = list
	}
	return ids
}
