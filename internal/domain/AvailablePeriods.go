package domain

import "sort"

// AvailablePeriods representa os meses com dados de uma conta e a seleção padrão da comparação
type AvailablePeriods struct {
	Periods        []string `json:"periods"` // YYYY-MM, do mais recente para o mais antigo
	DefaultPeriodA string   `json:"default_period_a"`
	DefaultPeriodB string   `json:"default_period_b"`
}

// NewAvailablePeriods remove duplicados, ordena em ordem decrescente e escolhe os dois meses mais recentes
func NewAvailablePeriods(periods []string) *AvailablePeriods {
	unique := make(map[string]struct{}, len(periods))
	list := make([]string, 0, len(periods))
	for _, period := range periods {
		if len(period) > 7 {
			period = period[:7]
		}
		if !IsValidPeriodKey(period) {
			continue
		}
		if _, ok := unique[period]; ok {
			continue
		}
		unique[period] = struct{}{}
		list = append(list, period)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(list)))

	available := &AvailablePeriods{Periods: list}
	switch {
	case len(list) >= 2:
		available.DefaultPeriodA = list[1]
		available.DefaultPeriodB = list[0]
	case len(list) == 1:
		// dois meses iguais não formam uma comparação válida, o segundo fica para o usuário escolher
		available.DefaultPeriodA = list[0]
	}

	return available
}
