package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingPeriods = errors.New("é necessário informar os dois períodos")
	ErrSamePeriods    = errors.New("os períodos comparados devem ser diferentes")
)

// ComparisonRecord agrupa os totais dos dois períodos sob a mesma chave
type ComparisonRecord struct {
	Key       string             `json:"key"`
	Label     string             `json:"label"`
	PeriodA   AggregatedMetrics  `json:"period_a"`
	PeriodB   AggregatedMetrics  `json:"period_b"`
	Changes   map[string]float64 `json:"changes"`
	Objective string             `json:"objective,omitempty"`
	Status    string             `json:"status,omitempty"`
	AgeGroup  string             `json:"age_group,omitempty"`
	Gender    string             `json:"gender,omitempty"`
	AdSetIDs  []string           `json:"adset_ids,omitempty"`
	AdCount   int                `json:"ad_count,omitempty"`
}

// CombinedSpend é a soma do investimento nos dois períodos, usada para ordenação
func (c *ComparisonRecord) CombinedSpend() float64 {
	return c.PeriodA.Spend + c.PeriodB.Spend
}

// ObjectiveGroup reúne as campanhas de um mesmo objetivo
type ObjectiveGroup struct {
	ComparisonRecord
	ObjectiveLabel string              `json:"objective_label"`
	Campaigns      []*ComparisonRecord `json:"campaigns"`
}

// DemographicComparison mantém as três visões demográficas calculadas sobre a mesma busca
type DemographicComparison struct {
	ByAge       []*ComparisonRecord `json:"by_age"`
	ByGender    []*ComparisonRecord `json:"by_gender"`
	ByAgeGender []*ComparisonRecord `json:"by_age_gender"`
}

// ResultTypeComparison mostra as contagens por tipo de resultado nos dois períodos
type ResultTypeComparison struct {
	PeriodA []ResultTypeCount `json:"period_a"`
	PeriodB []ResultTypeCount `json:"period_b"`
}

// ComparisonRequest identifica uma carga de comparação
type ComparisonRequest struct {
	AccountID string `json:"account_id"`
	PeriodA   string `json:"period_a"`
	PeriodB   string `json:"period_b"`
	ViewerID  int    `json:"-"`
}

// Validate verifica os parâmetros antes de qualquer busca
func (r *ComparisonRequest) Validate() error {
	if r.AccountID == "" {
		return ErrMissingAccount
	}
	if r.PeriodA == "" || r.PeriodB == "" {
		return ErrMissingPeriods
	}
	if !IsValidPeriodKey(r.PeriodA) {
		return &InvalidRowError{Err: ErrInvalidPeriodKey, Field: "period_a", Value: r.PeriodA}
	}
	if !IsValidPeriodKey(r.PeriodB) {
		return &InvalidRowError{Err: ErrInvalidPeriodKey, Field: "period_b", Value: r.PeriodB}
	}
	if r.PeriodA == r.PeriodB {
		return ErrSamePeriods
	}
	return nil
}

// ComparisonReport é o resultado completo de uma carga de comparação
type ComparisonReport struct {
	AccountID       string                `json:"account_id"`
	PeriodA         string                `json:"period_a"`
	PeriodB         string                `json:"period_b"`
	Generation      uint64                `json:"generation"`
	Totals          ComparisonRecord      `json:"totals"`
	Objectives      []*ObjectiveGroup     `json:"objectives"`
	AdSets          []*ComparisonRecord   `json:"adsets"`
	CreativesByName []*ComparisonRecord   `json:"creatives_by_name"`
	CreativesByID   []*ComparisonRecord   `json:"creatives_by_id"`
	Demographics    DemographicComparison `json:"demographics"`
	Platforms       []*ComparisonRecord   `json:"platforms"`
	ResultTypes     ResultTypeComparison  `json:"result_types"`
	RejectedRows    int                   `json:"rejected_rows"`
	GeneratedAt     time.Time             `json:"generated_at"`
}
