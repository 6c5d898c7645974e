package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountResults(t *testing.T) {
	tests := []struct {
		name          string
		objective     string
		actionCounts  map[string]float64
		expectedTotal float64
		expectedType  string
	}{
		{
			name:          "Tráfego - soma apenas ações positivas do objetivo",
			objective:     "OUTCOME_TRAFFIC",
			actionCounts:  map[string]float64{"link_click": 120, "landing_page_view": 0, "lead": 4},
			expectedTotal: 120,
			expectedType:  "link_click",
		},
		{
			name:          "Leads - mantém a ordem de prioridade",
			objective:     "outcome_leads",
			actionCounts:  map[string]float64{"offsite_conversion.fb_pixel_lead": 2, "lead": 3},
			expectedTotal: 5,
			expectedType:  "lead, offsite_conversion.fb_pixel_lead",
		},
		{
			name:          "Objetivo vazio - nenhum resultado",
			objective:     "",
			actionCounts:  map[string]float64{"purchase": 10},
			expectedTotal: 0,
			expectedType:  "",
		},
		{
			name:          "Objetivo desconhecido - usa a lista padrão",
			objective:     "NOVO_OBJETIVO",
			actionCounts:  map[string]float64{"purchase": 1, "lead": 2, "link_click": 50},
			expectedTotal: 3,
			expectedType:  "purchase, lead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := CountResults(tt.objective, tt.actionCounts)
			assert.Equal(t, tt.expectedTotal, count.Results)
			assert.Equal(t, tt.expectedType, count.ResultType())
		})
	}
}

func TestInsightRow_ApplyActionCounts(t *testing.T) {
	row := &InsightRow{}
	row.ApplyActionCounts("OUTCOME_SALES", map[string]float64{
		"purchase":          3,
		"omni_purchase":     5,
		"add_to_cart":       7,
		"initiate_checkout": 2,
		"link_click":        40,
	})

	assert.Equal(t, 5.0, row.SalesPurchase, "aliases da mesma ação não devem ser somados")
	assert.Equal(t, 7.0, row.SalesAddToCart)
	assert.Equal(t, 2.0, row.SalesInitiateCheckout)
	assert.Equal(t, 40.0, row.Traffic)
	assert.Equal(t, 17.0, row.Results)
	assert.Equal(t, "purchase, omni_purchase, add_to_cart, initiate_checkout", row.ResultType)
	assert.Equal(t, 14.0, ResultsContribution(row, "OUTCOME_SALES"))
}

func TestFormatResultTypes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		counts   map[string]float64
		expected string
	}{
		{
			name:     "Rótulos conhecidos com contagem",
			raw:      "link_click, lead",
			counts:   map[string]float64{"link_click": 120, "lead": 4},
			expected: "Link Click (120), Lead (4)",
		},
		{
			name:     "Remove repetições e entradas vazias",
			raw:      "lead,, lead , purchase",
			counts:   nil,
			expected: "Lead, Purchase",
		},
		{
			name:     "Identificador desconhecido vira Title Case",
			raw:      "onsite_conversion.foo_bar",
			counts:   map[string]float64{"onsite_conversion.foo_bar": 2.5},
			expected: "Onsite Conversion Foo Bar (2.50)",
		},
		{
			name:     "Texto vazio",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatResultTypes(tt.raw, tt.counts))
		})
	}
}

func TestObjectiveLabel(t *testing.T) {
	assert.Equal(t, UnknownObjective, ObjectiveLabel(""))
	assert.Equal(t, "Leads", ObjectiveLabel("outcome_leads"))
	assert.Equal(t, "Sales", ObjectiveLabel("OUTCOME_SALES"))
	assert.Equal(t, "New Objective", ObjectiveLabel("NEW_OBJECTIVE"))
}

func TestResultTypeBreakdown(t *testing.T) {
	rows := []*InsightRow{
		{ResultType: "link_click, lead", ActionCounts: map[string]float64{"link_click": 100, "lead": 3}},
		{ResultType: "lead", ActionCounts: map[string]float64{"lead": 7}},
		{ResultType: ""},
	}

	breakdown := ResultTypeBreakdown(rows)

	require.Len(t, breakdown, 2)
	assert.Equal(t, ResultTypeCount{ActionType: "link_click", Label: "Link Click", Count: 100}, breakdown[0])
	assert.Equal(t, ResultTypeCount{ActionType: "lead", Label: "Lead", Count: 10}, breakdown[1])
}
