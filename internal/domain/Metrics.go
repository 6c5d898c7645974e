package domain

// AggregatedMetrics acumula os totais de um grupo; CTR, CPC e CPM são sempre recalculados a partir dos totais
type AggregatedMetrics struct {
	Spend            float64 `json:"spend"`
	Impressions      float64 `json:"impressions"`
	Clicks           float64 `json:"clicks"`
	Reach            float64 `json:"reach"`
	Results          float64 `json:"results"`
	Conversions      float64 `json:"conversions"`
	ConversionValues float64 `json:"conversion_values"`
	CTR              float64 `json:"ctr"`
	CPC              float64 `json:"cpc"`
	CPM              float64 `json:"cpm"`
}

// Add soma as medidas de uma linha; results chega já resolvido pela política de resultados
func (m *AggregatedMetrics) Add(row *InsightRow, results float64) {
	m.Spend += row.Spend
	m.Impressions += row.Impressions
	m.Clicks += row.Clicks
	m.Reach += row.Reach
	m.Results += results
	m.Conversions += row.Conversions
	m.ConversionValues += row.ConversionValues
}

// Merge soma outro acumulador, sem tocar nas razões
func (m *AggregatedMetrics) Merge(other *AggregatedMetrics) {
	if other == nil {
		return
	}
	m.Spend += other.Spend
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Reach += other.Reach
	m.Results += other.Results
	m.Conversions += other.Conversions
	m.ConversionValues += other.ConversionValues
}

// Finalize recalcula as razões derivadas; denominador zero resulta em 0
func (m *AggregatedMetrics) Finalize() {
	m.CTR = 0
	m.CPC = 0
	m.CPM = 0

	if m.Impressions > 0 {
		m.CTR = m.Clicks / m.Impressions * 100
		m.CPM = m.Spend / m.Impressions * 1000
	}
	if m.Clicks > 0 {
		m.CPC = m.Spend / m.Clicks
	}
}

// ROAS retorna conversion_values/spend, 0 sem investimento
func (m *AggregatedMetrics) ROAS() float64 {
	if m.Spend <= 0 {
		return 0
	}
	return m.ConversionValues / m.Spend
}

// PctChange calcula a variação percentual entre dois períodos.
// De 0 para qualquer valor positivo é +100%, de 0 para 0 é 0%.
func PctChange(oldV, newV float64) float64 {
	if oldV == 0 {
		if newV > 0 {
			return 100
		}
		return 0
	}
	return (newV - oldV) / oldV * 100
}

// Nomes das métricas usadas no mapa de variações
const (
	MetricSpend       = "spend"
	MetricImpressions = "impressions"
	MetricClicks      = "clicks"
	MetricReach       = "reach"
	MetricResults     = "results"
	MetricCTR         = "ctr"
	MetricCPC         = "cpc"
	MetricCPM         = "cpm"
)

// MetricChanges calcula a variação de cada métrica exibida entre os períodos A e B
func MetricChanges(a, b *AggregatedMetrics) map[string]float64 {
	return map[string]float64{
		MetricSpend:       PctChange(a.Spend, b.Spend),
		MetricImpressions: PctChange(a.Impressions, b.Impressions),
		MetricClicks:      PctChange(a.Clicks, b.Clicks),
		MetricReach:       PctChange(a.Reach, b.Reach),
		MetricResults:     PctChange(a.Results, b.Results),
		MetricCTR:         PctChange(a.CTR, b.CTR),
		MetricCPC:         PctChange(a.CPC, b.CPC),
		MetricCPM:         PctChange(a.CPM, b.CPM),
	}
}
