package domain

import "strings"

// Objetivos cujo resultado é a soma das etapas de venda (compra, carrinho e checkout)
const (
	ObjectiveOutcomeSales = "OUTCOME_SALES"
	ObjectiveConversions  = "CONVERSIONS"
)

// IsSalesObjective verifica se o objetivo usa a contagem por etapas de venda.
// Apenas esses dois valores são tratados assim.
func IsSalesObjective(objective string) bool {
	upper := strings.ToUpper(strings.TrimSpace(objective))
	return upper == ObjectiveOutcomeSales || upper == ObjectiveConversions
}

// ResultsContribution retorna quanto a linha contribui para results dado o objetivo da campanha
func ResultsContribution(row *InsightRow, objective string) float64 {
	if IsSalesObjective(objective) {
		return row.SalesPurchase + row.SalesAddToCart + row.SalesInitiateCheckout
	}
	return row.Results
}
