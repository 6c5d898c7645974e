package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// insightField liga uma coluna a um campo da InsightRow, para gravar e para ler
type insightField struct {
	column string
	value  func(r *domain.InsightRow) interface{}
	target func(r *domain.InsightRow) interface{}
}

func stringField(column string, field func(r *domain.InsightRow) *string) insightField {
	return insightField{
		column: column,
		value:  func(r *domain.InsightRow) interface{} { return *field(r) },
		target: func(r *domain.InsightRow) interface{} { return field(r) },
	}
}

func numberField(column string, field func(r *domain.InsightRow) *float64) insightField {
	return insightField{
		column: column,
		value:  func(r *domain.InsightRow) interface{} { return *field(r) },
		target: func(r *domain.InsightRow) interface{} { return field(r) },
	}
}

var (
	baseDimensionFields = []insightField{
		stringField("account_id", func(r *domain.InsightRow) *string { return &r.AccountID }),
		stringField("campaign_id", func(r *domain.InsightRow) *string { return &r.CampaignID }),
		stringField("campaign_name", func(r *domain.InsightRow) *string { return &r.CampaignName }),
		stringField("adset_id", func(r *domain.InsightRow) *string { return &r.AdSetID }),
		stringField("adset_name", func(r *domain.InsightRow) *string { return &r.AdSetName }),
		stringField("objective", func(r *domain.InsightRow) *string { return &r.Objective }),
		stringField("month_year", func(r *domain.InsightRow) *string { return &r.PeriodKey }),
	}

	measureFields = []insightField{
		numberField("spend", func(r *domain.InsightRow) *float64 { return &r.Spend }),
		numberField("impressions", func(r *domain.InsightRow) *float64 { return &r.Impressions }),
		numberField("clicks", func(r *domain.InsightRow) *float64 { return &r.Clicks }),
		numberField("reach", func(r *domain.InsightRow) *float64 { return &r.Reach }),
		numberField("results", func(r *domain.InsightRow) *float64 { return &r.Results }),
		stringField("result_type", func(r *domain.InsightRow) *string { return &r.ResultType }),
		numberField("sales_purchase", func(r *domain.InsightRow) *float64 { return &r.SalesPurchase }),
		numberField("sales_add_to_cart", func(r *domain.InsightRow) *float64 { return &r.SalesAddToCart }),
		numberField("sales_initiate_checkout", func(r *domain.InsightRow) *float64 { return &r.SalesInitiateCheckout }),
		numberField("leads", func(r *domain.InsightRow) *float64 { return &r.Leads }),
		numberField("traffic", func(r *domain.InsightRow) *float64 { return &r.Traffic }),
		numberField("engagement", func(r *domain.InsightRow) *float64 { return &r.Engagement }),
		numberField("awareness", func(r *domain.InsightRow) *float64 { return &r.Awareness }),
		numberField("app_installs", func(r *domain.InsightRow) *float64 { return &r.AppInstalls }),
		numberField("conversions", func(r *domain.InsightRow) *float64 { return &r.Conversions }),
		numberField("conversion_values", func(r *domain.InsightRow) *float64 { return &r.ConversionValues }),
	}
)

// insightTable descreve uma tabela de insights e a chave usada no upsert
type insightTable struct {
	name        string
	fields      []insightField
	conflictKey []string
}

func newInsightTable(name string, conflictKey []string, dimensions ...insightField) insightTable {
	fields := make([]insightField, 0, len(baseDimensionFields)+len(dimensions)+len(measureFields))
	fields = append(fields, baseDimensionFields...)
	fields = append(fields, dimensions...)
	fields = append(fields, measureFields...)

	return insightTable{
		name:        name,
		fields:      fields,
		conflictKey: conflictKey,
	}
}

func (t insightTable) columns(alias string) []string {
	columns := make([]string, 0, len(t.fields)+1)
	for _, f := range t.fields {
		if alias != "" {
			columns = append(columns, alias+"."+f.column)
			continue
		}
		columns = append(columns, f.column)
	}

	actions := "actions"
	if alias != "" {
		actions = alias + ".actions"
	}
	return append(columns, actions)
}

func (t insightTable) upsertSuffix() string {
	updates := make([]string, 0, len(t.fields)+2)
	conflict := make(map[string]struct{}, len(t.conflictKey))
	for _, key := range t.conflictKey {
		conflict[key] = struct{}{}
	}

	for _, f := range t.fields {
		if _, ok := conflict[f.column]; ok {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", f.column, f.column))
	}
	updates = append(updates, "actions = EXCLUDED.actions", "updated_at = NOW()")

	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(t.conflictKey, ", "), strings.Join(updates, ", "))
}

// upsert grava as linhas em uma única transação
func (t insightTable) upsert(ctx context.Context, conn *postgres.Connection, rows []*domain.InsightRow) error {
	if len(rows) == 0 {
		return nil
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, row := range rows {
			values := make([]interface{}, 0, len(t.fields)+1)
			for _, f := range t.fields {
				values = append(values, f.value(row))
			}

			actionsJSON, err := json.Marshal(row.ActionCounts)
			if err != nil {
				return fmt.Errorf("erro ao serializar actions para JSON: %w", err)
			}
			values = append(values, actionsJSON)

			query, args, err := squirrel.
				Insert(t.name).
				Columns(t.columns("")...).
				Values(values...).
				Suffix(t.upsertSuffix()).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

// list executa um select com as colunas da tabela e monta as linhas
func (t insightTable) list(ctx context.Context, conn *postgres.Connection, builder squirrel.SelectBuilder) ([]*domain.InsightRow, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.InsightRow, 0)
	for rows.Next() {
		row, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (t insightTable) scan(rows *sql.Rows) (*domain.InsightRow, error) {
	row := &domain.InsightRow{}

	var actionsJSON []byte
	targets := make([]interface{}, 0, len(t.fields)+1)
	for _, f := range t.fields {
		targets = append(targets, f.target(row))
	}
	targets = append(targets, &actionsJSON)

	if err := rows.Scan(targets...); err != nil {
		return nil, err
	}

	if len(actionsJSON) > 0 {
		if err := json.Unmarshal(actionsJSON, &row.ActionCounts); err != nil {
			return nil, fmt.Errorf("erro ao decodificar actions: %w", err)
		}
	}

	return row, nil
}
