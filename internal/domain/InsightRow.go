package domain

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	UnknownObjective = "Unknown"
	UnknownSegment   = "unknown"
)

var (
	ErrInvalidPeriodKey = errors.New("período inválido, use o formato YYYY-MM")
	ErrInvalidMeasure   = errors.New("métrica inválida")
	ErrMissingAccount   = errors.New("linha sem conta de anúncios")
)

var periodKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// InsightRow representa uma linha de desempenho de um período (mês) para uma combinação de entidades
type InsightRow struct {
	PeriodKey         string `json:"month_year"`     // YYYY-MM
	Date              string `json:"date,omitempty"` // YYYY-MM-DD, apenas linhas diárias
	AccountID         string `json:"account_id"`
	CampaignID        string `json:"campaign_id,omitempty"`
	CampaignName      string `json:"campaign_name,omitempty"`
	AdSetID           string `json:"adset_id,omitempty"`
	AdSetName         string `json:"adset_name,omitempty"`
	AdID              string `json:"ad_id,omitempty"`
	AdName            string `json:"ad_name,omitempty"`
	CreativeID        string `json:"creative_id,omitempty"`
	PublisherPlatform string `json:"publisher_platform,omitempty"`
	AgeGroup          string `json:"age_group,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Objective         string `json:"objective,omitempty"`

	Spend       float64 `json:"spend"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Reach       float64 `json:"reach"`
	Results     float64 `json:"results"`

	SalesPurchase         float64 `json:"sales_purchase"`
	SalesAddToCart        float64 `json:"sales_add_to_cart"`
	SalesInitiateCheckout float64 `json:"sales_initiate_checkout"`
	Leads                 float64 `json:"leads"`
	Traffic               float64 `json:"traffic"`
	Engagement            float64 `json:"engagement"`
	Awareness             float64 `json:"awareness"`
	AppInstalls           float64 `json:"app_installs"`
	Conversions           float64 `json:"conversions"`
	ConversionValues      float64 `json:"conversion_values"`

	ResultType   string             `json:"result_type,omitempty"`
	ActionCounts map[string]float64 `json:"action_counts,omitempty"`
}

// EntityMetadata contém atributos de campanha que não estão presentes nas linhas de insight
type EntityMetadata struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Objective  string `json:"objective"`
	Status     string `json:"status"`
}

// InvalidRowError descreve por que uma linha foi rejeitada na fronteira
type InvalidRowError struct {
	Err   error
	Field string
	Value any
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("%s: campo %s com valor %v", e.Err.Error(), e.Field, e.Value)
}

func (e *InvalidRowError) Unwrap() error {
	return e.Err
}

// IsValidPeriodKey verifica se o período está no formato YYYY-MM
func IsValidPeriodKey(period string) bool {
	return periodKeyPattern.MatchString(period)
}

// Validate normaliza campos opcionais e rejeita linhas que não podem entrar na agregação
func (r *InsightRow) Validate() error {
	if len(r.PeriodKey) > 7 {
		// date_start da API vem como YYYY-MM-DD
		r.PeriodKey = r.PeriodKey[:7]
	}
	if !IsValidPeriodKey(r.PeriodKey) {
		return &InvalidRowError{Err: ErrInvalidPeriodKey, Field: "month_year", Value: r.PeriodKey}
	}

	if strings.TrimSpace(r.AccountID) == "" {
		return &InvalidRowError{Err: ErrMissingAccount, Field: "account_id", Value: r.AccountID}
	}

	measures := map[string]float64{
		"spend":                   r.Spend,
		"impressions":             r.Impressions,
		"clicks":                  r.Clicks,
		"reach":                   r.Reach,
		"results":                 r.Results,
		"sales_purchase":          r.SalesPurchase,
		"sales_add_to_cart":       r.SalesAddToCart,
		"sales_initiate_checkout": r.SalesInitiateCheckout,
		"conversions":             r.Conversions,
		"conversion_values":       r.ConversionValues,
	}
	for field, value := range measures {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return &InvalidRowError{Err: ErrInvalidMeasure, Field: field, Value: value}
		}
	}

	if r.AgeGroup == "" {
		r.AgeGroup = UnknownSegment
	}
	if r.Gender == "" {
		r.Gender = UnknownSegment
	}
	r.Objective = strings.TrimSpace(r.Objective)

	return nil
}

// ValidateRows valida todas as linhas e devolve apenas as válidas junto com os erros encontrados
func ValidateRows(rows []*InsightRow) ([]*InsightRow, []error) {
	valid := make([]*InsightRow, 0, len(rows))
	var errs []error

	for _, row := range rows {
		if row == nil {
			continue
		}
		if err := row.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, row)
	}

	return valid, errs
}
