package domain

import (
	"fmt"
	"sort"
	"strings"
)

// actionTypeLabels mapeia os action types conhecidos da Graph API para rótulos de exibição
var actionTypeLabels = map[string]string{
	"link_click":                                          "Link Click",
	"landing_page_view":                                   "Landing Page View",
	"omni_landing_page_view":                              "Landing Page View",
	"outbound_click":                                      "Outbound Click",
	"view_content":                                        "View Content",
	"onsite_web_view_content":                             "View Content",
	"offsite_conversion.fb_pixel_view_content":            "View Content (Pixel)",
	"onsite_conversion.flow_complete":                     "Instant Form Complete",
	"post_engagement":                                     "Post Engagement",
	"page_engagement":                                     "Page Engagement",
	"like":                                                "Page Like",
	"onsite_conversion.post_net_like":                     "Post Like",
	"onsite_conversion.post_save":                         "Post Save",
	"post_reaction":                                       "Post Reaction",
	"comment":                                             "Comment",
	"post":                                                "Post Share",
	"video_view":                                          "Video View",
	"video_p25_watched_actions":                           "Video Watched 25%",
	"video_p50_watched_actions":                           "Video Watched 50%",
	"video_p75_watched_actions":                           "Video Watched 75%",
	"video_p100_watched_actions":                          "Video Watched 100%",
	"lead":                                                "Lead",
	"leadgen_grouped":                                     "Lead (Form)",
	"onsite_conversion.lead_grouped":                      "Lead (Form)",
	"offsite_conversion.fb_pixel_lead":                    "Lead (Pixel)",
	"onsite_conversion.messaging_conversation_started_7d": "Messaging Conversation Started",
	"onsite_conversion.messaging_first_reply":             "Messaging First Reply",
	"purchase":                                            "Purchase",
	"omni_purchase":                                       "Purchase",
	"web_in_store_purchase":                               "Purchase (Web/In Store)",
	"onsite_conversion.purchase":                          "Purchase (On Facebook)",
	"offsite_conversion.fb_pixel_purchase":                "Purchase (Pixel)",
	"offsite_conversion.custom":                           "Custom Conversion",
	"add_to_cart":                                         "Add to Cart",
	"omni_add_to_cart":                                    "Add to Cart",
	"onsite_conversion.add_to_cart":                       "Add to Cart (On Facebook)",
	"onsite_web_add_to_cart":                              "Add to Cart",
	"onsite_web_app_add_to_cart":                          "Add to Cart (App)",
	"offsite_conversion.fb_pixel_add_to_cart":             "Add to Cart (Pixel)",
	"initiate_checkout":                                   "Initiate Checkout",
	"omni_initiated_checkout":                             "Initiate Checkout",
	"offsite_conversion.fb_pixel_initiate_checkout":       "Initiate Checkout (Pixel)",
	"offsite_conversion.fb_pixel_complete_registration":   "Complete Registration",
	"offsite_conversion.fb_pixel_add_payment_info":        "Add Payment Info",
	"app_install":                                         "App Install",
	"mobile_app_install":                                  "Mobile App Install",
	"onsite_app_install":                                  "App Install",
	"offsite_conversion.fb_pixel_mobile_app_install":      "Mobile App Install (Pixel)",
	"reach":                                               "Reach",
	"frequency":                                           "Frequency",
	"estimated_ad_recallers":                              "Estimated Ad Recall Lift",
}

var objectiveLabels = map[string]string{
	"OUTCOME_SALES":         "Sales",
	"OUTCOME_LEADS":         "Leads",
	"OUTCOME_TRAFFIC":       "Traffic",
	"OUTCOME_ENGAGEMENT":    "Engagement",
	"OUTCOME_AWARENESS":     "Awareness",
	"OUTCOME_APP_PROMOTION": "App Promotion",
	"CONVERSIONS":           "Conversions",
	"LINK_CLICKS":           "Link Clicks",
	"LEAD_GENERATION":       "Lead Generation",
	"POST_ENGAGEMENT":       "Post Engagement",
	"PAGE_LIKES":            "Page Likes",
	"VIDEO_VIEWS":           "Video Views",
	"MESSAGES":              "Messages",
	"REACH":                 "Reach",
	"BRAND_AWARENESS":       "Brand Awareness",
	"APP_INSTALLS":          "App Installs",
}

// Famílias de action types usadas para as sub-contagens de venda
var (
	PurchaseActionTypes = []string{
		"purchase", "omni_purchase", "web_in_store_purchase",
		"offsite_conversion.fb_pixel_purchase", "onsite_conversion.purchase",
	}
	AddToCartActionTypes = []string{
		"add_to_cart", "omni_add_to_cart", "offsite_conversion.fb_pixel_add_to_cart",
		"onsite_conversion.add_to_cart", "onsite_web_add_to_cart", "onsite_web_app_add_to_cart",
	}
	InitiateCheckoutActionTypes = []string{
		"initiate_checkout", "omni_initiated_checkout", "offsite_conversion.fb_pixel_initiate_checkout",
	}
	LeadActionTypes = []string{
		"lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead", "leadgen_grouped",
	}
	TrafficActionTypes = []string{
		"link_click", "landing_page_view", "omni_landing_page_view", "outbound_click",
	}
	EngagementActionTypes = []string{
		"post_engagement", "page_engagement", "post_reaction", "comment", "post",
	}
	AwarenessActionTypes = []string{"estimated_ad_recallers"}
	AppInstallActionTypes = []string{
		"app_install", "mobile_app_install", "onsite_app_install", "offsite_conversion.fb_pixel_mobile_app_install",
	}
)

// ResultActionTypes retorna os action types que contam como resultado para o objetivo, em ordem de prioridade
func ResultActionTypes(objective string) []string {
	if strings.TrimSpace(objective) == "" {
		return nil
	}

	switch strings.ToUpper(objective) {
	case "OUTCOME_TRAFFIC", "LINK_CLICKS":
		return []string{
			"link_click", "landing_page_view", "omni_landing_page_view", "outbound_click",
			"offsite_conversion.fb_pixel_view_content", "onsite_conversion.flow_complete",
			"onsite_web_view_content", "view_content",
		}
	case "OUTCOME_ENGAGEMENT", "POST_ENGAGEMENT", "PAGE_LIKES":
		return []string{
			"post_engagement", "page_engagement", "like", "onsite_conversion.post_net_like",
			"onsite_conversion.post_save", "video_view", "post_reaction", "comment", "post",
		}
	case "OUTCOME_LEADS", "LEAD_GENERATION":
		return []string{
			"lead", "onsite_conversion.lead_grouped", "offsite_conversion.fb_pixel_lead",
			"onsite_conversion.messaging_conversation_started_7d", "leadgen_grouped",
		}
	case ObjectiveOutcomeSales, ObjectiveConversions:
		types := make([]string, 0, 21)
		types = append(types, PurchaseActionTypes...)
		types = append(types, "offsite_conversion.custom")
		types = append(types, AddToCartActionTypes...)
		types = append(types, InitiateCheckoutActionTypes...)
		return append(types,
			"offsite_conversion.fb_pixel_complete_registration",
			"offsite_conversion.fb_pixel_add_payment_info",
			"offsite_conversion.fb_pixel_view_content",
			"onsite_conversion.post_save",
			"view_content",
			"onsite_web_view_content",
		)
	case "OUTCOME_APP_PROMOTION", "APP_INSTALLS", "MOBILE_APP_INSTALLS":
		return AppInstallActionTypes
	case "VIDEO_VIEWS":
		return []string{
			"video_view", "video_p25_watched_actions", "video_p50_watched_actions",
			"video_p75_watched_actions", "video_p100_watched_actions",
		}
	case "BRAND_AWARENESS", "OUTCOME_AWARENESS", "REACH":
		return []string{"reach", "frequency", "estimated_ad_recallers"}
	case "MESSAGES":
		return []string{"onsite_conversion.messaging_conversation_started_7d"}
	default:
		return []string{
			"purchase", "lead", "offsite_conversion.fb_pixel_purchase",
			"onsite_conversion.post_save", "omni_purchase",
		}
	}
}

// ResultCount é o resultado da contagem de ações para um objetivo
type ResultCount struct {
	Results     float64
	ResultTypes []string
}

// ResultType junta os action types encontrados no formato persistido ("link_click, lead")
func (c ResultCount) ResultType() string {
	return strings.Join(c.ResultTypes, ", ")
}

// CountResults soma todas as ações positivas que correspondem ao objetivo
func CountResults(objective string, actionCounts map[string]float64) ResultCount {
	count := ResultCount{}
	for _, actionType := range ResultActionTypes(objective) {
		value := actionCounts[actionType]
		if value <= 0 {
			continue
		}
		count.Results += value
		count.ResultTypes = append(count.ResultTypes, actionType)
	}
	return count
}

// FamilyCount retorna a maior contagem entre aliases da mesma ação (ex.: purchase e omni_purchase)
func FamilyCount(actionCounts map[string]float64, family []string) float64 {
	var best float64
	for _, actionType := range family {
		if value := actionCounts[actionType]; value > best {
			best = value
		}
	}
	return best
}

// ApplyActionCounts preenche as sub-contagens, results e result_type da linha a partir das ações
func (r *InsightRow) ApplyActionCounts(objective string, actionCounts map[string]float64) {
	r.ActionCounts = actionCounts
	r.SalesPurchase = FamilyCount(actionCounts, PurchaseActionTypes)
	r.SalesAddToCart = FamilyCount(actionCounts, AddToCartActionTypes)
	r.SalesInitiateCheckout = FamilyCount(actionCounts, InitiateCheckoutActionTypes)
	r.Leads = FamilyCount(actionCounts, LeadActionTypes)
	r.Traffic = FamilyCount(actionCounts, TrafficActionTypes)
	r.Engagement = FamilyCount(actionCounts, EngagementActionTypes)
	r.Awareness = FamilyCount(actionCounts, AwarenessActionTypes)
	r.AppInstalls = FamilyCount(actionCounts, AppInstallActionTypes)

	count := CountResults(objective, actionCounts)
	r.Results = count.Results
	r.ResultType = count.ResultType()
}

// ActionTypeLabel retorna o rótulo conhecido ou o identificador convertido para Title Case
func ActionTypeLabel(actionType string) string {
	actionType = strings.TrimSpace(actionType)
	if label, ok := actionTypeLabels[actionType]; ok {
		return label
	}
	return titleCase(actionType)
}

// ObjectiveLabel retorna o rótulo de exibição de um objetivo de campanha
func ObjectiveLabel(objective string) string {
	if objective == "" {
		return UnknownObjective
	}
	if label, ok := objectiveLabels[strings.ToUpper(objective)]; ok {
		return label
	}
	return titleCase(strings.ToLower(objective))
}

// FormatResultTypes transforma "link_click, lead" em "Link Click (120), Lead (4)".
// A ordem segue a lista original; repetições são removidas.
func FormatResultTypes(raw string, counts map[string]float64) string {
	seen := make(map[string]struct{})
	parts := make([]string, 0)

	for _, actionType := range strings.Split(raw, ",") {
		actionType = strings.TrimSpace(actionType)
		if actionType == "" {
			continue
		}
		if _, ok := seen[actionType]; ok {
			continue
		}
		seen[actionType] = struct{}{}

		label := ActionTypeLabel(actionType)
		if count, ok := counts[actionType]; ok {
			label = fmt.Sprintf("%s (%s)", label, formatCount(count))
		}
		parts = append(parts, label)
	}

	return strings.Join(parts, ", ")
}

// ResultTypeBreakdown agrega as contagens por action type de um conjunto de linhas
func ResultTypeBreakdown(rows []*InsightRow) []ResultTypeCount {
	totals := make(map[string]float64)
	for _, row := range rows {
		for _, actionType := range strings.Split(row.ResultType, ",") {
			actionType = strings.TrimSpace(actionType)
			if actionType == "" {
				continue
			}
			totals[actionType] += row.ActionCounts[actionType]
		}
	}

	breakdown := make([]ResultTypeCount, 0, len(totals))
	for actionType, count := range totals {
		breakdown = append(breakdown, ResultTypeCount{
			ActionType: actionType,
			Label:      ActionTypeLabel(actionType),
			Count:      count,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count == breakdown[j].Count {
			return breakdown[i].ActionType < breakdown[j].ActionType
		}
		return breakdown[i].Count > breakdown[j].Count
	})

	return breakdown
}

// ResultTypeCount é uma linha do detalhamento por tipo de resultado
type ResultTypeCount struct {
	ActionType string  `json:"action_type"`
	Label      string  `json:"label"`
	Count      float64 `json:"count"`
}

func titleCase(identifier string) string {
	fields := strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '_' || r == '.' || r == ' '
	})
	for i, field := range fields {
		fields[i] = strings.ToUpper(field[:1]) + field[1:]
	}
	return strings.Join(fields, " ")
}

func formatCount(count float64) string {
	if count == float64(int64(count)) {
		return fmt.Sprintf("%d", int64(count))
	}
	return fmt.Sprintf("%.2f", count)
}
