// Package dataset loads and models the precomputed analysis-result document
// that every dashboard widget reads from. The document is immutable after
// load; a fresh load replaces it wholesale rather than patching it.
package dataset

// Document is the full parsed analysis-result document.
type Document struct {
	Summary             Summary                `json:"summary"`
	MaintenanceDeserts  []DesertRow            `json:"maintenance_deserts"`
	MigrationHotspots   []HotspotRow           `json:"migration_hotspots"`
	UpdateSurge         []SurgeRow             `json:"update_surge"`
	TopPriorityPincodes []PincodeRow           `json:"top_priority_pincodes"`
	StatePriority       []PriorityRow          `json:"state_priority"`
	StateFiscalRisk     []FiscalRow            `json:"state_fiscal_risk"`
	WelfareRiskDistricts []WelfareRow          `json:"welfare_risk_districts"`
	Recommendations     []RecommendationRow    `json:"recommendations"`
	// ActionPlan may be absent from the document; nil is valid, not an error.
	ActionPlan []ActionItem          `json:"action_plan,omitempty"`
	MapData    map[string]RegionStat `json:"map_data"`
}

// Summary holds the aggregate counters shown in the headline metric cards.
type Summary struct {
	TotalRecords           int64   `json:"total_records"`
	TotalPincodes          int     `json:"total_pincodes"`
	TotalDistricts         int     `json:"total_districts"`
	TotalStates            int     `json:"total_states"`
	MaintenanceDesertCount int     `json:"maintenance_deserts_count"`
	MigrationHotspotCount  int     `json:"migration_hotspots_count"`
	TotalProjectedSurge    int64   `json:"total_projected_surge"`
	TotalFiscalRisk        float64 `json:"total_fiscal_risk"`
}

// RegionStat is the per-region aggregate record backing the choropleth.
// Read-only to all consumers.
type RegionStat struct {
	PriorityScore   float64 `json:"priority_score"`
	ProjectedSurge  int64   `json:"projected_surge"`
	FiscalRisk      float64 `json:"fiscal_risk"`
	MaintenanceGap  float64 `json:"maintenance_gap"`
	MigrationChurn  float64 `json:"migration_churn"`
	TotalEnrollment int64   `json:"total_enrollment"`
	TotalUpdates    int64   `json:"total_updates"`
}

// DesertRow is one low-update district ("maintenance desert").
type DesertRow struct {
	District    string  `json:"district"`
	UpdateRatio float64 `json:"update_ratio"`
}

// HotspotRow is one high-churn migration district.
type HotspotRow struct {
	State          string  `json:"state"`
	District       string  `json:"district"`
	MigrationRatio float64 `json:"migration_ratio"`
}

// SurgeRow is one state's projected update surge.
type SurgeRow struct {
	State          string `json:"state"`
	ProjectedSurge int64  `json:"projected_surge"`
}

// PincodeRow is one high-priority postal-code unit.
type PincodeRow struct {
	Pincode         string  `json:"pincode"`
	State           string  `json:"state"`
	District        string  `json:"district"`
	PriorityScore   float64 `json:"priority_score"`
	MaintenanceRisk float64 `json:"maintenance_risk"`
	MigrationImpact float64 `json:"migration_impact"`
	Age0To5         int64   `json:"age_0_5"`
}

// PriorityRow is one state's mean priority score.
type PriorityRow struct {
	State         string  `json:"state"`
	PriorityScore float64 `json:"priority_score"`
}

// FiscalRow is one state's total fiscal risk exposure.
type FiscalRow struct {
	State           string  `json:"state"`
	TotalFiscalRisk float64 `json:"total_fiscal_risk"`
}

// WelfareRow is one district's welfare risk score.
type WelfareRow struct {
	District         string  `json:"district"`
	WelfareRiskScore float64 `json:"welfare_risk_score"`
}

// RecommendationRow is one infrastructure recommendation for a pincode.
type RecommendationRow struct {
	Pincode        string  `json:"pincode"`
	PriorityScore  float64 `json:"priority_score"`
	TotalActivity  float64 `json:"total_activity"`
	Recommendation string  `json:"recommendation"`
}

// ActionItem is one card of the strategic action plan.
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Priority    string `json:"priority"`
}
