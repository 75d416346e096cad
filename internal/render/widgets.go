package render

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sells-group/risk-atlas/internal/dataset"
)

// Widget mount-point names, matching the dashboard's fixed layout.
const (
	WidgetSummary         = "summary"
	WidgetMap             = "india-map"
	WidgetSurgeChart      = "surge-chart"
	WidgetFiscalChart     = "fiscal-chart"
	WidgetPriorityChart   = "priority-chart"
	WidgetPriorityTable   = "priority-table"
	WidgetWelfareTable    = "welfare-table"
	WidgetRecsTable       = "recommendations-table"
	WidgetActionCards     = "action-cards"
	WidgetDesertsList     = "deserts-list"
	WidgetHotspotsList    = "hotspots-list"
	WidgetTimestamp       = "timestamp"
)

// Badge severity levels rendered by tables.
const (
	BadgeCritical = "critical"
	BadgeHigh     = "high"
	BadgeMedium   = "medium"
)

// SummaryPayload holds the formatted headline metric cards.
type SummaryPayload struct {
	TotalRecords       string `json:"total_records"`
	MaintenanceDeserts int    `json:"maintenance_deserts"`
	MigrationHotspots  int    `json:"migration_hotspots"`
	ProjectedSurge     string `json:"projected_surge"`
	FiscalRiskCrore    string `json:"fiscal_risk_crore"`
	TotalStates        int    `json:"total_states"`
}

// Badge is a styled status label.
type Badge struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// PriorityTableRow is one formatted row of the priority-pincode table.
type PriorityTableRow struct {
	Pincode         string `json:"pincode"`
	MaintenanceLag  string `json:"maintenance_lag"`
	MigrationImpact string `json:"migration_impact"`
	Age0To5         string `json:"age_0_5"`
	PriorityScore   string `json:"priority_score"`
}

// WelfareTableRow is one formatted row of the welfare-risk table.
type WelfareTableRow struct {
	District  string `json:"district"`
	RiskScore string `json:"risk_score"`
	Status    Badge  `json:"status"`
}

// RecsTableRow is one formatted row of the recommendations table.
type RecsTableRow struct {
	Pincode        string `json:"pincode"`
	PriorityScore  string `json:"priority_score"`
	TotalActivity  string `json:"total_activity"`
	Infrastructure Badge  `json:"infrastructure"`
}

// ListItem is one entry of an insight list widget.
type ListItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BuildSummary formats the headline metric cards.
func BuildSummary(s dataset.Summary) SummaryPayload {
	return SummaryPayload{
		TotalRecords:       FormatNumber(float64(s.TotalRecords)),
		MaintenanceDeserts: s.MaintenanceDesertCount,
		MigrationHotspots:  s.MigrationHotspotCount,
		ProjectedSurge:     FormatNumber(float64(s.TotalProjectedSurge)),
		FiscalRiskCrore:    FormatCrore(s.TotalFiscalRisk),
		TotalStates:        s.TotalStates,
	}
}

// BuildSurgeChart assembles the projected-surge trend line.
func BuildSurgeChart(rows []dataset.SurgeRow, theme Theme) ChartSpec {
	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.State)
		values = append(values, float64(r.ProjectedSurge))
	}
	return ChartSpec{
		Type:   "line",
		Labels: labels,
		Datasets: []ChartSet{
			{Data: values, Colors: []string{theme.Sky}, Fill: true},
		},
		Theme: theme,
	}
}

// BuildFiscalChart assembles the top-5 fiscal-risk doughnut.
func BuildFiscalChart(rows []dataset.FiscalRow, theme Theme) ChartSpec {
	sorted := make([]dataset.FiscalRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalFiscalRisk > sorted[j].TotalFiscalRisk
	})
	sorted = truncate(sorted, 5)

	labels := make([]string, 0, len(sorted))
	values := make([]float64, 0, len(sorted))
	for _, r := range sorted {
		labels = append(labels, r.State)
		values = append(values, r.TotalFiscalRisk)
	}
	return ChartSpec{
		Type:   "doughnut",
		Labels: labels,
		Datasets: []ChartSet{
			{Data: values, Colors: []string{theme.Gold, theme.Sky, theme.Emerald, theme.Rose, theme.Midnight}},
		},
		Options: ChartOptions{Cutout: "80%", ShowLegend: true},
		Theme:   theme,
	}
}

// BuildPriorityChart assembles the top-10 state-priority horizontal bar.
func BuildPriorityChart(rows []dataset.PriorityRow, theme Theme) ChartSpec {
	sorted := make([]dataset.PriorityRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityScore > sorted[j].PriorityScore
	})
	sorted = truncate(sorted, 10)

	labels := make([]string, 0, len(sorted))
	values := make([]float64, 0, len(sorted))
	for _, r := range sorted {
		labels = append(labels, r.State)
		values = append(values, r.PriorityScore)
	}
	return ChartSpec{
		Type:   "bar",
		Labels: labels,
		Datasets: []ChartSet{
			{Data: values, Colors: []string{theme.Gold}},
		},
		Options: ChartOptions{IndexAxis: "y", XMax: 1},
		Theme:   theme,
	}
}

// BuildPriorityTable formats the top-10 priority pincode rows.
func BuildPriorityTable(rows []dataset.PincodeRow) []PriorityTableRow {
	out := make([]PriorityTableRow, 0, 10)
	for _, r := range truncate(rows, 10) {
		// maintenance_risk arrives as a signed percentage already.
		out = append(out, PriorityTableRow{
			Pincode:         r.Pincode,
			MaintenanceLag:  fmt.Sprintf("%.1f%% Lag", math.Abs(r.MaintenanceRisk)),
			MigrationImpact: FormatNumber(r.MigrationImpact),
			Age0To5:         FormatNumber(float64(r.Age0To5)),
			PriorityScore:   formatScore(r.PriorityScore),
		})
	}
	return out
}

// statusBadge classifies a normalized [0,1] risk value.
func statusBadge(normalized float64) Badge {
	switch {
	case normalized >= 0.7:
		return Badge{Label: "Critical Risk", Severity: BadgeCritical}
	case normalized >= 0.4:
		return Badge{Label: "Heightened", Severity: BadgeHigh}
	default:
		return Badge{Label: "Stable", Severity: BadgeMedium}
	}
}

// BuildWelfareTable formats the top-10 welfare-risk districts, badged by
// their score relative to the table's maximum.
func BuildWelfareTable(rows []dataset.WelfareRow) []WelfareTableRow {
	maxScore := 0.0
	for _, r := range rows {
		if r.WelfareRiskScore > maxScore {
			maxScore = r.WelfareRiskScore
		}
	}

	out := make([]WelfareTableRow, 0, 10)
	for _, r := range truncate(rows, 10) {
		normalized := 0.0
		if maxScore > 0 {
			normalized = r.WelfareRiskScore / maxScore
		}
		out = append(out, WelfareTableRow{
			District:  r.District,
			RiskScore: FormatNumber(r.WelfareRiskScore),
			Status:    statusBadge(normalized),
		})
	}
	return out
}

// infrastructureBadge styles a recommendation label. ASK recommendations
// (full service centres) rank above camp-style deployments.
func infrastructureBadge(rec string) Badge {
	clean := strings.TrimPrefix(rec, "Aadhaar ")
	if strings.Contains(rec, "ASK") {
		return Badge{Label: clean, Severity: BadgeHigh}
	}
	return Badge{Label: clean, Severity: BadgeMedium}
}

// BuildRecsTable formats the top-10 infrastructure recommendations.
func BuildRecsTable(rows []dataset.RecommendationRow) []RecsTableRow {
	out := make([]RecsTableRow, 0, 10)
	for _, r := range truncate(rows, 10) {
		out = append(out, RecsTableRow{
			Pincode:        r.Pincode,
			PriorityScore:  formatScore(r.PriorityScore),
			TotalActivity:  FormatNumber(r.TotalActivity),
			Infrastructure: infrastructureBadge(r.Recommendation),
		})
	}
	return out
}

// BuildActionPlan passes the action cards through. A nil plan is valid and
// yields an empty card list.
func BuildActionPlan(items []dataset.ActionItem) []dataset.ActionItem {
	if items == nil {
		return []dataset.ActionItem{}
	}
	return items
}

// dummyDistrict matches placeholder district names consisting solely of
// digits and filler characters, which appear in the raw data.
var dummyDistrict = regexp.MustCompile(`^[0-9?*]+$`)

// BuildDesertsList formats the maintenance-desert list, dropping dummy
// district rows, capped at 8 entries.
func BuildDesertsList(rows []dataset.DesertRow) []ListItem {
	out := make([]ListItem, 0, 8)
	for _, r := range rows {
		if dummyDistrict.MatchString(r.District) {
			continue
		}
		out = append(out, ListItem{
			Label: r.District,
			Value: FormatPercent(r.UpdateRatio) + " Update Rate",
		})
		if len(out) == 8 {
			break
		}
	}
	return out
}

// BuildHotspotsList formats the migration-hotspot list, capped at 8 entries.
func BuildHotspotsList(rows []dataset.HotspotRow) []ListItem {
	out := make([]ListItem, 0, 8)
	for _, r := range truncate(rows, 8) {
		out = append(out, ListItem{
			Label: r.District + ", " + r.State,
			Value: FormatNumber(r.MigrationRatio),
		})
	}
	return out
}

// BuildTasks enumerates the dashboard's widget tasks in their fixed render
// order. mapPayload builds the choropleth document; it is invoked inside its
// own task so a geometry failure stays confined to the map widget.
func BuildTasks(doc *dataset.Document, theme Theme, clock *Clock, mapPayload func(ctx context.Context) (any, error)) []Task {
	write := func(widget string, build func() any) Task {
		return Task{Widget: widget, Render: func(ctx context.Context, t Target) error {
			return t.Write(ctx, widget, build())
		}}
	}

	tasks := []Task{
		write(WidgetTimestamp, func() any { return clock.Now() }),
		write(WidgetSummary, func() any { return BuildSummary(doc.Summary) }),
		{Widget: WidgetMap, Render: func(ctx context.Context, t Target) error {
			payload, err := mapPayload(ctx)
			if err != nil {
				return err
			}
			return t.Write(ctx, WidgetMap, payload)
		}},
		write(WidgetSurgeChart, func() any { return BuildSurgeChart(doc.UpdateSurge, theme) }),
		write(WidgetFiscalChart, func() any { return BuildFiscalChart(doc.StateFiscalRisk, theme) }),
		write(WidgetPriorityChart, func() any { return BuildPriorityChart(doc.StatePriority, theme) }),
		write(WidgetPriorityTable, func() any { return BuildPriorityTable(doc.TopPriorityPincodes) }),
		write(WidgetWelfareTable, func() any { return BuildWelfareTable(doc.WelfareRiskDistricts) }),
		write(WidgetRecsTable, func() any { return BuildRecsTable(doc.Recommendations) }),
		write(WidgetActionCards, func() any { return BuildActionPlan(doc.ActionPlan) }),
		write(WidgetDesertsList, func() any { return BuildDesertsList(doc.MaintenanceDeserts) }),
		write(WidgetHotspotsList, func() any { return BuildHotspotsList(doc.MigrationHotspots) }),
	}
	return tasks
}

// formatScore renders a priority score with three decimals.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// truncate returns at most n leading elements of rows.
func truncate[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
