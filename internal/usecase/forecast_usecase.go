package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"medpipeline/internal/domain/entities"
	"medpipeline/internal/usecase/interfaces"
)

// UncategorizedProduct labels records whose productName is empty in
// per-product groupings.
const UncategorizedProduct = "Uncategorized"

const topRollupSize = 10

// Trend classifies the direction of a product's forecast between its first
// and last bucketed month.
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// PeriodBucket accumulates weighted forecast for one month, quarter or year.
type PeriodBucket struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// PeriodRollup is a full period partition of the non-lost pipeline, plus the
// grand total across every bucket.
type PeriodRollup struct {
	Total   int                     `json:"total"`
	Count   int                     `json:"count"`
	Buckets map[string]PeriodBucket `json:"buckets"`
}

// MonthBreakdown is one month of a single product's pipeline.
type MonthBreakdown struct {
	Value    int `json:"value"`
	Forecast int `json:"forecast"`
	Count    int `json:"count"`
}

// ProductForecast aggregates one product's opportunities.
//
// The open-pipeline metrics (Opportunities, TotalValue, WeightedForecast,
// DealSizes, Monthly and everything derived from them) exclude lost records.
// Stages and ForecastAccuracy count every record of the product, lost
// included; that asymmetry is deliberate and load-bearing.
type ProductForecast struct {
	Opportunities    int                            `json:"opportunities"`
	TotalValue       int                            `json:"totalValue"`
	WeightedForecast int                            `json:"weightedForecast"`
	DealSizes        []int                          `json:"dealSizes"`
	Stages           map[entities.PipelineStage]int `json:"stages"`
	Monthly          map[string]MonthBreakdown      `json:"monthlyData"`
	AverageDealSize  float64                        `json:"averageDealSize"`
	WinRate          float64                        `json:"winRate"`
	MonthlyTrend     Trend                          `json:"monthlyTrend"`
	ForecastAccuracy float64                        `json:"forecastAccuracy"`
}

// ValueRollup is one entry of a top-N potential-value ranking.
type ValueRollup struct {
	Name       string `json:"name"`
	TotalValue int    `json:"totalValue"`
}

// TrendPoint is one month of the whole-pipeline trend series.
type TrendPoint struct {
	Month            string `json:"month"`
	PotentialValue   int    `json:"potentialValue"`
	WeightedForecast int    `json:"weightedForecast"`
}

// Summary carries the top-line KPIs, computed over ALL records including
// lost ones.
type Summary struct {
	TotalPipelineValue    int     `json:"totalPipelineValue"`
	WeightedForecastTotal int     `json:"weightedForecastTotal"`
	WinRate               float64 `json:"winRate"`
	AverageDealSize       float64 `json:"averageDealSize"`
	Opportunities         int     `json:"opportunities"`
	WonDeals              int     `json:"wonDeals"`
	LostDeals             int     `json:"lostDeals"`
}

// DashboardView bundles everything the dashboard landing view renders.
type DashboardView struct {
	Summary           Summary                        `json:"summary"`
	StageDistribution map[entities.PipelineStage]int `json:"stageDistribution"`
	MonthlyTrend      []TrendPoint                   `json:"monthlyTrend"`
	TopHospitals      []ValueRollup                  `json:"topHospitals"`
	TopDoctors        []ValueRollup                  `json:"topDoctors"`
}

// NormalizeMonth validates a YYYY-MM (or YYYY-M) string and returns it
// zero-padded. Padded keys sort lexicographically in chronological order,
// which every month-keyed aggregate depends on.
func NormalizeMonth(s string) (string, bool) {
	year, month, ok := monthParts(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s-%02d", year, month), true
}

func monthParts(s string) (year string, month int, ok bool) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 {
		return "", 0, false
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return "", 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return "", 0, false
	}
	return parts[0], m, true
}

// MonthlyForecast partitions the non-lost pipeline by forecast month.
func MonthlyForecast(records []entities.Opportunity) PeriodRollup {
	return rollupByPeriod(records, func(year string, month int) string {
		return fmt.Sprintf("%s-%02d", year, month)
	})
}

// QuarterlyForecast partitions the non-lost pipeline by calendar quarter.
func QuarterlyForecast(records []entities.Opportunity) PeriodRollup {
	return rollupByPeriod(records, func(year string, month int) string {
		return fmt.Sprintf("Q%d %s", (month-1)/3+1, year)
	})
}

// AnnualForecast partitions the non-lost pipeline by year.
func AnnualForecast(records []entities.Opportunity) PeriodRollup {
	return rollupByPeriod(records, func(year string, _ int) string {
		return year
	})
}

// rollupByPeriod accumulates weighted forecast per bucket. Lost records and
// records without a parseable forecast month are excluded; the grand total
// covers exactly the records that landed in a bucket, so the monthly,
// quarterly and annual totals always agree.
func rollupByPeriod(records []entities.Opportunity, key func(year string, month int) string) PeriodRollup {
	rollup := PeriodRollup{Buckets: map[string]PeriodBucket{}}
	for _, r := range records {
		if r.PipelineStage == entities.StageLost {
			continue
		}
		year, month, ok := monthParts(r.ForecastMonth)
		if !ok {
			continue
		}

		k := key(year, month)
		b := rollup.Buckets[k]
		b.Value += r.WeightedForecast
		b.Count++
		rollup.Buckets[k] = b

		rollup.Total += r.WeightedForecast
		rollup.Count++
	}
	return rollup
}

// ProductForecasts groups the pipeline by product name and derives the
// per-product metrics.
func ProductForecasts(records []entities.Opportunity) map[string]*ProductForecast {
	products := map[string]*ProductForecast{}

	for _, r := range records {
		name := r.ProductName
		if name == "" {
			name = UncategorizedProduct
		}
		p, ok := products[name]
		if !ok {
			p = &ProductForecast{
				Stages:  map[entities.PipelineStage]int{},
				Monthly: map[string]MonthBreakdown{},
			}
			products[name] = p
		}

		// Stage histogram spans all stages so that forecast accuracy can
		// weigh won deals against the product's entire history.
		p.Stages[r.PipelineStage]++

		if r.PipelineStage == entities.StageLost {
			continue
		}

		p.Opportunities++
		p.TotalValue += r.PotentialValue
		p.WeightedForecast += r.WeightedForecast
		p.DealSizes = append(p.DealSizes, r.PotentialValue)

		if monthKey, ok := NormalizeMonth(r.ForecastMonth); ok {
			mb := p.Monthly[monthKey]
			mb.Value += r.PotentialValue
			mb.Forecast += r.WeightedForecast
			mb.Count++
			p.Monthly[monthKey] = mb
		}
	}

	for _, p := range products {
		if p.Opportunities > 0 {
			p.AverageDealSize = float64(p.TotalValue) / float64(p.Opportunities)
		}
		if p.TotalValue > 0 {
			// Forecast-weighted ratio, not a closed-deal win rate: it measures
			// how concentrated the forecast is, not historical outcomes.
			p.WinRate = float64(p.WeightedForecast) / float64(p.TotalValue) * 100
		}
		p.MonthlyTrend = monthlyTrend(p.Monthly)
		p.ForecastAccuracy = forecastAccuracy(p.Stages)
	}
	return products
}

// monthlyTrend compares the forecast of the first and last bucketed months.
// More than a 10% move either way leaves the stable band; fewer than two
// distinct months is stable by definition.
func monthlyTrend(monthly map[string]MonthBreakdown) Trend {
	if len(monthly) < 2 {
		return TrendStable
	}
	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	first := float64(monthly[months[0]].Forecast)
	last := float64(monthly[months[len(months)-1]].Forecast)

	switch {
	case last > first*1.1:
		return TrendGrowing
	case last < first*0.9:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// forecastAccuracy is the share of won-terminal deals over the product's
// full record count, lost deals included.
func forecastAccuracy(stages map[entities.PipelineStage]int) float64 {
	total := 0
	for _, n := range stages {
		total += n
	}
	if total == 0 {
		return 0
	}
	won := stages[entities.StageOrdered] + stages[entities.StageDelivered]
	return float64(won) / float64(total) * 100
}

// TopHospitals ranks hospitals by summed potential value over all records,
// lost included. Ties keep first-seen order.
func TopHospitals(records []entities.Opportunity, n int) []ValueRollup {
	return topByValue(records, n, func(r entities.Opportunity) string { return r.HospitalName })
}

// TopDoctors ranks contacts by summed potential value over all records.
func TopDoctors(records []entities.Opportunity, n int) []ValueRollup {
	return topByValue(records, n, func(r entities.Opportunity) string { return r.DrName })
}

func topByValue(records []entities.Opportunity, n int, key func(entities.Opportunity) string) []ValueRollup {
	totals := map[string]int{}
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += r.PotentialValue
	}

	out := make([]ValueRollup, 0, len(order))
	for _, k := range order {
		out = append(out, ValueRollup{Name: k, TotalValue: totals[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalValue > out[j].TotalValue })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Summarize computes the top-line KPIs over every record. Win rate here is
// the closed-deal ratio won/(won+lost), distinct from the forecast-weighted
// per-product win rate; the two share a name but not a meaning.
func Summarize(records []entities.Opportunity) Summary {
	s := Summary{Opportunities: len(records)}
	for _, r := range records {
		s.TotalPipelineValue += r.PotentialValue
		s.WeightedForecastTotal += r.WeightedForecast
		if r.PipelineStage.Won() {
			s.WonDeals++
		}
		if r.PipelineStage == entities.StageLost {
			s.LostDeals++
		}
	}
	if closed := s.WonDeals + s.LostDeals; closed > 0 {
		s.WinRate = float64(s.WonDeals) / float64(closed) * 100
	}
	if len(records) > 0 {
		s.AverageDealSize = float64(s.TotalPipelineValue) / float64(len(records))
	}
	return s
}

// StageDistribution counts records per pipeline stage, with every known
// stage present in the result even at zero.
func StageDistribution(records []entities.Opportunity) map[entities.PipelineStage]int {
	counts := make(map[entities.PipelineStage]int, len(entities.PipelineStages))
	for _, s := range entities.PipelineStages {
		counts[s] = 0
	}
	for _, r := range records {
		counts[r.PipelineStage]++
	}
	return counts
}

// MonthlyTrendSeries sums potential value and weighted forecast per forecast
// month over all records (lost included), sorted chronologically.
func MonthlyTrendSeries(records []entities.Opportunity) []TrendPoint {
	values := map[string]int{}
	forecasts := map[string]int{}
	for _, r := range records {
		monthKey, ok := NormalizeMonth(r.ForecastMonth)
		if !ok {
			continue
		}
		values[monthKey] += r.PotentialValue
		forecasts[monthKey] += r.WeightedForecast
	}

	months := make([]string, 0, len(values))
	for m := range values {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]TrendPoint, 0, len(months))
	for _, m := range months {
		out = append(out, TrendPoint{Month: m, PotentialValue: values[m], WeightedForecast: forecasts[m]})
	}
	return out
}

// IForecastUseCase exposes the derived views of the current snapshot. All
// computations are pure functions of the snapshot; the use case only binds
// them to a source.

type IForecastUseCase interface {
	Monthly(ctx context.Context) PeriodRollup
	Quarterly(ctx context.Context) PeriodRollup
	Annual(ctx context.Context) PeriodRollup
	Products(ctx context.Context) map[string]*ProductForecast
	Dashboard(ctx context.Context) DashboardView
}

type ForecastUseCase struct {
	source interfaces.ISnapshotSource
}

var _ IForecastUseCase = (*ForecastUseCase)(nil)

func NewForecastUseCase(source interfaces.ISnapshotSource) *ForecastUseCase {
	return &ForecastUseCase{source: source}
}

func (u *ForecastUseCase) Monthly(_ context.Context) PeriodRollup {
	return MonthlyForecast(u.source.Snapshot())
}

func (u *ForecastUseCase) Quarterly(_ context.Context) PeriodRollup {
	return QuarterlyForecast(u.source.Snapshot())
}

func (u *ForecastUseCase) Annual(_ context.Context) PeriodRollup {
	return AnnualForecast(u.source.Snapshot())
}

func (u *ForecastUseCase) Products(_ context.Context) map[string]*ProductForecast {
	return ProductForecasts(u.source.Snapshot())
}

func (u *ForecastUseCase) Dashboard(_ context.Context) DashboardView {
	records := u.source.Snapshot()
	return DashboardView{
		Summary:           Summarize(records),
		StageDistribution: StageDistribution(records),
		MonthlyTrend:      MonthlyTrendSeries(records),
		TopHospitals:      TopHospitals(records, topRollupSize),
		TopDoctors:        TopDoctors(records, topRollupSize),
	}
}
