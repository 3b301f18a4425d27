package entities

import (
	"math"
	"time"
)

// PipelineStage represents the position of a deal in the sales pipeline.
//
// Domain notes:
//   - Stages are ordered roughly by deal progression.
//   - "ordered" and "delivered" are won-terminal, "lost" is lost-terminal.
//   - Everything in between is an open opportunity.

type PipelineStage string

const (
	StageProspecting   PipelineStage = "prospecting"
	StageDemoRequest   PipelineStage = "demo-request"
	StageDemoOn        PipelineStage = "demo-on"
	StageDemoCompleted PipelineStage = "demo-completed"
	StageQuoted        PipelineStage = "quoted"
	StageQuote         PipelineStage = "quote"
	StageNegotiation   PipelineStage = "negotiation"
	StageOrdered       PipelineStage = "ordered"
	StageDelivered     PipelineStage = "delivered"
	StageLost          PipelineStage = "lost"
)

// PipelineStages lists all stages in pipeline order.
var PipelineStages = []PipelineStage{
	StageProspecting,
	StageDemoRequest,
	StageDemoOn,
	StageDemoCompleted,
	StageQuoted,
	StageQuote,
	StageNegotiation,
	StageOrdered,
	StageDelivered,
	StageLost,
}

func (s PipelineStage) Valid() bool {
	_, ok := StageProbabilities[s]
	return ok
}

// Won reports whether the deal reached a won-terminal stage.
func (s PipelineStage) Won() bool {
	return s == StageOrdered || s == StageDelivered
}

// StageProbability holds the default likelihood percentages pre-filled when a
// stage is selected. A record's actual percentages may be overridden and are
// never re-validated against this table.
type StageProbability struct {
	Winning int    `json:"winning"`
	Buying  int    `json:"buying"`
	Color   string `json:"color"`
}

var StageProbabilities = map[PipelineStage]StageProbability{
	StageProspecting:   {Winning: 10, Buying: 5, Color: "#ffeaa7"},
	StageDemoRequest:   {Winning: 20, Buying: 10, Color: "#81ecec"},
	StageDemoOn:        {Winning: 30, Buying: 15, Color: "#74b9ff"},
	StageDemoCompleted: {Winning: 40, Buying: 20, Color: "#a29bfe"},
	StageQuoted:        {Winning: 50, Buying: 10, Color: "#fd79a8"},
	StageQuote:         {Winning: 60, Buying: 10, Color: "#fdcb6e"},
	StageNegotiation:   {Winning: 70, Buying: 10, Color: "#00cec9"},
	StageOrdered:       {Winning: 100, Buying: 100, Color: "#55efc4"},
	StageDelivered:     {Winning: 100, Buying: 0, Color: "#00b894"},
	StageLost:          {Winning: 0, Buying: 0, Color: "#dfe6e9"},
}

// Opportunity is one row of the sales pipeline, synchronized with the remote
// sheet store.
//
// Monetary representation:
//   - PotentialValue and WeightedForecast are whole currency units (no minor
//     units on the wire).
//
// Temporal fields:
//   - Date is a calendar date (YYYY-MM-DD).
//   - ForecastMonth / ClosedMonth are year-months (YYYY-MM). ForecastMonth is
//     the bucketing key for every period rollup; records without it are left
//     out of month-bucketed aggregates but still count toward whole-set KPIs.

type Opportunity struct {
	ID              int           `json:"id"`
	Date            string        `json:"date"`
	DrName          string        `json:"drName"`
	HospitalName    string        `json:"hospitalName"`
	CurrentUnit     string        `json:"currentUnit"`
	Place           string        `json:"place"`
	State           string        `json:"state"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	ProductName     string        `json:"productName"`
	DistributorName string        `json:"distributorName"`
	SalesPerson     string        `json:"salesPerson"`
	PipelineStage   PipelineStage `json:"pipelineStage"`

	PotentialValue    int `json:"potentialValue"`
	WinningPercentage int `json:"winningPercentage"`
	BuyingPercentage  int `json:"buyingPercentage"`
	TotalPercentage   int `json:"totalPercentage"`
	WeightedForecast  int `json:"weightedForecast"`

	ForecastMonth string    `json:"forecastMonth"`
	ClosedMonth   string    `json:"closedMonth"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TotalPercentageOf averages the two likelihood percentages. The average, not
// the product, is the domain's definition of total likelihood.
func TotalPercentageOf(winning, buying int) int {
	return int(math.Round(float64(winning+buying) / 2))
}

// WeightedForecastOf scales a potential value by a total percentage.
func WeightedForecastOf(potentialValue, totalPercentage int) int {
	return potentialValue * totalPercentage / 100
}

// RecomputeDerived re-derives TotalPercentage and WeightedForecast from the
// entered fields. Derived fields are never accepted from input as-is.
func (o *Opportunity) RecomputeDerived() {
	o.TotalPercentage = TotalPercentageOf(o.WinningPercentage, o.BuyingPercentage)
	o.WeightedForecast = WeightedForecastOf(o.PotentialValue, o.TotalPercentage)
}
