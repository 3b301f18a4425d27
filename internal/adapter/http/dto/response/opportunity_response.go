package response

import (
	"time"

	"medpipeline/internal/domain/entities"
)

type OpportunityResponse struct {
	ID              int    `json:"id"`
	Date            string `json:"date"`
	DrName          string `json:"drName"`
	HospitalName    string `json:"hospitalName"`
	CurrentUnit     string `json:"currentUnit"`
	Place           string `json:"place"`
	State           string `json:"state"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ProductName     string `json:"productName"`
	DistributorName string `json:"distributorName"`
	SalesPerson     string `json:"salesPerson"`
	PipelineStage   string `json:"pipelineStage"`

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

func FromOpportunity(o entities.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:                o.ID,
		Date:              o.Date,
		DrName:            o.DrName,
		HospitalName:      o.HospitalName,
		CurrentUnit:       o.CurrentUnit,
		Place:             o.Place,
		State:             o.State,
		Phone:             o.Phone,
		Email:             o.Email,
		ProductName:       o.ProductName,
		DistributorName:   o.DistributorName,
		SalesPerson:       o.SalesPerson,
		PipelineStage:     string(o.PipelineStage),
		PotentialValue:    o.PotentialValue,
		WinningPercentage: o.WinningPercentage,
		BuyingPercentage:  o.BuyingPercentage,
		TotalPercentage:   o.TotalPercentage,
		WeightedForecast:  o.WeightedForecast,
		ForecastMonth:     o.ForecastMonth,
		ClosedMonth:       o.ClosedMonth,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromOpportunities(records []entities.Opportunity) []OpportunityResponse {
	out := make([]OpportunityResponse, 0, len(records))
	for _, o := range records {
		out = append(out, FromOpportunity(o))
	}
	return out
}
