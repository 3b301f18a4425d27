package request

import (
	"medpipeline/internal/domain/entities"
)

// OpportunityRequest is the payload for creating or replacing a pipeline
// record. Derived fields (totalPercentage, weightedForecast) are not
// accepted; the use case recomputes them.
type OpportunityRequest struct {
	Date            string `json:"date" binding:"required"`
	DrName          string `json:"drName" binding:"required"`
	HospitalName    string `json:"hospitalName" binding:"required"`
	CurrentUnit     string `json:"currentUnit"`
	Place           string `json:"place"`
	State           string `json:"state"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ProductName     string `json:"productName"`
	DistributorName string `json:"distributorName"`
	SalesPerson     string `json:"salesPerson"`
	PipelineStage   string `json:"pipelineStage" binding:"required"`

	PotentialValue    int `json:"potentialValue"`
	WinningPercentage int `json:"winningPercentage"`
	BuyingPercentage  int `json:"buyingPercentage"`

	ForecastMonth string `json:"forecastMonth" binding:"required"`
	ClosedMonth   string `json:"closedMonth"`
	Notes         string `json:"notes"`
}

func (r OpportunityRequest) ToEntity() entities.Opportunity {
	return entities.Opportunity{
		Date:              r.Date,
		DrName:            r.DrName,
		HospitalName:      r.HospitalName,
		CurrentUnit:       r.CurrentUnit,
		Place:             r.Place,
		State:             r.State,
		Phone:             r.Phone,
		Email:             r.Email,
		ProductName:       r.ProductName,
		DistributorName:   r.DistributorName,
		SalesPerson:       r.SalesPerson,
		PipelineStage:     entities.PipelineStage(r.PipelineStage),
		PotentialValue:    r.PotentialValue,
		WinningPercentage: r.WinningPercentage,
		BuyingPercentage:  r.BuyingPercentage,
		ForecastMonth:     r.ForecastMonth,
		ClosedMonth:       r.ClosedMonth,
		Notes:             r.Notes,
	}
}
