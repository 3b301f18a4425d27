package repository

import (
	"context"
	"strconv"

	"medpipeline/internal/domain/entities"
	"medpipeline/internal/infrastructure/sheetdb"
	"medpipeline/internal/usecase/interfaces"
)

// opportunityRow is the wire shape of one pipeline record in the sheet. Every
// field travels as a cell; numeric coercion happens here and nowhere else.
type opportunityRow struct {
	ID                cell `json:"id"`
	Date              cell `json:"date"`
	DrName            cell `json:"drName"`
	HospitalName      cell `json:"hospitalName"`
	CurrentUnit       cell `json:"currentUnit"`
	Place             cell `json:"place"`
	State             cell `json:"state"`
	Phone             cell `json:"phone"`
	Email             cell `json:"email"`
	ProductName       cell `json:"productName"`
	DistributorName   cell `json:"distributorName"`
	SalesPerson       cell `json:"salesPerson"`
	PipelineStage     cell `json:"pipelineStage"`
	PotentialValue    cell `json:"potentialValue"`
	WinningPercentage cell `json:"winningPercentage"`
	BuyingPercentage  cell `json:"buyingPercentage"`
	TotalPercentage   cell `json:"totalPercentage"`
	WeightedForecast  cell `json:"weightedForecast"`
	ForecastMonth     cell `json:"forecastMonth"`
	ClosedMonth       cell `json:"closedMonth"`
	Notes             cell `json:"notes"`
	CreatedAt         cell `json:"createdAt"`
	UpdatedAt         cell `json:"updatedAt"`
}

// OpportunitySheetRepository persists Opportunity entities in the remote
// records sheet.

type OpportunitySheetRepository struct {
	client  *sheetdb.Client
	baseURL string
}

var _ interfaces.IOpportunityStore = (*OpportunitySheetRepository)(nil)

func NewOpportunitySheetRepository(client *sheetdb.Client, baseURL string) *OpportunitySheetRepository {
	return &OpportunitySheetRepository{client: client, baseURL: baseURL}
}

func (r *OpportunitySheetRepository) FetchAll(ctx context.Context) ([]entities.Opportunity, error) {
	var rows []opportunityRow
	if err := r.client.GetAll(ctx, r.baseURL, &rows); err != nil {
		return nil, err
	}

	records := make([]entities.Opportunity, 0, len(rows))
	for _, row := range rows {
		records = append(records, fromOpportunityRow(row))
	}
	return records, nil
}

func (r *OpportunitySheetRepository) Create(ctx context.Context, o entities.Opportunity) (int, error) {
	return r.client.Create(ctx, r.baseURL, []opportunityRow{toOpportunityRow(o)})
}

func (r *OpportunitySheetRepository) Update(ctx context.Context, id int, o entities.Opportunity) (int, error) {
	return r.client.Update(ctx, r.baseURL, strconv.Itoa(id), toOpportunityRow(o))
}

func (r *OpportunitySheetRepository) Delete(ctx context.Context, id int) (int, error) {
	return r.client.Delete(ctx, r.baseURL, strconv.Itoa(id))
}

func toOpportunityRow(o entities.Opportunity) opportunityRow {
	return opportunityRow{
		ID:                intCell(o.ID),
		Date:              cell(o.Date),
		DrName:            cell(o.DrName),
		HospitalName:      cell(o.HospitalName),
		CurrentUnit:       cell(o.CurrentUnit),
		Place:             cell(o.Place),
		State:             cell(o.State),
		Phone:             cell(o.Phone),
		Email:             cell(o.Email),
		ProductName:       cell(o.ProductName),
		DistributorName:   cell(o.DistributorName),
		SalesPerson:       cell(o.SalesPerson),
		PipelineStage:     cell(o.PipelineStage),
		PotentialValue:    intCell(o.PotentialValue),
		WinningPercentage: intCell(o.WinningPercentage),
		BuyingPercentage:  intCell(o.BuyingPercentage),
		TotalPercentage:   intCell(o.TotalPercentage),
		WeightedForecast:  intCell(o.WeightedForecast),
		ForecastMonth:     cell(o.ForecastMonth),
		ClosedMonth:       cell(o.ClosedMonth),
		Notes:             cell(o.Notes),
		CreatedAt:         timeCell(o.CreatedAt),
		UpdatedAt:         timeCell(o.UpdatedAt),
	}
}

func fromOpportunityRow(row opportunityRow) entities.Opportunity {
	return entities.Opportunity{
		ID:                row.ID.Int(),
		Date:              row.Date.String(),
		DrName:            row.DrName.String(),
		HospitalName:      row.HospitalName.String(),
		CurrentUnit:       row.CurrentUnit.String(),
		Place:             row.Place.String(),
		State:             row.State.String(),
		Phone:             row.Phone.String(),
		Email:             row.Email.String(),
		ProductName:       row.ProductName.String(),
		DistributorName:   row.DistributorName.String(),
		SalesPerson:       row.SalesPerson.String(),
		PipelineStage:     entities.PipelineStage(row.PipelineStage.String()),
		PotentialValue:    row.PotentialValue.Int(),
		WinningPercentage: row.WinningPercentage.Int(),
		BuyingPercentage:  row.BuyingPercentage.Int(),
		TotalPercentage:   row.TotalPercentage.Int(),
		WeightedForecast:  row.WeightedForecast.Int(),
		ForecastMonth:     row.ForecastMonth.String(),
		ClosedMonth:       row.ClosedMonth.String(),
		Notes:             row.Notes.String(),
		CreatedAt:         row.CreatedAt.Time(),
		UpdatedAt:         row.UpdatedAt.Time(),
	}
}
