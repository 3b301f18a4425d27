package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"medpipeline/internal/domain/entities"
)

const recordsSheet = "Pipeline"

var recordHeaders = []string{
	"ID", "Date", "Doctor", "Hospital", "Current Unit", "Place", "State",
	"Phone", "Email", "Product", "Distributor", "Sales Person", "Stage",
	"Potential Value", "Winning %", "Buying %", "Total %", "Weighted Forecast",
	"Forecast Month", "Closed Month", "Notes",
}

// WriteOpportunities renders the snapshot as an .xlsx workbook with one row
// per record.
func WriteOpportunities(w io.Writer, records []entities.Opportunity) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(recordsSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]any, len(recordHeaders))
	for i, h := range recordHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		row := []any{
			r.ID, r.Date, r.DrName, r.HospitalName, r.CurrentUnit, r.Place,
			r.State, r.Phone, r.Email, r.ProductName, r.DistributorName,
			r.SalesPerson, string(r.PipelineStage), r.PotentialValue,
			r.WinningPercentage, r.BuyingPercentage, r.TotalPercentage,
			r.WeightedForecast, r.ForecastMonth, r.ClosedMonth, r.Notes,
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row axis: %w", err)
		}
		if err := f.SetSheetRow(recordsSheet, axis, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}
