package usecase

import (
	"time"

	"medpipeline/internal/domain/entities"
)

// sampleOpportunities is the fallback snapshot loaded when the record store
// cannot be reached on refresh. The derived fields satisfy the same
// invariants as records produced through Create.
func sampleOpportunities() []entities.Opportunity {
	records := []entities.Opportunity{
		{
			ID:              1,
			Date:            "2023-05-15",
			DrName:          "Dr. Sarah Johnson",
			HospitalName:    "City General Hospital",
			CurrentUnit:     "Cardiology Unit",
			Place:           "Mumbai",
			State:           "Maharashtra",
			Phone:           "+91 9876543210",
			Email:           "sarah.johnson@citygeneral.com",
			ProductName:     "HOPE 10K",
			DistributorName: "MedEquip Distributors",
			SalesPerson:     "John Doe",
			PipelineStage:   entities.StageDemoOn,
			PotentialValue:  150000,
			WinningPercentage: 40,
			BuyingPercentage:  30,
			ForecastMonth:   "2023-06",
			ClosedMonth:     "2023-07",
			Notes:           "Discussed new equipment needs. Follow up next week.",
			CreatedAt:       time.Date(2023, 5, 10, 8, 30, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2023, 5, 14, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:              2,
			Date:            "2023-05-20",
			DrName:          "Dr. Rajesh Kumar",
			HospitalName:    "Apollo Medical Center",
			CurrentUnit:     "Ophthalmology",
			Place:           "Chennai",
			State:           "Tamil Nadu",
			Phone:           "+91 9123456780",
			Email:           "rajesh.kumar@apollomed.in",
			ProductName:     "PHACO",
			DistributorName: "Vision Care Supplies",
			SalesPerson:     "Jane Smith",
			PipelineStage:   entities.StageQuoted,
			PotentialValue:  480000,
			WinningPercentage: 50,
			BuyingPercentage:  10,
			ForecastMonth:   "2023-08",
			Notes:           "Quote shared, awaiting budget approval.",
			CreatedAt:       time.Date(2023, 5, 18, 11, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2023, 5, 19, 9, 20, 0, 0, time.UTC),
		},
		{
			ID:              3,
			Date:            "2023-04-02",
			DrName:          "Dr. Anita Desai",
			HospitalName:    "Sunrise Eye Clinic",
			Place:           "Pune",
			State:           "Maharashtra",
			ProductName:     "B SCAN",
			DistributorName: "MedEquip Distributors",
			SalesPerson:     "John Doe",
			PipelineStage:   entities.StageOrdered,
			PotentialValue:  220000,
			WinningPercentage: 100,
			BuyingPercentage:  100,
			ForecastMonth:   "2023-05",
			ClosedMonth:     "2023-05",
			Notes:           "Order confirmed.",
			CreatedAt:       time.Date(2023, 3, 28, 14, 10, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2023, 4, 30, 10, 5, 0, 0, time.UTC),
		},
	}

	for i := range records {
		records[i].RecomputeDerived()
	}
	return records
}
