package response

import "swiftprints/internal/domain/entities"

type CostResponse struct {
	Material    float64 `json:"material"`
	MachineTime float64 `json:"machine_time"`
	Total       float64 `json:"total"`
}

func FromCost(c entities.CostBreakdown) CostResponse {
	return CostResponse{
		Material:    c.Material,
		MachineTime: c.MachineTime,
		Total:       c.Total,
	}
}

// EstimateResponse carries the slicer-backed price plus the figures the
// slicer measured.
type EstimateResponse struct {
	Cost              CostResponse `json:"cost"`
	FilamentUsedGrams float64      `json:"filament_used_grams"`
	PrintTimeHours    float64      `json:"print_time_hours"`
}

func FromEstimate(cost entities.CostBreakdown, res entities.SliceResult) EstimateResponse {
	return EstimateResponse{
		Cost:              FromCost(cost),
		FilamentUsedGrams: res.FilamentUsedGrams,
		PrintTimeHours:    res.PrintTimeHours,
	}
}

type ComparisonResponse struct {
	PrinterID   string       `json:"printer_id"`
	PrinterName string       `json:"printer_name"`
	FilamentID  string       `json:"filament_id"`
	Cost        CostResponse `json:"cost"`
}

func FromComparisons(rows []entities.PrinterComparison) []ComparisonResponse {
	out := make([]ComparisonResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ComparisonResponse{
			PrinterID:   r.PrinterID,
			PrinterName: r.PrinterName,
			FilamentID:  r.FilamentID,
			Cost:        FromCost(r.Cost),
		})
	}
	return out
}

type MarketRatesResponse struct {
	FilamentType    string  `json:"filament_type"`
	MinPricePerGram float64 `json:"min_price_per_gram"`
	MaxPricePerGram float64 `json:"max_price_per_gram"`
	AvgPricePerGram float64 `json:"avg_price_per_gram"`
	SampleSize      int     `json:"sample_size"`
}

func FromMarketRates(r entities.MarketRates) MarketRatesResponse {
	return MarketRatesResponse{
		FilamentType:    r.FilamentType,
		MinPricePerGram: r.MinPricePerGram,
		MaxPricePerGram: r.MaxPricePerGram,
		AvgPricePerGram: r.AvgPricePerGram,
		SampleSize:      r.SampleSize,
	}
}
