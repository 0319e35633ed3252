package entities

// CostBreakdown is the pricing calculator output.
//
// The contract is exact arithmetic with no hidden fees:
//
//	Material    = grams * pricePerGram
//	MachineTime = hours * hourlyRate
//	Total       = Material + MachineTime

type CostBreakdown struct {
	Material    float64 `json:"material"`
	MachineTime float64 `json:"machine_time"`
	Total       float64 `json:"total"`
}

// ComputeCost prices a filament/time estimate against catalog rates.
func ComputeCost(filamentGrams, printTimeHours, pricePerGram, hourlyRate float64) CostBreakdown {
	material := filamentGrams * pricePerGram
	machineTime := printTimeHours * hourlyRate
	return CostBreakdown{
		Material:    material,
		MachineTime: machineTime,
		Total:       material + machineTime,
	}
}

// MarketRates summarizes per-gram pricing across active filaments of a type.
type MarketRates struct {
	FilamentType    string  `json:"filament_type"`
	MinPricePerGram float64 `json:"min_price_per_gram"`
	MaxPricePerGram float64 `json:"max_price_per_gram"`
	AvgPricePerGram float64 `json:"avg_price_per_gram"`
	SampleSize      int     `json:"sample_size"`
}

// PrinterComparison is one row of a cross-printer price comparison.
type PrinterComparison struct {
	PrinterID   string        `json:"printer_id"`
	PrinterName string        `json:"printer_name"`
	FilamentID  string        `json:"filament_id"`
	Cost        CostBreakdown `json:"cost"`
}
