package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"
)

var (
	ErrFilamentMismatch = errors.New("filament does not belong to printer")
	ErrPrinterInactive  = errors.New("printer is not active")
	ErrFilamentInactive = errors.New("filament is not active")
)

const marketRatesTTL = 5 * time.Minute

// IPricingUseCase exposes the pricing calculator.
//
// QuickEstimate prices an upload's frozen baseline metrics; Estimate runs
// the slicer for exact figures. Compare and MarketRates survey the catalog.

type IPricingUseCase interface {
	QuickEstimate(ctx context.Context, uploadID, printerID, filamentID string) (entities.CostBreakdown, error)
	Estimate(ctx context.Context, uploadID, printerID, filamentID string, opts entities.PrintOptions) (entities.CostBreakdown, entities.SliceResult, error)
	Compare(ctx context.Context, uploadID, filamentType string) ([]entities.PrinterComparison, error)
	MarketRates(ctx context.Context, filamentType string) (entities.MarketRates, error)
}

type PricingUseCase struct {
	uploads   interfaces.IUploadRepository
	printers  interfaces.IPrinterRepository
	filaments interfaces.IFilamentRepository
	slicer    interfaces.ISlicer
	blobs     interfaces.IBlobStorage
	cache     interfaces.ICache
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	uploads interfaces.IUploadRepository,
	printers interfaces.IPrinterRepository,
	filaments interfaces.IFilamentRepository,
	slicer interfaces.ISlicer,
	blobs interfaces.IBlobStorage,
	cache interfaces.ICache,
) *PricingUseCase {
	return &PricingUseCase{
		uploads:   uploads,
		printers:  printers,
		filaments: filaments,
		slicer:    slicer,
		blobs:     blobs,
		cache:     cache,
	}
}

func (u *PricingUseCase) QuickEstimate(ctx context.Context, uploadID, printerID, filamentID string) (entities.CostBreakdown, error) {
	upload, printer, filament, err := u.resolve(ctx, uploadID, printerID, filamentID)
	if err != nil {
		return entities.CostBreakdown{}, err
	}

	return entities.ComputeCost(
		upload.FilamentEstimateG,
		upload.PrintTimeHours,
		filament.PricePerGram,
		printer.HourlyRate,
	), nil
}

func (u *PricingUseCase) Estimate(ctx context.Context, uploadID, printerID, filamentID string, opts entities.PrintOptions) (entities.CostBreakdown, entities.SliceResult, error) {
	upload, printer, filament, err := u.resolve(ctx, uploadID, printerID, filamentID)
	if err != nil {
		return entities.CostBreakdown{}, entities.SliceResult{}, err
	}

	stlBytes, err := u.blobs.Load(ctx, upload.StorageKey)
	if err != nil {
		return entities.CostBreakdown{}, entities.SliceResult{}, err
	}

	res, err := u.slicer.Slice(ctx, stlBytes, opts)
	if err != nil {
		return entities.CostBreakdown{}, entities.SliceResult{}, err
	}

	cost := entities.ComputeCost(
		res.FilamentUsedGrams,
		res.PrintTimeHours,
		filament.PricePerGram,
		printer.HourlyRate,
	)
	return cost, res, nil
}

// Compare prices an upload's baseline against every active printer that
// offers the filament type, cheapest first. Printers that vanished or
// went inactive since the filament row was created are skipped.
func (u *PricingUseCase) Compare(ctx context.Context, uploadID, filamentType string) ([]entities.PrinterComparison, error) {
	upload, err := u.getUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	filamentType = strings.ToUpper(strings.TrimSpace(filamentType))
	if filamentType == "" {
		return nil, ErrInvalidFilamentType
	}

	offers, err := u.filaments.ListActiveByType(ctx, filamentType)
	if err != nil {
		return nil, err
	}

	printers, err := u.printers.List(ctx, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Printer, len(printers))
	for _, p := range printers {
		byID[p.ID] = p
	}

	rows := make([]entities.PrinterComparison, 0, len(offers))
	for _, f := range offers {
		p, ok := byID[f.PrinterID]
		if !ok {
			continue
		}
		rows = append(rows, entities.PrinterComparison{
			PrinterID:   p.ID,
			PrinterName: p.Name,
			FilamentID:  f.ID,
			Cost: entities.ComputeCost(
				upload.FilamentEstimateG,
				upload.PrintTimeHours,
				f.PricePerGram,
				p.HourlyRate,
			),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Cost.Total < rows[j].Cost.Total })
	return rows, nil
}

// MarketRates aggregates price-per-gram figures across active filaments
// of one type. Results sit in Redis for five minutes; cache failures fall
// through to the database.
func (u *PricingUseCase) MarketRates(ctx context.Context, filamentType string) (entities.MarketRates, error) {
	filamentType = strings.ToUpper(strings.TrimSpace(filamentType))
	if filamentType == "" {
		return entities.MarketRates{}, ErrInvalidFilamentType
	}

	key := "pricing:market-rates:" + filamentType
	if cached, err := u.cache.Get(ctx, key); err != nil {
		log.Printf("[pricing][market-rates] cache get failed key=%s err=%v", key, err)
	} else if cached != nil {
		var rates entities.MarketRates
		if err := json.Unmarshal(cached, &rates); err == nil {
			return rates, nil
		}
		log.Printf("[pricing][market-rates] discarding bad cache entry key=%s", key)
	}

	offers, err := u.filaments.ListActiveByType(ctx, filamentType)
	if err != nil {
		return entities.MarketRates{}, err
	}

	rates := entities.MarketRates{FilamentType: filamentType, SampleSize: len(offers)}
	if len(offers) > 0 {
		min, max, sum := offers[0].PricePerGram, offers[0].PricePerGram, 0.0
		for _, f := range offers {
			if f.PricePerGram < min {
				min = f.PricePerGram
			}
			if f.PricePerGram > max {
				max = f.PricePerGram
			}
			sum += f.PricePerGram
		}
		rates.MinPricePerGram = min
		rates.MaxPricePerGram = max
		rates.AvgPricePerGram = round2(sum / float64(len(offers)))
	}

	if body, err := json.Marshal(rates); err == nil {
		if err := u.cache.Set(ctx, key, body, marketRatesTTL); err != nil {
			log.Printf("[pricing][market-rates] cache set failed key=%s err=%v", key, err)
		}
	}
	return rates, nil
}

func (u *PricingUseCase) getUpload(ctx context.Context, uploadID string) (entities.Upload, error) {
	upload, err := u.uploads.GetByID(ctx, strings.TrimSpace(uploadID))
	if err != nil {
		return entities.Upload{}, err
	}
	if upload.ID == "" {
		return entities.Upload{}, ErrUploadNotFound
	}
	return upload, nil
}

// resolve loads the pricing inputs and verifies the filament belongs to
// the printer and both are active.
func (u *PricingUseCase) resolve(ctx context.Context, uploadID, printerID, filamentID string) (entities.Upload, entities.Printer, entities.FilamentPricing, error) {
	var zero entities.Upload

	upload, err := u.getUpload(ctx, uploadID)
	if err != nil {
		return zero, entities.Printer{}, entities.FilamentPricing{}, err
	}

	printer, err := u.printers.GetByID(ctx, strings.TrimSpace(printerID))
	if err != nil {
		return zero, entities.Printer{}, entities.FilamentPricing{}, err
	}
	if printer.ID == "" {
		return zero, entities.Printer{}, entities.FilamentPricing{}, ErrPrinterNotFound
	}
	if !printer.Active {
		return zero, entities.Printer{}, entities.FilamentPricing{}, ErrPrinterInactive
	}

	filament, err := u.filaments.GetByID(ctx, strings.TrimSpace(filamentID))
	if err != nil {
		return zero, entities.Printer{}, entities.FilamentPricing{}, err
	}
	if filament.ID == "" {
		return zero, entities.Printer{}, entities.FilamentPricing{}, ErrFilamentNotFound
	}
	if filament.PrinterID != printer.ID {
		return zero, entities.Printer{}, entities.FilamentPricing{}, ErrFilamentMismatch
	}
	if !filament.Active {
		return zero, entities.Printer{}, entities.FilamentPricing{}, ErrFilamentInactive
	}

	return upload, printer, filament, nil
}
