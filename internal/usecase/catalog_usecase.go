package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPrinterNotFound     = errors.New("printer not found")
	ErrFilamentNotFound    = errors.New("filament not found")
	ErrInvalidPrinterName  = errors.New("invalid printer name")
	ErrInvalidHourlyRate   = errors.New("invalid hourly rate")
	ErrInvalidFilamentType = errors.New("invalid filament type")
	ErrInvalidPricePerGram = errors.New("invalid price per gram")
)

// ICatalogUseCase exposes admin catalog management plus the public
// printer listing.
//
// Nothing in the catalog is ever deleted: deactivation flips the active
// flag so existing orders keep valid references.

type ICatalogUseCase interface {
	CreatePrinter(ctx context.Context, name string, hourlyRate float64) (entities.Printer, error)
	GetPrinter(ctx context.Context, id string) (entities.Printer, error)
	ListPrinters(ctx context.Context, onlyActive bool) ([]entities.Printer, error)
	UpdatePrinter(ctx context.Context, id, name string, hourlyRate float64, active bool) (entities.Printer, error)
	DeactivatePrinter(ctx context.Context, id string) (entities.Printer, error)

	AddFilament(ctx context.Context, printerID, filamentType, name string, pricePerGram float64) (entities.FilamentPricing, error)
	UpdateFilament(ctx context.Context, id, name string, pricePerGram float64, active bool) (entities.FilamentPricing, error)
	DeactivateFilament(ctx context.Context, id string) (entities.FilamentPricing, error)
}

type CatalogUseCase struct {
	printers  interfaces.IPrinterRepository
	filaments interfaces.IFilamentRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(printers interfaces.IPrinterRepository, filaments interfaces.IFilamentRepository) *CatalogUseCase {
	return &CatalogUseCase{printers: printers, filaments: filaments}
}

func (u *CatalogUseCase) CreatePrinter(ctx context.Context, name string, hourlyRate float64) (entities.Printer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Printer{}, ErrInvalidPrinterName
	}
	if hourlyRate <= 0 {
		return entities.Printer{}, ErrInvalidHourlyRate
	}

	now := time.Now().UTC()
	p := entities.Printer{
		ID:         uuid.NewString(),
		Name:       name,
		HourlyRate: hourlyRate,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.printers.Create(ctx, p)
}

func (u *CatalogUseCase) GetPrinter(ctx context.Context, id string) (entities.Printer, error) {
	p, err := u.printers.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Printer{}, err
	}
	if p.ID == "" {
		return entities.Printer{}, ErrPrinterNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListPrinters(ctx context.Context, onlyActive bool) ([]entities.Printer, error) {
	return u.printers.List(ctx, onlyActive)
}

func (u *CatalogUseCase) UpdatePrinter(ctx context.Context, id, name string, hourlyRate float64, active bool) (entities.Printer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Printer{}, ErrInvalidPrinterName
	}
	if hourlyRate <= 0 {
		return entities.Printer{}, ErrInvalidHourlyRate
	}

	p, err := u.GetPrinter(ctx, id)
	if err != nil {
		return entities.Printer{}, err
	}

	p.Name = name
	p.HourlyRate = hourlyRate
	p.Active = active
	p.UpdatedAt = time.Now().UTC()
	return u.printers.Update(ctx, p)
}

func (u *CatalogUseCase) DeactivatePrinter(ctx context.Context, id string) (entities.Printer, error) {
	p, err := u.GetPrinter(ctx, id)
	if err != nil {
		return entities.Printer{}, err
	}

	p.Active = false
	p.UpdatedAt = time.Now().UTC()
	return u.printers.Update(ctx, p)
}

func (u *CatalogUseCase) AddFilament(ctx context.Context, printerID, filamentType, name string, pricePerGram float64) (entities.FilamentPricing, error) {
	filamentType = strings.ToUpper(strings.TrimSpace(filamentType))
	if filamentType == "" {
		return entities.FilamentPricing{}, ErrInvalidFilamentType
	}
	if pricePerGram <= 0 {
		return entities.FilamentPricing{}, ErrInvalidPricePerGram
	}

	// The printer must exist before a filament row can point at it.
	if _, err := u.GetPrinter(ctx, printerID); err != nil {
		return entities.FilamentPricing{}, err
	}

	now := time.Now().UTC()
	f := entities.FilamentPricing{
		ID:           uuid.NewString(),
		PrinterID:    strings.TrimSpace(printerID),
		FilamentType: filamentType,
		Name:         strings.TrimSpace(name),
		PricePerGram: pricePerGram,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.filaments.Create(ctx, f)
}

func (u *CatalogUseCase) UpdateFilament(ctx context.Context, id, name string, pricePerGram float64, active bool) (entities.FilamentPricing, error) {
	if pricePerGram <= 0 {
		return entities.FilamentPricing{}, ErrInvalidPricePerGram
	}

	f, err := u.getFilament(ctx, id)
	if err != nil {
		return entities.FilamentPricing{}, err
	}

	f.Name = strings.TrimSpace(name)
	f.PricePerGram = pricePerGram
	f.Active = active
	f.UpdatedAt = time.Now().UTC()
	return u.filaments.Update(ctx, f)
}

func (u *CatalogUseCase) DeactivateFilament(ctx context.Context, id string) (entities.FilamentPricing, error) {
	f, err := u.getFilament(ctx, id)
	if err != nil {
		return entities.FilamentPricing{}, err
	}

	f.Active = false
	f.UpdatedAt = time.Now().UTC()
	return u.filaments.Update(ctx, f)
}

func (u *CatalogUseCase) getFilament(ctx context.Context, id string) (entities.FilamentPricing, error) {
	f, err := u.filaments.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.FilamentPricing{}, err
	}
	if f.ID == "" {
		return entities.FilamentPricing{}, ErrFilamentNotFound
	}
	return f, nil
}
