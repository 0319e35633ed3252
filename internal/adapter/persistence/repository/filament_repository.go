package repository

import (
	"context"
	"errors"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type filamentRecord struct {
	ID           string  `gorm:"primaryKey;size:36"`
	PrinterID    string  `gorm:"size:36;not null;uniqueIndex:idx_printer_filament"`
	FilamentType string  `gorm:"size:32;not null;uniqueIndex:idx_printer_filament"`
	Name         string  `gorm:"size:255"`
	PricePerGram float64 `gorm:"not null"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (filamentRecord) TableName() string { return "filament_pricings" }

func filamentFromEntity(f entities.FilamentPricing) filamentRecord {
	return filamentRecord{
		ID:           f.ID,
		PrinterID:    f.PrinterID,
		FilamentType: f.FilamentType,
		Name:         f.Name,
		PricePerGram: f.PricePerGram,
		Active:       f.Active,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func (r filamentRecord) toEntity() entities.FilamentPricing {
	return entities.FilamentPricing{
		ID:           r.ID,
		PrinterID:    r.PrinterID,
		FilamentType: r.FilamentType,
		Name:         r.Name,
		PricePerGram: r.PricePerGram,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FilamentMySQLRepository persists filament offerings. The unique index
// on (printer_id, filament_type) backs the one-type-per-printer rule.

type FilamentMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IFilamentRepository = (*FilamentMySQLRepository)(nil)

func NewFilamentMySQLRepository(db *gorm.DB) *FilamentMySQLRepository {
	return &FilamentMySQLRepository{db: db}
}

func (r *FilamentMySQLRepository) Create(ctx context.Context, f entities.FilamentPricing) (entities.FilamentPricing, error) {
	record := filamentFromEntity(f)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.FilamentPricing{}, interfaces.ErrDuplicateFilamentType
		}
		return entities.FilamentPricing{}, err
	}
	return record.toEntity(), nil
}

func (r *FilamentMySQLRepository) GetByID(ctx context.Context, id string) (entities.FilamentPricing, error) {
	var record filamentRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.FilamentPricing{}, nil
	}
	if err != nil {
		return entities.FilamentPricing{}, err
	}
	return record.toEntity(), nil
}

func (r *FilamentMySQLRepository) ListByPrinter(ctx context.Context, printerID string) ([]entities.FilamentPricing, error) {
	var records []filamentRecord
	err := r.db.WithContext(ctx).
		Where("printer_id = ?", printerID).
		Order("filament_type").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return filamentsToEntities(records), nil
}

func (r *FilamentMySQLRepository) ListActiveByType(ctx context.Context, filamentType string) ([]entities.FilamentPricing, error) {
	var records []filamentRecord
	err := r.db.WithContext(ctx).
		Where("filament_type = ? AND active = ?", filamentType, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return filamentsToEntities(records), nil
}

func (r *FilamentMySQLRepository) Update(ctx context.Context, f entities.FilamentPricing) (entities.FilamentPricing, error) {
	record := filamentFromEntity(f)
	err := r.db.WithContext(ctx).Model(&filamentRecord{ID: f.ID}).
		Select("Name", "PricePerGram", "Active", "UpdatedAt").
		Updates(record).Error
	if err != nil {
		return entities.FilamentPricing{}, err
	}
	return r.GetByID(ctx, f.ID)
}

func filamentsToEntities(records []filamentRecord) []entities.FilamentPricing {
	out := make([]entities.FilamentPricing, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out
}
