package repository

import (
	"context"
	"errors"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type printerRecord struct {
	ID         string           `gorm:"primaryKey;size:36"`
	Name       string           `gorm:"size:255;not null"`
	HourlyRate float64          `gorm:"not null"`
	Active     bool             `gorm:"not null;default:true"`
	Filaments  []filamentRecord `gorm:"foreignKey:PrinterID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (printerRecord) TableName() string { return "printers" }

func printerFromEntity(p entities.Printer) printerRecord {
	return printerRecord{
		ID:         p.ID,
		Name:       p.Name,
		HourlyRate: p.HourlyRate,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (r printerRecord) toEntity() entities.Printer {
	filaments := make([]entities.FilamentPricing, 0, len(r.Filaments))
	for _, f := range r.Filaments {
		filaments = append(filaments, f.toEntity())
	}
	return entities.Printer{
		ID:         r.ID,
		Name:       r.Name,
		HourlyRate: r.HourlyRate,
		Active:     r.Active,
		Filaments:  filaments,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// PrinterMySQLRepository persists printers with their filament
// offerings preloaded on reads.

type PrinterMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IPrinterRepository = (*PrinterMySQLRepository)(nil)

func NewPrinterMySQLRepository(db *gorm.DB) *PrinterMySQLRepository {
	return &PrinterMySQLRepository{db: db}
}

func (r *PrinterMySQLRepository) Create(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	record := printerFromEntity(p)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return entities.Printer{}, err
	}
	return record.toEntity(), nil
}

func (r *PrinterMySQLRepository) GetByID(ctx context.Context, id string) (entities.Printer, error) {
	var record printerRecord
	err := r.db.WithContext(ctx).Preload("Filaments").First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Printer{}, nil
	}
	if err != nil {
		return entities.Printer{}, err
	}
	return record.toEntity(), nil
}

func (r *PrinterMySQLRepository) List(ctx context.Context, onlyActive bool) ([]entities.Printer, error) {
	q := r.db.WithContext(ctx).Preload("Filaments").Order("name")
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var records []printerRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	printers := make([]entities.Printer, 0, len(records))
	for _, rec := range records {
		printers = append(printers, rec.toEntity())
	}
	return printers, nil
}

func (r *PrinterMySQLRepository) Update(ctx context.Context, p entities.Printer) (entities.Printer, error) {
	record := printerFromEntity(p)
	err := r.db.WithContext(ctx).Model(&printerRecord{ID: p.ID}).
		Select("Name", "HourlyRate", "Active", "UpdatedAt").
		Updates(record).Error
	if err != nil {
		return entities.Printer{}, err
	}
	return r.GetByID(ctx, p.ID)
}
