package repository

import (
	"context"
	"errors"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type uploadRecord struct {
	ID                string  `gorm:"primaryKey;size:36"`
	Filename          string  `gorm:"size:255;not null"`
	StorageKey        string  `gorm:"size:255;not null"`
	FileSize          int64   `gorm:"not null"`
	VolumeMM3         float64 `gorm:"not null"`
	BoundingBoxXMM    float64
	BoundingBoxYMM    float64
	BoundingBoxZMM    float64
	SupportsRequired  bool
	FilamentEstimateG float64
	PrintTimeHours    float64
	CreatedAt         time.Time
}

func (uploadRecord) TableName() string { return "uploads" }

func uploadFromEntity(u entities.Upload) uploadRecord {
	return uploadRecord(u)
}

func (r uploadRecord) toEntity() entities.Upload {
	return entities.Upload(r)
}

// UploadMySQLRepository persists upload metadata. Rows are insert-only.

type UploadMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IUploadRepository = (*UploadMySQLRepository)(nil)

func NewUploadMySQLRepository(db *gorm.DB) *UploadMySQLRepository {
	return &UploadMySQLRepository{db: db}
}

func (r *UploadMySQLRepository) Create(ctx context.Context, u entities.Upload) (entities.Upload, error) {
	record := uploadFromEntity(u)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return entities.Upload{}, err
	}
	return record.toEntity(), nil
}

func (r *UploadMySQLRepository) GetByID(ctx context.Context, id string) (entities.Upload, error) {
	var record uploadRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Upload{}, nil
	}
	if err != nil {
		return entities.Upload{}, err
	}
	return record.toEntity(), nil
}
