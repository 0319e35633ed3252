package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/stl"
	"swiftprints/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUploadNotFound  = errors.New("upload not found")
	ErrInvalidFilename = errors.New("invalid filename")
)

// Baseline estimate assumptions: PLA density and a flat deposition rate.
// They back the quick price path; a real slicing run refines both figures.
const (
	baselineDensityGCM3     = 1.24
	baselineDepositionGPerH = 15.0
)

// IUploadUseCase analyzes and stores STL files.

type IUploadUseCase interface {
	Analyze(ctx context.Context, filename string, data []byte) (entities.Upload, error)
	GetByID(ctx context.Context, id string) (entities.Upload, error)
}

type UploadUseCase struct {
	uploads interfaces.IUploadRepository
	blobs   interfaces.IBlobStorage
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(uploads interfaces.IUploadRepository, blobs interfaces.IBlobStorage) *UploadUseCase {
	return &UploadUseCase{uploads: uploads, blobs: blobs}
}

// Analyze validates and measures an STL file, stores the raw bytes and
// persists the frozen metrics. Nothing is stored when validation fails.
func (u *UploadUseCase) Analyze(ctx context.Context, filename string, data []byte) (entities.Upload, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" || !strings.EqualFold(filepath.Ext(filename), ".stl") {
		return entities.Upload{}, ErrInvalidFilename
	}

	mesh, err := stl.Analyze(data)
	if err != nil {
		return entities.Upload{}, err
	}

	grams := round2(mesh.VolumeMM3 / 1000 * baselineDensityGCM3)
	hours := round2(grams / baselineDepositionGPerH)

	id := uuid.NewString()
	key := fmt.Sprintf("uploads/%s.stl", id)
	if err := u.blobs.Save(ctx, key, data); err != nil {
		return entities.Upload{}, err
	}

	upload := entities.Upload{
		ID:                id,
		Filename:          filename,
		StorageKey:        key,
		FileSize:          int64(len(data)),
		VolumeMM3:         mesh.VolumeMM3,
		BoundingBoxXMM:    mesh.BoundingBoxXMM,
		BoundingBoxYMM:    mesh.BoundingBoxYMM,
		BoundingBoxZMM:    mesh.BoundingBoxZMM,
		SupportsRequired:  mesh.SupportsRequired,
		FilamentEstimateG: grams,
		PrintTimeHours:    hours,
		CreatedAt:         time.Now().UTC(),
	}
	return u.uploads.Create(ctx, upload)
}

func (u *UploadUseCase) GetByID(ctx context.Context, id string) (entities.Upload, error) {
	up, err := u.uploads.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Upload{}, err
	}
	if up.ID == "" {
		return entities.Upload{}, ErrUploadNotFound
	}
	return up, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
