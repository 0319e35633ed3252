package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// ISlicer abstracts the external slicing engine (PrusaSlicer in a
// container). Implementations must honor ctx cancellation and enforce
// their own run timeout.

type ISlicer interface {
	Slice(ctx context.Context, stlBytes []byte, opts entities.PrintOptions) (entities.SliceResult, error)
}
