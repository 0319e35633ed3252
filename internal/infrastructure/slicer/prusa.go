package slicer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"
)

// SliceTimeout is the hard cap per slicing run; the container is killed
// when it expires.
const SliceTimeout = 5 * time.Minute

var (
	ErrSlicingFailed   = errors.New("slicing failed")
	ErrSlicingTimedOut = errors.New("slicing timed out")
)

// PrusaRunner invokes PrusaSlicer inside a container and parses the
// resulting G-code. Each invocation runs in its own randomly named scratch
// directory, so concurrent requests never share filesystem state.
type PrusaRunner struct {
	image   string
	workDir string
}

var _ interfaces.ISlicer = (*PrusaRunner)(nil)

func NewPrusaRunner(image, workDir string) *PrusaRunner {
	return &PrusaRunner{image: image, workDir: workDir}
}

func (r *PrusaRunner) Slice(ctx context.Context, stlBytes []byte, opts entities.PrintOptions) (entities.SliceResult, error) {
	if err := opts.Validate(); err != nil {
		return entities.SliceResult{}, err
	}

	scratch, err := os.MkdirTemp(r.workDir, "slice-")
	if err != nil {
		return entities.SliceResult{}, fmt.Errorf("%w: creating scratch dir: %v", ErrSlicingFailed, err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Printf("[slicer][cleanup] failed removing scratch dir %s err=%v", scratch, err)
		}
	}()

	inputPath := filepath.Join(scratch, "input.stl")
	if err := os.WriteFile(inputPath, stlBytes, 0o600); err != nil {
		return entities.SliceResult{}, fmt.Errorf("%w: writing input stl: %v", ErrSlicingFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, SliceTimeout)
	defer cancel()

	args := r.commandArgs(scratch, opts)
	log.Printf("[slicer][run] docker %v", args)

	cmd := exec.CommandContext(ctx, "docker", args...)
	if _, err := cmd.Output(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return entities.SliceResult{}, ErrSlicingTimedOut
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return entities.SliceResult{}, fmt.Errorf("%w: %s", ErrSlicingFailed, string(exitErr.Stderr))
		}
		return entities.SliceResult{}, fmt.Errorf("%w: %v", ErrSlicingFailed, err)
	}

	gcode, err := os.ReadFile(filepath.Join(scratch, "output.gcode"))
	if err != nil {
		return entities.SliceResult{}, fmt.Errorf("%w: slicer produced no output", ErrSlicingFailed)
	}

	return ParseGCode(gcode), nil
}

// commandArgs maps print options one-to-one onto PrusaSlicer CLI flags.
// Support flags differ by mode: "none" leaves supports off, "auto" enables
// automatic generation, "everywhere" enables supports without the
// automatic heuristic.
func (r *PrusaRunner) commandArgs(scratch string, opts entities.PrintOptions) []string {
	args := []string{
		"run", "--rm",
		"-v", scratch + ":/workspace",
		r.image,
		"--layer-height", strconv.FormatFloat(opts.LayerHeight, 'f', -1, 64),
		"--fill-density", strconv.Itoa(opts.InfillPercent) + "%",
	}
	switch opts.Supports {
	case entities.SupportsAuto:
		args = append(args, "--support-material", "--support-material-auto")
	case entities.SupportsEverywhere:
		args = append(args, "--support-material")
	}
	return append(args,
		"--output", "/workspace/output.gcode",
		"--export-gcode",
		"/workspace/input.stl",
	)
}
