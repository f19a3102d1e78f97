package models

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrUnknownVariant is returned when a variant identifier has no catalog
// entry. Lookup fails before any network access is attempted.
var ErrUnknownVariant = errors.New("unknown model variant")

// Handle owns the local path of a successfully provisioned model file.
type Handle struct {
	variant Variant
	path    string
}

// Path returns the local filesystem path of the model file.
func (h *Handle) Path() string {
	return h.path
}

// Variant returns the catalog entry the handle was provisioned from.
func (h *Handle) Variant() Variant {
	return h.variant
}

// Provision ensures the weight file for variantID exists under dir and
// returns a handle to it, fetching from the variant's fixed URL if absent.
// Provisioning is idempotent: an existing file is never fetched again.
func Provision(ctx context.Context, variantID, dir string) (*Handle, error) {
	return ProvisionWithProgress(ctx, variantID, dir, nil)
}

// ProvisionWithProgress is Provision with a rate-limited download progress
// callback (may be nil).
func ProvisionWithProgress(ctx context.Context, variantID, dir string, onProgress ProgressFunc) (*Handle, error) {
	variant, ok := Lookup(variantID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variantID)
	}

	destPath := filepath.Join(dir, variant.Filename)
	if isDownloaded(destPath) {
		return &Handle{variant: variant, path: destPath}, nil
	}

	log.Printf("Downloading model %s (%s) to %s", variant.ID, variant.Name, destPath)
	if err := downloadFile(ctx, variant.URL, destPath, variant.SizeBytes, onProgress); err != nil {
		return nil, fmt.Errorf("failed to provision model %s: %w", variant.ID, err)
	}

	return &Handle{variant: variant, path: destPath}, nil
}

// IsDownloaded reports whether the variant's weight file already exists
// under dir.
func IsDownloaded(variantID, dir string) bool {
	variant, ok := Lookup(variantID)
	if !ok {
		return false
	}
	return isDownloaded(filepath.Join(dir, variant.Filename))
}

func isDownloaded(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return stat.Size() > 0
}
