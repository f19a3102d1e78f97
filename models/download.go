package models

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ProgressFunc reports download progress in percent (0-100).
type ProgressFunc func(progress float64)

// downloadFile streams url into destPath. The body is written to a uniquely
// named temp file next to destPath and renamed into place only after the
// transfer completed, so an aborted download never satisfies a later
// existence check. Concurrent downloads of the same file do not collide on
// the temp name.
func downloadFile(ctx context.Context, url, destPath string, expectedSize int64, onProgress ProgressFunc) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := destPath + ".tmp-" + uuid.NewString()
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()
	defer os.Remove(tmpPath)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// No overall timeout: model files run into gigabytes.
	client := &http.Client{Timeout: 0}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	totalSize := resp.ContentLength
	if totalSize <= 0 && expectedSize > 0 {
		totalSize = expectedSize
	}

	reader := &progressReader{
		reader:     resp.Body,
		totalSize:  totalSize,
		onProgress: onProgress,
	}

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	// Close before rename so the contents are flushed.
	out.Close()

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return nil
}

// progressReader wraps an io.Reader and reports rate-limited progress.
type progressReader struct {
	reader       io.Reader
	totalSize    int64
	downloaded   int64
	onProgress   ProgressFunc
	lastReport   time.Time
	reportPeriod time.Duration
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.downloaded += int64(n)

		now := time.Now()
		if pr.reportPeriod == 0 {
			pr.reportPeriod = 500 * time.Millisecond
		}

		if pr.onProgress != nil && pr.totalSize > 0 && (now.Sub(pr.lastReport) >= pr.reportPeriod || err == io.EOF) {
			pr.lastReport = now
			pr.onProgress(float64(pr.downloaded) / float64(pr.totalSize) * 100)
		}
	}
	return n, err
}
