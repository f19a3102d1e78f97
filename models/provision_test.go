package models

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// withTestVariant registers a catalog entry pointing at a test server and
// removes it again when the test finishes.
func withTestVariant(t *testing.T, url string) string {
	t.Helper()

	const id = "test-variant"
	Catalog = append(Catalog, Variant{
		ID:        id,
		Name:      "Test",
		Filename:  "ggml-test.bin",
		URL:       url,
		SizeBytes: 16,
	})
	t.Cleanup(func() {
		Catalog = Catalog[:len(Catalog)-1]
	})
	return id
}

func TestProvisionUnknownVariant(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()
	withTestVariant(t, srv.URL+"/model.bin")

	_, err := Provision(context.Background(), "no-such-model", t.TempDir())
	require.ErrorIs(t, err, ErrUnknownVariant)
	require.Equal(t, int64(0), hits.Load(), "lookup failure must not touch the network")
}

func TestProvisionDownloadsOnce(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("fake model weights"))
	}))
	defer srv.Close()
	id := withTestVariant(t, srv.URL+"/model.bin")

	dir := t.TempDir()

	first, err := Provision(context.Background(), id, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "ggml-test.bin"), first.Path())

	data, err := os.ReadFile(first.Path())
	require.NoError(t, err)
	require.Equal(t, "fake model weights", string(data))

	// Second call must see the existing file and skip the fetch.
	second, err := Provision(context.Background(), id, dir)
	require.NoError(t, err)
	require.Equal(t, first.Path(), second.Path())
	require.Equal(t, int64(1), hits.Load())
}

func TestProvisionCaseInsensitiveVariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer srv.Close()
	withTestVariant(t, srv.URL+"/model.bin")

	dir := t.TempDir()
	handle, err := Provision(context.Background(), "Test-Variant", dir)
	require.NoError(t, err)
	require.Equal(t, "test-variant", handle.Variant().ID)
}

func TestProvisionServerErrorLeavesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	id := withTestVariant(t, srv.URL+"/model.bin")

	dir := t.TempDir()
	_, err := Provision(context.Background(), id, dir)
	require.Error(t, err)
	require.ErrorContains(t, err, "bad status")

	// A failed fetch must not leave anything a later existence check could
	// mistake for a model file.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
	require.False(t, IsDownloaded(id, dir))
}

func TestProvisionCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer srv.Close()
	id := withTestVariant(t, srv.URL+"/model.bin")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := Provision(ctx, id, dir)
	require.Error(t, err)
	require.False(t, IsDownloaded(id, dir))
}

func TestProvisionProgressReported(t *testing.T) {
	payload := strings.Repeat("w", 1<<16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()
	id := withTestVariant(t, srv.URL+"/model.bin")

	var last float64
	_, err := ProvisionWithProgress(context.Background(), id, t.TempDir(), func(progress float64) {
		last = progress
	})
	require.NoError(t, err)
	require.Equal(t, float64(100), last)
}

func TestLookup(t *testing.T) {
	for _, id := range Variants() {
		v, ok := Lookup(id)
		require.True(t, ok, id)
		require.Equal(t, id, v.ID)
		require.NotEmpty(t, v.URL)
		require.NotEmpty(t, v.Filename)
	}

	_, ok := Lookup("turbo-xxl")
	require.False(t, ok)
}
