// Package models locates and downloads whisper.cpp ggml model weights.
package models

import "strings"

// Variant describes one downloadable model size configuration. Entries are
// immutable once resolved from the catalog.
type Variant struct {
	ID        string // catalog identifier: "tiny", "base-q5", ...
	Name      string // display name
	Filename  string // canonical file name: "ggml-tiny.bin"
	URL       string // fixed download URL
	SizeBytes int64  // approximate size, for progress reporting
}

// Catalog lists every known model variant.
var Catalog = []Variant{
	{
		ID:        "tiny",
		Name:      "Tiny",
		Filename:  "ggml-tiny.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-tiny.bin",
		SizeBytes: 77_691_713,
	},
	{
		ID:        "tiny-q5",
		Name:      "Tiny Q5",
		Filename:  "ggml-tiny-q5_1.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-tiny-q5_1.bin",
		SizeBytes: 32_166_155,
	},
	{
		ID:        "base",
		Name:      "Base",
		Filename:  "ggml-base.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base.bin",
		SizeBytes: 147_951_465,
	},
	{
		ID:        "base-q5",
		Name:      "Base Q5",
		Filename:  "ggml-base-q5_1.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-base-q5_1.bin",
		SizeBytes: 59_707_625,
	},
	{
		ID:        "small",
		Name:      "Small",
		Filename:  "ggml-small.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small.bin",
		SizeBytes: 487_601_967,
	},
	{
		ID:        "small-q5",
		Name:      "Small Q5",
		Filename:  "ggml-small-q5_1.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-small-q5_1.bin",
		SizeBytes: 190_085_487,
	},
	{
		ID:        "medium",
		Name:      "Medium",
		Filename:  "ggml-medium.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-medium.bin",
		SizeBytes: 1_533_774_781,
	},
	{
		ID:        "large-v3",
		Name:      "Large V3",
		Filename:  "ggml-large-v3.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3.bin",
		SizeBytes: 3_094_623_691,
	},
	{
		ID:        "large-v3-turbo",
		Name:      "Large V3 Turbo",
		Filename:  "ggml-large-v3-turbo.bin",
		URL:       "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3-turbo.bin",
		SizeBytes: 1_624_417_792,
	},
}

// DefaultVariantID is the variant used when the caller does not care.
func DefaultVariantID() string {
	return "base"
}

// Lookup resolves a variant identifier against the catalog. Matching is
// case-insensitive so "Tiny" and "tiny" name the same entry.
func Lookup(id string) (Variant, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, v := range Catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Variants returns the identifiers of every catalog entry.
func Variants() []string {
	ids := make([]string, 0, len(Catalog))
	for _, v := range Catalog {
		ids = append(ids, v.ID)
	}
	return ids
}
