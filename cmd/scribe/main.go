package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"scribe/internal/config"
	"scribe/models"
	"scribe/transcribe"
)

func main() {
	cfg := config.Load()
	if len(cfg.Audio) == 0 {
		fmt.Fprintln(os.Stderr, "usage: scribe [flags] <audio file> ...")
		os.Exit(2)
	}

	handle, err := models.ProvisionWithProgress(context.Background(), cfg.Variant, cfg.ModelsDir, func(progress float64) {
		log.Printf("Downloading %s: %.0f%%", cfg.Variant, progress)
	})
	if err != nil {
		log.Fatalf("Provisioning failed: %v", err)
	}

	t, err := transcribe.New(handle)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer t.Close()

	params := &transcribe.Params{
		Language:  cfg.Language,
		Translate: cfg.Translate,
		Threads:   cfg.Threads,
	}

	for _, path := range cfg.Audio {
		result, err := t.Transcribe(path, params)
		if err != nil {
			log.Fatalf("Transcription of %s failed: %v", path, err)
		}
		for _, seg := range result.Segments() {
			fmt.Printf("start[%d]-end[%d] %s\n", seg.Start, seg.End, seg.Text)
		}
	}
}
