package config

import (
	"flag"

	"scribe/models"
)

type Config struct {
	Variant   string
	ModelsDir string
	Language  string
	Translate bool
	Threads   int
	Audio     []string
}

func Load() *Config {
	variant := flag.String("model", models.DefaultVariantID(), "Model variant to use (tiny, base, small, ...)")
	modelsDir := flag.String("models", "models", "Directory for downloaded models")
	language := flag.String("lang", "auto", "Recognition language, or auto")
	translate := flag.Bool("translate", false, "Translate to English instead of transcribing")
	threads := flag.Int("threads", 0, "Inference threads (0 = engine default)")
	flag.Parse()

	return &Config{
		Variant:   *variant,
		ModelsDir: *modelsDir,
		Language:  *language,
		Translate: *translate,
		Threads:   *threads,
		Audio:     flag.Args(),
	}
}
