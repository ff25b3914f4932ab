// Package config holds the binarizer defaults and reads the few settings
// that may come from the environment.
package config

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"strings"

	"github.com/ironsheep/image-binarize/internal/imaging"
	"github.com/joho/godotenv"
)

const (
	// DefaultThreshold is the binarization cutoff used when none is given.
	DefaultThreshold = 160

	// DefaultOutputPath is where save mode writes the composite.
	DefaultOutputPath = "resultado.png"

	// DefaultWindowTitle is the preview window title.
	DefaultWindowTitle = "Binarização da imagem"

	// DefaultLogLevel keeps normal runs quiet on stderr.
	DefaultLogLevel = "warn"

	// LogLevelEnv names the environment variable that sets the log level.
	LogLevelEnv = "BINARIZE_LOG_LEVEL"
)

// Config carries the settings for one run.
type Config struct {
	Threshold   int
	BlurSize    image.Point
	OutputPath  string
	WindowTitle string
	LogLevel    string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Threshold:   DefaultThreshold,
		BlurSize:    imaging.DefaultKernel,
		OutputPath:  DefaultOutputPath,
		WindowTitle: DefaultWindowTitle,
		LogLevel:    DefaultLogLevel,
	}
}

// Load returns Default with environment overrides applied.
//
// A .env file in the working directory is read first if it exists; values
// already set in the process environment win over it. A missing .env file is
// not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Default()
	if level := strings.TrimSpace(os.Getenv(LogLevelEnv)); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	return cfg, nil
}
