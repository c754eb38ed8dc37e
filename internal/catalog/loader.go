package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading seed files from the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a gzipped seed file with one JSON menu entry per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]RawItem, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open menu seed file")
		return nil, fmt.Errorf("failed to open menu seed file %s: %w", filePath, err)
	}
	defer file.Close()

	items, err := decodeSeed(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read menu seed file")
		return nil, fmt.Errorf("failed to read menu seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("menu seed file loaded successfully")

	return items, nil
}
