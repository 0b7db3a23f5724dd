package service

import (
	"context"
	"fmt"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

type catalogService struct {
	songCatalog store.SongCatalog
	logger      *logger.Logger
}

// NewCatalogService creates a CatalogService over the document-style
// song catalog.
func NewCatalogService(songCatalog store.SongCatalog, logger *logger.Logger) CatalogService {
	return &catalogService{songCatalog: songCatalog, logger: logger}
}

func (s *catalogService) AddSong(ctx context.Context, song models.Song) (string, error) {
	if song.Title == "" || song.Artist == "" {
		return "", fmt.Errorf("%w: title and artist are required", ErrInvalidDataProvided)
	}

	songID, err := s.songCatalog.AddSong(ctx, song)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("title", song.Title).Msg("song insertion failed")
		return "", fmt.Errorf("error occurred during adding song: %w", err)
	}

	return songID, nil
}

func (s *catalogService) GetSong(ctx context.Context, songID string) (models.Song, error) {
	if songID == "" {
		return models.Song{}, fmt.Errorf("%w: song id is required", ErrInvalidDataProvided)
	}
	return s.songCatalog.GetSong(ctx, songID)
}

func (s *catalogService) UpdateSong(ctx context.Context, songID string, update models.SongUpdate) error {
	if songID == "" {
		return fmt.Errorf("%w: song id is required", ErrInvalidDataProvided)
	}
	if update.Empty() {
		return fmt.Errorf("%w: update carries no fields", ErrInvalidDataProvided)
	}
	return s.songCatalog.UpdateSong(ctx, songID, update)
}

func (s *catalogService) DeleteSong(ctx context.Context, songID string) error {
	if songID == "" {
		return fmt.Errorf("%w: song id is required", ErrInvalidDataProvided)
	}
	return s.songCatalog.DeleteSong(ctx, songID)
}
