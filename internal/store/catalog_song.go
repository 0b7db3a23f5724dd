package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/models"
)

// songKeyPrefix namespaces catalog documents inside Redis.
const songKeyPrefix = "song:"

// songCatalog is the Redis-backed implementation of [SongCatalog].
// Songs are stored as JSON documents under "song:<ulid>" keys; the
// catalog is document-style storage, deliberately outside the
// relational schema.
type songCatalog struct {
	client *redis.Client
	logger *logger.Logger
}

// NewSongCatalog connects to Redis using the configured URL, verifies
// the connection with a ping, and returns the catalog. A failure here
// is a startup error; callers are expected to treat it as fatal.
func NewSongCatalog(ctx context.Context, cfg config.Catalog, log *logger.Logger) (SongCatalog, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	log.Info().Str("func", "NewSongCatalog").Msg("connected to song catalog successfully")

	return &songCatalog{
		client: client,
		logger: log,
	}, nil
}

// AddSong stores the song under a freshly minted ULID and returns the
// ID.
func (c *songCatalog) AddSong(ctx context.Context, song models.Song) (string, error) {
	log := logger.FromContext(ctx)

	song.ID = ulid.Make().String()

	data, err := json.Marshal(song)
	if err != nil {
		return "", fmt.Errorf("marshal song: %w", err)
	}

	if err := c.client.Set(ctx, songKey(song.ID), data, 0).Err(); err != nil {
		log.Err(err).Str("func", "*songCatalog.AddSong").Str("song_id", song.ID).Msg("error: storing song")
		return "", fmt.Errorf("store song: %w", err)
	}

	return song.ID, nil
}

// GetSong retrieves a song document by ID.
// Returns [ErrSongNotFound] when the key does not exist or the stored
// document cannot be decoded.
func (c *songCatalog) GetSong(ctx context.Context, songID string) (models.Song, error) {
	log := logger.FromContext(ctx)

	data, err := c.client.Get(ctx, songKey(songID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Song{}, ErrSongNotFound
		}

		log.Err(err).Str("func", "*songCatalog.GetSong").Str("song_id", songID).Msg("error: fetching song")
		return models.Song{}, fmt.Errorf("fetch song: %w", err)
	}

	var song models.Song
	if err := json.Unmarshal(data, &song); err != nil {
		// Corrupted document is treated as missing, not as a server fault.
		log.Err(err).Str("func", "*songCatalog.GetSong").Str("song_id", songID).Msg("corrupted song document")
		return models.Song{}, ErrSongNotFound
	}

	return song, nil
}

// UpdateSong applies the non-nil fields of update to an existing song
// document.
// Returns [ErrEmptyUpdate] for an empty update and [ErrSongNotFound]
// when the song does not exist.
func (c *songCatalog) UpdateSong(ctx context.Context, songID string, update models.SongUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return ErrEmptyUpdate
	}

	song, err := c.GetSong(ctx, songID)
	if err != nil {
		return err
	}

	if update.Title != nil {
		song.Title = *update.Title
	}
	if update.Artist != nil {
		song.Artist = *update.Artist
	}
	if update.Genre != nil {
		song.Genre = *update.Genre
	}

	data, err := json.Marshal(song)
	if err != nil {
		return fmt.Errorf("marshal song: %w", err)
	}

	if err := c.client.Set(ctx, songKey(songID), data, 0).Err(); err != nil {
		log.Err(err).Str("func", "*songCatalog.UpdateSong").Str("song_id", songID).Msg("error: storing song")
		return fmt.Errorf("store song: %w", err)
	}

	return nil
}

// DeleteSong removes a song document.
// Returns [ErrSongNotFound] when the key does not exist.
func (c *songCatalog) DeleteSong(ctx context.Context, songID string) error {
	log := logger.FromContext(ctx)

	deleted, err := c.client.Del(ctx, songKey(songID)).Result()
	if err != nil {
		log.Err(err).Str("func", "*songCatalog.DeleteSong").Str("song_id", songID).Msg("error: deleting song")
		return fmt.Errorf("delete song: %w", err)
	}
	if deleted == 0 {
		return ErrSongNotFound
	}

	return nil
}

func songKey(songID string) string {
	return songKeyPrefix + songID
}
