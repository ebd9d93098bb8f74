package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Tom0603/SoftwareEngineering-Lecture/config"
)

// ErrNotFound is returned by Download when no image exists for the listing.
var ErrNotFound = errors.New("image not found")

// ImageStore keeps listing PNGs keyed by "<listing id>.png".
type ImageStore interface {
	Upload(ctx context.Context, listingID string, png []byte) error
	Download(ctx context.Context, listingID string) ([]byte, error)
	// Delete removes the image. Deleting an absent key is not an error.
	Delete(ctx context.Context, listingID string) error
}

type redisImageStore struct {
	client *redis.Client
}

func NewRedisImageStore(client *redis.Client) ImageStore {
	return &redisImageStore{client: client}
}

// NewRedisClient builds a client from config. Callers should Ping before use.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func key(listingID string) string { return listingID + ".png" }

func (s *redisImageStore) Upload(ctx context.Context, listingID string, png []byte) error {
	return s.client.Set(ctx, key(listingID), png, 0).Err()
}

func (s *redisImageStore) Download(ctx context.Context, listingID string) ([]byte, error) {
	data, err := s.client.Get(ctx, key(listingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisImageStore) Delete(ctx context.Context, listingID string) error {
	return s.client.Del(ctx, key(listingID)).Err()
}
