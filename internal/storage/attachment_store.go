package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrAttachmentNotFound indicates no blob exists under the key.
var ErrAttachmentNotFound = errors.New("attachment not found")

// AttachmentStore keeps ticket attachment blobs keyed by a path scoped
// under the owning ticket's id, the same layout the original app used in
// its object-storage bucket.
type AttachmentStore interface {
	Put(ctx context.Context, ticketID, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, key string) error
}

type redisAttachmentStore struct {
	client *redis.Client
}

// NewAttachmentStore builds a Redis-backed blob store.
func NewAttachmentStore(client *redis.Client) AttachmentStore {
	return &redisAttachmentStore{client: client}
}

func (s *redisAttachmentStore) Put(ctx context.Context, ticketID, contentType string, data []byte) (string, error) {
	key := attachmentKey(ticketID)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, key+":content_type", contentType, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return key, nil
}

func (s *redisAttachmentStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", ErrAttachmentNotFound
		}
		return nil, "", err
	}
	contentType, err := s.client.Get(ctx, key+":content_type").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

func (s *redisAttachmentStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key, key+":content_type").Err()
}

func attachmentKey(ticketID string) string {
	return fmt.Sprintf("tickets/%s/attachment", ticketID)
}
