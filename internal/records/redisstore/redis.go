// Package redisstore is the Redis-backed record store for deployments that
// run more than one API instance. Records live in one Redis list so creation
// order is preserved without extra indexing.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tripledger/internal/core"
)

const recordsKey = "tripledger:records"

type Store struct {
	client *redis.Client
}

func New(addr, password string, db int) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) List(ctx context.Context) ([]core.ManualRecord, error) {
	raw, err := s.client.LRange(ctx, recordsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read records list: %w", err)
	}

	out := make([]core.ManualRecord, 0, len(raw))
	for _, item := range raw {
		var rec core.ManualRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode stored record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) Add(ctx context.Context, r core.NewRecord) (core.ManualRecord, error) {
	if err := r.Validate(); err != nil {
		return core.ManualRecord{}, err
	}
	cat, err := core.ParseCategory(r.Category)
	if err != nil {
		return core.ManualRecord{}, err
	}

	rec := core.ManualRecord{
		ID:          uuid.NewString(),
		Category:    cat,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Amount:      r.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return core.ManualRecord{}, fmt.Errorf("encode record: %w", err)
	}
	if err := s.client.RPush(ctx, recordsKey, data).Err(); err != nil {
		return core.ManualRecord{}, fmt.Errorf("store record: %w", err)
	}
	return rec, nil
}

func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.client.Del(ctx, recordsKey).Err(); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
