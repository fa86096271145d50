package quiz

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/edukit/coursed/internal/platform/cache"
)

const (
	redisKeyPrefix   = "quiz:"
	redisFieldPrefix = "f:"
	metaSectionID    = "section_id"
	metaSubID        = "sub_id"
)

// RedisStore is a Redis-backed AnswerStore. Each instance is one hash;
// selections live under a field prefix next to the instance metadata so a
// reset can clear choices without dropping the instance.
type RedisStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed answer store. States expire after
// ttl, matching the transient lifetime of a quiz instance.
func NewRedisStore(c *cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, state AnswerState) (string, error) {
	id := generateID()
	key := redisKeyPrefix + id

	fields := map[string]any{
		metaSectionID: state.SectionID,
		metaSubID:     state.SubID,
	}
	for field, option := range state.Selections {
		fields[redisFieldPrefix+field] = strconv.Itoa(option)
	}

	if err := s.cache.Client.HSet(ctx, key, fields).Err(); err != nil {
		return "", fmt.Errorf("creating quiz instance: %w", err)
	}
	if err := s.cache.Client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("setting quiz instance expiry: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*AnswerState, error) {
	values, err := s.cache.Client.HGetAll(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		return nil, fmt.Errorf("reading quiz instance: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("quiz instance not found: %s", id)
	}

	state := &AnswerState{Selections: make(map[string]int)}
	for field, value := range values {
		switch field {
		case metaSectionID:
			state.SectionID = value
		case metaSubID:
			state.SubID = value
		default:
			name, ok := strings.CutPrefix(field, redisFieldPrefix)
			if !ok {
				continue
			}
			option, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			state.Selections[name] = option
		}
	}
	return state, nil
}

func (s *RedisStore) Select(ctx context.Context, id, field string, option int) error {
	key := redisKeyPrefix + id

	exists, err := s.cache.Client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("checking quiz instance: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("quiz instance not found: %s", id)
	}

	if err := s.cache.Client.HSet(ctx, key, redisFieldPrefix+field, strconv.Itoa(option)).Err(); err != nil {
		return fmt.Errorf("recording selection: %w", err)
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context, id string) error {
	key := redisKeyPrefix + id

	fields, err := s.cache.Client.HKeys(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("listing quiz instance fields: %w", err)
	}
	if len(fields) == 0 {
		return fmt.Errorf("quiz instance not found: %s", id)
	}

	var selections []string
	for _, field := range fields {
		if strings.HasPrefix(field, redisFieldPrefix) {
			selections = append(selections, field)
		}
	}
	if len(selections) == 0 {
		return nil
	}
	if err := s.cache.Client.HDel(ctx, key, selections...).Err(); err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	return nil
}
