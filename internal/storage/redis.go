package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"reeves-booking/internal/domain"
)

// RedisStore backs the persisted cart, auth sessions, order
// idempotency markers and popularity counters.
type RedisStore struct {
	Client     *redis.Client
	CartTTL    time.Duration
	SessionTTL time.Duration
	MarkerTTL  time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client:     client,
		CartTTL:    7 * 24 * time.Hour,
		SessionTTL: 24 * time.Hour,
		MarkerTTL:  24 * time.Hour,
	}
}

func cartKey(sessionKey string) string {
	return "cart:" + sessionKey
}

func (s *RedisStore) Save(ctx context.Context, key string, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKey(key), payload, s.CartTTL).Err()
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]domain.CartLine, error) {
	payload, err := s.Client.Get(ctx, cartKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		// Corrupt payload degrades to an empty cart.
		return nil, nil
	}
	return lines, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) PutSession(ctx context.Context, token string, sess domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKey(token), payload, s.SessionTTL).Err()
}

// GetSession returns nil without error when the token is unknown or
// expired.
func (s *RedisStore) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisStore) OrderMarkerKey(orderID string) string {
	return "order:" + orderID
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *RedisStore) SetMarker(ctx context.Context, key string) error {
	return s.Client.Set(ctx, key, "1", s.MarkerTTL).Err()
}

// ItemScore pairs a menu item with its popularity score.
type ItemScore struct {
	ItemID string  `json:"item_id"`
	Score  float64 `json:"score"`
}

// RecordOrder bumps daily and all-time popularity counters for every
// item in the order.
func (s *RedisStore) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := "analytics:daily:" + today
	for _, item := range event.Items {
		if err := s.Client.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.ItemID).Err(); err != nil {
			return err
		}
		if err := s.Client.ZIncrBy(ctx, "analytics:alltime", float64(item.Quantity), item.ItemID).Err(); err != nil {
			return err
		}
	}
	s.Client.Expire(ctx, dailyKey, 7*24*time.Hour)
	s.Client.IncrByFloat(ctx, "analytics:revenue:"+today, float64(event.Total))
	return nil
}

// TopItems returns the highest-scoring items all time.
func (s *RedisStore) TopItems(ctx context.Context, limit int64) ([]ItemScore, error) {
	members, err := s.Client.ZRevRangeWithScores(ctx, "analytics:alltime", 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	scores := make([]ItemScore, 0, len(members))
	for _, member := range members {
		id, ok := member.Member.(string)
		if !ok {
			id = strconv.FormatInt(int64(member.Score), 10)
		}
		scores = append(scores, ItemScore{ItemID: id, Score: member.Score})
	}
	return scores, nil
}
