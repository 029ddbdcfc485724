package balance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	balanceCacheKeyPrefix = "soldes:employee:"
	balanceCacheTTL       = 60 * time.Second
)

func CacheKey(employeeID string) string {
	return balanceCacheKeyPrefix + employeeID
}

// InvalidateCache drops the cached balance list of one employee. Called
// after every debit, credit or upsert; a miss on the next read repopulates.
func InvalidateCache(ctx context.Context, rdb *redis.Client, employeeID string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, CacheKey(employeeID)).Err()
}

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]BalanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]BalanceResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]BalanceResponse, error) {
	balances, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(balances), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]BalanceResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CacheKey(employeeID)).Result(); err == nil {
			var resp []BalanceResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent misses for the same employee into one DB read.
	v, err, _ := s.sf.Do(employeeID, func() (any, error) {
		balances, err := s.repo.FindAllByEmployee(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(balances)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, CacheKey(employeeID), payload, balanceCacheTTL).Err(); err != nil {
					s.logger.Warn("cache balance list failed",
						zap.String("employee_id", employeeID),
						zap.Error(err),
					)
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]BalanceResponse), nil
}
