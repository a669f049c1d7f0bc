package usecase

import (
	"context"

	"go-investment-backend/pkg/redis"
)

// HealthUsecase reports which backing services the API currently runs with.
// The site stays up without Redis, so the check never fails; it only names
// the degraded mode.
type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":       "ok",
		"rate_limiter": "in-memory",
	}
	if redis.Client() != nil {
		status["rate_limiter"] = "redis"
	}
	return status
}
