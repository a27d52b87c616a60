package usecase

import (
	"context"
	"time"

	"go-candidate-backend/pkg/logger"
)

// Pinger is satisfied by database.Mongo.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	store Pinger
}

func NewHealthUsecase(store Pinger) HealthUsecase {
	return &healthUsecase{store: store}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok"}
	if err := u.store.Ping(ctx); err != nil {
		status["status"] = "degraded"
		logger.Log.Warn("Health check failed", "error", err)
		status["database"] = "unavailable"
		return status, false
	}
	return status, true
}
