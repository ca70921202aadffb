package system_healthcheck

import (
	"context"
	"time"

	"taskhive/internal/cache"
	"taskhive/internal/storage"
)

type HealthcheckService struct{}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// CheckHealth probes the database and the cache. Any failing probe
// degrades the overall status.
func (s *HealthcheckService) CheckHealth() *HealthStatus {
	status := &HealthStatus{
		Status:   "ok",
		Database: "ok",
		Cache:    "ok",
	}

	if err := s.checkDatabase(); err != nil {
		status.Status = "degraded"
		status.Database = err.Error()
	}

	if err := s.checkCache(); err != nil {
		status.Status = "degraded"
		status.Cache = err.Error()
	}

	return status
}

func (s *HealthcheckService) checkDatabase() error {
	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDb.PingContext(ctx)
}

func (s *HealthcheckService) checkCache() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client := cache.GetCache()

	return client.Do(ctx, client.B().Ping().Build()).Error()
}
