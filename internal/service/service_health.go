package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type healthService struct {
	checker store.HealthChecker
	logger  *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

// Check reports whether the database answers a ping.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
