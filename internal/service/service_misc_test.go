package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	svc := NewHealthService(checker, logger.Nop())

	gomock.InOrder(
		checker.EXPECT().Ping(gomock.Any()).Return(nil),
		checker.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	assert.NoError(t, svc.Check(context.Background()))
	assert.Error(t, svc.Check(context.Background()))
}

func TestAppInfoService_GetAppBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "", "abc"), logger.Nop())

	info := svc.GetAppBuildInfo(context.Background())
	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		NoteRepository: mock.NewMockNoteRepository(ctrl),
		HealthChecker:  mock.NewMockHealthChecker(ctrl),
	}

	services := NewServices(storages, config.StructuredConfig{App: testAppConfig}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.IsType(t, &NoteValidationService{}, services.NoteService)
	assert.NotNil(t, services.HealthService)
	assert.NotNil(t, services.AppInfoService)
}
