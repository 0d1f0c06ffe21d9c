package formsessions

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRedisRepository struct {
	values  map[string]string
	lastTTL time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.lastTTL = exp
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	default:
		f.values[key] = fmt.Sprintf("%v", v)
	}
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", errors.New("redis: nil")
	}
	return value, nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestFormSessionService(t *testing.T) {
	ctx := context.Background()
	repository := newFakeRedisRepository()
	service := &formSessionService{redisRepository: repository, ttl: 30 * time.Minute}

	patientID := int64(1)
	session := &models.FormSession{
		ID:   "abc-123",
		Mode: constvars.FormModeEdit,
		Fields: models.FormFields{
			PacienteID: &patientID,
			DataHora:   "2024-06-20T14:30",
			Status:     constvars.AppointmentStatusScheduled,
		},
		PlanLabel: constvars.PlanLabelActive,
		PlanName:  "Plano Ouro",
		OpenedAt:  time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Save and Find round-trip", func(t *testing.T) {
		assert.NoError(t, service.Save(ctx, session))
		assert.Equal(t, 30*time.Minute, repository.lastTTL)

		found, err := service.Find(ctx, "abc-123")
		assert.NoError(t, err)
		assert.Equal(t, session.Mode, found.Mode)
		assert.Equal(t, session.Fields, found.Fields)
		assert.Equal(t, session.PlanLabel, found.PlanLabel)
		assert.Equal(t, session.PlanName, found.PlanName)
	})

	t.Run("Find on a missing session reports not found", func(t *testing.T) {
		_, err := service.Find(ctx, "never-saved")
		assert.Error(t, err)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		assert.NoError(t, service.Delete(ctx, "abc-123"))

		_, err := service.Find(ctx, "abc-123")
		assert.Error(t, err)
	})
}
