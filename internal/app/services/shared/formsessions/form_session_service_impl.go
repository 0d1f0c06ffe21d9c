package formsessions

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const formSessionKeyPrefix = "form_session:"

var (
	formSessionServiceInstance contracts.FormSessionService
	onceFormSessionService     sync.Once
)

type formSessionService struct {
	redisRepository contracts.RedisRepository
	ttl             time.Duration
}

func NewFormSessionService(redisRepository contracts.RedisRepository, ttlInMinutes int) contracts.FormSessionService {
	onceFormSessionService.Do(func() {
		formSessionServiceInstance = &formSessionService{
			redisRepository: redisRepository,
			ttl:             time.Duration(ttlInMinutes) * time.Minute,
		}
	})
	return formSessionServiceInstance
}

func (s *formSessionService) Save(ctx context.Context, session *models.FormSession) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.redisRepository.Set(ctx, buildKey(session.ID), sessionJSON, s.ttl)
}

func (s *formSessionService) Find(ctx context.Context, sessionID string) (*models.FormSession, error) {
	sessionJSON, err := s.redisRepository.Get(ctx, buildKey(sessionID))
	if err != nil {
		return nil, exceptions.ErrFormSessionNotFound(err)
	}

	session := new(models.FormSession)
	err = json.Unmarshal([]byte(sessionJSON), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *formSessionService) Delete(ctx context.Context, sessionID string) error {
	return s.redisRepository.Delete(ctx, buildKey(sessionID))
}

func buildKey(sessionID string) string {
	return fmt.Sprintf("%s%s", formSessionKeyPrefix, sessionID)
}
