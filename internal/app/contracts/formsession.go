package contracts

import (
	"clinica-service/internal/app/models"
	"context"
)

// FormSessionService persists form sessions for the lifetime of an open
// modal. Save refreshes the TTL, so an active interaction never expires
// under the user.
type FormSessionService interface {
	Save(ctx context.Context, session *models.FormSession) error
	Find(ctx context.Context, sessionID string) (*models.FormSession, error)
	Delete(ctx context.Context, sessionID string) error
}
