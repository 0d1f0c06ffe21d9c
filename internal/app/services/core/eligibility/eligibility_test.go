package eligibility

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, loc)

	t.Run("Patient without plan is ineligible", func(t *testing.T) {
		patient := &models.Patient{ID: 1, Nome: "Ana"}

		result := Evaluate(patient, now, loc)

		assert.Equal(t, constvars.PlanLabelNone, result.Label)
		assert.False(t, result.Eligible)
		assert.Empty(t, result.PlanName)
	})

	t.Run("Nil patient is ineligible", func(t *testing.T) {
		result := Evaluate(nil, now, loc)

		assert.Equal(t, constvars.PlanLabelNone, result.Label)
		assert.False(t, result.Eligible)
	})

	t.Run("Status ativo overrides an expired validity date", func(t *testing.T) {
		patient := &models.Patient{
			ID: 1,
			PlanoSaude: &models.HealthPlan{
				ID:       7,
				Nome:     "Plano Ouro",
				Validade: "2020-01-01",
				Status:   constvars.PlanStatusActiveMarker,
			},
		}

		result := Evaluate(patient, now, loc)

		assert.Equal(t, constvars.PlanLabelActive, result.Label)
		assert.True(t, result.Eligible)
		assert.Equal(t, "Plano Ouro", result.PlanName)
	})

	t.Run("Explicit non-ativo status overrides a future validity date", func(t *testing.T) {
		patient := &models.Patient{
			ID: 1,
			PlanoSaude: &models.HealthPlan{
				ID:       7,
				Nome:     "Plano Ouro",
				Validade: "2030-01-01",
				Status:   "inativo",
			},
		}

		result := Evaluate(patient, now, loc)

		assert.Equal(t, constvars.PlanLabelExpired, result.Label)
		assert.False(t, result.Eligible)
		assert.Equal(t, "Plano Ouro", result.PlanName)
	})

	t.Run("Plan valid in the future is eligible", func(t *testing.T) {
		patient := &models.Patient{
			ID:         1,
			PlanoSaude: &models.HealthPlan{ID: 7, Nome: "Plano Prata", Validade: "2025-01-01"},
		}

		result := Evaluate(patient, now, loc)

		assert.Equal(t, constvars.PlanLabelActive, result.Label)
		assert.True(t, result.Eligible)
	})

	t.Run("Plan expired in the past is ineligible but keeps its name", func(t *testing.T) {
		patient := &models.Patient{
			ID:         1,
			PlanoSaude: &models.HealthPlan{ID: 7, Nome: "Plano Bronze", Validade: "2024-06-14"},
		}

		result := Evaluate(patient, now, loc)

		assert.Equal(t, constvars.PlanLabelExpired, result.Label)
		assert.False(t, result.Eligible)
		assert.Equal(t, "Plano Bronze", result.PlanName)
	})
}

func TestIsPlanActive(t *testing.T) {
	loc := time.UTC

	t.Run("Plan expiring today is still active until midnight", func(t *testing.T) {
		plan := &models.HealthPlan{Validade: "2024-06-15"}
		now := time.Date(2024, 6, 15, 23, 59, 0, 0, loc)

		assert.True(t, IsPlanActive(plan, now, loc))
	})

	t.Run("Plan is expired the day after its validity date", func(t *testing.T) {
		plan := &models.HealthPlan{Validade: "2024-06-15"}
		now := time.Date(2024, 6, 16, 0, 0, 1, 0, loc)

		assert.False(t, IsPlanActive(plan, now, loc))
	})

	t.Run("Leap day validity parses and compares correctly", func(t *testing.T) {
		plan := &models.HealthPlan{Validade: "2024-02-29"}

		assert.True(t, IsPlanActive(plan, time.Date(2024, 2, 29, 12, 0, 0, 0, loc), loc))
		assert.False(t, IsPlanActive(plan, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), loc))
	})

	t.Run("Any explicit status other than ativo is inactive regardless of date", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)

		for _, status := range []string{"inativo", "suspenso", "cancelado"} {
			plan := &models.HealthPlan{Validade: "2030-01-01", Status: status}
			assert.False(t, IsPlanActive(plan, now, loc), status)
		}
	})

	t.Run("Unparseable validity date counts as expired", func(t *testing.T) {
		plan := &models.HealthPlan{Validade: "15/06/2024"}
		now := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)

		assert.False(t, IsPlanActive(plan, now, loc))
	})

	t.Run("Nil plan is never active", func(t *testing.T) {
		assert.False(t, IsPlanActive(nil, time.Now(), loc))
	})
}
