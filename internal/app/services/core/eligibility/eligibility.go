package eligibility

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/utils"
	"time"
)

// Result classifies a patient's health-plan coverage at a given instant.
// Label drives the form's eligibility notice; Eligible gates submission.
type Result struct {
	Label    string
	PlanName string
	Eligible bool
}

// Evaluate applies the coverage rule for scheduling: a patient without a
// plan is ineligible, a plan with an explicit status is eligible only when
// that status is "ativo" (its validity date is ignored either way), and a
// plan without a status must still be valid on the current day.
func Evaluate(patient *models.Patient, now time.Time, loc *time.Location) Result {
	if patient == nil || patient.PlanoSaude == nil {
		return Result{Label: constvars.PlanLabelNone}
	}

	plan := patient.PlanoSaude
	if IsPlanActive(plan, now, loc) {
		return Result{Label: constvars.PlanLabelActive, PlanName: plan.Nome, Eligible: true}
	}
	return Result{Label: constvars.PlanLabelExpired, PlanName: plan.Nome}
}

// IsPlanActive reports whether the plan covers the day that contains now.
// An explicit status settles the question on its own: "ativo" is active,
// anything else is inactive, the validity date is never consulted. Without
// a status the validity date decides, inclusive: a plan expiring today is
// still active until midnight. An unparseable validity date counts as
// expired.
func IsPlanActive(plan *models.HealthPlan, now time.Time, loc *time.Location) bool {
	if plan == nil {
		return false
	}
	if plan.Status != "" {
		return plan.Status == constvars.PlanStatusActiveMarker
	}

	validade, err := time.ParseInLocation(time.DateOnly, plan.Validade, loc)
	if err != nil {
		return false
	}
	return !utils.EndOfDay(validade).Before(utils.StartOfDay(now.In(loc)))
}
