package controllers

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HealthPlanController struct {
	Log               *zap.Logger
	HealthPlanUsecase contracts.HealthPlanUsecase
}

var (
	healthPlanControllerInstance *HealthPlanController
	onceHealthPlanController     sync.Once
)

func NewHealthPlanController(logger *zap.Logger, healthPlanUsecase contracts.HealthPlanUsecase) *HealthPlanController {
	onceHealthPlanController.Do(func() {
		healthPlanControllerInstance = &HealthPlanController{
			Log:               logger,
			HealthPlanUsecase: healthPlanUsecase,
		}
	})
	return healthPlanControllerInstance
}

func (ctrl *HealthPlanController) FindByID(w http.ResponseWriter, r *http.Request) {
	planID, err := parseIDParam(r, constvars.URLParamPlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plan, err := ctrl.HealthPlanUsecase.FindByID(ctx, planID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthPlanGetSuccess, plan)
}

func (ctrl *HealthPlanController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateHealthPlan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plan, err := ctrl.HealthPlanUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.HealthPlanCreatedSuccess, plan)
}

func (ctrl *HealthPlanController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	planID, err := parseIDParam(r, constvars.URLParamPlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateHealthPlan)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ID = planID

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	plan, err := ctrl.HealthPlanUsecase.Update(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthPlanUpdatedSuccess, plan)
}
