package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gift-xipu/fitness-calculaor/metrics"
	"github.com/gift-xipu/fitness-calculaor/middlewares"
	"github.com/gift-xipu/fitness-calculaor/models"
	"github.com/gift-xipu/fitness-calculaor/services"

	"github.com/gin-gonic/gin"
)

const (
	errCalculationFailed  = "Calculation failed"
	msgInvalidCalculation = "Invalid calculation type"
)

type CalculatorController struct {
	Svc *services.CalculatorService
}

func NewCalculatorController(svc *services.CalculatorService) *CalculatorController {
	return &CalculatorController{Svc: svc}
}

// Calculate handles POST /api/fitness.
func (h *CalculatorController) Calculate(c *gin.Context) {
	var req models.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[%s] bad calculation body: %v", middlewares.RequestID(c), err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errCalculationFailed, Message: err.Error()})
		return
	}

	status, body := h.evaluate(req)
	if status != http.StatusOK {
		log.Printf("[%s] calculation %q rejected", middlewares.RequestID(c), req.Calculation)
	}
	c.JSON(status, body)
}

// Calculations handles GET /api/fitness/calculations.
func (h *CalculatorController) Calculations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"calculations": h.Svc.Catalog()})
}

// evaluate runs req and returns the HTTP status and envelope for it. The
// websocket channel sends the same envelopes.
func (h *CalculatorController) evaluate(req models.CalculationRequest) (int, any) {
	start := time.Now()
	result, err := h.Svc.Evaluate(req)
	metrics.ObserveCalculation(req.Calculation, err == nil, time.Since(start))
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedCalculation) {
			return http.StatusBadRequest, models.ErrorResponse{Error: errCalculationFailed, Message: msgInvalidCalculation}
		}
		return http.StatusBadRequest, models.ErrorResponse{Error: errCalculationFailed, Message: err.Error()}
	}
	return http.StatusOK, models.CalculationResponse{Result: result}
}
