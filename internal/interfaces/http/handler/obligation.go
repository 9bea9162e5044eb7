package handler

import (
	"strconv"
	"time"

	financeapp "github.com/contas/backend/internal/application/finance"
	"github.com/contas/backend/internal/interfaces/http/dto"
	"github.com/contas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// ObligationHandler handles the contas-a-pagar-e-receber endpoints
type ObligationHandler struct {
	BaseHandler
	obligationService *financeapp.ObligationService
	currentYear       func() int
}

// NewObligationHandler creates a new ObligationHandler
func NewObligationHandler(obligationService *financeapp.ObligationService) *ObligationHandler {
	return &ObligationHandler{
		obligationService: obligationService,
		currentYear:       func() int { return time.Now().Year() },
	}
}

// Routes declares the contas-a-pagar-e-receber route group. The forecast
// path is declared before /:id.
func (h *ObligationHandler) Routes() *router.DomainGroup {
	routes := router.NewDomainGroup("obligation", "/contas-a-pagar-e-receber")
	routes.GET("", h.List).
		POST("", h.Create).
		GET("/previsao-gastos-do-mes", h.MonthlyForecast).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete).
		POST("/:id/baixar", h.Settle)
	return routes
}

// List godoc
// @Summary      List obligations
// @Tags         contas-a-pagar-e-receber
// @Produce      json
// @Success      200 {array} financeapp.ObligationResponse
// @Router       /contas-a-pagar-e-receber [get]
func (h *ObligationHandler) List(c *gin.Context) {
	items, err := h.obligationService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// MonthlyForecast godoc
// @Summary      Payable totals per month of a year
// @Tags         contas-a-pagar-e-receber
// @Produce      json
// @Param        ano query int false "Year, defaults to the current year"
// @Success      200 {array} financeapp.MonthlyForecastResponse
// @Failure      422 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber/previsao-gastos-do-mes [get]
func (h *ObligationHandler) MonthlyForecast(c *gin.Context) {
	year := h.currentYear()
	if raw, present := c.GetQuery("ano"); present {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.ValidationError(c, []dto.ValidationDetail{{Field: "ano", Message: "ano must be an integer"}})
			return
		}
		year = parsed
	}

	totals, err := h.obligationService.MonthlyForecast(c.Request.Context(), year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, totals)
}

// GetByID godoc
// @Summary      Get an obligation
// @Tags         contas-a-pagar-e-receber
// @Produce      json
// @Param        id path int true "Obligation ID"
// @Success      200 {object} financeapp.ObligationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber/{id} [get]
func (h *ObligationHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.obligationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create godoc
// @Summary      Create an obligation
// @Description  Fails with 422 when the counterparty does not exist or the
// @Description  forecast month already holds the monthly quota
// @Tags         contas-a-pagar-e-receber
// @Accept       json
// @Produce      json
// @Param        request body financeapp.ObligationRequest true "Obligation"
// @Success      201 {object} financeapp.ObligationResponse
// @Failure      422 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber [post]
func (h *ObligationHandler) Create(c *gin.Context) {
	var req financeapp.ObligationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.obligationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
// @Summary      Update an obligation
// @Description  data_previsao is accepted but not applied
// @Tags         contas-a-pagar-e-receber
// @Accept       json
// @Produce      json
// @Param        id path int true "Obligation ID"
// @Param        request body financeapp.ObligationRequest true "Obligation"
// @Success      200 {object} financeapp.ObligationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber/{id} [put]
func (h *ObligationHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req financeapp.ObligationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.obligationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
// @Summary      Delete an obligation
// @Tags         contas-a-pagar-e-receber
// @Param        id path int true "Obligation ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber/{id} [delete]
func (h *ObligationHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.obligationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Settle godoc
// @Summary      Settle an obligation for its full amount today
// @Tags         contas-a-pagar-e-receber
// @Produce      json
// @Param        id path int true "Obligation ID"
// @Success      200 {object} financeapp.ObligationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /contas-a-pagar-e-receber/{id}/baixar [post]
func (h *ObligationHandler) Settle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.obligationService.Settle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}
