package handler

import (
	financeapp "github.com/contas/backend/internal/application/finance"
	partnerapp "github.com/contas/backend/internal/application/partner"
	"github.com/contas/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// CounterpartyHandler handles the fornecedor-cliente endpoints
type CounterpartyHandler struct {
	BaseHandler
	counterpartyService *partnerapp.CounterpartyService
	obligationService   *financeapp.ObligationService
}

// NewCounterpartyHandler creates a new CounterpartyHandler
func NewCounterpartyHandler(
	counterpartyService *partnerapp.CounterpartyService,
	obligationService *financeapp.ObligationService,
) *CounterpartyHandler {
	return &CounterpartyHandler{
		counterpartyService: counterpartyService,
		obligationService:   obligationService,
	}
}

// Routes declares the fornecedor-cliente route group
func (h *CounterpartyHandler) Routes() *router.DomainGroup {
	routes := router.NewDomainGroup("counterparty", "/fornecedor-cliente")
	routes.GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete).
		GET("/:id/contas-a-pagar-e-receber", h.ListObligations)
	return routes
}

// List godoc
// @Summary      List counterparties
// @Tags         fornecedor-cliente
// @Produce      json
// @Success      200 {array} partnerapp.CounterpartyResponse
// @Router       /fornecedor-cliente [get]
func (h *CounterpartyHandler) List(c *gin.Context) {
	items, err := h.counterpartyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID godoc
// @Summary      Get a counterparty
// @Tags         fornecedor-cliente
// @Produce      json
// @Param        id path int true "Counterparty ID"
// @Success      200 {object} partnerapp.CounterpartyResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /fornecedor-cliente/{id} [get]
func (h *CounterpartyHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.counterpartyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create godoc
// @Summary      Create a counterparty
// @Tags         fornecedor-cliente
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CounterpartyRequest true "Counterparty"
// @Success      201 {object} partnerapp.CounterpartyResponse
// @Failure      422 {object} dto.ErrorResponse
// @Router       /fornecedor-cliente [post]
func (h *CounterpartyHandler) Create(c *gin.Context) {
	var req partnerapp.CounterpartyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.counterpartyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
// @Summary      Rename a counterparty
// @Tags         fornecedor-cliente
// @Accept       json
// @Produce      json
// @Param        id path int true "Counterparty ID"
// @Param        request body partnerapp.CounterpartyRequest true "Counterparty"
// @Success      200 {object} partnerapp.CounterpartyResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Router       /fornecedor-cliente/{id} [put]
func (h *CounterpartyHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req partnerapp.CounterpartyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.counterpartyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
// @Summary      Delete a counterparty
// @Tags         fornecedor-cliente
// @Param        id path int true "Counterparty ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /fornecedor-cliente/{id} [delete]
func (h *CounterpartyHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.counterpartyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListObligations godoc
// @Summary      List the obligations of a counterparty
// @Tags         fornecedor-cliente
// @Produce      json
// @Param        id path int true "Counterparty ID"
// @Success      200 {array} financeapp.ObligationResponse
// @Router       /fornecedor-cliente/{id}/contas-a-pagar-e-receber [get]
func (h *CounterpartyHandler) ListObligations(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	items, err := h.obligationService.ListByCounterparty(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
