package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/settlement"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
)

type SettlementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(svc settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: svc}
}

// List implements SettlementHandler.
func (h *settlementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.settlementService.List(r.Context(), queryInt(r, "page"), queryInt(r, "page_size"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, result.Meta)
}

// Get implements SettlementHandler.
func (h *settlementHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.settlementService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
