package http

import (
	"net/http"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/dashboard"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetLeaveSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: svc}
}

// GetDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary implements DashboardHandler.
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetLeaveSummary implements DashboardHandler.
func (h *dashboardHandlerImpl) GetLeaveSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetLeaveSummary(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
