package http

import (
	"net/http"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/leave"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
)

type LeaveHandler interface {
	TeamCalendar(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(svc leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: svc}
}

// TeamCalendar implements LeaveHandler.
func (h *leaveHandlerImpl) TeamCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := queryMonth(r)
	result, err := h.leaveService.TeamCalendar(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
