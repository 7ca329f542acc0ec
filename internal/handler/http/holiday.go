package http

import (
	"net/http"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/domain/holiday"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(svc holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: svc}
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year")
	if year == 0 {
		year = time.Now().Year()
	}

	holidays, err := h.holidayService.Year(r.Context(), r.URL.Query().Get("calendar_id"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
