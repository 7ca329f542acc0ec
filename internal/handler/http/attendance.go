package http

import (
	"net/http"
	"strconv"
	"strings"

	attendanceDomain "github.com/hrdash/hrdash-gateway-go/internal/domain/attendance"
	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/response"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/validator"
	attendanceService "github.com/hrdash/hrdash-gateway-go/internal/service/attendance"
)

type AttendanceHandler interface {
	MonthGrid(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.Service
}

func NewAttendanceHandler(svc attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

// MonthGrid implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthGrid(w http.ResponseWriter, r *http.Request) {
	year, month := queryMonth(r)
	filter := attendanceDomain.MonthFilter{
		Year:  year,
		Month: month,
	}

	view, err := h.attendanceService.MonthGrid(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockIn(r.Context())
	if err != nil {
		response.HandleActionError(w, err, "Clock-in failed, please try again")
		return
	}

	response.SuccessWithMessage(w, "Clocked in successfully", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ClockOut(r.Context())
	if err != nil {
		response.HandleActionError(w, err, "Clock-out failed, please try again")
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// queryInt reads an integer query parameter, returning 0 when absent or
// malformed so services apply their own defaults.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

// queryMonth reads the month selection of a calendar view: either a single
// "month" parameter in YYYY-MM form, or separate integer "year" and "month"
// parameters. Malformed values come back as zero so services apply their
// current-month defaults.
func queryMonth(r *http.Request) (year, month int) {
	if raw := r.URL.Query().Get("month"); strings.Contains(raw, "-") {
		if m, ok := validator.IsValidMonth(raw); ok {
			return m.Year(), int(m.Month())
		}
		return 0, 0
	}
	return queryInt(r, "year"), queryInt(r, "month")
}
