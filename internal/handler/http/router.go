package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrdash/hrdash-gateway-go/internal/handler/http/middleware"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/jwt"
)

type Handlers struct {
	Dashboard  DashboardHandler
	Attendance AttendanceHandler
	Session    SessionHandler
	Leave      LeaveHandler
	Settlement SettlementHandler
	Ticket     TicketHandler
	Holiday    HolidayHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrdash-gateway"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/summary", h.Dashboard.GetSummary)
				r.Get("/leave-summary", h.Dashboard.GetLeaveSummary)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/calendar", h.Attendance.MonthGrid)
				r.Get("/status", h.Attendance.Status)
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/session/stream", h.Session.Stream)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/team-calendar", h.Leave.TeamCalendar)
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.Settlement.List)
				r.Get("/{id}", h.Settlement.Get)
			})

			r.Get("/tickets", h.Ticket.List)
			r.Get("/holidays", h.Holiday.List)
		})
	})
	return r
}
