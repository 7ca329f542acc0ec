package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hrdash/hrdash-gateway-go/internal/config"
	appHTTP "github.com/hrdash/hrdash-gateway-go/internal/handler/http"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/cron"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/database"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/jwt"
	"github.com/hrdash/hrdash-gateway-go/internal/pkg/sse"
	"github.com/hrdash/hrdash-gateway-go/internal/repository/postgresql"
	"github.com/hrdash/hrdash-gateway-go/internal/session"
	attendanceService "github.com/hrdash/hrdash-gateway-go/internal/service/attendance"
	dashboardService "github.com/hrdash/hrdash-gateway-go/internal/service/dashboard"
	holidayService "github.com/hrdash/hrdash-gateway-go/internal/service/holiday"
	leaveService "github.com/hrdash/hrdash-gateway-go/internal/service/leave"
	settlementService "github.com/hrdash/hrdash-gateway-go/internal/service/settlement"
	ticketService "github.com/hrdash/hrdash-gateway-go/internal/service/ticket"
	"github.com/hrdash/hrdash-gateway-go/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	snapshotRepo := postgresql.NewSnapshotRepository(db)

	client := upstream.NewClient(upstream.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		TokenURL:     cfg.Upstream.TokenURL,
		ClientID:     cfg.Upstream.ClientID,
		ClientSecret: cfg.Upstream.ClientSecret,
		Timeout:      cfg.Upstream.Timeout,
	})

	hub := sse.NewHub()
	sessions := session.NewRegistry(hub, time.Now)
	defer sessions.Shutdown()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	holidaySvc := holidayService.NewHolidayService(client, snapshotRepo, cfg.Holiday.CalendarID, cfg.Holiday.CacheTTL)
	attendanceSvc := attendanceService.NewAttendanceService(client, holidaySvc, sessions, cfg.Holiday.CalendarID)
	dashboardSvc := dashboardService.NewDashboardService(client)
	leaveSvc := leaveService.NewLeaveService(client)
	settlementSvc := settlementService.NewSettlementService(client)
	ticketSvc := ticketService.NewTicketService(client)

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidaySvc, cfg.Holiday.CacheTTL).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Session:    appHTTP.NewSessionHandler(hub, sessions),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Settlement: appHTTP.NewSettlementHandler(settlementSvc),
		Ticket:     appHTTP.NewTicketHandler(ticketSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
	}, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
