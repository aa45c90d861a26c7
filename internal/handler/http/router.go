package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/middleware"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jivass-payroll"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/entry", attendanceHandler.ClockIn)
				r.Post("/exit", attendanceHandler.ClockOut)
				r.Get("/employees/{id}", attendanceHandler.GetDay)
				r.Get("/employees/{id}/summary", attendanceHandler.MonthlySummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/", attendanceHandler.ListByDate)
					r.Post("/status", attendanceHandler.MarkStatus)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/holidays/{year}", attendanceHandler.SeedHolidays)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.ListMine)
				r.Get("/balance", leaveHandler.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/queue", leaveHandler.ApprovalQueue)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/employees/{id}/{month}", payrollHandler.GetPayslip)
				r.Get("/employees/{id}/{month}/payslip", payrollHandler.DownloadPayslip)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/", payrollHandler.ListByMonth)
				})
			})
		})
	})

	return r
}
