package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jivass-tech/payroll-backend-go/internal/config"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/calendar"
	appHTTP "github.com/jivass-tech/payroll-backend-go/internal/handler/http"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/cron"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/database"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/email"
	"github.com/jivass-tech/payroll-backend-go/internal/pkg/jwt"
	"github.com/jivass-tech/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/jivass-tech/payroll-backend-go/internal/service/attendance"
	authService "github.com/jivass-tech/payroll-backend-go/internal/service/auth"
	employeeService "github.com/jivass-tech/payroll-backend-go/internal/service/employee"
	"github.com/jivass-tech/payroll-backend-go/internal/service/leave"
	"github.com/jivass-tech/payroll-backend-go/internal/service/leavedetails"
	payrollService "github.com/jivass-tech/payroll-backend-go/internal/service/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/service/report"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveDetailsRepo := postgresql.NewLeaveDetailsRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	txManager := postgresql.NewTxManager(db)

	holidayPolicy := calendar.NewPolicy()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	employeeSvc := employeeService.NewService(employeeRepo)
	authSvc := authService.NewService(employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, holidayPolicy)

	leaveValidator := leave.NewValidator(holidayPolicy)
	leaveApplier := leave.NewApplier(attendanceRepo, holidayPolicy)
	leaveRequestSvc := leave.NewRequestService(leaveRequestRepo, employeeRepo, leaveValidator, leaveApplier, txManager)

	rollupSvc := leavedetails.NewService(attendanceRepo, employeeRepo, leaveDetailsRepo)
	payslipRenderer := report.NewPayslipRenderer()
	payrollSvc := payrollService.NewService(payrollRepo, employeeRepo, rollupSvc, txManager, payslipRenderer, emailService)

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveRequestSvc, employeeSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
