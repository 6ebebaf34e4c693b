package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sekolahdigital/siakad-backend/internal/config"
	"github.com/sekolahdigital/siakad-backend/internal/database"
	"github.com/sekolahdigital/siakad-backend/internal/handler"
	"github.com/sekolahdigital/siakad-backend/internal/identifier"
	"github.com/sekolahdigital/siakad-backend/internal/logger"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
	"github.com/sekolahdigital/siakad-backend/internal/router"
	"github.com/sekolahdigital/siakad-backend/internal/service"
	"github.com/sekolahdigital/siakad-backend/internal/validator"
	"github.com/sekolahdigital/siakad-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SIAKAD Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	idGen := identifier.NewNanoid()

	// ─── Initialize Repositories ───────────────────────────────────────
	applicantRepo := repository.NewApplicantRepository(pool)
	admissionRepo := repository.NewAdmissionRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService)
	admissionService := service.NewAdmissionService(applicantRepo, admissionRepo, idGen, log)
	studentService := service.NewStudentService(studentRepo, idGen)
	classService := service.NewClassService(classRepo, idGen)
	teacherService := service.NewTeacherService(teacherRepo, idGen)
	subjectService := service.NewSubjectService(subjectRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, idGen)
	employeeService := service.NewEmployeeService(employeeRepo, idGen)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, rdb, idGen, log)
	dashboardService := service.NewDashboardService(dashboardRepo)
	mediaService := service.NewMediaService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService),
		Admission:  handler.NewAdmissionHandler(admissionService),
		Student:    handler.NewStudentHandler(studentService),
		Class:      handler.NewClassHandler(classService),
		Teacher:    handler.NewTeacherHandler(teacherService),
		Subject:    handler.NewSubjectHandler(subjectService),
		Schedule:   handler.NewScheduleHandler(scheduleService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		User:       handler.NewUserHandler(userService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Media:      handler.NewMediaHandler(mediaService),
		WS:         handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	absenceWorker := worker.NewAbsenceWorker(attendanceService, rdb, cfg.AttendanceCutoff, log)
	go absenceWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
