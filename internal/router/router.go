package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sekolahdigital/siakad-backend/internal/config"
	"github.com/sekolahdigital/siakad-backend/internal/handler"
	"github.com/sekolahdigital/siakad-backend/internal/middleware"
	"github.com/sekolahdigital/siakad-backend/internal/response"
	"github.com/sekolahdigital/siakad-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Admission  *handler.AdmissionHandler
	Student    *handler.StudentHandler
	Class      *handler.ClassHandler
	Teacher    *handler.TeacherHandler
	Subject    *handler.SubjectHandler
	Schedule   *handler.ScheduleHandler
	Employee   *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	User       *handler.UserHandler
	Dashboard  *handler.DashboardHandler
	Media      *handler.MediaHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded avatars statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", "./uploads")
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the public registration form (10 per minute per IP).
	registerLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 0. Public Group (No Auth, Rate Limited) ───────────────────────
	publicAPI := router.Group("/api/v1/public")
	{
		publicAPI.POST("/registrations", registerLimiter.Middleware(), handlers.Admission.Register)
	}

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/admin/login", handlers.Auth.Login)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.GetProfile)
	}

	// ─── 2. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/attendance/stream", handlers.WS.AttendanceStream)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// Dashboard
		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboard)

		// Media upload
		adminAPI.POST("/media/upload", handlers.Media.UploadMedia)

		// Admission decisions
		adminAPI.GET("/admissions", handlers.Admission.ListAdmissions)
		adminAPI.PUT("/admissions/:id", handlers.Admission.SetStatus)

		// Student management
		adminAPI.GET("/students", handlers.Student.ListStudents)
		adminAPI.GET("/students/:id", handlers.Student.GetStudent)
		adminAPI.POST("/students", handlers.Student.CreateStudent)
		adminAPI.PUT("/students/:id", handlers.Student.UpdateStudent)
		adminAPI.DELETE("/students/:id", handlers.Student.DeleteStudent)

		// Class management
		adminAPI.GET("/classes", handlers.Class.ListClasses)
		adminAPI.POST("/classes", handlers.Class.CreateClass)
		adminAPI.PUT("/classes/:id", handlers.Class.UpdateClass)
		adminAPI.DELETE("/classes/:id", handlers.Class.DeleteClass)

		// Teacher management
		adminAPI.GET("/teachers", handlers.Teacher.ListTeachers)
		adminAPI.POST("/teachers", handlers.Teacher.CreateTeacher)
		adminAPI.PUT("/teachers/:id", handlers.Teacher.UpdateTeacher)
		adminAPI.DELETE("/teachers/:id", handlers.Teacher.DeleteTeacher)

		// Subject management
		adminAPI.GET("/subjects", handlers.Subject.ListSubjects)
		adminAPI.POST("/subjects", handlers.Subject.CreateSubject)
		adminAPI.PUT("/subjects/:id", handlers.Subject.UpdateSubject)
		adminAPI.DELETE("/subjects/:id", handlers.Subject.DeleteSubject)

		// Timetable
		adminAPI.GET("/schedules", handlers.Schedule.ListSchedules)
		adminAPI.POST("/schedules", handlers.Schedule.CreateSchedule)
		adminAPI.DELETE("/schedules/:id", handlers.Schedule.DeleteSchedule)

		// Employee management
		adminAPI.GET("/employees", handlers.Employee.ListEmployees)
		adminAPI.POST("/employees", handlers.Employee.CreateEmployee)
		adminAPI.PUT("/employees/:id", handlers.Employee.UpdateEmployee)
		adminAPI.DELETE("/employees/:id", handlers.Employee.DeleteEmployee)

		// Attendance
		adminAPI.POST("/attendance/check-in", handlers.Attendance.CheckIn)
		adminAPI.GET("/attendance", handlers.Attendance.Report)

		// Operator accounts
		adminAPI.GET("/users", handlers.User.ListUsers)
		adminAPI.POST("/users", handlers.User.CreateUser)
		adminAPI.PUT("/users/:id", handlers.User.UpdateUser)
		adminAPI.DELETE("/users/:id", handlers.User.DeleteUser)
	}

	return router
}
