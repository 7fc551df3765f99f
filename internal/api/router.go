package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/DioneMartin/REST-AWS/internal/api/handler"
	"github.com/DioneMartin/REST-AWS/internal/api/middleware"
	"github.com/DioneMartin/REST-AWS/internal/core/ports"
)

// Deps are the services and probes the router exposes.
type Deps struct {
	Students      ports.StudentService
	Teachers      ports.TeacherService
	Sessions      ports.SessionService
	Notifications ports.NotificationService
	Media         ports.MediaService
	// MediaObjects is set when profile pictures are kept in memory.
	MediaObjects  handler.ObjectReader
	Checks        map[string]handler.Checker
	Logger        zerolog.Logger
	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry      *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "school",
		Registerer: registerer,
	}))

	students := handler.NewStudentHandler(d.Students)
	teachers := handler.NewTeacherHandler(d.Teachers)
	sessions := handler.NewSessionHandler(d.Sessions)
	notifications := handler.NewNotificationHandler(d.Notifications)
	media := handler.NewMediaHandler(d.Media)

	// --- Students ---
	e.GET("/students", students.List)
	e.POST("/students", students.Create)
	e.GET("/students/:id", students.Get)
	e.PUT("/students/:id", students.Update)
	e.DELETE("/students/:id", students.Delete)
	e.POST("/students/:id/photo", media.UploadPhoto)
	e.POST("/students/:id/notify", notifications.Notify)
	e.POST("/students/:id/session/login", sessions.Login)
	e.POST("/students/:id/session/verify", sessions.Verify)
	e.POST("/students/:id/session/logout", sessions.Logout)

	if d.MediaObjects != nil {
		e.GET("/media/:key", handler.ServeObject(d.MediaObjects))
	}

	// --- Teachers ---
	e.GET("/teachers", teachers.List)
	e.POST("/teachers", teachers.Create)
	e.GET("/teachers/:id", teachers.Get)
	e.PUT("/teachers/:id", teachers.Update)
	e.DELETE("/teachers/:id", teachers.Delete)

	// --- Operations ---
	health := handler.NewHealthHandler(d.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
