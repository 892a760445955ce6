package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campusevents/internal/handler"
)

// Register wires routes and middleware.
//
// There is no auth middleware: the process tracks a single current user and
// role checks happen in the service layer against it. Real sessions are out
// of scope for this demo.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	registrationHandler *handler.RegistrationHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Session and identity
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/switch-user", authHandler.SwitchUser)
	api.GET("/auth/me", authHandler.Me)

	// Events
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEvent)
	api.POST("/events", eventHandler.CreateEvent)
	api.DELETE("/events/:id", eventHandler.DeleteEvent)

	// Registrations
	api.POST("/events/:id/register", registrationHandler.Register)
	api.GET("/events/:id/registrations", registrationHandler.ListForEvent)
	api.GET("/events/:id/attendee-count", registrationHandler.AttendeeCount)
	api.GET("/events/:id/registration-status", registrationHandler.MyStatus)
	api.PATCH("/registrations/:id", registrationHandler.UpdateStatus)

	// Account management
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/users/organizers", userHandler.AddOrganizer)
	api.DELETE("/users/:id", userHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
