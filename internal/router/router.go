package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kunstbeheer/internal/config"
	apperrors "kunstbeheer/internal/errors"
	"kunstbeheer/internal/handler"
	"kunstbeheer/internal/middleware"
	"kunstbeheer/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	artistHandler *handler.ArtistHandler,
	artworkHandler *handler.ArtworkHandler,
	locationHandler *handler.LocationHandler,
	typeHandler *handler.ArtworkTypeHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", middleware.Authenticate(cfg.JWTSecret))
	admin := middleware.RequireRole(model.RoleAdmin)

	secured.POST("/auth/register", authHandler.Register, admin)

	// User routes; Get/Update apply the self-or-admin policy themselves.
	secured.GET("/users", userHandler.List, admin)
	secured.POST("/users", userHandler.Create, admin)
	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete, admin)

	// Artist routes
	secured.GET("/artists", artistHandler.List)
	secured.POST("/artists", artistHandler.Create)
	secured.GET("/artists/:id", artistHandler.Get)
	secured.PUT("/artists/:id", artistHandler.Update)
	secured.DELETE("/artists/:id", artistHandler.Delete)

	// Artwork routes
	secured.GET("/artworks", artworkHandler.List)
	secured.POST("/artworks", artworkHandler.Create)
	secured.GET("/artworks/:id", artworkHandler.Get)
	secured.PUT("/artworks/:id", artworkHandler.Update)
	secured.DELETE("/artworks/:id", artworkHandler.Delete)

	// Location routes
	secured.GET("/locations", locationHandler.List)
	secured.POST("/locations", locationHandler.Create)
	secured.GET("/locations/:id", locationHandler.Get)
	secured.PUT("/locations/:id", locationHandler.Update)
	secured.DELETE("/locations/:id", locationHandler.Delete)

	// Artwork type routes
	secured.GET("/artwork-types", typeHandler.List)
	secured.POST("/artwork-types", typeHandler.Create)

	// Report routes
	secured.GET("/reports", reportHandler.Generate)
}

// errorHandler renders every unhandled error as {"error": "..."}. The Allow
// header Echo sets on 405 responses is preserved. Internal errors are logged
// with detail and answered with a generic message.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "er is een onverwachte fout opgetreden"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		}
	}
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = "er is een onverwachte fout opgetreden"
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, apperrors.ErrorResponse{Error: msg})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
