package http

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/marketplace-service/internal/observability"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util/errorutil"
)

// NewApp builds the fiber application. Path parameters are unescaped so that
// emails such as a%40b.com reach handlers as a@b.com. Params, queries and
// bodies are copied out of the request buffer because the in-memory store
// keeps them beyond the request.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		UnescapePath: true,
		Immutable:    true,
	})
}

// RegisterMiddlewares installs, outermost first: request timeout, CORS, error
// rendering and the request logger.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, corsOrigins string) {
	if timeout > 0 {
		app.Use(withTimeout(timeout))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(renderErrors(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func withTimeout(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// renderErrors turns handler errors and panics into the JSON error envelope.
// Success responses pass through untouched.
func renderErrors(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := nextRecovering(c, logger)
		if err == nil {
			return nil
		}

		de := apperrors.ToDomainError(err)
		metrics.RecordError(c.Route().Path, c.Method(), de.Code)
		if de.HTTPStatus >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(de))
		}
		return c.Status(de.HTTPStatus).JSON(errorBody(de))
	}
}

func nextRecovering(c *fiber.Ctx, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
		}
	}()
	return c.Next()
}

func errorBody(de *apperrors.DomainError) fiber.Map {
	body := fiber.Map{
		"code":    de.Code,
		"message": de.Message,
	}
	if len(de.Details) > 0 {
		body["details"] = de.Details
	}
	return fiber.Map{"error": body}
}
