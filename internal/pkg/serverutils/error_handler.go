package serverutils

import (
	"errors"

	"notely-be/internal/pkg/apperror"
	"notely-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into the response
// envelope. Unknown errors become a generic 500; internal detail (driver
// messages, stack traces) never reaches the client.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if ae, ok := apperror.As(err); ok {
			if ae.Status >= 500 && sysLogger != nil {
				sysLogger.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": err.Error(),
				})
			}
			return ctx.Status(ae.Status).JSON(ErrorResponse(ae.Status, ae.Message))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
		}

		if sysLogger != nil {
			sysLogger.Error("http", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Something went wrong."))
	}
}
