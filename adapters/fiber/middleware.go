package fiber

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/logutil"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

// requestLogger attaches a request-scoped logger to the context so every
// layer below logs with the same request id.
func (a *Adapter) requestLogger(c fiber.Ctx) error {
	logger := a.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Logger()
	c.SetContext(logutil.WithLogger(c.Context(), logger))
	return c.Next()
}

// requireAuth validates the bearer token and stores the decoded claims in
// the context for downstream handlers.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	raw := extractToken(c)
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": core.ErrMissingAuthHeader.Error(),
		})
	}

	claims, err := a.auth.Authorize(raw)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals("claims", claims)
	c.Locals("token", raw)

	return c.Next()
}

// extractToken reads the `Authorization: Bearer <token>` header.
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

func claimsFromContext(c fiber.Ctx) *token.Claims {
	claims, _ := c.Locals("claims").(*token.Claims)
	return claims
}
