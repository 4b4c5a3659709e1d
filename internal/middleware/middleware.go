package middleware

import (
	"Recipe-API/domain"
	"Recipe-API/pkg/auth"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/user"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(required bool) fiber.Handler
		RequirePermission(action string, targetKind string) fiber.Handler
	}

	middleware struct {
		users      user.UserRepository
		jwtService jwt.JWTService
		evaluator  *auth.Evaluator
		log        *zap.Logger
	}
)

func NewMiddleware(users user.UserRepository, jwtService jwt.JWTService, evaluator *auth.Evaluator, log *zap.Logger) Middleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &middleware{
		users:      users,
		jwtService: jwtService,
		evaluator:  evaluator,
		log:        log,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware resolves the request's principal from HTTP Basic credentials
// or a Bearer token and stores it in the request locals. With required=false
// the request continues anonymously when no credentials are present.
func (m *middleware) AuthMiddleware(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := m.resolvePrincipal(c)
		if !ok {
			if required {
				c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="recipes"`)
				return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
			}
			return c.Next()
		}
		c.Locals("principal", principal)
		return c.Next()
	}
}

func (m *middleware) resolvePrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	header := c.Get(fiber.HeaderAuthorization)

	switch {
	case strings.HasPrefix(header, "Basic "):
		payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		if err != nil {
			return auth.Principal{}, false
		}
		username, password, found := strings.Cut(string(payload), ":")
		if !found {
			return auth.Principal{}, false
		}

		u, err := m.users.GetUserByUsername(c.Context(), username)
		if err != nil {
			return auth.Principal{}, false
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
			m.log.Debug("basic auth rejected", zap.String("username", username))
			return auth.Principal{}, false
		}
		if !u.IsEnabled || !u.IsAccountNonLocked {
			return auth.Principal{}, false
		}
		return auth.Principal{ID: u.ID, Username: u.Username, Roles: u.RoleNames()}, true

	case strings.HasPrefix(header, "Bearer "):
		userID, _, err := m.jwtService.GetUserIDByToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return auth.Principal{}, false
		}
		id, err := uuid.Parse(userID)
		if err != nil {
			return auth.Principal{}, false
		}
		u, err := m.users.GetUserByID(c.Context(), id)
		if err != nil {
			return auth.Principal{}, false
		}
		return auth.Principal{ID: u.ID, Username: u.Username, Roles: u.RoleNames()}, true
	}

	return auth.Principal{}, false
}

// RequirePermission composes an ownership/admin check in front of a mutating
// handler. The target id comes from the :id path parameter, or from the
// request body for PATCH routes that carry the id there.
func (m *middleware) RequirePermission(action string, targetKind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals("principal").(auth.Principal)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		targetID, err := m.targetID(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(domain.ErrParseUUID.Error())
		}

		allowed, err := m.evaluator.Decide(c.Context(), principal, action, targetKind, targetID)
		if err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				return c.Status(fiber.StatusNotFound).SendString(notFound.Message)
			}
			// Malformed permission tokens are a server-side security fault,
			// not user input.
			m.log.Error("permission evaluation failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).SendString(domain.MessageUserNotAllowed)
		}
		return c.Next()
	}
}

func (m *middleware) targetID(c *fiber.Ctx) (uuid.UUID, error) {
	if raw := c.Params("id"); raw != "" {
		return uuid.Parse(raw)
	}
	var body struct {
		ID uuid.UUID `json:"id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return uuid.Nil, err
	}
	return body.ID, nil
}
