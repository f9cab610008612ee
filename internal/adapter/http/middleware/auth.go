package middleware

import (
	"errors"
	"strings"
	"time"

	"kept_house/internal/infrastructure/logger"
	"kept_house/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAgent  = "agent"
	RoleBuyer  = "buyer"
	RoleVendor = "vendor"

	ctxActorID = "actor_id"
	ctxRole    = "actor_role"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identifies the caller. Subject is the agent, buyer or vendor id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for subject with the given role.
func IssueToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

// Authenticate requires a bearer token whose role is one of roles.
//
// Without a secret the caller is taken from the X-Actor-ID and X-Actor-Role
// headers instead. That mode is meant for local runs only.
func Authenticate(secret string, roles ...string) gin.HandlerFunc {
	if secret == "" {
		return headerActor(roles)
	}
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		claims, err := ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		if !allowed(claims.Role, roles) {
			c.AbortWithStatusJSON(pkg.ErrForbidden.HTTPStatus, pkg.ErrForbidden.ToHTTPError())
			return
		}

		SetActor(c, claims.Subject, claims.Role)
		ctx := logger.WithField(c.Request.Context(), logger.FieldActor, claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func headerActor(roles []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderActorID))
		role := strings.TrimSpace(c.GetHeader(HeaderActorRole))
		if id == "" {
			c.AbortWithStatusJSON(pkg.ErrUnauthorized.HTTPStatus, pkg.ErrUnauthorized.ToHTTPError())
			return
		}
		if role == "" && len(roles) > 0 {
			role = roles[0]
		}
		if !allowed(role, roles) {
			c.AbortWithStatusJSON(pkg.ErrForbidden.HTTPStatus, pkg.ErrForbidden.ToHTTPError())
			return
		}
		SetActor(c, id, role)
		c.Request = c.Request.WithContext(logger.WithField(c.Request.Context(), logger.FieldActor, id))
		c.Next()
	}
}

func allowed(role string, roles []string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func SetActor(c *gin.Context, id, role string) {
	c.Set(ctxActorID, id)
	c.Set(ctxRole, role)
}

// ActorID returns the authenticated subject, or "" on public routes.
func ActorID(c *gin.Context) string {
	return c.GetString(ctxActorID)
}

func ActorRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}
