package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"libraryhub/config"
	"libraryhub/infras/jwt"
	"libraryhub/infras/otel"
	"libraryhub/permissions"
	"libraryhub/shared/constant"
	"libraryhub/shared/failure"
	"libraryhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type skipAuthKey struct{}

var skipAuth = skipAuthKey{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is mounted as APIKey, Auth, RBAC around /api. APIKey lets trusted
// internal callers through, Auth turns the bearer token into context values and
// RBAC checks the caller's role against the permissions table.
type AuthRole interface {
	Auth
	Role
}

type authRole struct {
	jwt         jwt.JWT
	otel        otel.Otel
	permissions *permissions.PermissionData
	apiKey      string
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, ot otel.Otel, table *permissions.PermissionData, cfg *config.Config) AuthRole {
	if table == nil {
		table = &permissions.PermissionData{}
	}

	return &authRole{
		jwt:         jwtService,
		otel:        ot,
		permissions: table,
		apiKey:      cfg.App.APIKey,
	}
}

var tokenErrorMessages = map[error]string{
	jwt.ErrExpiredToken: "Token has expired",
	jwt.ErrInvalidToken: "Invalid token",
	jwt.ErrInvalidClaim: "Invalid token claims",
}

func tokenErrorMessage(err error) string {
	for target, message := range tokenErrorMessages {
		if errors.Is(err, target) {
			return message
		}
	}

	return "Token validation failed"
}

func deny(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

func trusted(r *http.Request) bool {
	skip, _ := r.Context().Value(skipAuth).(bool)

	return skip
}

func (m *authRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pattern := routePattern(r)

		if trusted(r) || m.permissions.IsPublic(pattern, r.Method) {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"http.route":  pattern,
			"http.method": r.Method,
		})

		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			deny(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwt.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			deny(w, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Warn().Str("token_id", claims.TokenID).Msg("access token without user id or email")
			deny(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RBAC must run after Auth, which puts the caller's role in the context.
func (m *authRole) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pattern := routePattern(r)

		if trusted(r) || m.permissions.IsPublic(pattern, r.Method) {
			next.ServeHTTP(w, r)

			return
		}

		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		permission := m.permissions.FindPermissions(pattern, r.Method)
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user.role":     role,
				"allowed_roles": permission.Permissions,
			})
			deny(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey marks requests carrying the configured X-API-Key as trusted. Requests
// without the header continue as ordinary clients; a wrong key is refused.
func (m *authRole) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		if m.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			deny(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, skipAuth, true)))
	})
}

// routePattern resolves the registered chi pattern (e.g. /api/booking/getById/{id})
// for the request so it can be matched against the permissions table.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}
