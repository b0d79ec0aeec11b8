package auth

import (
	"context"
	"net/http"

	"libraryhub/infras/otel"
	"libraryhub/internal/domains/auth/model/dto"
	"libraryhub/internal/domains/auth/service"
	userDto "libraryhub/internal/domains/user/model/dto"
	"libraryhub/shared/constant"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Get("/me", handler.Me)
	})
}

// credentialCall is the shape shared by the JSON body endpoints below: decode and
// validate Req, hand it to the service, write the result under key.
func credentialCall[Req any, Res any](
	handler *Handler,
	w http.ResponseWriter,
	r *http.Request,
	span string,
	call func(ctx context.Context, req Req) (Res, error),
	status int,
	message, key string,
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+span)
	defer scope.End()

	var req Req

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := call(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("endpoint", span).Msg("auth request rejected")
		response.WithError(w, err)

		return
	}

	response.WithPayload(w, status, message, key, res)
}

// Register handles member registration
// @Summary Register a new member
// @Description Register a member account with the provided details.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} userDto.UserResponse "User registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	credentialCall[dto.RegisterRequest, userDto.UserResponse](handler, w, r, "Register", handler.service.Register,
		http.StatusCreated, "User registered successfully", "user")
}

// Login exchanges credentials for a token pair.
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.TokenResponse "User logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	credentialCall[dto.LoginRequest, dto.TokenResponse](handler, w, r, "Login", handler.service.Login,
		http.StatusOK, "User logged in successfully", "token")
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.TokenResponse "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	credentialCall[dto.RefreshTokenRequest, dto.TokenResponse](handler, w, r, "RefreshToken", handler.service.RefreshToken,
		http.StatusOK, "Token refreshed successfully", "token")
}

// Me returns the signed in account.
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} userDto.UserResponse "User retrieved successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	user, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, "User retrieved successfully", "user", user)
}
