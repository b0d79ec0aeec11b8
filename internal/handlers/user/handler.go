package user

import (
	"net/http"

	"libraryhub/infras/otel"
	"libraryhub/internal/domains/user/model/dto"
	"libraryhub/internal/domains/user/service"
	"libraryhub/shared/constant"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateUser)
		routerGroup.Get("/getById/{id}", handler.GetUserByID)
		routerGroup.Put("/assignMembership/{id}", handler.AssignMembership)
	})
}

func (handler *Handler) fail(writer http.ResponseWriter, scope otel.Scope, err error, action string) {
	scope.TraceError(err)
	log.Error().Err(err).Msgf("failed to %s", action)

	response.WithError(writer, err)
}

// CreateUser creates a member or staff account.
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/user/create [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	var req dto.CreateUserRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "validate create user request")

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		handler.fail(writer, scope, err, "create user")

		return
	}

	response.WithPayload(writer, http.StatusCreated, "User created successfully", "user", created)
}

// GetUserByID returns a user and their membership.
// @Summary Get a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse "User retrieved successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/user/getById/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	scope.SetAttribute("user.id", id)

	found, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.fail(writer, scope, err, "get user")

		return
	}

	response.WithPayload(writer, http.StatusOK, "User retrieved successfully", "user", found)
}

// AssignMembership attaches a plan to a user. The membership runs for the plan's
// durationDays from now.
// @Summary Assign a membership plan
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.AssignMembershipRequest true "Assign Membership Request"
// @Success 200 {object} dto.UserResponse "Membership assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/user/assignMembership/{id} [put]
// @Security BearerAuth
func (handler *Handler) AssignMembership(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignMembership")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	scope.SetAttribute("user.id", id)

	var req dto.AssignMembershipRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "validate assign membership request")

		return
	}

	updated, err := handler.service.AssignMembership(ctx, id, req)
	if err != nil {
		handler.fail(writer, scope, err, "assign membership")

		return
	}

	response.WithPayload(writer, http.StatusOK, "Membership assigned successfully", "user", updated)
}
