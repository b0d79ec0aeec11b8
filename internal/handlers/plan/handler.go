package plan

import (
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/plan/model/dto"
	"libraryhub/internal/domains/plan/service"
	"libraryhub/shared/constant"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Plan
	otel    otel.Otel
}

func New(service service.Plan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/plan", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreatePlan)
		routerGroup.Get("/getByLibrary/{libraryId}", handler.GetPlansByLibrary)
	})
}

// CreatePlan adds a membership plan to a library.
// @Summary Create a membership plan
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Create Plan Request"
// @Success 201 {object} dto.PlanResponse "Plan created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/plan/create [post]
// @Security BearerAuth
func (handler *Handler) CreatePlan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlan")
	defer scope.End()

	req := dto.CreatePlanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	plan, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create plan")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusCreated, "Plan created successfully", "plan", plan)
}

// GetPlansByLibrary lists the membership plans a library offers.
// @Summary Get plans by library
// @Tags Plan
// @Produce json
// @Param libraryId path string true "Library ID"
// @Success 200 {array} dto.PlanResponse "Plans retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/plan/getByLibrary/{libraryId} [get]
func (handler *Handler) GetPlansByLibrary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlansByLibrary")
	defer scope.End()

	plans, err := handler.service.GetByLibrary(ctx, chi.URLParam(request, constant.RequestParamLibraryID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plans")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Plans retrieved successfully", "plans", plans)
}
