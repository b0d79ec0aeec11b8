package seat

import (
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/seat/model/dto"
	"libraryhub/internal/domains/seat/service"
	"libraryhub/shared/constant"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seat
	otel    otel.Otel
}

func New(service service.Seat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seat", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateSeat)
		routerGroup.Get("/getByLibrary/{libraryId}", handler.GetSeatsByLibrary)
		routerGroup.Put("/setAvailability/{id}", handler.SetAvailability)
	})
}

// CreateSeat adds one or more seats to a library.
// @Summary Create seats
// @Description Add seats to a library. With count > 1 the seats are named name-1..name-N.
// @Tags Seat
// @Accept json
// @Produce json
// @Param request body dto.CreateSeatRequest true "Create Seat Request"
// @Success 201 {array} dto.SeatResponse "Seats created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/seat/create [post]
// @Security BearerAuth
func (handler *Handler) CreateSeat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSeat")
	defer scope.End()

	req := dto.CreateSeatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	seats, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create seats")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusCreated, "Seats created successfully", "seats", seats)
}

// GetSeatsByLibrary lists every seat of a library.
// @Summary Get seats by library
// @Tags Seat
// @Produce json
// @Param libraryId path string true "Library ID"
// @Success 200 {array} dto.SeatResponse "Seats retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/seat/getByLibrary/{libraryId} [get]
func (handler *Handler) GetSeatsByLibrary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeatsByLibrary")
	defer scope.End()

	seats, err := handler.service.GetByLibrary(ctx, chi.URLParam(request, constant.RequestParamLibraryID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seats")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Seats retrieved successfully", "seats", seats)
}

// SetAvailability puts a seat in or out of maintenance.
// @Summary Set seat availability
// @Tags Seat
// @Accept json
// @Produce json
// @Param id path string true "Seat ID"
// @Param request body dto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} dto.SeatResponse "Seat availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/seat/setAvailability/{id} [put]
// @Security BearerAuth
func (handler *Handler) SetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	req := dto.SetAvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	seat, err := handler.service.SetAvailability(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set seat availability")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Seat availability updated successfully", "seat", seat)
}
