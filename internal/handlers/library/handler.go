package library

import (
	"libraryhub/infras/otel"
	bookingService "libraryhub/internal/domains/booking/service"
	"libraryhub/internal/domains/library/model/dto"
	"libraryhub/internal/domains/library/service"
	"libraryhub/shared"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Library
	booking bookingService.Booking
	otel    otel.Otel
}

func New(service service.Library, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/library", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateLibrary)
		routerGroup.Get("/getAll", handler.GetLibraries)
		routerGroup.Get("/getById/{id}", handler.GetLibraryByID)
		routerGroup.Get("/getAvailableSeats/{id}", handler.GetAvailableSeats)
		routerGroup.Post("/recount/{id}", handler.RecountSeats)
	})
}

// CreateLibrary handles the creation of a new library.
// @Summary Create a library
// @Tags Library
// @Accept json
// @Produce json
// @Param request body dto.CreateLibraryRequest true "Create Library Request"
// @Success 201 {object} dto.LibraryResponse "Library created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/library/create [post]
// @Security BearerAuth
func (handler *Handler) CreateLibrary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLibrary")
	defer scope.End()

	req := dto.CreateLibraryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	library, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create library")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Library created successfully by user " + user)

	response.WithPayload(writer, http.StatusCreated, "Library created successfully", "library", library)
}

// GetLibraries retrieves libraries page by page.
// @Summary Get all libraries
// @Tags Library
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetLibrariesResponse "Libraries retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /api/library/getAll [get]
func (handler *Handler) GetLibraries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLibraries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	libraries, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get libraries")

		response.WithError(writer, err)

		return
	}

	response.WithPaginatedPayload(writer, http.StatusOK, "Libraries retrieved successfully", "libraries", libraries.Libraries, response.Pagination{
		Page:      queryParams.Page,
		Limit:     queryParams.Limit,
		TotalData: libraries.TotalData,
		TotalPage: libraries.TotalPage,
	})
}

// GetLibraryByID retrieves one library with its seat counters.
// @Summary Get a library by ID
// @Tags Library
// @Produce json
// @Param id path string true "Library ID"
// @Success 200 {object} dto.LibraryResponse "Library retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/library/getById/{id} [get]
func (handler *Handler) GetLibraryByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLibraryByID")
	defer scope.End()

	library, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get library")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Library retrieved successfully", "library", library)
}

// GetAvailableSeats lists the seats of a library that can be booked on a day.
// @Summary Get available seats
// @Description Seats free on the given day. With all=true every seat is returned, annotated with availability and the bookings holding it.
// @Tags Library
// @Produce json
// @Param id path string true "Library ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param all query boolean false "Return every seat"
// @Success 200 {object} map[string]any "Seats retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/library/getAvailableSeats/{id} [get]
func (handler *Handler) GetAvailableSeats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSeats")
	defer scope.End()

	libraryID := chi.URLParam(request, constant.RequestParamID)
	date := request.URL.Query().Get(constant.RequestParamDate)

	resolve := handler.booking.GetAvailableSeats
	if all := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamAll)); all != nil && *all {
		resolve = handler.booking.GetSeatAvailability
	}

	seats, err := resolve(ctx, libraryID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve seat availability")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Seats retrieved successfully", "seats", seats)
}

// RecountSeats rebuilds the seat counters of a library from its seats and today's bookings.
// @Summary Recount library seats
// @Tags Library
// @Produce json
// @Param id path string true "Library ID"
// @Success 200 {object} dto.LibraryResponse "Library seats recounted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/library/recount/{id} [post]
// @Security BearerAuth
func (handler *Handler) RecountSeats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecountSeats")
	defer scope.End()

	library, err := handler.service.RecountSeats(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to recount library seats")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Library seats recounted successfully", "library", library)
}
