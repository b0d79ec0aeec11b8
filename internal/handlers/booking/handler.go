package booking

import (
	"libraryhub/infras/otel"
	"libraryhub/internal/domains/booking/model/dto"
	"libraryhub/internal/domains/booking/service"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/validator"
	"libraryhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Get("/getAll", handler.GetBookings)
		routerGroup.Get("/getById/{id}", handler.GetBookingByID)
		routerGroup.Put("/update/{id}", handler.UpdateBooking)
		routerGroup.Delete("/delete/{id}", handler.DeleteBooking)
		routerGroup.Post("/cancel/{id}", handler.CancelBooking)
		routerGroup.Get("/getByUserId/{userId}", handler.GetBookingsByUser)
		routerGroup.Get("/getByRoomId/{roomId}", handler.GetBookingsByRoom)
		routerGroup.Get("/getByDate/{date}", handler.GetBookingsByDate)
		routerGroup.Get("/getByDateRange", handler.GetBookingsByDateRange)
		routerGroup.Get("/getByStatus/{status}", handler.GetBookingsByStatus)
		routerGroup.Get("/getByLibrary/{libraryId}", handler.GetBookingsByLibrary)
		routerGroup.Get("/export", handler.ExportBookings)
	})
}

// CreateBooking reserves a seat for a user on one day.
// @Summary Create a booking
// @Description Reserve a seat for a time window. When seatId is omitted the first free seat of the library is assigned.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/create [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.ID + " created for user " + booking.UserID)

	response.WithPayload(writer, http.StatusCreated, "Booking created successfully", "booking", booking)
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Description Retrieve all bookings ordered by date and start time. Pass page and limit to paginate.
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 500 {object} response.Error
// @Router /api/booking/getAll [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	list, err := handler.service.GetAll(ctx, queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingByID returns one booking.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getById/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Booking retrieved successfully", "booking", booking)
}

// UpdateBooking changes the time window or status of a booking.
// @Summary Update a booking
// @Description Move a booking to another day or time window, or change its status. Cancelling releases the seat.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/update/{id} [put]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Update(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Booking updated successfully", "booking", booking)
}

// DeleteBooking removes a booking for good.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/delete/{id} [delete]
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking deleted successfully")
}

// CancelBooking releases the seat held by a booking.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/cancel/{id} [post]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	booking, err := handler.service.Cancel(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, "Booking cancelled successfully", "booking", booking)
}

// GetBookingsByUser lists the bookings of one user.
// @Summary Get bookings by user
// @Tags Booking
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByUserId/{userId} [get]
func (handler *Handler) GetBookingsByUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByUser")
	defer scope.End()

	list, err := handler.service.GetByUserID(ctx, chi.URLParam(request, constant.RequestParamUserID), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by user")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingsByRoom lists bookings of a seat, or of every seat in a library.
// @Summary Get bookings by room
// @Description roomId may be a seat id or a library id.
// @Tags Booking
// @Produce json
// @Param roomId path string true "Seat or library ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByRoomId/{roomId} [get]
func (handler *Handler) GetBookingsByRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByRoom")
	defer scope.End()

	list, err := handler.service.GetByRoomID(ctx, chi.URLParam(request, constant.RequestParamRoomID), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by room")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingsByDate lists bookings on one day.
// @Summary Get bookings by date
// @Tags Booking
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByDate/{date} [get]
func (handler *Handler) GetBookingsByDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByDate")
	defer scope.End()

	list, err := handler.service.GetByDate(ctx, chi.URLParam(request, constant.RequestParamDate), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by date")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingsByDateRange lists bookings between two days, both inclusive.
// @Summary Get bookings by date range
// @Tags Booking
// @Produce json
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByDateRange [get]
func (handler *Handler) GetBookingsByDateRange(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByDateRange")
	defer scope.End()

	query := request.URL.Query()

	list, err := handler.service.GetByDateRange(ctx, query.Get(constant.RequestParamStartDate), query.Get(constant.RequestParamEndDate), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by date range")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingsByStatus lists bookings in one status.
// @Summary Get bookings by status
// @Tags Booking
// @Produce json
// @Param status path string true "pending, confirmed, cancelled or completed"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByStatus/{status} [get]
func (handler *Handler) GetBookingsByStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByStatus")
	defer scope.End()

	list, err := handler.service.GetByStatus(ctx, chi.URLParam(request, constant.RequestParamStatus), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by status")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// GetBookingsByLibrary lists bookings of a library.
// @Summary Get bookings by library
// @Tags Booking
// @Produce json
// @Param libraryId path string true "Library ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.BookingList "Bookings retrieved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/getByLibrary/{libraryId} [get]
func (handler *Handler) GetBookingsByLibrary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByLibrary")
	defer scope.End()

	list, err := handler.service.GetByLibrary(ctx, chi.URLParam(request, constant.RequestParamLibraryID), queryParams(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by library")

		response.WithError(writer, err)

		return
	}

	writeList(writer, list)
}

// ExportBookings uploads a library's bookings in a date range as JSON.
// @Summary Export bookings
// @Description Serialise the bookings of a library between two days and upload them to object storage.
// @Tags Booking
// @Produce json
// @Param libraryId query string true "Library ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.ExportResponse "Bookings exported successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booking/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	query := request.URL.Query()

	export, err := handler.service.Export(ctx, query.Get(constant.RequestParamLibraryID), query.Get(constant.RequestParamStartDate), query.Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("export.count", export.Count)

	response.WithPayload(writer, http.StatusOK, "Bookings exported successfully", "url", export.URL)
}

func queryParams(request *http.Request) gDto.QueryParams {
	params := gDto.QueryParams{}
	params.FromRequest(request, false)

	return params
}

func writeList(writer http.ResponseWriter, list dto.BookingList) {
	const message = "Bookings retrieved successfully"

	if list.Pagination == nil {
		response.WithPayload(writer, http.StatusOK, message, "bookings", list.Bookings)

		return
	}

	response.WithPaginatedPayload(writer, http.StatusOK, message, "bookings", list.Bookings, response.Pagination{
		Page:      list.Pagination.Page,
		Limit:     list.Pagination.Limit,
		TotalData: list.Pagination.TotalData,
		TotalPage: list.Pagination.TotalPage,
	})
}
