package service

import (
	"context"
	"encoding/json"
	"fmt"

	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"
	"libraryhub/shared/constant"
	gDto "libraryhub/shared/dto"
	"libraryhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Export writes a library's bookings in [startDate, endDate] as a JSON document to
// object storage and returns its public URL.
func (s *serviceImpl) Export(ctx context.Context, libraryID, startDate, endDate string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return res, err
	}

	if err = s.ensureLibrary(ctx, libraryID, errLibraryNotFound); err != nil {
		return res, err
	}

	details, err := s.repo.GetAllDetails(ctx, gDto.QueryParams{
		SortBy:  orderByDay,
		SortDir: gDto.SortDirAsc,
	}, gDto.And(append([]any{eq(model.FieldLibraryID, libraryID)}, rangeFilters(from, to)...)...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return res, fmt.Errorf("failed to get bookings for export: %w", err)
	}

	var list dto.BookingList
	list.FromDetails(details, today())

	body, err := json.Marshal(list.Bookings)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode booking export")

		return res, fmt.Errorf("failed to encode booking export: %w", err)
	}

	fileName := fmt.Sprintf("%s_%s_%s_%d.json", libraryID, from, to, timezone.Now().Unix())

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, s.cfg.Booking.ExportDirectory, fileName, constant.ContentTypeJSON, body)
	if err != nil {
		return res, fmt.Errorf("failed to upload booking export: %w", err)
	}

	res.URL = url
	res.Count = len(list.Bookings)

	return res, nil
}
