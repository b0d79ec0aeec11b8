package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"libraryhub/shared/constant"
	"libraryhub/shared/dto"
	"libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	modified := created.Add(26 * time.Hour)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  created,
		ModifiedAt: modified,
		CreatedBy:  "admin-1",
		ModifiedBy: "member-7",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  timezone.Format(created, constant.DateFormat),
		ModifiedAt: timezone.Format(modified, constant.DateFormat),
		CreatedBy:  "admin-1",
		ModifiedBy: "member-7",
	}, metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		defaults bool
		want     dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "defaults fill page and limit",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "nothing given without defaults",
			want: dto.QueryParams{},
		},
		{
			name:     "only limit given with defaults",
			query:    "limit=5",
			defaults: true,
			want:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: 5},
		},
		{
			name:  "limit capped",
			query: "page=1&limit=500",
			want:  dto.QueryParams{Page: 1, Limit: constant.MaxValueLimit},
		},
		{
			name:  "malformed numbers ignored",
			query: "page=abc&limit=ten",
			want:  dto.QueryParams{},
		},
		{
			name:  "non-positive numbers ignored",
			query: "page=0&limit=-3",
			want:  dto.QueryParams{},
		},
		{
			name:  "unknown sort direction ignored",
			query: "sort_by=booking_date&sort_dir=sideways",
			want:  dto.QueryParams{SortBy: "booking_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/booking/getAll?"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(req, tt.defaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams_IsPaginated(t *testing.T) {
	assert.False(t, (&dto.QueryParams{}).IsPaginated())
	assert.False(t, (&dto.QueryParams{Page: 3}).IsPaginated())
	assert.True(t, (&dto.QueryParams{Limit: 10}).IsPaginated())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "seat_id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.seat_id = :seat_id",
			wantArgs:  map[string]any{"seat_id": "s-1"},
		},
		{
			name:      "not equal with arg name",
			filter:    dto.Filter{Field: "id", ArgName: "exclude_id", Value: "b-1", Operator: dto.FilterOperatorNotEq, Table: "bookings"},
			wantWhere: "bookings.id != :exclude_id",
			wantArgs:  map[string]any{"exclude_id": "b-1"},
		},
		{
			name:      "range lower bound",
			filter:    dto.Filter{Field: "booking_date", ArgName: "day_from", Value: "2026-10-01", Operator: dto.FilterOperatorGreaterEq, Table: "bookings"},
			wantWhere: "bookings.booking_date >= :day_from",
			wantArgs:  map[string]any{"day_from": "2026-10-01"},
		},
		{
			name:      "range upper bound",
			filter:    dto.Filter{Field: "booking_date", ArgName: "day_to", Value: "2026-10-02", Operator: dto.FilterOperatorLess, Table: "bookings"},
			wantWhere: "bookings.booking_date < :day_to",
			wantArgs:  map[string]any{"day_to": "2026-10-02"},
		},
		{
			name:      "greater without table",
			filter:    dto.Filter{Field: "available_seats", Value: 0, Operator: dto.FilterOperatorGreater},
			wantWhere: "available_seats > :available_seats",
			wantArgs:  map[string]any{"available_seats": 0},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "central", Operator: dto.FilterOperatorLike, Table: "libraries"},
			wantWhere: "LOWER(libraries.name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%central%"},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn, Table: "bookings"},
			wantWhere: "bookings.status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "membership_plan_id", Operator: dto.FilterIsNull, Table: "users"},
			wantWhere: "users.membership_plan_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "plain query",
			filter:    dto.Filter{Value: "seats.is_available", Operator: dto.FilterPlainQuery},
			wantWhere: "(seats.is_available)",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	activeOnDay := dto.And(
		dto.Filter{Field: "seat_id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		dto.Filter{Field: "booking_date", Value: "2026-10-19", Operator: dto.FilterOperatorEq, Table: "bookings"},
		dto.Or(
			dto.Filter{Field: "status", ArgName: "pending", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "status", ArgName: "confirmed", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "bookings"},
		),
	)

	where, args := activeOnDay.GetWhereClause()

	assert.Equal(t, "(bookings.seat_id = :seat_id AND bookings.booking_date = :booking_date AND "+
		"(bookings.status = :pending OR bookings.status = :confirmed))", where)
	assert.Len(t, args, 4)
}

func TestFilterGroup_Empty(t *testing.T) {
	empty := dto.FilterGroup{}
	where, args := empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)

	onlyUnknown := dto.And(dto.Filter{Field: "id", Operator: "between"})
	where, _ = onlyUnknown.GetWhereClause()
	assert.Empty(t, where)
}

func TestFilterGroup_DefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "library_id", Value: "lib-1", Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "is_available", Value: true, Operator: dto.FilterOperatorEq},
	}}

	where, _ := group.GetWhereClause()

	assert.Equal(t, "(library_id = :library_id AND is_available = :is_available)", where)
}
