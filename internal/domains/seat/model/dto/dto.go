package dto

import (
	"fmt"

	"libraryhub/internal/domains/seat/model"
	gDto "libraryhub/shared/dto"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/google/uuid"
)

const maxSeatsPerRequest = 200

type CreateSeatRequest struct {
	LibraryID   string `json:"libraryId"   validate:"required,uuid"`
	Name        string `json:"name"        validate:"required,max=50"`
	Type        string `json:"type"        validate:"omitempty,oneof=regular quiet_zone computer"`
	Count       int    `json:"count"       validate:"omitempty,min=1,max=200"`
	IsAvailable *bool  `json:"isAvailable" validate:"omitempty"`
}

// ToModels expands the request into Count seats. With more than one seat the
// name becomes a prefix, e.g. "A-1", "A-2".
func (c *CreateSeatRequest) ToModels(user string) []model.Seat {
	count := min(max(c.Count, 1), maxSeatsPerRequest)

	seatType := c.Type
	if seatType == "" {
		seatType = model.TypeRegular
	}

	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	now := timezone.Now()
	seats := make([]model.Seat, count)

	for i := range seats {
		name := c.Name
		if count > 1 {
			name = fmt.Sprintf("%s-%d", c.Name, i+1)
		}

		seats[i] = model.Seat{
			ID:          uuid.NewString(),
			LibraryID:   c.LibraryID,
			Name:        name,
			Type:        seatType,
			IsAvailable: available,
			Metadata:    gModel.NewMetadata(user, now),
		}
	}

	return seats
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

type SeatResponse struct {
	ID          string `json:"id"`
	LibraryID   string `json:"libraryId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	IsAvailable bool   `json:"isAvailable"`
	gDto.Metadata
}

func (r *SeatResponse) FromModel(model model.Seat) {
	r.ID = model.ID
	r.LibraryID = model.LibraryID
	r.Name = model.Name
	r.Type = model.Type
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Seat) []SeatResponse {
	res := make([]SeatResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
