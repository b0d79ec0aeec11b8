package dto

import (
	"libraryhub/internal/domains/plan/model"
	gDto "libraryhub/shared/dto"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	LibraryID               string   `json:"libraryId"               validate:"required,uuid"`
	Name                    string   `json:"name"                    validate:"required,max=100"`
	Price                   float64  `json:"price"                   validate:"gte=0"`
	DurationDays            int      `json:"durationDays"            validate:"required,min=1"`
	Features                []string `json:"features"                validate:"omitempty,dive,max=100"`
	AllowedBookingsPerMonth int      `json:"allowedBookingsPerMonth" validate:"gte=0"`
	ELibraryAccess          bool     `json:"eLibraryAccess"`
}

func (c *CreatePlanRequest) ToModel(user string) model.Plan {
	features := c.Features
	if features == nil {
		features = []string{}
	}

	return model.Plan{
		ID:                      uuid.NewString(),
		LibraryID:               c.LibraryID,
		Name:                    c.Name,
		Price:                   c.Price,
		DurationDays:            c.DurationDays,
		Features:                features,
		AllowedBookingsPerMonth: c.AllowedBookingsPerMonth,
		ELibraryAccess:          c.ELibraryAccess,
		Metadata:                gModel.NewMetadata(user, timezone.Now()),
	}
}

type PlanResponse struct {
	ID                      string   `json:"id"`
	LibraryID               string   `json:"libraryId"`
	Name                    string   `json:"name"`
	Price                   float64  `json:"price"`
	DurationDays            int      `json:"durationDays"`
	Features                []string `json:"features"`
	AllowedBookingsPerMonth int      `json:"allowedBookingsPerMonth"`
	ELibraryAccess          bool     `json:"eLibraryAccess"`
	gDto.Metadata
}

func (r *PlanResponse) FromModel(model model.Plan) {
	r.ID = model.ID
	r.LibraryID = model.LibraryID
	r.Name = model.Name
	r.Price = model.Price
	r.DurationDays = model.DurationDays
	r.Features = model.Features
	r.AllowedBookingsPerMonth = model.AllowedBookingsPerMonth
	r.ELibraryAccess = model.ELibraryAccess
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Plan) []PlanResponse {
	res := make([]PlanResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
