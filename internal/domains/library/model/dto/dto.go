package dto

import (
	"libraryhub/internal/domains/library/model"
	"libraryhub/shared"
	gDto "libraryhub/shared/dto"
	gModel "libraryhub/shared/model"
	"libraryhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateLibraryRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Address     string  `json:"address"     validate:"required,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Status      string  `json:"status"      validate:"omitempty,oneof=active pending inactive"`
	OwnerID     *string `json:"ownerId"     validate:"omitempty,uuid"`
}

// ToModel creates a library without seats. Counters grow as seats are added.
func (c *CreateLibraryRequest) ToModel(user string) model.Library {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	return model.Library{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Address:     c.Address,
		Description: c.Description,
		Status:      status,
		OwnerID:     c.OwnerID,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type LibraryResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	TotalSeats     int     `json:"totalSeats"`
	AvailableSeats int     `json:"availableSeats"`
	OwnerID        *string `json:"ownerId,omitempty"`
	gDto.Metadata
}

func (r *LibraryResponse) FromModel(model model.Library) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Description = model.Description
	r.Status = model.Status
	r.TotalSeats = model.TotalSeats
	r.AvailableSeats = model.AvailableSeats
	r.OwnerID = model.OwnerID
	r.Metadata.FromModel(model.Metadata)
}

type GetLibrariesResponse struct {
	Libraries []LibraryResponse `json:"libraries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetLibrariesResponse) FromModels(models []model.Library, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Libraries = make([]LibraryResponse, len(models))
	for i, mod := range models {
		r.Libraries[i].FromModel(mod)
	}
}
