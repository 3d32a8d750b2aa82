package request

import (
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"
)

type CreateResourceRequest struct {
	Title             string   `json:"title" binding:"required,notblank,max=255"`
	Description       string   `json:"description" binding:"max=2000"`
	Address           string   `json:"address" binding:"max=500"`
	Latitude          *float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
	PricePerHourCents int64    `json:"price_per_hour_cents" binding:"gte=0"`
	PricePerDayCents  int64    `json:"price_per_day_cents" binding:"gte=0"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Title:             r.Title,
		Description:       r.Description,
		Address:           r.Address,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		PricePerHourCents: r.PricePerHourCents,
		PricePerDayCents:  r.PricePerDayCents,
	}
}

type UpdateResourceRequest struct {
	Title             *string  `json:"title,omitempty" binding:"omitempty,notblank,max=255"`
	Description       *string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Address           *string  `json:"address,omitempty" binding:"omitempty,max=500"`
	Latitude          *float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
	PricePerHourCents *int64   `json:"price_per_hour_cents,omitempty" binding:"omitempty,gte=0"`
	PricePerDayCents  *int64   `json:"price_per_day_cents,omitempty" binding:"omitempty,gte=0"`
	IsAvailable       *bool    `json:"is_available,omitempty"`
}

func (r UpdateResourceRequest) ToCommand() commands.UpdateResourceRequest {
	return commands.UpdateResourceRequest{
		Title:             r.Title,
		Description:       r.Description,
		Address:           r.Address,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		PricePerHourCents: r.PricePerHourCents,
		PricePerDayCents:  r.PricePerDayCents,
		IsAvailable:       r.IsAvailable,
	}
}

type ListResourcesQuery struct {
	PageQuery
	OwnerID            string `form:"owner_id" binding:"omitempty,uuid"`
	IncludeUnavailable bool   `form:"include_unavailable"`
}

func (q ListResourcesQuery) Filter() (queries.ResourceFilter, error) {
	ownerID, err := optionalID(q.OwnerID)
	if err != nil {
		return queries.ResourceFilter{}, err
	}
	return queries.ResourceFilter{OwnerID: ownerID, IncludeUnavailable: q.IncludeUnavailable}, nil
}
