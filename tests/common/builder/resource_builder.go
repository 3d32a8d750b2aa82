//go:build unit || e2e

package builder

import (
	"time"

	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/review"
	reqdto "parkshare/internal/handler/dto/request"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	OwnerID           uuid.UUID
	Title             string
	Description       string
	Address           string
	PricePerHourCents int64
	PricePerDayCents  int64
	CreatedAt         time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		OwnerID:           uuid.New(),
		Title:             "Covered bay near the station",
		Description:       "Level 2, bay 14",
		Address:           "1 Station Rd",
		PricePerHourCents: 600,
		PricePerDayCents:  4000,
		CreatedAt:         time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) WithOwnerID(id uuid.UUID) *ResourceBuilder {
	r.OwnerID = id
	return r
}

func (r *ResourceBuilder) details() resource.Details {
	return resource.Details{Title: r.Title, Description: r.Description, Address: r.Address}
}

func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	rates := resource.Rates{PerHourCents: r.PricePerHourCents, PerDayCents: r.PricePerDayCents}
	return resource.NewResource(r.OwnerID, r.details(), rates, r.CreatedAt)
}

func (r *ResourceBuilder) MustBuildDomain() *resource.Resource {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ResourceBuilder) BuildCreateRequest() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Title:             r.Title,
		Description:       r.Description,
		Address:           r.Address,
		PricePerHourCents: r.PricePerHourCents,
		PricePerDayCents:  r.PricePerDayCents,
	}
}

func (r *ResourceBuilder) BuildCreateRequestDTO() reqdto.CreateResourceRequest {
	return reqdto.CreateResourceRequest{
		Title:             r.Title,
		Description:       r.Description,
		Address:           r.Address,
		PricePerHourCents: r.PricePerHourCents,
		PricePerDayCents:  r.PricePerDayCents,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:                uuid.New(),
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		Description:       r.Description,
		Address:           r.Address,
		PricePerHourCents: r.PricePerHourCents,
		PricePerDayCents:  r.PricePerDayCents,
		IsAvailable:       true,
		Rating:            queries.NewRatingSummary(review.NoRating()),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.CreatedAt,
	}
}
