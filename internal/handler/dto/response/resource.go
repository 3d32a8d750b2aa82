package response

import (
	"time"

	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID                uuid.UUID             `json:"id"`
	OwnerID           uuid.UUID             `json:"owner_id"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Address           string                `json:"address"`
	Latitude          *float64              `json:"latitude,omitempty"`
	Longitude         *float64              `json:"longitude,omitempty"`
	PricePerHourCents int64                 `json:"price_per_hour_cents"`
	PricePerDayCents  int64                 `json:"price_per_day_cents"`
	IsAvailable       bool                  `json:"is_available"`
	Rating            queries.RatingSummary `json:"rating"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) (*ResourceResponse, error) {
	return fromView[ResourceResponse](v)
}

func FromResourceList(views []*queries.ResourceView, next *queries.Cursor) (*ListResponse[*ResourceResponse], error) {
	return fromList[ResourceResponse](views, next)
}
