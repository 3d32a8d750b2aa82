package converter

import (
	"parkshare/internal/domain/resource"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
)

func ResourceToCreateParams(r *resource.Resource) sqlc.CreateResourceParams {
	d := r.Details()
	return sqlc.CreateResourceParams{
		ID:                r.ID(),
		OwnerID:           r.OwnerID(),
		Title:             d.Title,
		Description:       d.Description,
		Address:           d.Address,
		Latitude:          pgconv.Float64PtrToPgtype(d.Latitude),
		Longitude:         pgconv.Float64PtrToPgtype(d.Longitude),
		PricePerHourCents: r.Rates().PerHourCents,
		PricePerDayCents:  r.Rates().PerDayCents,
		IsAvailable:       r.IsAvailable(),
		CreatedAt:         pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceToUpdateParams(r *resource.Resource) sqlc.UpdateResourceParams {
	d := r.Details()
	return sqlc.UpdateResourceParams{
		ID:                r.ID(),
		Title:             d.Title,
		Description:       d.Description,
		Address:           d.Address,
		Latitude:          pgconv.Float64PtrToPgtype(d.Latitude),
		Longitude:         pgconv.Float64PtrToPgtype(d.Longitude),
		PricePerHourCents: r.Rates().PerHourCents,
		PricePerDayCents:  r.Rates().PerDayCents,
		IsAvailable:       r.IsAvailable(),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) *resource.Resource {
	return resource.ReconstructResource(row.ID, row.OwnerID, resource.Details{
		Title:       row.Title,
		Description: row.Description,
		Address:     row.Address,
		Latitude:    pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:   pgconv.Float64PtrFromPgtype(row.Longitude),
	}, resource.Rates{
		PerHourCents: row.PricePerHourCents,
		PerDayCents:  row.PricePerDayCents,
	}, row.IsAvailable, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
