package converter

import (
	"parkshare/internal/domain/booking"
	sqlc "parkshare/internal/infra/sqlc/generated"
	"parkshare/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		ResourceID:      b.ResourceID(),
		RenterID:        b.RenterID(),
		RenterName:      b.RenterName().String(),
		StartTime:       pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:         pgconv.TimeToPgtype(b.TimeSlot().End()),
		Status:          b.Status().String(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow trusts the table constraints; a row that breaks them is a
// storage fault, not a validation error.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID, row.ResourceID, row.RenterID,
		booking.ReconstructRenterName(row.RenterName),
		slot,
		status,
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
