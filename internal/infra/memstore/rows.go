package memstore

import (
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/review"
	"parkshare/internal/pkg/errs"
	"parkshare/internal/usecase/queries"

	"github.com/google/uuid"
)

// Rows are stored by value so callers never share memory with the store.
// Timestamps are truncated to microseconds like timestamptz.

func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func storedTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := storedTime(*t)
	return &v
}

type resourceRow struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Title             string
	Description       string
	Address           string
	Latitude          *float64
	Longitude         *float64
	PricePerHourCents int64
	PricePerDayCents  int64
	IsAvailable       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func toResourceRow(r *resource.Resource) resourceRow {
	d := r.Details()
	return resourceRow{
		ID:                r.ID(),
		OwnerID:           r.OwnerID(),
		Title:             d.Title,
		Description:       d.Description,
		Address:           d.Address,
		Latitude:          copyFloat(d.Latitude),
		Longitude:         copyFloat(d.Longitude),
		PricePerHourCents: r.Rates().PerHourCents,
		PricePerDayCents:  r.Rates().PerDayCents,
		IsAvailable:       r.IsAvailable(),
		CreatedAt:         storedTime(r.CreatedAt()),
		UpdatedAt:         storedTime(r.UpdatedAt()),
	}
}

func (row resourceRow) domain() *resource.Resource {
	return resource.ReconstructResource(row.ID, row.OwnerID, resource.Details{
		Title:       row.Title,
		Description: row.Description,
		Address:     row.Address,
		Latitude:    copyFloat(row.Latitude),
		Longitude:   copyFloat(row.Longitude),
	}, resource.Rates{
		PerHourCents: row.PricePerHourCents,
		PerDayCents:  row.PricePerDayCents,
	}, row.IsAvailable, row.CreatedAt, row.UpdatedAt)
}

func (row resourceRow) view(rating review.AggregateRating) *queries.ResourceView {
	return &queries.ResourceView{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Title:             row.Title,
		Description:       row.Description,
		Address:           row.Address,
		Latitude:          copyFloat(row.Latitude),
		Longitude:         copyFloat(row.Longitude),
		PricePerHourCents: row.PricePerHourCents,
		PricePerDayCents:  row.PricePerDayCents,
		IsAvailable:       row.IsAvailable,
		Rating:            queries.NewRatingSummary(rating),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

type bookingRow struct {
	ID              uuid.UUID
	ResourceID      uuid.UUID
	RenterID        uuid.UUID
	RenterName      string
	StartTime       time.Time
	EndTime         time.Time
	Status          booking.Status
	TotalPriceCents int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toBookingRow(b *booking.Booking) bookingRow {
	return bookingRow{
		ID:              b.ID(),
		ResourceID:      b.ResourceID(),
		RenterID:        b.RenterID(),
		RenterName:      b.RenterName().String(),
		StartTime:       storedTime(b.TimeSlot().Start()),
		EndTime:         storedTime(b.TimeSlot().End()),
		Status:          b.Status(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CreatedAt:       storedTime(b.CreatedAt()),
		UpdatedAt:       storedTime(b.UpdatedAt()),
	}
}

func (row bookingRow) slot() (booking.TimeSlot, error) {
	slot, err := booking.NewTimeSlot(row.StartTime, row.EndTime)
	if err != nil {
		return booking.TimeSlot{}, errs.Wrapf(err, "stored booking %s", row.ID)
	}
	return slot, nil
}

func (row bookingRow) domain() (*booking.Booking, error) {
	slot, err := row.slot()
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s", row.ID)
	}
	return booking.ReconstructBooking(
		row.ID, row.ResourceID, row.RenterID,
		booking.ReconstructRenterName(row.RenterName),
		slot, row.Status, price,
		row.CreatedAt, row.UpdatedAt,
	), nil
}

func (row bookingRow) view() *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		ResourceID:      row.ResourceID,
		RenterID:        row.RenterID,
		RenterName:      row.RenterName,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Status:          row.Status.String(),
		TotalPriceCents: row.TotalPriceCents,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

type paymentRow struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	RenterID    uuid.UUID
	PayeeID     uuid.UUID
	AmountCents int64
	Status      payment.Status
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func toPaymentRow(p *payment.Payment) paymentRow {
	return paymentRow{
		ID:          p.ID(),
		BookingID:   p.BookingID(),
		RenterID:    p.RenterID(),
		PayeeID:     p.PayeeID(),
		AmountCents: p.AmountCents(),
		Status:      p.Status(),
		CreatedAt:   storedTime(p.CreatedAt()),
		CompletedAt: storedTimePtr(p.CompletedAt()),
	}
}

func (row paymentRow) domain() (*payment.Payment, error) {
	p, err := payment.ReconstructPayment(
		row.ID, row.BookingID, row.RenterID, row.PayeeID,
		row.AmountCents, row.Status, row.CreatedAt, storedTimePtr(row.CompletedAt),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "stored payment %s", row.ID)
	}
	return p, nil
}

func (row paymentRow) view() *queries.PaymentView {
	return &queries.PaymentView{
		ID:          row.ID,
		BookingID:   row.BookingID,
		RenterID:    row.RenterID,
		PayeeID:     row.PayeeID,
		AmountCents: row.AmountCents,
		Status:      row.Status.String(),
		CreatedAt:   row.CreatedAt,
		CompletedAt: storedTimePtr(row.CompletedAt),
	}
}

type reviewRow struct {
	ID         uuid.UUID
	BookingID  *uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func toReviewRow(r *review.Review) reviewRow {
	row := reviewRow{
		ID:         r.ID(),
		ReviewerID: r.ReviewerID(),
		RevieweeID: r.RevieweeID(),
		Rating:     r.Rating().Value(),
		Comment:    r.Comment().String(),
		CreatedAt:  storedTime(r.CreatedAt()),
	}
	if id := r.BookingID(); id != nil {
		v := *id
		row.BookingID = &v
	}
	return row
}

func (row reviewRow) view() *queries.ReviewView {
	v := &queries.ReviewView{
		ID:         row.ID,
		ReviewerID: row.ReviewerID,
		RevieweeID: row.RevieweeID,
		Rating:     int32(row.Rating),
		Comment:    row.Comment,
		CreatedAt:  row.CreatedAt,
	}
	if row.BookingID != nil {
		id := *row.BookingID
		v.BookingID = &id
	}
	return v
}

type ratingStatsRow struct {
	Count     int64
	Sum       int64
	UpdatedAt time.Time
}

func (row ratingStatsRow) aggregate() review.AggregateRating {
	agg, err := review.ReconstructAggregate(row.Count, row.Sum)
	if err != nil {
		return review.NoRating()
	}
	return agg
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
