package commands

import (
	"context"
	"log/slog"
	"time"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/resource"
	"parkshare/internal/pkg/clock"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID      uuid.UUID
	RenterName      string
	StartTime       time.Time
	EndTime         time.Time
	TotalPriceCents int64
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*CreateBookingResult, error)
	TransitionBooking(ctx context.Context, bookingID uuid.UUID, target string, actor Actor) error
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

// CreateBooking runs the conflict check and the insert under the resource lock,
// so two overlapping requests for one resource can never both succeed.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, renterID uuid.UUID) (*CreateBookingResult, error) {
	slot, err := booking.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	name, err := booking.NewRenterName(req.RenterName)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(req.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, req.ResourceID)
		if err != nil {
			return notFoundAs(err, resource.ErrResourceNotFound)
		}
		if err := res.EnsureBookable(); err != nil {
			return err
		}

		if err := tx.LockResource(ctx, res.ID()); err != nil {
			return err
		}
		active, err := tx.Bookings().FindActiveInWindow(ctx, res.ID(), slot)
		if err != nil {
			return err
		}
		if err := booking.CheckConflict(slot, active); err != nil {
			return err
		}

		now := uc.clock.Now()
		b, err := booking.NewBooking(res.ID(), renterID, name, slot, price, now)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created = b
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingCreated, b, "", now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		"booking_id", created.ID(),
		"resource_id", created.ResourceID(),
		"start", created.TimeSlot().Start(),
		"end", created.TimeSlot().End())
	return &CreateBookingResult{BookingID: created.ID()}, nil
}

func (uc *bookingUseCaseImpl) TransitionBooking(ctx context.Context, bookingID uuid.UUID, target string, actor Actor) error {
	status, err := booking.ParseStatus(target)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Only the resource id is taken from this read; it never changes.
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}

		// Cancellation frees the slot; serialize it with creations on the same resource.
		if err := tx.LockResource(ctx, b.ResourceID()); err != nil {
			return err
		}
		// A transition that committed while we waited must be seen before ours.
		b, err = tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, booking.ErrBookingNotFound)
		}

		res, err := tx.Resources().FindByID(ctx, b.ResourceID())
		if err != nil {
			return notFoundAs(err, resource.ErrResourceNotFound)
		}
		if err := authorizeTransition(actor, b, res.OwnerID(), status); err != nil {
			return err
		}

		previous := b.Status()
		now := uc.clock.Now()
		if err := b.TransitionTo(status, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}

		uc.logger.Info("booking status changed",
			"booking_id", b.ID(),
			"from", previous,
			"to", b.Status(),
			"actor_id", actor.ID)
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingStatusChanged, b, previous, now)
	})
}

// Owners and admins drive the lifecycle; a renter may only cancel their own booking.
func authorizeTransition(actor Actor, b *booking.Booking, ownerID uuid.UUID, target booking.Status) error {
	switch {
	case actor.IsAdmin(), actor.ID == ownerID:
		return nil
	case actor.ID == b.RenterID() && target == booking.StatusCancelled:
		return nil
	default:
		return booking.ErrNotParticipant
	}
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, previous booking.Status, now time.Time) error {
	event, err := shared.NewOutboxEvent(topic, b.ResourceID().String(), shared.BookingEvent{
		BookingID:       b.ID(),
		ResourceID:      b.ResourceID(),
		RenterID:        b.RenterID(),
		Status:          b.Status().String(),
		PreviousStatus:  previous.String(),
		StartTime:       b.TimeSlot().Start(),
		EndTime:         b.TimeSlot().End(),
		TotalPriceCents: b.TotalPrice().Cents(),
		OccurredAt:      now,
	}, now)
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, event)
}
