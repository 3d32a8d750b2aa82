package commands

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/review"
	"parkshare/internal/pkg/clock"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RevieweeID uuid.UUID
	BookingID  *uuid.UUID
	Rating     int
	Comment    string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

// CreateReview stores the review and rebuilds the reviewee's stored aggregate
// from the full review set in the same transaction.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error) {
	now := uc.clock.Now()
	rev, err := review.NewReview(reviewerID, req.RevieweeID, req.BookingID, req.Rating, req.Comment, now)
	if err != nil {
		return nil, err
	}

	var agg review.AggregateRating
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockRatingSubject(ctx, rev.RevieweeID()); err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, rev); err != nil {
			return err
		}
		ratings, err := tx.Reviews().ListRatingsByReviewee(ctx, rev.RevieweeID())
		if err != nil {
			return err
		}
		agg = review.Aggregate(ratings)
		if err := tx.RatingStats().Save(ctx, rev.RevieweeID(), agg, now); err != nil {
			return err
		}

		payload := shared.ReviewEvent{
			ReviewID:    rev.ID(),
			RevieweeID:  rev.RevieweeID(),
			Rating:      rev.Rating().Value(),
			ReviewCount: agg.Count(),
			OccurredAt:  now,
		}
		if avg, ok := agg.Average(); ok {
			payload.AverageRating = &avg
		}
		event, err := shared.NewOutboxEvent(shared.TopicReviewCreated, rev.RevieweeID().String(), payload, now)
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("review created",
		"review_id", rev.ID(),
		"reviewee_id", rev.RevieweeID(),
		"rating", agg.Display())
	return &CreateReviewResult{ReviewID: rev.ID()}, nil
}
