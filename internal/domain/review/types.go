package review

import "parkshare/internal/pkg/errs"

var (
	ErrInvalidRating         = errs.NewKind("rating must be between 1 and 5", errs.ErrValidation)
	ErrCommentTooLong        = errs.NewKind("comment exceeds maximum length", errs.ErrValidation)
	ErrMissingReviewer       = errs.NewKind("reviewer id is required", errs.ErrValidation)
	ErrMissingReviewee       = errs.NewKind("reviewee id is required", errs.ErrValidation)
	ErrSelfReview            = errs.NewKind("users cannot review themselves", errs.ErrValidation)
	ErrInconsistentAggregate = errs.NewKind("aggregate sum is outside the rating range for its count", errs.ErrValidation)
)
