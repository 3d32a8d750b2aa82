package httperr

import (
	"net/http"

	"parkshare/internal/domain/booking"
	"parkshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	ConflictingBookingID string `json:"conflicting_booking_id"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError aborts with the status that matches err's category. Domain messages
// are safe to show; storage and unknown failures are not.
func FromError(c *gin.Context, err error) {
	switch errs.Category(err) {
	case errs.ErrInvalidInterval, errs.ErrValidation:
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.ErrNotFound:
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.ErrForbidden:
		AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.ErrBookingConflict:
		var detail any
		if id, ok := booking.ConflictingBookingID(err); ok {
			detail = ConflictDetail{ConflictingBookingID: id.String()}
		}
		AbortWithError(c, http.StatusConflict, err, "Booking conflicts with an existing booking", detail)
	case errs.ErrInvalidTransition:
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// BindError reports a request that failed decoding or binding tags.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
}
