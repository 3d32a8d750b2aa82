package middleware

import (
	"reflect"
	"strings"

	"parkshare/internal/domain/booking"
	"parkshare/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return errs.Wrap(err, "failed to register booking_status validator")
	}
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		return errs.Wrap(err, "failed to register notblank validator")
	}
	return nil
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, err := booking.ParseStatus(fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
