package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type nowKey struct{}

var validate = newValidator()

// fieldErrors overrides the generic invalid-field error for specific fields.
var fieldErrors = map[string]error{
	"rating": ErrInvalidRating,
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	subjects := make([]string, len(ContactSubjects))
	for i, s := range ContactSubjects {
		subjects[i] = s.Value
	}
	v.RegisterAlias("timeslot", oneOf(TimeSlots))
	v.RegisterAlias("occasion", oneOf(Occasions))
	v.RegisterAlias("subject", oneOf(subjects))
	v.RegisterAlias("guests", fmt.Sprintf("min=%d,max=%d", MinGuests, MaxGuests))

	if err := v.RegisterValidationCtx("notpast", notPast); err != nil {
		panic(err)
	}
	return v
}

// oneOf quotes every value so options with spaces survive the tag parser.
func oneOf(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "oneof=" + strings.Join(quoted, " ")
}

// notPast accepts a YYYY-MM-DD date that is today or later, in UTC, relative
// to the time carried by the context.
func notPast(ctx context.Context, fl validator.FieldLevel) bool {
	date, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	now, ok := ctx.Value(nowKey{}).(time.Time)
	if !ok {
		now = time.Now()
	}
	return !date.Before(truncateDay(now))
}

// validateStruct checks s against its validate tags and maps the first
// failure to ErrMissingField or ErrInvalidField.
func validateStruct(ctx context.Context, s any) error {
	err := validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Errorf("%w: %s", ErrMissingField, fe.Field())
	}
	if sentinel, ok := fieldErrors[fe.Field()]; ok {
		return sentinel
	}
	return fmt.Errorf("%w: %s %v", ErrInvalidField, fe.Field(), fe.Value())
}
