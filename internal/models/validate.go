package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// FieldError names one rejected input field by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, rule, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a single-field validation failure.
func NewValidationError(field, rule, message string) *ValidationError {
	verr := &ValidationError{}
	verr.Add(field, rule, message)
	return verr
}

type enum interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Date); ok {
			return d.Time
		}
		return nil
	}, Date{})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

var ruleMessages = map[string]string{
	"required": "is required",
	"notblank": "must not be empty",
	"email":    "must be a valid email address",
	"uuid":     "must be a valid UUID",
	"enum":     "is not an accepted value",
}

func structErrors(s interface{}) *ValidationError {
	verr := &ValidationError{}
	err := validate.Struct(s)
	if err == nil {
		return verr
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("", "invalid", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fe.Tag(), ruleMessage(fe))
	}
	return verr
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	if msg, ok := ruleMessages[fe.Tag()]; ok {
		return msg
	}
	return "failed " + fe.Tag() + " check"
}

func (in CreateUserInput) Validate() error {
	return structErrors(in).orNil()
}

func (in CreateChildInput) Validate() error {
	return structErrors(in).orNil()
}

func (in CreateDonorInput) Validate() error {
	return structErrors(in).orNil()
}

// Validate enforces the donation shape: money gifts carry only a positive amount,
// goods carry a description and a positive quantity and no amount.
func (in CreateDonationInput) Validate() error {
	verr := structErrors(in)
	switch in.Type {
	case DonationUang:
		if in.Amount == nil {
			verr.Add("amount", "required", "is required for money donations")
		} else {
			checkAmount(verr, *in.Amount)
		}
		if in.ItemDescription != nil {
			verr.Add("item_description", "excluded", "must be empty for money donations")
		}
		if in.ItemQuantity != nil {
			verr.Add("item_quantity", "excluded", "must be empty for money donations")
		}
	case DonationBarang:
		if in.Amount != nil {
			verr.Add("amount", "excluded", "must be empty for goods donations")
		}
		if in.ItemDescription == nil || strings.TrimSpace(*in.ItemDescription) == "" {
			verr.Add("item_description", "required", "is required for goods donations")
		}
		if in.ItemQuantity == nil {
			verr.Add("item_quantity", "required", "is required for goods donations")
		} else if *in.ItemQuantity <= 0 {
			verr.Add("item_quantity", "gt", "must be greater than zero")
		}
	}
	return verr.orNil()
}

func (in CreateExpenseInput) Validate() error {
	verr := structErrors(in)
	checkAmount(verr, in.Amount)
	return verr.orNil()
}

// maxAmount is the first value that no longer fits NUMERIC(15,2).
var maxAmount = decimal.New(1, 13)

// checkAmount accepts positive amounts that storage keeps exactly: at most two
// decimal places and below maxAmount.
func checkAmount(verr *ValidationError, amount decimal.Decimal) {
	switch {
	case !amount.IsPositive():
		verr.Add("amount", "gt", "must be greater than zero")
	case !amount.Equal(amount.Round(2)):
		verr.Add("amount", "scale", "must have at most 2 decimal places")
	case amount.GreaterThanOrEqual(maxAmount):
		verr.Add("amount", "max", "must be less than 10000000000000")
	}
}

func (in CreateActivityInput) Validate() error {
	verr := structErrors(in)
	checkSchedule(verr, in.ScheduledDate, in.EndDate)
	return verr.orNil()
}

func (in UpdateChildInput) Validate() error {
	verr := &ValidationError{}
	checkID(verr, in.ID)
	checkNotNull(verr, "full_name", in.FullName)
	if v, ok := in.FullName.Get(); ok && strings.TrimSpace(v) == "" {
		verr.Add("full_name", "notblank", ruleMessages["notblank"])
	}
	checkNotNull(verr, "birth_date", in.BirthDate)
	if v, ok := in.BirthDate.Get(); ok && v.IsZero() {
		verr.Add("birth_date", "required", ruleMessages["required"])
	}
	checkNotNull(verr, "gender", in.Gender)
	checkEnum(verr, "gender", in.Gender)
	checkNotNull(verr, "education_status", in.EducationStatus)
	checkEnum(verr, "education_status", in.EducationStatus)
	checkNotNull(verr, "is_active", in.IsActive)
	return verr.orNil()
}

// Validate checks the update on its own. The merged schedule is checked again
// against the stored row because either end may come from storage.
func (in UpdateActivityInput) Validate() error {
	verr := &ValidationError{}
	checkID(verr, in.ID)
	checkNotNull(verr, "title", in.Title)
	if v, ok := in.Title.Get(); ok && strings.TrimSpace(v) == "" {
		verr.Add("title", "notblank", ruleMessages["notblank"])
	}
	checkNotNull(verr, "type", in.Type)
	checkEnum(verr, "type", in.Type)
	checkNotNull(verr, "scheduled_date", in.ScheduledDate)
	if v, ok := in.ScheduledDate.Get(); ok && v.IsZero() {
		verr.Add("scheduled_date", "required", ruleMessages["required"])
	}
	checkNotNull(verr, "status", in.Status)
	checkEnum(verr, "status", in.Status)
	return verr.orNil()
}

func (in DateRangeInput) Validate() error {
	verr := structErrors(in)
	checkRange(verr, in)
	return verr.orNil()
}

func (in DonationQuery) Validate() error {
	verr := structErrors(in)
	checkRange(verr, in.DateRangeInput)
	return verr.orNil()
}

func (in ExpenseQuery) Validate() error {
	verr := structErrors(in)
	checkRange(verr, in.DateRangeInput)
	return verr.orNil()
}

func (in ActivityQuery) Validate() error {
	verr := structErrors(in)
	checkRange(verr, in.DateRangeInput)
	return verr.orNil()
}

// ValidateSchedule rejects an activity that ends before it starts.
func ValidateSchedule(scheduled time.Time, end *time.Time) error {
	verr := &ValidationError{}
	checkSchedule(verr, scheduled, end)
	return verr.orNil()
}

func checkSchedule(verr *ValidationError, scheduled time.Time, end *time.Time) {
	if end != nil && !scheduled.IsZero() && end.Before(scheduled) {
		verr.Add("end_date", "gtefield", "must not be before scheduled_date")
	}
}

func checkRange(verr *ValidationError, r DateRangeInput) {
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		verr.Add("end_date", "gtefield", "must not be before start_date")
	}
}

func checkID(verr *ValidationError, id string) {
	if err := validate.Var(id, "required,uuid"); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			verr.Add("id", fieldErrs[0].Tag(), ruleMessages[fieldErrs[0].Tag()])
			return
		}
		verr.Add("id", "uuid", ruleMessages["uuid"])
	}
}

func checkNotNull[T any](verr *ValidationError, field string, o Optional[T]) {
	if o.IsNull() {
		verr.Add(field, "not_null", "cannot be null")
	}
}

func checkEnum[T enum](verr *ValidationError, field string, o Optional[T]) {
	if v, ok := o.Get(); ok && !v.Valid() {
		verr.Add(field, "enum", ruleMessages["enum"])
	}
}
