// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-festa/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldName   = "nome"
	FieldPhone  = "telefone"
	FieldFoodID = "comida_id"
)

// structFields maps public field names to the struct fields carrying the
// `validate` tags.
var structFields = map[string]string{
	FieldName:   "Name",
	FieldPhone:  "Phone",
	FieldFoodID: "FoodID",
}

// RequestValidator validates identities and reservation requests.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements [Validator]. Supported values are [models.Identity] and
// [models.ReservationRequest], by value or by pointer. Identities are expected
// to be normalized already: a name made of spaces is not empty.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.Identity:
		return v.validateStruct(ctx, val, fields)
	case *models.Identity:
		if val == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *val, fields)
	case models.ReservationRequest:
		return v.validateReservationRequest(ctx, val, fields)
	case *models.ReservationRequest:
		if val == nil {
			return ErrUnsupportedType
		}
		return v.validateReservationRequest(ctx, *val, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *RequestValidator) validateReservationRequest(ctx context.Context, req models.ReservationRequest, fields []string) error {
	var identityFields, requestFields []string
	for _, f := range fields {
		if f == FieldFoodID {
			requestFields = append(requestFields, f)
		} else {
			identityFields = append(identityFields, f)
		}
	}

	if len(fields) == 0 || len(identityFields) > 0 {
		if err := v.validateStruct(ctx, req.Identity, identityFields); err != nil {
			return err
		}
	}

	if len(fields) == 0 || len(requestFields) > 0 {
		return v.validateStruct(ctx, req, requestFields)
	}

	return nil
}

func (v *RequestValidator) validateStruct(ctx context.Context, s any, fields []string) error {
	var err error

	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, s)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartialCtx(ctx, s, names...)
	}

	return mapValidationError(err)
}

// mapValidationError turns the first failed rule into a package sentinel.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	switch fe.StructField() {
	case "Name", "Phone":
		return fmt.Errorf("%w: %s failed on %q", ErrMissingIdentity, fe.Field(), fe.Tag())
	case "FoodID":
		return fmt.Errorf("%w: %v", ErrInvalidFoodID, fe.Value())
	default:
		return err
	}
}
