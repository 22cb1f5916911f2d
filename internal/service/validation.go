// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/validators"
)

// validate runs v on value and translates validator sentinels into service
// errors.
func validate(ctx context.Context, v validators.Validator, value any) error {
	err := v.Validate(ctx, value)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidFoodID):
		return fmt.Errorf("%w: %w", ErrInvalidFoodID, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
