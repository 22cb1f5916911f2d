// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-festa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdentity() models.Identity {
	return models.Identity{Name: "Ana Souza", Phone: "11999990000"}
}

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Identity)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.ReservationRequest)(nil)), ErrUnsupportedType)
}

func TestValidate_Identity(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		identity models.Identity
		wantErr  error
	}{
		{name: "valid", identity: validIdentity()},
		{name: "missing name", identity: models.Identity{Phone: "11999990000"}, wantErr: ErrMissingIdentity},
		{name: "missing phone", identity: models.Identity{Name: "Ana"}, wantErr: ErrMissingIdentity},
		{name: "empty", identity: models.Identity{}, wantErr: ErrMissingIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.identity)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("pointer", func(t *testing.T) {
		id := validIdentity()
		assert.NoError(t, v.Validate(ctx, &id))
	})
}

func TestValidate_Identity_Fields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	onlyPhone := models.Identity{Phone: "11999990000"}

	assert.NoError(t, v.Validate(ctx, onlyPhone, FieldPhone))
	assert.ErrorIs(t, v.Validate(ctx, onlyPhone, FieldName), ErrMissingIdentity)
	assert.ErrorIs(t, v.Validate(ctx, onlyPhone, "email"), ErrUnknownField)
}

func TestValidate_ReservationRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		req := models.ReservationRequest{Identity: validIdentity(), FoodID: 3}
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("zero food id", func(t *testing.T) {
		req := models.ReservationRequest{Identity: validIdentity()}
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidFoodID)
	})

	t.Run("negative food id", func(t *testing.T) {
		req := models.ReservationRequest{Identity: validIdentity(), FoodID: -4}
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidFoodID)
	})

	t.Run("identity checked first", func(t *testing.T) {
		req := models.ReservationRequest{Identity: models.Identity{Name: "Ana"}, FoodID: 0}
		assert.ErrorIs(t, v.Validate(ctx, req), ErrMissingIdentity)
	})

	t.Run("food id only", func(t *testing.T) {
		req := models.ReservationRequest{FoodID: 5}
		assert.NoError(t, v.Validate(ctx, req, FieldFoodID))
	})

	t.Run("identity only", func(t *testing.T) {
		req := models.ReservationRequest{Identity: validIdentity()}
		assert.NoError(t, v.Validate(ctx, req, FieldName, FieldPhone))
	})
}
