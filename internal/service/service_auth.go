// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/locker"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/validators"
	"github.com/MKhiriev/go-festa/models"
)

// authService is the concrete implementation of AuthService. There are no
// passwords or tokens: a guest is whoever sends a phone together with the
// name it was registered under.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// locker serializes registrations of the same phone.
	locker locker.Locker

	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and locker.
func NewAuthService(userRepository store.UserRepository, l locker.Locker, v validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		locker:         l,
		validator:      v,
		logger:         logger,
	}
}

// Register creates a new guest or logs an existing one in.
//
// The identity is trimmed, then:
//   - a user with this phone and the same name (ignoring case) is returned as is;
//   - a user with this phone and another name → ErrPhoneTakenByOtherName;
//   - a user with this exact name and another phone → ErrNameTakenByOtherPhone;
//   - otherwise the user is created.
//
// The checks and the insert run under a per-phone lock. A unique violation on
// insert means another replica won the race; the phone is looked up again and
// the first rule applied.
func (a *authService) Register(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	identity = identity.Normalize()
	if err := validate(ctx, a.validator, identity); err != nil {
		return models.User{}, err
	}

	unlock, err := a.locker.Lock(ctx, locker.UserKey(identity.Phone))
	if err != nil {
		log.Err(err).Str("telefone", identity.Phone).Msg("error locking phone for registration")
		return models.User{}, fmt.Errorf("%w: %w", ErrResourceBusy, err)
	}
	defer unlock()

	byPhone, err := a.userRepository.FindUsersByPhone(ctx, identity.Phone)
	if err != nil {
		log.Err(err).Msg("user search by phone failed")
		return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
	}
	if len(byPhone) > 0 {
		return loginExisting(identity, byPhone[0])
	}

	byName, err := a.userRepository.FindUsersByName(ctx, identity.Name)
	if err != nil {
		log.Err(err).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}
	if len(byName) > 0 {
		return models.User{}, ErrNameTakenByOtherPhone
	}

	created, err := a.userRepository.CreateUser(ctx, identity.ToUser())
	if errors.Is(err, store.ErrPhoneAlreadyExists) {
		log.Warn().Str("telefone", identity.Phone).Msg("phone registered concurrently, looking it up again")

		byPhone, err = a.userRepository.FindUsersByPhone(ctx, identity.Phone)
		if err != nil {
			return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
		}
		if len(byPhone) == 0 {
			return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrPhoneAlreadyExists)
		}
		return loginExisting(identity, byPhone[0])
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("user registered")
	return created, nil
}

// Authenticate checks identity against the user registered under its phone.
// Missing users and name mismatches both yield ErrUserNotAuthenticated.
func (a *authService) Authenticate(ctx context.Context, identity models.Identity) (models.User, error) {
	log := logger.FromContext(ctx)

	identity = identity.Normalize()
	if err := validate(ctx, a.validator, identity); err != nil {
		return models.User{}, err
	}

	users, err := a.userRepository.FindUsersByPhone(ctx, identity.Phone)
	if err != nil {
		log.Err(err).Msg("user search by phone failed")
		return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	if len(users) == 0 || !identity.Matches(users[0]) {
		log.Debug().Str("telefone", identity.Phone).Msg("user not authenticated")
		return models.User{}, ErrUserNotAuthenticated
	}

	return users[0], nil
}

func loginExisting(identity models.Identity, existing models.User) (models.User, error) {
	if !identity.Matches(existing) {
		return models.User{}, ErrPhoneTakenByOtherName
	}
	return existing, nil
}
