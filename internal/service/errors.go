// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidFoodID       = errors.New("invalid food id")

	ErrPhoneTakenByOtherName = errors.New("phone is registered under another name")
	ErrNameTakenByOtherPhone = errors.New("name is registered under another phone")
	ErrUserNotAuthenticated  = errors.New("user not authenticated")

	ErrResourceBusy = errors.New("resource is busy")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
