// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-festa/internal/locker"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/mock"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/validators"
	"github.com/MKhiriev/go-festa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationMocks struct {
	auth         *mock.MockAuthService
	reservations *mock.MockReservationRepository
	locker       *mock.MockLocker
}

func newTestReservationSvc(t *testing.T) (ReservationService, reservationMocks) {
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		auth:         mock.NewMockAuthService(ctrl),
		reservations: mock.NewMockReservationRepository(ctrl),
		locker:       mock.NewMockLocker(ctrl),
	}
	return NewReservationService(m.auth, m.reservations, m.locker, validators.NewRequestValidator(), logger.Nop()), m
}

// ── Reserve ─────────────────────────────────────────────────────────────────

func TestReservationService_Reserve_Success(t *testing.T) {
	svc, m := newTestReservationSvc(t)

	unlocked := false
	want := models.Reservation{ID: 4, UserID: ana.ID, FoodID: 9, Quantity: 1}

	gomock.InOrder(
		m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(ana, nil),
		m.locker.EXPECT().Lock(gomock.Any(), locker.FoodKey(9)).Return(func() { unlocked = true }, nil),
		m.reservations.EXPECT().Reserve(gomock.Any(), ana.ID, int64(9)).
			DoAndReturn(func(context.Context, int64, int64) (models.Reservation, error) {
				assert.False(t, unlocked, "store must run while the food is locked")
				return want, nil
			}),
	)

	got, err := svc.Reserve(context.Background(), models.Identity{Name: " Ana Souza", Phone: "11999990000 "}, 9)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, unlocked)
}

func TestReservationService_Reserve_StoreErrors(t *testing.T) {
	tests := []error{
		store.ErrFoodNotFound,
		store.ErrFoodSoldOut,
		store.ErrAlreadyReserved,
		store.ErrConcurrentUpdate,
	}

	for _, storeErr := range tests {
		t.Run(storeErr.Error(), func(t *testing.T) {
			svc, m := newTestReservationSvc(t)

			unlocked := false
			m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(ana, nil)
			m.locker.EXPECT().Lock(gomock.Any(), locker.FoodKey(9)).Return(func() { unlocked = true }, nil)
			m.reservations.EXPECT().Reserve(gomock.Any(), ana.ID, int64(9)).Return(models.Reservation{}, storeErr)

			_, err := svc.Reserve(context.Background(), anaIdentity, 9)

			assert.ErrorIs(t, err, storeErr)
			assert.True(t, unlocked, "lock must be released on failure")
		})
	}
}

func TestReservationService_Reserve_InvalidInput(t *testing.T) {
	svc, _ := newTestReservationSvc(t)

	_, err := svc.Reserve(context.Background(), models.Identity{Name: "Ana"}, 9)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Reserve(context.Background(), anaIdentity, 0)
	assert.ErrorIs(t, err, ErrInvalidFoodID)

	_, err = svc.Reserve(context.Background(), anaIdentity, -1)
	assert.ErrorIs(t, err, ErrInvalidFoodID)
}

func TestReservationService_Reserve_NotAuthenticated(t *testing.T) {
	svc, m := newTestReservationSvc(t)

	m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(models.User{}, ErrUserNotAuthenticated)

	_, err := svc.Reserve(context.Background(), anaIdentity, 9)

	assert.ErrorIs(t, err, ErrUserNotAuthenticated)
}

func TestReservationService_Reserve_LockFailure(t *testing.T) {
	svc, m := newTestReservationSvc(t)

	m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(ana, nil)
	m.locker.EXPECT().Lock(gomock.Any(), locker.FoodKey(9)).Return(nil, locker.ErrLockUnavailable)

	_, err := svc.Reserve(context.Background(), anaIdentity, 9)

	assert.ErrorIs(t, err, ErrResourceBusy)
}

// ── Cancel ──────────────────────────────────────────────────────────────────

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newTestReservationSvc(t)

	want := models.Reservation{ID: 4, UserID: ana.ID, FoodID: 9, Quantity: 1}

	gomock.InOrder(
		m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(ana, nil),
		m.locker.EXPECT().Lock(gomock.Any(), locker.FoodKey(9)).Return(noopUnlock, nil),
		m.reservations.EXPECT().Cancel(gomock.Any(), ana.ID, int64(9)).Return(want, nil),
	)

	got, err := svc.Cancel(context.Background(), anaIdentity, 9)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, m := newTestReservationSvc(t)

	m.auth.EXPECT().Authenticate(gomock.Any(), anaIdentity).Return(ana, nil)
	m.locker.EXPECT().Lock(gomock.Any(), locker.FoodKey(9)).Return(noopUnlock, nil)
	m.reservations.EXPECT().Cancel(gomock.Any(), ana.ID, int64(9)).Return(models.Reservation{}, store.ErrReservationNotFound)

	_, err := svc.Cancel(context.Background(), anaIdentity, 9)

	assert.ErrorIs(t, err, store.ErrReservationNotFound)
}

// ── Concurrency ─────────────────────────────────────────────────────────────

// stockRepository is a deliberately racy in-memory store: it reads, sleeps
// and writes, so only the service's lock keeps quantities consistent.
type stockRepository struct {
	store.ReservationRepository

	quantity     atomic.Int64
	reservations atomic.Int64
}

func (s *stockRepository) Reserve(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	q := s.quantity.Load()
	time.Sleep(time.Millisecond)
	if q <= 0 {
		return models.Reservation{}, store.ErrFoodSoldOut
	}
	s.quantity.Store(q - 1)
	s.reservations.Add(1)
	return models.Reservation{UserID: userID, FoodID: foodID, Quantity: 1}, nil
}

func TestReservationService_Reserve_NeverOversells(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(ana, nil).AnyTimes()

	repo := &stockRepository{}
	repo.quantity.Store(3)

	svc := NewReservationService(auth, repo, locker.NewMemoryLocker(), validators.NewRequestValidator(), logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Reserve(context.Background(), anaIdentity, 9)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), repo.quantity.Load())
	assert.Equal(t, int64(3), repo.reservations.Load())
}
