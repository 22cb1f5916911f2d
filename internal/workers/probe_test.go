// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *fakePinger) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

func (p *fakePinger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeRecorder struct {
	mu      sync.Mutex
	results []error
}

func (r *fakeRecorder) Record(_ context.Context, probeErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, probeErr)
}

func (r *fakeRecorder) recorded() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.results...)
}

func TestDatastoreProbe_RecordsImmediatelyAndOnTick(t *testing.T) {
	pinger := &fakePinger{}
	recorder := &fakeRecorder{}
	probe := NewDatastoreProbe(pinger, recorder, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go probe.Run(ctx)

	require.Eventually(t, func() bool { return len(recorder.recorded()) >= 3 }, time.Second, 5*time.Millisecond)
	for _, err := range recorder.recorded() {
		assert.NoError(t, err)
	}
}

func TestDatastoreProbe_RecordsFailure(t *testing.T) {
	pingErr := errors.New("connection refused")
	ctrl := gomock.NewController(t)
	health := mock.NewMockHealthService(ctrl)

	recorded := make(chan error, 1)
	health.EXPECT().Record(gomock.Any(), pingErr).Do(func(_ context.Context, err error) {
		select {
		case recorded <- err:
		default:
		}
	}).MinTimes(1)

	probe := NewDatastoreProbe(&fakePinger{err: pingErr}, health, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	select {
	case err := <-recorded:
		assert.ErrorIs(t, err, pingErr)
	case <-time.After(time.Second):
		t.Fatal("probe result was not recorded")
	}

	cancel()
	<-done
}

func TestDatastoreProbe_StopsOnCancel(t *testing.T) {
	pinger := &fakePinger{}
	probe := NewDatastoreProbe(pinger, &fakeRecorder{}, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pinger.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probe did not stop")
	}
	assert.Equal(t, 1, pinger.count())
}

func TestDatastoreProbe_SkipsRecordAfterCancel(t *testing.T) {
	recorder := &fakeRecorder{}
	probe := NewDatastoreProbe(&fakePinger{}, recorder, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	probe.probe(ctx)

	assert.Empty(t, recorder.recorded())
}
