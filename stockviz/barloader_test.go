// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"candleview/config"
	"candleview/mock"
	"candleview/stockapi"
	"candleview/stockval"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUiUpdater struct {
	invalidated chan struct{}
}

func newTestUiUpdater() *testUiUpdater {
	return &testUiUpdater{invalidated: make(chan struct{}, 16)}
}

func (u *testUiUpdater) Invalidate() {
	u.invalidated <- struct{}{}
}

func (u *testUiUpdater) wait(t *testing.T) {
	select {
	case <-u.invalidated:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for invalidation")
	}
}

// testDataSource answers requests for "ok" with two bars, other sources fail.
// Requests for "slow" block until release is closed.
type testDataSource struct {
	release chan struct{}
}

func (ds *testDataSource) GetSourceId() stockval.SourceId {
	return "test"
}

func (ds *testDataSource) ReadConfig(c config.Config) error {
	return nil
}

func (ds *testDataSource) load(ctx context.Context, source string) ([]stockval.Bar, error) {
	switch source {
	case "slow":
		<-ds.release
		fallthrough
	case "ok":
		return []stockval.Bar{
			{Time: 2000, Open: 2, High: 3, Low: 1, Close: 2},
			{Time: 1000, Open: 1, High: 2, Low: 1, Close: 2},
		}, nil
	default:
		return nil, errors.New("source not found")
	}
}

func (ds *testDataSource) LoadBars(ctx context.Context, source string) []stockval.Bar {
	logger, _ := mock.NewLogger()
	return stockapi.LoadBars(ctx, source, ds.load, logger)
}

func (ds *testDataSource) QueryBars(ctx context.Context, request <-chan stockapi.BarsRequest, response chan<- stockapi.BarsResponse) {
	logger, _ := mock.NewLogger()
	stockapi.ServeBars(ctx, request, response, ds.load, logger)
}

func newTestBarLoader(t *testing.T) (*BarLoader, *testUiUpdater, *testDataSource) {
	logger, _ := mock.NewLogger()
	ds := &testDataSource{release: make(chan struct{})}
	l := NewBarLoader(ds, logger)
	u := newTestUiUpdater()
	l.Initialize(context.Background(), u)
	t.Cleanup(l.Cleanup)
	return l, u, ds
}

func TestBarLoaderLoad(t *testing.T) {
	l, u, _ := newTestBarLoader(t)
	_, ok := l.TakeBars()
	assert.False(t, ok)
	status, _ := l.Status()
	assert.Equal(t, LoadIdle, status)

	l.Load("ok")
	u.wait(t)
	status, err := l.Status()
	assert.Equal(t, LoadDone, status)
	assert.NoError(t, err)
	bars, ok := l.TakeBars()
	require.True(t, ok)
	require.Len(t, bars, 2)
	assert.Equal(t, int64(1000), bars[0].Time)
	_, ok = l.TakeBars()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Pending())
}

func TestBarLoaderFailure(t *testing.T) {
	l, u, _ := newTestBarLoader(t)
	l.Load("missing")
	u.wait(t)
	status, err := l.Status()
	assert.Equal(t, LoadFailed, status)
	assert.Error(t, err)
	bars, ok := l.TakeBars()
	require.True(t, ok)
	assert.NotNil(t, bars)
	assert.Empty(t, bars)
}

func TestBarLoaderSupersede(t *testing.T) {
	l, u, ds := newTestBarLoader(t)
	l.Load("slow")
	l.Load("missing")
	close(ds.release)
	// Both responses invalidate, only the latest one is kept.
	u.wait(t)
	u.wait(t)
	status, err := l.Status()
	assert.Equal(t, LoadFailed, status)
	assert.Error(t, err)
	bars, ok := l.TakeBars()
	require.True(t, ok)
	assert.Empty(t, bars)
	assert.Equal(t, 0, l.Pending())
}
