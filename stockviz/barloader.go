// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"candleview/stockapi"
	"candleview/stockval"
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/zhangyunhao116/skipmap"
)

type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadLoading
	LoadDone
	LoadFailed
)

type UiUpdater interface {
	Invalidate()
}

// BarLoader runs bar requests in the background and hands the result of the
// most recent request to the UI goroutine.
type BarLoader struct {
	dataSource    stockapi.BarDataSource
	requestChan   chan stockapi.BarsRequest
	responseChan  chan stockapi.BarsResponse
	inFlight      *skipmap.StringMap[string] // request id to source
	lastRequestId atomic.Int64
	resultMutex   sync.Mutex
	pendingBars   []stockval.Bar
	hasPending    bool
	status        LoadStatus
	lastError     error
	terminateWg   sync.WaitGroup
	logger        zerolog.Logger
}

func NewBarLoader(ds stockapi.BarDataSource, logger zerolog.Logger) *BarLoader {
	return &BarLoader{
		dataSource: ds,
		inFlight:   skipmap.NewString[string](),
		logger:     logger.With().Str("component", "loader").Logger(),
	}
}

// Initialize starts the request handler. uiUpdater is invalidated whenever new
// bars are available.
func (l *BarLoader) Initialize(ctx context.Context, uiUpdater UiUpdater) {
	// TODO size of buffered channels?
	l.requestChan = make(chan stockapi.BarsRequest, 8)
	l.responseChan = make(chan stockapi.BarsResponse, 8)
	l.terminateWg.Add(1)
	go func() {
		defer l.terminateWg.Done()
		for resp := range l.responseChan {
			l.handleResponse(resp)
			uiUpdater.Invalidate()
		}
		l.logger.Debug().Msg("terminating bar response handler")
	}()
	go l.dataSource.QueryBars(ctx, l.requestChan, l.responseChan)
}

func (l *BarLoader) handleResponse(resp stockapi.BarsResponse) {
	_, loaded := l.inFlight.LoadAndDelete(resp.RequestId)
	if !loaded {
		l.logger.Warn().Str("request", resp.RequestId).Msg("ignoring unknown bar response")
		return
	}
	if resp.RequestId != strconv.FormatInt(l.lastRequestId.Load(), 10) {
		l.logger.Debug().Str("request", resp.RequestId).Msg("ignoring outdated bar response")
		return
	}
	l.resultMutex.Lock()
	defer l.resultMutex.Unlock()
	l.pendingBars = resp.Bars
	l.hasPending = true
	l.lastError = resp.Error
	if resp.Error != nil {
		l.status = LoadFailed
	} else {
		l.status = LoadDone
	}
}

// Load requests the bars of source, superseding any earlier request.
// Returns the request id.
func (l *BarLoader) Load(source string) string {
	requestId := strconv.FormatInt(l.lastRequestId.Add(1), 10)
	l.inFlight.Store(requestId, source)
	l.resultMutex.Lock()
	l.status = LoadLoading
	l.lastError = nil
	l.resultMutex.Unlock()
	l.logger.Info().Str("request", requestId).Str("source", source).Msg("requesting bars")
	l.requestChan <- stockapi.BarsRequest{RequestId: requestId, Source: source}
	return requestId
}

// TakeBars returns bars which arrived since the last call.
func (l *BarLoader) TakeBars() ([]stockval.Bar, bool) {
	l.resultMutex.Lock()
	defer l.resultMutex.Unlock()
	if !l.hasPending {
		return nil, false
	}
	bars := l.pendingBars
	l.pendingBars = nil
	l.hasPending = false
	return bars, true
}

func (l *BarLoader) Status() (LoadStatus, error) {
	l.resultMutex.Lock()
	defer l.resultMutex.Unlock()
	return l.status, l.lastError
}

// Pending returns the number of requests without response.
func (l *BarLoader) Pending() int {
	return l.inFlight.Len()
}

// Cleanup stops the request handler and waits for outstanding responses.
func (l *BarLoader) Cleanup() {
	close(l.requestChan)
	l.terminateWg.Wait()
}
