// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package forextester

import (
	"candleview/config"
	"candleview/mock"
	"candleview/stockapi"
	"candleview/stockval"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBars(t *testing.T) {
	srv := newForexTesterMock()
	defer srv.Close()
	logger, _ := mock.NewLogger()
	ds := NewDataSource(nil, logger)
	require.NoError(t, ds.ReadConfig(newForexTesterConfig(srv.URL+"/bars")))

	bars := ds.LoadBars(context.Background(), "")
	expected := []stockval.Bar{
		{Time: 1700000000000, Open: 150.1, High: 150.5, Low: 149.9, Close: 150.2, Volume: 12, HasVolume: true},
		{Time: 1700000060000, Open: 150.2, High: 150.3, Low: 150.0, Close: 150.0, Volume: 7, HasVolume: true},
		{Time: 1700003600000, Open: 150.0, High: 150.8, Low: 149.5, Close: 150.7},
	}
	require.Len(t, bars, len(expected))
	for i, b := range bars {
		assert.Equal(t, expected[i].Time, b.Time, "time at index %d invalid", i)
		assert.InDelta(t, expected[i].Open, b.Open, 1e-9, "open price at index %d invalid", i)
		assert.InDelta(t, expected[i].High, b.High, 1e-9, "high price at index %d invalid", i)
		assert.InDelta(t, expected[i].Low, b.Low, 1e-9, "low price at index %d invalid", i)
		assert.InDelta(t, expected[i].Close, b.Close, 1e-9, "close price at index %d invalid", i)
		assert.Equal(t, expected[i].HasVolume, b.HasVolume)
		assert.InDelta(t, expected[i].Volume, b.Volume, 1e-9)
	}
}

func TestLoadBarsError(t *testing.T) {
	srv := newForexTesterMock()
	defer srv.Close()
	logger, buf := mock.NewLogger()
	ds := NewDataSource(nil, logger)
	require.NoError(t, ds.ReadConfig(newForexTesterConfig(srv.URL+"/bars")))

	bars := ds.LoadBars(context.Background(), srv.URL+"/missing")
	assert.NotNil(t, bars)
	assert.Empty(t, bars)
	assert.Contains(t, buf.String(), "loading bars failed")

	bars = ds.LoadBars(context.Background(), srv.URL+"/broken")
	assert.NotNil(t, bars)
	assert.Empty(t, bars)
}

func TestQueryBars(t *testing.T) {
	srv := newForexTesterMock()
	defer srv.Close()
	logger, _ := mock.NewLogger()
	ds := NewDataSource(nil, logger)
	require.NoError(t, ds.ReadConfig(newForexTesterConfig(srv.URL+"/bars")))

	request := make(chan stockapi.BarsRequest, 1)
	response := make(chan stockapi.BarsResponse, 1)
	go ds.QueryBars(context.Background(), request, response)
	request <- stockapi.BarsRequest{RequestId: "1", Source: srv.URL + "/bars"}
	resp := <-response
	assert.Equal(t, "1", resp.RequestId)
	assert.NoError(t, resp.Error)
	assert.Len(t, resp.Bars, 3)

	request <- stockapi.BarsRequest{RequestId: "2", Source: srv.URL + "/missing"}
	resp = <-response
	assert.Equal(t, "2", resp.RequestId)
	assert.Error(t, resp.Error)
	assert.Empty(t, resp.Bars)

	close(request)
	_, ok := <-response
	assert.False(t, ok)
}

func TestLoadBarsUsesCache(t *testing.T) {
	srv := newForexTesterMock()
	defer srv.Close()
	logger, _ := mock.NewLogger()
	barCache := mock.NewBarCache()
	ds := NewDataSource(barCache, logger)
	require.NoError(t, ds.ReadConfig(newForexTesterConfig(srv.URL+"/bars")))

	bars := ds.LoadBars(context.Background(), "")
	assert.Len(t, bars, 3)
	assert.Equal(t, int32(1), barCache.Requests.Load())
}

func getBarsResultMock(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	// Chunks are not ordered, the second bar of the first chunk is invalid.
	reply := `[
		{
			"ChunkStart": 1700003600,
			"Bars": [
				{"Time": 0, "Open": 150.0, "High": 150.8, "Low": 149.5, "Close": 150.7}
			]
		},
		{
			"ChunkStart": 1700000000,
			"Bars": [
				{"Time": 0, "Open": 150.1, "High": 150.5, "Low": 149.9, "Close": 150.2, "TickVolume": 12},
				{"Time": 30, "Open": 150.1, "High": 149.0, "Low": 149.9, "Close": 150.2, "TickVolume": 3},
				{"Time": 60, "Open": 150.2, "High": 150.3, "Low": 150.0, "Close": 150.0, "TickVolume": 7}
			]
		}
	]`
	_, _ = w.Write([]byte(reply)) // ignore errors, test will fail anyway in case Write fails
}

func getBrokenResultMock(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`[{"ChunkStart": `))
}

func newForexTesterMock() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/bars", getBarsResultMock)
	handler.HandleFunc("/broken", getBrokenResultMock)

	return httptest.NewServer(handler)
}

func newForexTesterConfig(dataUrl string) config.Config {
	return mock.NewDataSourceConfig(dataUrl)
}
