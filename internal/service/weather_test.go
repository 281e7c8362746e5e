package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKey(t *testing.T) {
	assert.Equal(t, "Mumbai,IN", LookupKey("mumbai"))
	assert.Equal(t, "Delhi,IN", LookupKey("  DELHI "))
	assert.Equal(t, "Springfield", LookupKey("Springfield"))
}

func TestMockCurrent(t *testing.T) {
	s := NewWeatherService("", "http://unused", time.Second)
	require.False(t, s.Live())

	w, err := s.Current(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", w.Location)
	assert.Equal(t, 28.5, w.Temperature)
	assert.Equal(t, "02d", w.Icon)
}

func TestMockTrimsLocation(t *testing.T) {
	s := NewWeatherService("", "http://unused", time.Second)

	w, err := s.Current(context.Background(), "  Delhi ")
	require.NoError(t, err)
	assert.Equal(t, "Delhi", w.Location)

	f, err := s.Forecast(context.Background(), " Delhi", 1)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", f.Location)
}

func TestMockForecastClampsDays(t *testing.T) {
	s := NewWeatherService("", "http://unused", time.Second)
	s.now = func() time.Time { return time.Date(2024, 3, 30, 8, 0, 0, 0, time.UTC) }

	f, err := s.Forecast(context.Background(), "Delhi", 9)
	require.NoError(t, err)
	require.Len(t, f.Forecast, MaxForecastDays)
	assert.Equal(t, "2024-03-30", f.Forecast[0].Date)
	assert.Equal(t, "2024-04-03", f.Forecast[4].Date)
	assert.Equal(t, "Cloudy", f.Forecast[1].Description)
	assert.Equal(t, 34.0, f.Forecast[4].TemperatureMax)

	f, err = s.Forecast(context.Background(), "Delhi", 2)
	require.NoError(t, err)
	assert.Len(t, f.Forecast, 2)
}

func TestLiveCurrentReshapesUpstream(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(`{
			"name":"Mumbai","sys":{"country":"IN"},
			"main":{"temp":30.04,"feels_like":34.96,"humidity":70,"pressure":1008},
			"weather":[{"description":"haze","icon":"50d"}],
			"wind":{"speed":5},"visibility":3500}`))
	}))
	defer srv.Close()

	s := NewWeatherService("key", srv.URL, time.Second)
	w, err := s.Current(context.Background(), "mumbai")
	require.NoError(t, err)

	assert.Equal(t, "Mumbai,IN", gotQuery)
	assert.Equal(t, 30.0, w.Temperature)
	assert.Equal(t, 35.0, w.FeelsLike)
	assert.Equal(t, 18.0, w.WindSpeed)
	assert.Equal(t, 3.5, w.Visibility)
	assert.Equal(t, "haze", w.Description)
}

func TestLiveFailuresAreUnavailable(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) },
		"body":   func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("not json")) },
		"empty":  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{}`)) },
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()
			s := NewWeatherService("secret-key", srv.URL, time.Second)

			_, err := s.Current(context.Background(), "Delhi")
			assert.ErrorIs(t, err, ErrWeatherUnavailable)
			_, err = s.Forecast(context.Background(), "Delhi", 3)
			assert.ErrorIs(t, err, ErrWeatherUnavailable)
		})
	}
}

func TestLiveTransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewWeatherService("secret-key", url, time.Second)
	_, err := s.Current(context.Background(), "Delhi")
	require.ErrorIs(t, err, ErrWeatherUnavailable)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestAggregateForecast(t *testing.T) {
	day := func(d, h int) int64 { return time.Date(2024, 6, d, h, 0, 0, 0, time.UTC).Unix() }
	entry := func(dt int64, lo, hi float64, hum int, desc string) owmForecastEntry {
		e := owmForecastEntry{Dt: dt, Weather: []owmCondition{{Description: desc, Icon: desc[:2]}}}
		e.Main.TempMin, e.Main.TempMax, e.Main.Humidity = lo, hi, hum
		return e
	}
	entries := []owmForecastEntry{
		entry(day(1, 9), 24, 29, 60, "rain"),
		entry(day(1, 12), 26, 33.26, 50, "clear"),
		entry(day(1, 15), 25, 31, 55, "clear"),
		entry(day(2, 0), 22, 27, 80, "clouds"),
		entry(day(3, 0), 21, 26, 81, "mist"),
	}

	got := aggregateForecast(entries, 2)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-06-01", got[0].Date)
	assert.Equal(t, 24.0, got[0].TemperatureMin)
	assert.Equal(t, 33.3, got[0].TemperatureMax)
	assert.Equal(t, 55, got[0].Humidity)
	assert.Equal(t, "clear", got[0].Description)
	assert.Equal(t, "2024-06-02", got[1].Date)

	seen := map[string]bool{}
	for _, d := range aggregateForecast(entries, MaxForecastDays) {
		assert.False(t, seen[d.Date], "duplicate date %s", d.Date)
		seen[d.Date] = true
	}
	assert.Len(t, seen, 3)
}

func TestMajorityTieGoesToFirstSeen(t *testing.T) {
	assert.Equal(t, "a", majority([]string{"a", "b"}, map[string]int{"a": 2, "b": 2}))
	assert.Equal(t, "b", majority([]string{"a", "b"}, map[string]int{"a": 1, "b": 2}))
}
