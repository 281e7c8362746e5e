package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

// MaxForecastDays caps the forecast window.  OpenWeatherMap's free 3-hour
// forecast covers five days.
const MaxForecastDays = 5

// ErrWeatherUnavailable wraps every failure of the outbound weather call:
// transport errors, timeouts, non-2xx answers and malformed bodies.
var ErrWeatherUnavailable = errors.New("weather service unavailable")

// KnownCities are the cities offered by the frontend picker.  A location
// matching one of them is qualified with the country code before lookup.
var KnownCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune", "Ahmedabad",
	"Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Agra", "Varanasi", "Patna",
	"Bhopal", "Ludhiana", "Coimbatore", "Kochi", "Visakhapatnam", "Vadodara",
}

// WeatherService answers weather lookups.  Without an API key it serves
// mock data; with one it makes exactly one call per request, without retry.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewWeatherService returns a service calling baseURL with the given
// timeout.  An empty apiKey selects mock mode.
func NewWeatherService(apiKey, baseURL string, timeout time.Duration) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Live reports whether an API key is configured.
func (s *WeatherService) Live() bool { return s.apiKey != "" }

// Cities returns a copy of the known city list.
func (s *WeatherService) Cities() []string {
	out := make([]string, len(KnownCities))
	copy(out, KnownCities)
	return out
}

// LookupKey builds the upstream query for location: known cities become
// "City,IN", anything else is passed through trimmed.
func LookupKey(location string) string {
	loc := strings.TrimSpace(location)
	for _, c := range KnownCities {
		if strings.EqualFold(c, loc) {
			return c + ",IN"
		}
	}
	return loc
}

// Current returns current conditions for location.
func (s *WeatherService) Current(ctx context.Context, location string) (model.Weather, error) {
	if !s.Live() {
		return mockCurrent(strings.TrimSpace(location)), nil
	}
	var raw owmCurrent
	if err := s.get(ctx, "/weather", LookupKey(location), &raw); err != nil {
		return model.Weather{}, err
	}
	if len(raw.Weather) == 0 || raw.Name == "" {
		return model.Weather{}, fmt.Errorf("%w: incomplete current payload", ErrWeatherUnavailable)
	}
	return model.Weather{
		Location:    raw.Name,
		Country:     raw.Sys.Country,
		Temperature: round1(raw.Main.Temp),
		FeelsLike:   round1(raw.Main.FeelsLike),
		Humidity:    raw.Main.Humidity,
		Description: raw.Weather[0].Description,
		WindSpeed:   round1(raw.Wind.Speed * 3.6), // m/s -> km/h
		Pressure:    raw.Main.Pressure,
		Visibility:  round1(raw.Visibility / 1000), // m -> km
		Icon:        raw.Weather[0].Icon,
	}, nil
}

// Forecast returns min(days, MaxForecastDays) daily summaries.  days below
// one is treated as one.
func (s *WeatherService) Forecast(ctx context.Context, location string, days int) (model.Forecast, error) {
	if days < 1 {
		days = 1
	}
	if days > MaxForecastDays {
		days = MaxForecastDays
	}
	if !s.Live() {
		return model.Forecast{Location: strings.TrimSpace(location), Forecast: mockForecast(s.now().UTC(), days)}, nil
	}
	var raw owmForecast
	if err := s.get(ctx, "/forecast", LookupKey(location), &raw); err != nil {
		return model.Forecast{}, err
	}
	if len(raw.List) == 0 {
		return model.Forecast{}, fmt.Errorf("%w: empty forecast", ErrWeatherUnavailable)
	}
	name := raw.City.Name
	if name == "" {
		name = strings.TrimSpace(location)
	}
	return model.Forecast{Location: name, Forecast: aggregateForecast(raw.List, days)}, nil
}

func (s *WeatherService) get(ctx context.Context, path, query string, out any) error {
	q := url.Values{"q": {query}, "appid": {s.apiKey}, "units": {"metric"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		// url.Error carries the request URL, which includes the key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: upstream status %d", ErrWeatherUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrWeatherUnavailable, err)
	}
	return nil
}

// aggregateForecast buckets 3-hour entries by UTC calendar day in order of
// appearance and keeps the first limit days.
func aggregateForecast(entries []owmForecastEntry, limit int) []model.ForecastDay {
	type bucket struct {
		date        string
		min, max    float64
		humiditySum int
		n           int
		descVotes   map[string]int
		descOrder   []string
		iconVotes   map[string]int
		iconOrder   []string
	}
	var order []*bucket
	byDate := map[string]*bucket{}
	for _, e := range entries {
		date := time.Unix(e.Dt, 0).UTC().Format("2006-01-02")
		b, ok := byDate[date]
		if !ok {
			if len(order) == limit {
				continue // later days are outside the window
			}
			b = &bucket{
				date:      date,
				min:       e.Main.TempMin,
				max:       e.Main.TempMax,
				descVotes: map[string]int{},
				iconVotes: map[string]int{},
			}
			byDate[date] = b
			order = append(order, b)
		}
		b.min = math.Min(b.min, e.Main.TempMin)
		b.max = math.Max(b.max, e.Main.TempMax)
		b.humiditySum += e.Main.Humidity
		b.n++
		if len(e.Weather) > 0 {
			w := e.Weather[0]
			if b.descVotes[w.Description] == 0 {
				b.descOrder = append(b.descOrder, w.Description)
			}
			b.descVotes[w.Description]++
			if b.iconVotes[w.Icon] == 0 {
				b.iconOrder = append(b.iconOrder, w.Icon)
			}
			b.iconVotes[w.Icon]++
		}
	}

	out := make([]model.ForecastDay, 0, len(order))
	for _, b := range order {
		out = append(out, model.ForecastDay{
			Date:           b.date,
			TemperatureMax: round1(b.max),
			TemperatureMin: round1(b.min),
			Humidity:       int(math.Round(float64(b.humiditySum) / float64(b.n))),
			Description:    majority(b.descOrder, b.descVotes),
			Icon:           majority(b.iconOrder, b.iconVotes),
		})
	}
	return out
}

// majority returns the most voted key; ties go to the first seen.
func majority(order []string, votes map[string]int) string {
	best, bestN := "", 0
	for _, k := range order {
		if votes[k] > bestN {
			best, bestN = k, votes[k]
		}
	}
	return best
}

func mockCurrent(location string) model.Weather {
	return model.Weather{
		Location:    location,
		Country:     "IN",
		Temperature: 28.5,
		FeelsLike:   31.2,
		Humidity:    65,
		Description: "Partly cloudy",
		WindSpeed:   12.5,
		Pressure:    1013,
		Visibility:  10,
		Icon:        "02d",
	}
}

func mockForecast(start time.Time, days int) []model.ForecastDay {
	out := make([]model.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		desc, icon := "Sunny", "01d"
		if i%2 == 1 {
			desc, icon = "Cloudy", "03d"
		}
		out = append(out, model.ForecastDay{
			Date:           start.AddDate(0, 0, i).Format("2006-01-02"),
			TemperatureMax: float64(30 + i),
			TemperatureMin: float64(18 + i),
			Description:    desc,
			Humidity:       60 + i*2,
			Icon:           icon,
		})
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// OpenWeatherMap wire shapes; only the fields we reshape are decoded.
type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmCurrent struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
}

type owmForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
}

type owmForecast struct {
	List []owmForecastEntry `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}
