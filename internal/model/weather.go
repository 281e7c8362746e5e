package model

// Weather is the reshaped current-conditions payload.  Wind speed is in
// km/h and visibility in km regardless of the upstream units.
type Weather struct {
	Location    string  `json:"location"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	Pressure    int     `json:"pressure"`
	Visibility  float64 `json:"visibility"`
	Icon        string  `json:"icon"`
}

// ForecastDay aggregates one calendar day.  Date is formatted YYYY-MM-DD.
type ForecastDay struct {
	Date           string  `json:"date"`
	TemperatureMax float64 `json:"temperature_max"`
	TemperatureMin float64 `json:"temperature_min"`
	Description    string  `json:"description"`
	Humidity       int     `json:"humidity"`
	Icon           string  `json:"icon"`
}

// Forecast is the response of the forecast endpoint.
type Forecast struct {
	Location string        `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
}
