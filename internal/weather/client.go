package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stylemind/stylemind-backend/pkg/logger"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	cacheTTL       = 10 * time.Minute

	// Mumbai, the app's default location
	DefaultLatitude  = 19.0760
	DefaultLongitude = 72.8777
)

// Report is the current-conditions summary shown to the client
type Report struct {
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	Condition   string `json:"condition"`
	Location    string `json:"location"`
	Icon        string `json:"icon"`
}

// WMO weather interpretation codes
var weatherCodes = map[int]string{
	0: "Clear", 1: "Mainly Clear", 2: "Partly Cloudy", 3: "Overcast",
	45: "Foggy", 48: "Foggy", 51: "Light Drizzle", 53: "Drizzle",
	55: "Heavy Drizzle", 61: "Light Rain", 63: "Rain", 65: "Heavy Rain",
	71: "Light Snow", 73: "Snow", 75: "Heavy Snow", 80: "Light Showers",
	81: "Showers", 82: "Heavy Showers", 95: "Thunderstorm",
}

// Client fetches current conditions from Open-Meteo, with a short-lived
// redis cache in front. The cache is optional.
type Client struct {
	http    *http.Client
	baseURL string
	cache   *redis.Client
}

// NewClient creates a weather client. Pass nil to skip caching.
func NewClient(cache *redis.Client) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: defaultBaseURL,
		cache:   cache,
	}
}

// Current returns conditions at the coordinates. It never fails: any
// upstream or cache problem yields the static Mumbai fallback.
func (c *Client) Current(ctx context.Context, lat, lon float64) Report {
	cacheKey := fmt.Sprintf("weather:%.4f:%.4f", lat, lon)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var report Report
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return report
			}
		}
	}

	report, err := c.fetch(ctx, lat, lon)
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("Weather fetch failed, using fallback")
		return FallbackReport()
	}

	if c.cache != nil {
		if payload, err := json.Marshal(report); err == nil {
			c.cache.Set(ctx, cacheKey, payload, cacheTTL)
		}
	}
	return report
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (Report, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("decode weather response: %w", err)
	}

	return Report{
		Temperature: int(math.Round(payload.Current.Temperature)),
		Humidity:    int(math.Round(payload.Current.Humidity)),
		Condition:   conditionFor(payload.Current.WeatherCode),
		Location:    "Your Location",
		Icon:        iconFor(payload.Current.WeatherCode),
	}, nil
}

// FallbackReport is the static report served when Open-Meteo is down
func FallbackReport() Report {
	return Report{
		Temperature: 28,
		Humidity:    65,
		Condition:   "Partly Cloudy",
		Location:    "Mumbai",
		Icon:        "partly-cloudy",
	}
}

func conditionFor(code int) string {
	if condition, ok := weatherCodes[code]; ok {
		return condition
	}
	return "Unknown"
}

func iconFor(code int) string {
	switch {
	case code < 50:
		return "partly-cloudy"
	case code < 80:
		return "rainy"
	default:
		return "stormy"
	}
}
