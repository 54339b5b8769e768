// README: Forecast provider client with daily sampling and graceful fallbacks.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"voyago/internal/logger"
)

// Static fallback texts. Forecast unavailability degrades the reply, it
// never aborts the turn, so the caller only ever sees display text.
const (
	FallbackNotOK       = "Could not retrieve weather info."
	FallbackUnavailable = "Weather info unavailable."
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5/forecast"

// The provider returns 3-hour steps; a stride of 8 samples one entry per
// day, capped at 5 days.
const (
	sampleStride = 8
	maxSamples   = 5
)

var errProviderNotOK = errors.New("weather provider returned non-ok status")

// Service fetches 5-day forecasts and renders them as display text.
type Service struct {
	apiKey   string
	units    string
	endpoint string
	client   *http.Client
	cache    *Cache
}

// NewService builds a forecast client. cache may be nil.
// The HTTP timeout bounds the call because the provider defines none.
func NewService(apiKey, units string, cache *Cache) *Service {
	return &Service{
		apiKey:   apiKey,
		units:    units,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		cache:    cache,
	}
}

type forecastResponse struct {
	// The provider reports cod as a string on success and a number on some
	// errors; decode as any and normalize.
	Cod  any             `json:"cod"`
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	DtTxt   string `json:"dt_txt"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Forecast returns display text for the next 5 days at place. Transport
// errors, non-OK provider status, and malformed payloads are logged and
// converted into the static fallbacks; this method never fails.
func (s *Service) Forecast(ctx context.Context, place string) string {
	if cached, ok := s.cache.Get(ctx, place); ok {
		return cached
	}

	text, err := s.fetch(ctx, place)
	if err != nil {
		logger.Log.WithError(err).WithField("place", place).Error("Weather fetch failed")
		if errors.Is(err, errProviderNotOK) {
			return FallbackNotOK
		}
		return FallbackUnavailable
	}

	s.cache.Set(ctx, place, text)
	return text
}

func (s *Service) fetch(ctx context.Context, place string) (string, error) {
	u := fmt.Sprintf("%s?q=%s&appid=%s&units=%s",
		s.endpoint, url.QueryEscape(place), url.QueryEscape(s.apiKey), url.QueryEscape(s.units))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("weather: read response: %w", err)
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return "", fmt.Errorf("weather: unmarshal response: %w", err)
	}
	if fmt.Sprint(fr.Cod) != "200" {
		return "", fmt.Errorf("%w: cod=%v", errProviderNotOK, fr.Cod)
	}
	if len(fr.List) == 0 {
		return "", errors.New("weather: empty forecast list")
	}

	return formatForecast(fr.List)
}

// formatForecast renders one sampled entry per day as
// "date: Description, T°C, H%, W km/h" lines.
func formatForecast(entries []forecastEntry) (string, error) {
	var b strings.Builder
	for i := 0; i < len(entries) && i < sampleStride*maxSamples; i += sampleStride {
		e := entries[i]
		if len(e.Weather) == 0 || e.DtTxt == "" {
			return "", fmt.Errorf("weather: malformed forecast entry at index %d", i)
		}
		date := strings.SplitN(e.DtTxt, " ", 2)[0]
		desc := cases.Title(language.English).String(e.Weather[0].Description)
		fmt.Fprintf(&b, "\n %s: %s, %.1f°C, %d%%, %.1f km/h",
			date, desc, e.Main.Temp, e.Main.Humidity, e.Wind.Speed)
	}
	return b.String(), nil
}
