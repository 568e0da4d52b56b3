package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gigportal_backend/platform/i18n"
	"gigportal_backend/platform/logger"

	"golang.org/x/time/rate"
)

const (
	nominatimURL = "https://nominatim.openstreetmap.org/search"
	userAgent    = "Gigportal/1.0"
	maxResults   = 5
)

// ResultCache keeps upstream answers. The public Nominatim instance asks
// clients to cache and to stay under one request per second.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

type Service struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	cache   ResultCache
	log     *logger.Logger
}

// NewService creates a place lookup against baseURL. An empty baseURL uses the
// public Nominatim endpoint. cache may be nil.
func NewService(baseURL string, cache ResultCache, log *logger.Logger) *Service {
	if baseURL == "" {
		baseURL = nominatimURL
	}
	return &Service{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		cache:   cache,
		log:     log,
	}
}

// SearchPlaces returns towns and cities in the Netherlands and Belgium matching query.
func (s *Service) SearchPlaces(ctx context.Context, query, locale string) ([]PlaceSuggestion, error) {
	query = strings.TrimSpace(query)
	locale = i18n.Normalize(locale)
	key := locale + ":" + strings.ToLower(query)

	if s.cache != nil {
		var cached []PlaceSuggestion
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("limit", fmt.Sprint(maxResults*2))
	params.Add("countrycodes", "nl,be")
	params.Add("featureType", "settlement")

	reqURL := fmt.Sprintf("%s?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", locale)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("nominatim request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var rawResults []nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&rawResults); err != nil {
		s.log.Error("failed to decode nominatim payload", "error", err)
		return nil, err
	}

	suggestions := buildSuggestions(rawResults)
	if s.cache != nil {
		s.cache.Set(ctx, key, suggestions)
	}
	return suggestions, nil
}

// buildSuggestions keeps settlements only and drops duplicate labels.
func buildSuggestions(raw []nominatimResponse) []PlaceSuggestion {
	seen := make(map[string]struct{})
	suggestions := make([]PlaceSuggestion, 0, len(raw))
	for _, r := range raw {
		suggestion, ok := buildSuggestion(r)
		if !ok {
			continue
		}
		if _, dup := seen[suggestion.Label]; dup {
			continue
		}
		seen[suggestion.Label] = struct{}{}
		suggestions = append(suggestions, suggestion)
		if len(suggestions) == maxResults {
			break
		}
	}
	return suggestions
}

func buildSuggestion(raw nominatimResponse) (PlaceSuggestion, bool) {
	city := pickCity(raw.Address)
	if city == "" {
		return PlaceSuggestion{}, false
	}

	region := raw.Address.Province
	if region == "" {
		region = raw.Address.State
	}

	suggestion := PlaceSuggestion{
		City:    city,
		Region:  region,
		Country: strings.ToUpper(raw.Address.CountryCode),
		Lat:     raw.Lat,
		Lon:     raw.Lon,
	}
	suggestion.Label = buildLabel(suggestion)

	return suggestion, true
}

func pickCity(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	if address.Municipality != "" {
		return address.Municipality
	}
	return address.Hamlet
}

func buildLabel(suggestion PlaceSuggestion) string {
	parts := []string{suggestion.City}
	if suggestion.Region != "" && suggestion.Region != suggestion.City {
		parts = append(parts, suggestion.Region)
	}
	if suggestion.Country != "" {
		parts = append(parts, suggestion.Country)
	}
	return strings.Join(parts, ", ")
}
