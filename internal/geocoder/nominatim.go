package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ReverseGeocoder menerjemahkan koordinat menjadi alamat. Best-effort:
// kegagalan apa pun menghasilkan string kosong, tidak pernah memblokir absen.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) string
}

// Nominatim adalah client reverse geocoding ke endpoint Nominatim
// (OpenStreetMap atau self-hosted).
type Nominatim struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewNominatim membuat client dengan timeout pendek. baseURL kosong berarti
// geocoding dimatikan (alamat selalu kosong).
func NewNominatim(baseURL string, timeout time.Duration, log *zap.Logger) *Nominatim {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Nominatim{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse mengembalikan alamat display_name, atau "" kalau gagal.
func (n *Nominatim) Reverse(ctx context.Context, lat, lng float64) string {
	if n == nil || n.baseURL == "" {
		return ""
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("format", "jsonv2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "AbsensiLokasi/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn("reverse geocode gagal", zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.log.Warn("reverse geocode status tidak OK", zap.Int("status", resp.StatusCode))
		return ""
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.DisplayName
}
