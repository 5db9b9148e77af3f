package clickstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// IPResolver определяет внешний сервис определения публичного IP.
// Ошибка никогда не фатальна: запись в журнал продолжается без IP.
type IPResolver interface {
	Lookup(ctx context.Context) (string, error)
}

type httpIPResolver struct {
	client *http.Client
	url    string
}

// NewIPResolver возвращает резолвер поверх ipify-совместимого эндпоинта,
// отдающего {"ip": "..."}.
func NewIPResolver(url string) IPResolver {
	return &httpIPResolver{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
	}
}

func (r *httpIPResolver) Lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ip lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	return payload.IP, nil
}
