package motapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// tokenExpiryMargin токен считается истекшим за 5 минут до фактического истечения
const tokenExpiryMargin = 5 * time.Minute

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры подключения к MOT History API
type Config struct {
	TokenURL     string
	BaseURL      string
	ClientID     string
	ClientSecret string
	Scope        string
	APIKey       string
}

// Client клиент государственного MOT History API.
// Выполняет OAuth2 client credentials flow с кэшированием токена
// и поиск данных автомобиля по госномеру.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger

	// Кэш токена. Проверка и обновление атомарны относительно
	// параллельных поисков, чтобы не плодить лишние запросы токена.
	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time

	now func() time.Time
}

// NewClient создает новый экземпляр клиента MOT API
func NewClient(cfg Config, timeout time.Duration, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		now: time.Now,
	}
}

// Lookup ищет данные автомобиля по госномеру.
// Госномер нормализуется (без пробелов, верхний регистр) перед запросом.
func (c *Client) Lookup(ctx context.Context, registration string) (*VehicleData, error) {
	reg := domain.NormalizeRegistration(registration)
	if reg == "" {
		return nil, fmt.Errorf("%w: empty registration", ErrInvalidRegistration)
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		// Ошибка получения токена прерывает поиск без повторных попыток
		c.log.Error("Lookup: failed to obtain access token for reg=%s: %v", reg, err)
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	lookupURL := fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(reg))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		c.log.Info("Lookup: vehicle not found, reg=%s", reg)
		return nil, ErrVehicleNotFound
	case resp.StatusCode == http.StatusUnprocessableEntity:
		c.log.Warn("Lookup: invalid registration format, reg=%s", reg)
		return nil, ErrInvalidRegistration
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.Warn("Lookup: rate limit exceeded, reg=%s", reg)
		return nil, ErrRateLimited
	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		c.log.Error("Lookup: MOT API server error, status=%d, reg=%s", resp.StatusCode, reg)
		return nil, ErrServer
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrNetwork, err)
	}

	data, err := c.decodeVehicle(body)
	if err != nil {
		c.log.Error("Lookup: failed to decode response for reg=%s: %v", reg, err)
		return nil, err
	}

	c.log.Info("Lookup: reg=%s resolved, make=%s, model=%s, motStatus=%s",
		reg, data.Make, data.Model, data.MOTStatus)
	return data, nil
}

// ensureToken возвращает закэшированный токен, если до его истечения
// осталось больше tokenExpiryMargin, иначе синхронно запрашивает новый.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.accessToken != "" && c.tokenExpiry.Sub(now) > tokenExpiryMargin {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("scope", c.cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute token request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %v", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned empty access_token")
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = now.Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.log.Info("ensureToken: obtained new access token, expires_in=%ds", tok.ExpiresIn)

	return c.accessToken, nil
}

// decodeVehicle разбирает тело ответа, поддерживая две формы:
// (a) автомобиль с историей MOT, (b) новый автомобиль без истории.
func (c *Client) decodeVehicle(body []byte) (*VehicleData, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		// Некоторые эндпойнты заворачивают ответ в массив из одного элемента
		var rawList []map[string]json.RawMessage
		if err := json.Unmarshal(body, &rawList); err != nil || len(rawList) == 0 {
			return nil, fmt.Errorf("%w: unrecognized response body", ErrInvalidResponse)
		}
		raw = rawList[0]
		body, _ = json.Marshal(raw)
	}

	if _, ok := raw["motTests"]; ok {
		var v vehicleWithHistory
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: failed to decode vehicle with history: %v", ErrInvalidResponse, err)
		}
		return normalizeWithHistory(&v, c.now()), nil
	}

	if _, ok := raw["motTestDueDate"]; ok {
		var v newRegVehicle
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: failed to decode new registration: %v", ErrInvalidResponse, err)
		}
		return normalizeNewRegistration(&v), nil
	}

	return nil, fmt.Errorf("%w: response matches no known shape", ErrInvalidResponse)
}
