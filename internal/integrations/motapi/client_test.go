package motapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

// newTokenServer поднимает token endpoint, считающий количество запросов
func newTokenServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "test-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "test-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	}))
}

func newTestClient(tokenURL, baseURL string) *Client {
	return NewClient(Config{
		TokenURL:     tokenURL,
		BaseURL:      baseURL,
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Scope:        "https://tapi.dvsa.gov.uk/.default",
		APIKey:       "test-api-key",
	}, 5*time.Second, testLogger{})
}

const historyBody = `{
	"registration": "AB12CDE",
	"make": "FORD",
	"model": "FOCUS",
	"primaryColour": "Blue",
	"manufactureYear": "2018",
	"fuelType": "Petrol",
	"engineSize": "1499",
	"motTests": [
		{
			"completedDate": "2025.06.02 10:00:00",
			"testResult": "PASSED",
			"expiryDate": "2099.06.01",
			"odometerValue": "45210",
			"odometerUnit": "mi"
		}
	]
}`

func TestClient_Lookup_TokenCached(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(historyBody))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	_, err := c.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&tokenHits))
}

func TestClient_Lookup_TokenRefreshedNearExpiry(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(historyBody))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	_, err := c.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)
	require.Equal(t, int64(1), atomic.LoadInt64(&tokenHits))

	// До истечения токена (3600с) осталось меньше 5 минут - нужен новый
	c.now = func() time.Time { return base.Add(56 * time.Minute) }

	_, err = c.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&tokenHits))
}

func TestClient_Lookup_NormalizesVehicle(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/AB12CDE", r.URL.Path)
		_, _ = w.Write([]byte(historyBody))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	data, err := c.Lookup(context.Background(), "ab12 cde")
	require.NoError(t, err)

	assert.Equal(t, "AB12CDE", data.Registration)
	assert.Equal(t, "FORD", data.Make)
	assert.Equal(t, domain.MOTStatusValid, data.MOTStatus)
	assert.True(t, data.HasMOTHistory)
	require.NotNil(t, data.LatestMileage)
	assert.Equal(t, 45210, *data.LatestMileage)
}

func TestClient_Lookup_ArrayWrappedResponse(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[" + historyBody + "]"))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	data, err := c.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)
	assert.Equal(t, "FORD", data.Make)
}

func TestClient_Lookup_NewRegistration(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"registration": "CD34EFG",
			"make": "TESLA",
			"model": "MODEL 3",
			"manufactureYear": "2025",
			"fuelType": "Electric",
			"primaryColour": "White",
			"motTestDueDate": "2028.05.01"
		}`))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	data, err := c.Lookup(context.Background(), "CD34EFG")
	require.NoError(t, err)

	assert.Equal(t, domain.MOTStatusUnknown, data.MOTStatus)
	assert.False(t, data.HasMOTHistory)
	require.NotNil(t, data.MOTExpiryDate)
	assert.Equal(t, "2028-05-01", *data.MOTExpiryDate)
}

func TestClient_Lookup_StatusCodes(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrVehicleNotFound},
		{"invalid registration", http.StatusUnprocessableEntity, ErrInvalidRegistration},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrServer},
		{"bad gateway", http.StatusBadGateway, ErrServer},
		{"unexpected status", http.StatusTeapot, ErrNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tokenHits int64
			tokenSrv := newTokenServer(t, &tokenHits)
			defer tokenSrv.Close()

			apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer apiSrv.Close()

			c := newTestClient(tokenSrv.URL, apiSrv.URL)

			_, err := c.Lookup(context.Background(), "AB12CDE")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_Lookup_EmptyRegistration(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", "http://127.0.0.1:1")

	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidRegistration)
}

func TestClient_Lookup_TokenEndpointFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer tokenSrv.Close()

	c := newTestClient(tokenSrv.URL, "http://127.0.0.1:1")

	_, err := c.Lookup(context.Background(), "AB12CDE")
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestClient_Lookup_UnknownResponseShape(t *testing.T) {
	var tokenHits int64
	tokenSrv := newTokenServer(t, &tokenHits)
	defer tokenSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"registration": "AB12CDE"}`))
	}))
	defer apiSrv.Close()

	c := newTestClient(tokenSrv.URL, apiSrv.URL)

	_, err := c.Lookup(context.Background(), "AB12CDE")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
