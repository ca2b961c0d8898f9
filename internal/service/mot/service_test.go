package mot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeMOTClient struct {
	data *motapi.VehicleData
	err  error
}

func (c *fakeMOTClient) Lookup(ctx context.Context, registration string) (*motapi.VehicleData, error) {
	return c.data, c.err
}

func TestLookup(t *testing.T) {
	client := &fakeMOTClient{
		data: &motapi.VehicleData{
			Registration:  "AB12CDE",
			Make:          "FORD",
			Model:         "FOCUS",
			Year:          2018,
			MOTStatus:     domain.MOTStatusValid,
			HasMOTHistory: true,
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Lookup(context.Background(), "AB12CDE")
	require.NoError(t, err)

	assert.Equal(t, "AB12CDE", resp.Registration)
	assert.Equal(t, string(domain.MOTStatusValid), resp.MOTStatus)
	assert.True(t, resp.HasMOTHistory)
}

func TestLookup_ClientErrorsPassThrough(t *testing.T) {
	svc := NewService(&fakeMOTClient{err: motapi.ErrVehicleNotFound}, nopLogger{})

	_, err := svc.Lookup(context.Background(), "ZZ99ZZZ")
	assert.ErrorIs(t, err, motapi.ErrVehicleNotFound)
}

func TestSuggestManualEntry(t *testing.T) {
	assert.True(t, SuggestManualEntry(motapi.ErrVehicleNotFound))
	assert.True(t, SuggestManualEntry(motapi.ErrAuthentication))
	assert.True(t, SuggestManualEntry(motapi.ErrNoDataAvailable))

	assert.False(t, SuggestManualEntry(motapi.ErrNetwork))
	assert.False(t, SuggestManualEntry(motapi.ErrRateLimited))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(motapi.ErrNetwork))
	assert.True(t, Retryable(motapi.ErrServer))
	assert.True(t, Retryable(motapi.ErrRateLimited))

	assert.False(t, Retryable(motapi.ErrVehicleNotFound))
	assert.False(t, Retryable(motapi.ErrInvalidRegistration))
}
