package config

import (
	"testing"
	"time"

	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestProvidersConfig_Entries(t *testing.T) {
	p := ProvidersConfig{List: " hotels-a:hotel:sandbox, !cars-x:car:http:http://cars.local:9000/api ,"}

	entries, err := p.Entries()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ProviderEntry{Name: "hotels-a", Type: domain.ServiceHotel, Kind: KindSandbox, Enabled: true}, entries[0])
	assert.Equal(t, ProviderEntry{
		Name:     "cars-x",
		Type:     domain.ServiceCar,
		Kind:     KindHTTP,
		Endpoint: "http://cars.local:9000/api",
		Enabled:  false,
	}, entries[1])
}

func TestProvidersConfig_EntriesErrors(t *testing.T) {
	tests := []struct {
		name string
		list string
	}{
		{name: "too few parts", list: "hotels-a:hotel"},
		{name: "empty name", list: ":hotel:sandbox"},
		{name: "unknown type", list: "spa-a:spa:sandbox"},
		{name: "unknown kind", list: "hotels-a:hotel:grpc"},
		{name: "http without endpoint", list: "hotels-a:hotel:http"},
		{name: "duplicate", list: "hotels-a:hotel:sandbox,hotels-a:car:sandbox"},
		{name: "bad timeout", list: "cars-x:car:http:http://cars.local@soon"},
		{name: "negative timeout", list: "cars-x:car:http:http://cars.local@-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProvidersConfig{List: tt.list}.Entries()
			assert.Error(t, err)
		})
	}
}

func TestProvidersConfig_PerProviderTimeout(t *testing.T) {
	p := ProvidersConfig{
		List:    "cars-x:car:http:http://cars.local:9000/api@1500ms,hotels-y:hotel:http:http://hotels.local",
		Timeout: 5 * time.Second,
	}

	entries, err := p.Entries()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "http://cars.local:9000/api", entries[0].Endpoint)
	assert.Equal(t, 1500*time.Millisecond, p.TimeoutFor(entries[0]))
	assert.Equal(t, 5*time.Second, p.TimeoutFor(entries[1]))
}

func TestProvidersConfig_EmptyList(t *testing.T) {
	entries, err := ProvidersConfig{}.Entries()

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProvidersConfig_CityList(t *testing.T) {
	assert.Equal(t, []string{"Quito", "Cuenca"}, ProvidersConfig{Cities: "Quito, ,Cuenca "}.CityList())
	assert.Nil(t, ProvidersConfig{}.CityList())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"info":  logger.InfoLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"":      logger.InfoLevel,
	}

	for level, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel(), level)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "booking_hub", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=booking_hub sslmode=disable", p.DSN())
}
