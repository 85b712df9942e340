//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"bookslot/internal/domain/catalog"
	"bookslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, svc)

		assert.NotEqual(t, uuid.Nil, svc.ID)
		assert.Equal(t, "Deep Tissue Massage", svc.Name)
		assert.Equal(t, 60, svc.DurationMinutes)
		assert.Equal(t, 120, svc.Price)
		assert.True(t, svc.IsActive)
		assert.True(t, svc.Available())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ServiceBuilder)
		errIs  error
	}{
		{
			name:   "name too short",
			mutate: func(b *builder.ServiceBuilder) { b.Name = "x" },
			errIs:  catalog.ErrInvalidServiceName,
		},
		{
			name:   "name too long",
			mutate: func(b *builder.ServiceBuilder) { b.Name = strings.Repeat("a", 121) },
			errIs:  catalog.ErrInvalidServiceName,
		},
		{
			name:   "name of two characters",
			mutate: func(b *builder.ServiceBuilder) { b.Name = "ab" },
		},
		{
			name:   "duration below minimum",
			mutate: func(b *builder.ServiceBuilder) { b.DurationMinutes = 14 },
			errIs:  catalog.ErrInvalidDuration,
		},
		{
			name:   "duration at minimum",
			mutate: func(b *builder.ServiceBuilder) { b.DurationMinutes = 15 },
		},
		{
			name:   "duration at maximum",
			mutate: func(b *builder.ServiceBuilder) { b.DurationMinutes = 480 },
		},
		{
			name:   "duration above maximum",
			mutate: func(b *builder.ServiceBuilder) { b.DurationMinutes = 481 },
			errIs:  catalog.ErrInvalidDuration,
		},
		{
			name:   "negative price",
			mutate: func(b *builder.ServiceBuilder) { b.Price = -1 },
			errIs:  catalog.ErrNegativePrice,
		},
		{
			name:   "free service",
			mutate: func(b *builder.ServiceBuilder) { b.Price = 0 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := builder.NewServiceBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, svc)
			} else {
				require.Nil(t, svc)
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}

	t.Run("inactive service is not available", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)

		svc.IsActive = false
		assert.False(t, svc.Available())

		var nilService *catalog.Service
		assert.False(t, nilService.Available())
	})
}

func TestLocation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		loc, err := builder.NewLocationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, loc)

		assert.NotEqual(t, uuid.Nil, loc.ID)
		assert.Equal(t, "Downtown Studio", loc.Name)
		assert.Equal(t, 30, loc.SlotIntervalMinutes)
		assert.True(t, loc.Available())
	})

	t.Run("zero interval falls back to default", func(t *testing.T) {
		loc, err := builder.NewLocationBuilder().
			With(func(b *builder.LocationBuilder) { b.SlotIntervalMinutes = 0 }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultSlotIntervalMinutes, loc.SlotIntervalMinutes)
	})

	cases := []struct {
		name   string
		mutate func(*builder.LocationBuilder)
		errIs  error
	}{
		{
			name:   "name too short",
			mutate: func(b *builder.LocationBuilder) { b.Name = "x" },
			errIs:  catalog.ErrInvalidLocationName,
		},
		{
			name:   "interval below minimum",
			mutate: func(b *builder.LocationBuilder) { b.SlotIntervalMinutes = 14 },
			errIs:  catalog.ErrInvalidSlotInterval,
		},
		{
			name:   "interval at minimum",
			mutate: func(b *builder.LocationBuilder) { b.SlotIntervalMinutes = 15 },
		},
		{
			name:   "interval at maximum",
			mutate: func(b *builder.LocationBuilder) { b.SlotIntervalMinutes = 240 },
		},
		{
			name:   "interval above maximum",
			mutate: func(b *builder.LocationBuilder) { b.SlotIntervalMinutes = 241 },
			errIs:  catalog.ErrInvalidSlotInterval,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := builder.NewLocationBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, loc)
			} else {
				require.Nil(t, loc)
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}
