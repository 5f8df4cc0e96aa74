package kernel_test

import (
	"math"
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	testCases := []struct {
		name      string
		lat, lon  float64
		expectErr bool
	}{
		{"bogota", 4.60, -74.08, false},
		{"north pole", 90, 0, false},
		{"antimeridian", -10, 180, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.5, true},
		{"longitude NaN", 0, math.NaN(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tc.lat, tc.lon)
			if tc.expectErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.lat, p.Latitude(), 1e-9)
			assert.InDelta(t, tc.lon, p.Longitude(), 1e-9)
		})
	}
}

func TestNewOptionalGeoPoint(t *testing.T) {
	lat, lon := 4.65, -74.10

	p, err := kernel.NewOptionalGeoPoint(&lat, &lon)
	require.NoError(t, err)
	require.NotNil(t, p)

	p, err = kernel.NewOptionalGeoPoint(&lat, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	bad := 200.0
	_, err = kernel.NewOptionalGeoPoint(&lat, &bad)
	require.Error(t, err)
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	bogota, _ := kernel.NewGeoPoint(4.60, -74.08)
	cartagena, _ := kernel.NewGeoPoint(10.40, -75.51)

	t.Run("same point is zero", func(t *testing.T) {
		d, err := bogota.DistanceKm(bogota)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("bogota to cartagena", func(t *testing.T) {
		d, err := bogota.DistanceKm(cartagena)
		require.NoError(t, err)
		assert.InDelta(t, 664, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		there, _ := bogota.DistanceKm(cartagena)
		back, _ := cartagena.DistanceKm(bogota)
		assert.InDelta(t, there, back, 1e-9)
	})

	t.Run("quarter meridian", func(t *testing.T) {
		equator, _ := kernel.NewGeoPoint(0, 0)
		pole, _ := kernel.NewGeoPoint(90, 0)
		d, err := equator.DistanceKm(pole)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusKm/2, d, 1e-6)
	})

	t.Run("antipodes are half a circumference apart", func(t *testing.T) {
		for _, pair := range [][4]float64{
			{-85.46, -179.00, 85.46, 1.00},
			{4.60, -74.08, -4.60, 105.92},
			{0, 0, 0, 180},
		} {
			from, err := kernel.NewGeoPoint(pair[0], pair[1])
			require.NoError(t, err)
			to, err := kernel.NewGeoPoint(pair[2], pair[3])
			require.NoError(t, err)

			d, err := from.DistanceKm(to)

			require.NoError(t, err)
			assert.False(t, math.IsNaN(d))
			assert.InDelta(t, math.Pi*kernel.EarthRadiusKm, d, 1e-3)
		}
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := bogota.DistanceKm(zero)
		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}
