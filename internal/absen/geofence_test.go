package absen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	officeLat = -5.1787531
	officeLng = 119.4390442
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{officeLat, officeLng},
		{0, 0},
		{89.9, -179.9},
	}
	for _, p := range points {
		d, err := DistanceMeters(p[0], p[1], p[0], p[1])
		assert.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1, err := DistanceMeters(officeLat, officeLng, -6.2, 106.8)
	assert.NoError(t, err)
	d2, err := DistanceMeters(-6.2, 106.8, officeLat, officeLng)
	assert.NoError(t, err)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceMeters_AroundOffice(t *testing.T) {
	// Titik ~50 m ke selatan kantor: harus masuk radius 100 m.
	near, err := DistanceMeters(-5.17920, 119.43904, officeLat, officeLng)
	assert.NoError(t, err)
	assert.Greater(t, near, 30.0)
	assert.Less(t, near, 70.0)
	assert.True(t, IsWithinRadius(near, 100.0))

	// Titik ~500 m: harus di luar radius 100 m.
	far, err := DistanceMeters(-5.18325, 119.43904, officeLat, officeLng)
	assert.NoError(t, err)
	assert.Greater(t, far, 400.0)
	assert.Less(t, far, 600.0)
	assert.False(t, IsWithinRadius(far, 100.0))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Satu derajat lintang di equator ~ 111.19 km pada bola 6371 km.
	d, err := DistanceMeters(0, 0, 1, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 111194.9, d, 100)
}

func TestDistanceMeters_InvalidInput(t *testing.T) {
	_, err := DistanceMeters(math.NaN(), 0, 0, 0)
	assert.ErrorIs(t, err, ErrKoordinatInvalid)

	_, err = DistanceMeters(0, 0, math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrKoordinatInvalid)
}

func TestIsWithinRadius_Boundary(t *testing.T) {
	assert.True(t, IsWithinRadius(99.9, 100.0))
	assert.True(t, IsWithinRadius(100.0, 100.0)) // tepat di batas = di dalam
	assert.False(t, IsWithinRadius(100.5, 100.0))
}
