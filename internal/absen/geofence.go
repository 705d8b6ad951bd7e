package absen

import (
	"errors"
	"math"
)

// Radius bumi dalam meter (bola, bukan elipsoid).
const earthRadiusM = 6371000.0

// ErrKoordinatInvalid dikembalikan kalau ada koordinat NaN/Inf. Lebih baik
// gagal daripada diam-diam menghasilkan jarak yang salah.
var ErrKoordinatInvalid = errors.New("koordinat tidak valid")

// DistanceMeters menghitung jarak great-circle (rumus Haversine) antara dua
// titik koordinat dalam derajat. Hasil selalu >= 0 untuk input yang valid.
func DistanceMeters(aLat, aLng, bLat, bLng float64) (float64, error) {
	for _, v := range [...]float64{aLat, aLng, bLat, bLng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrKoordinatInvalid
		}
	}

	dLat := toRadians(bLat - aLat)
	dLng := toRadians(bLng - aLng)

	s1 := math.Sin(dLat/2) * math.Sin(dLat/2)
	s2 := math.Cos(toRadians(aLat)) * math.Cos(toRadians(bLat)) *
		math.Sin(dLng/2) * math.Sin(dLng/2)

	a := s1 + s2
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c, nil
}

// IsWithinRadius: tepat di batas radius masih dihitung di dalam.
func IsWithinRadius(distanceM, radiusM float64) bool {
	return distanceM <= radiusM
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
