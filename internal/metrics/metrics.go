package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Hasil submit untuk label outcome.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	// Submissions menghitung submit absen per tipe dan hasil.
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "absensi_submissions_total",
		Help: "Jumlah submit absen berdasarkan tipe (IN/OUT) dan hasil.",
	}, []string{"type", "outcome"})

	// MockRejections menghitung submit yang ditolak karena mock location.
	MockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "absensi_mock_location_rejected_total",
		Help: "Jumlah submit yang ditolak karena lokasi mock/simulasi.",
	})
)
