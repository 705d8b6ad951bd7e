package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// AlertMailer mengirim notifikasi keamanan ke admin. Implementasi boleh nil
// (SMTP tidak dikonfigurasi) — pemanggil cukup cek Enabled.
type AlertMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	log    *zap.Logger
}

// New mengembalikan nil kalau host atau alamat tujuan kosong.
func New(host string, port int, user, pass, to string, log *zap.Logger) *AlertMailer {
	if host == "" || to == "" {
		return nil
	}
	return &AlertMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		to:     to,
		log:    log,
	}
}

// MockLocationAlert memberi tahu admin ada percobaan absen dengan lokasi
// palsu. Best-effort: error hanya di-log.
func (m *AlertMailer) MockLocationAlert(email string, lat, lng float64) {
	if m == nil {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", "[AbsensiLokasi] Mock location terdeteksi")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Pegawai %s mencoba absen dengan lokasi mock/simulasi pada koordinat (%.6f, %.6f). Absen ditolak.",
		email, lat, lng,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Warn("gagal kirim alert mock location", zap.Error(err))
	}
}
