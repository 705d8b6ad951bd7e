package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iqraa07/AbsensiLokasi/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher mendorong event absensi yang baru tersimpan ke subscriber
// (aplikasi mobile me-refresh snapshot-nya saat menerima push).
type Publisher interface {
	PublishEvent(ctx context.Context, event *model.Absen) error
	// MarkAuto menandai kunci dedupe auto absen; return true kalau kunci
	// baru (aksi boleh jalan), false kalau sudah pernah dipicu.
	MarkAuto(ctx context.Context, key string) (bool, error)
}

// Redis adalah Publisher di atas redis pub/sub + SETNX.
type Redis struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedis membuka koneksi redis dengan timeout pendek.
func NewRedis(addr string, log *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{client: client, log: log}
}

// Healthy memverifikasi konektivitas redis.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.client == nil {
		return false
	}
	return r.client.Ping(ctx).Err() == nil
}

func channelFor(companyID string, pegawaiID uint) string {
	return fmt.Sprintf("absensi:%s:%d", companyID, pegawaiID)
}

// PublishEvent mengirim event ke channel pegawai. Best-effort: error cukup
// di-log oleh pemanggil, store tetap jadi sumber kebenaran.
func (r *Redis) PublishEvent(ctx context.Context, event *model.Absen) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channelFor(event.CompanyID, event.PegawaiID), payload).Err()
}

// MarkAuto memakai SETNX dengan TTL sehari; kunci dedupe-nya berbentuk
// "dateKey|target|cycle|lastType" sehingga kombinasi state yang sama tidak
// memicu auto absen dua kali.
func (r *Redis) MarkAuto(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, "absensi:auto:"+key, 1, 24*time.Hour).Result()
}

// Subscribe membuka channel live update untuk satu pegawai. Channel ditutup
// saat ctx selesai.
func (r *Redis) Subscribe(ctx context.Context, companyID string, pegawaiID uint) <-chan string {
	sub := r.client.Subscribe(ctx, channelFor(companyID, pegawaiID))
	out := make(chan string)

	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
