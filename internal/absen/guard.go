package absen

import (
	"sync"
	"time"
)

// Guard menolak submit absen ganda per pegawai: sekali submit dimulai,
// percobaan berikutnya ditolak sampai submit selesai plus cooldown singkat
// (mencegah double-tap). State-nya eksplisit di sini, bukan flag global.
type Guard struct {
	cooldown time.Duration

	mu   sync.Mutex
	busy map[uint]bool
}

// NewGuard membuat guard dengan cooldown setelah submit selesai.
func NewGuard(cooldown time.Duration) *Guard {
	if cooldown <= 0 {
		cooldown = 900 * time.Millisecond
	}
	return &Guard{
		cooldown: cooldown,
		busy:     make(map[uint]bool),
	}
}

// Begin mencoba mengunci slot submit pegawai. Return false kalau masih ada
// submit berjalan atau masih dalam masa cooldown.
func (g *Guard) Begin(pegawaiID uint) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy[pegawaiID] {
		return false
	}
	g.busy[pegawaiID] = true
	return true
}

// Finish menandai submit selesai. Slot baru benar-benar bebas setelah
// cooldown lewat.
func (g *Guard) Finish(pegawaiID uint) {
	time.AfterFunc(g.cooldown, func() {
		g.mu.Lock()
		delete(g.busy, pegawaiID)
		g.mu.Unlock()
	})
}
