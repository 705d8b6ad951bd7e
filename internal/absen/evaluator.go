package absen

import "time"

// EventType adalah arah absen: masuk atau pulang.
type EventType string

const (
	TypeIn  EventType = "IN"
	TypeOut EventType = "OUT"
)

// Event adalah potongan minimal dari satu record absensi yang dibutuhkan
// evaluator. Urutan slice = urutan kedatangan dari store.
type Event struct {
	Type EventType
	Ts   time.Time
}

// DayState adalah rangkuman event satu pegawai untuk satu dateKey.
// Diturunkan ulang setiap kali snapshot berubah, tidak pernah disimpan.
type DayState struct {
	CycleCount    int       // jumlah event IN hari ini
	LastEventType EventType // kosong kalau belum ada event
	LastInTime    time.Time
	LastOutTime   time.Time
}

// CanCheckIn: belum ada event sama sekali, atau event terakhir OUT.
func (s DayState) CanCheckIn() bool {
	return s.LastEventType == "" || s.LastEventType == TypeOut
}

// CanCheckOut: event terakhir IN.
func (s DayState) CanCheckOut() bool {
	return s.LastEventType == TypeIn
}

// EvaluateDayState melipat seluruh event satu hari menjadi DayState dalam
// satu kali scan. Event terbaru ditentukan berdasarkan timestamp; kalau
// timestamp sama persis, event yang datang belakangan yang menang. Event
// tanpa timestamp tetap dihitung di CycleCount tapi tidak pernah jadi
// event terakhir.
func EvaluateDayState(events []Event) DayState {
	var st DayState
	var lastTs time.Time

	for _, e := range events {
		if e.Type == TypeIn {
			st.CycleCount++
		}

		if e.Ts.IsZero() {
			continue
		}

		if lastTs.IsZero() || !e.Ts.Before(lastTs) {
			lastTs = e.Ts
			st.LastEventType = e.Type
		}

		switch e.Type {
		case TypeIn:
			if st.LastInTime.IsZero() || !e.Ts.Before(st.LastInTime) {
				st.LastInTime = e.Ts
			}
		case TypeOut:
			if st.LastOutTime.IsZero() || !e.Ts.Before(st.LastOutTime) {
				st.LastOutTime = e.Ts
			}
		}
	}

	return st
}

// DecideAction memutuskan aksi auto absen. Murni tanpa side effect supaya
// gampang dites terpisah dari plumbing lokasi/preferensi.
func DecideAction(st DayState, insideGeofence, autoEnabled bool) (EventType, bool) {
	if !autoEnabled || !insideGeofence {
		return "", false
	}
	if st.CanCheckIn() {
		return TypeIn, true
	}
	if st.CanCheckOut() {
		return TypeOut, true
	}
	return "", false
}
