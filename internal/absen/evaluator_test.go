package absen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(h, m int) time.Time {
	return time.Date(2026, 8, 28, h, m, 0, 0, time.Local)
}

func TestEvaluateDayState_Empty(t *testing.T) {
	st := EvaluateDayState(nil)

	assert.Equal(t, 0, st.CycleCount)
	assert.Equal(t, EventType(""), st.LastEventType)
	assert.True(t, st.CanCheckIn())
	assert.False(t, st.CanCheckOut())
}

func TestEvaluateDayState_OneFullCycle(t *testing.T) {
	st := EvaluateDayState([]Event{
		{Type: TypeIn, Ts: ts(9, 0)},
		{Type: TypeOut, Ts: ts(17, 0)},
	})

	assert.Equal(t, 1, st.CycleCount)
	assert.Equal(t, TypeOut, st.LastEventType)
	assert.True(t, st.CanCheckIn())
	assert.False(t, st.CanCheckOut())
	assert.Equal(t, ts(9, 0), st.LastInTime)
	assert.Equal(t, ts(17, 0), st.LastOutTime)
}

func TestEvaluateDayState_OpenCycle(t *testing.T) {
	st := EvaluateDayState([]Event{
		{Type: TypeIn, Ts: ts(8, 30)},
	})

	assert.Equal(t, 1, st.CycleCount)
	assert.Equal(t, TypeIn, st.LastEventType)
	assert.False(t, st.CanCheckIn())
	assert.True(t, st.CanCheckOut())
}

func TestEvaluateDayState_MultipleCycles(t *testing.T) {
	st := EvaluateDayState([]Event{
		{Type: TypeIn, Ts: ts(8, 0)},
		{Type: TypeOut, Ts: ts(12, 0)},
		{Type: TypeIn, Ts: ts(13, 0)},
		{Type: TypeOut, Ts: ts(17, 0)},
		{Type: TypeIn, Ts: ts(19, 0)},
	})

	assert.Equal(t, 3, st.CycleCount)
	assert.Equal(t, TypeIn, st.LastEventType)
	assert.Equal(t, ts(19, 0), st.LastInTime)
	assert.Equal(t, ts(17, 0), st.LastOutTime)
}

func TestEvaluateDayState_OutOfOrderDelivery(t *testing.T) {
	// Store boleh mengirim snapshot tidak urut; timestamp yang menentukan.
	st := EvaluateDayState([]Event{
		{Type: TypeOut, Ts: ts(17, 0)},
		{Type: TypeIn, Ts: ts(9, 0)},
	})

	assert.Equal(t, TypeOut, st.LastEventType)
	assert.True(t, st.CanCheckIn())
}

func TestEvaluateDayState_TimestampTieLaterArrivalWins(t *testing.T) {
	same := ts(10, 0)
	st := EvaluateDayState([]Event{
		{Type: TypeIn, Ts: same},
		{Type: TypeOut, Ts: same},
	})

	assert.Equal(t, TypeOut, st.LastEventType)
}

func TestEvaluateDayState_MissingTimestampCountsButNeverLatest(t *testing.T) {
	st := EvaluateDayState([]Event{
		{Type: TypeIn, Ts: ts(9, 0)},
		{Type: TypeIn}, // tanpa timestamp
	})

	assert.Equal(t, 2, st.CycleCount)
	assert.Equal(t, TypeIn, st.LastEventType)
	assert.Equal(t, ts(9, 0), st.LastInTime)
}

func TestDecideAction(t *testing.T) {
	canIn := EvaluateDayState(nil)
	canOut := EvaluateDayState([]Event{{Type: TypeIn, Ts: ts(8, 0)}})

	act, ok := DecideAction(canIn, true, true)
	assert.True(t, ok)
	assert.Equal(t, TypeIn, act)

	act, ok = DecideAction(canOut, true, true)
	assert.True(t, ok)
	assert.Equal(t, TypeOut, act)

	// Auto mati -> tidak ada aksi
	_, ok = DecideAction(canIn, true, false)
	assert.False(t, ok)

	// Di luar geofence -> tidak ada aksi
	_, ok = DecideAction(canIn, false, true)
	assert.False(t, ok)
}
