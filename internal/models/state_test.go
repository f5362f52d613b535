package models

import (
	"math"
	"testing"
	"time"

	"neurotic-crabs/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func storeWith(t *testing.T, record string) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(StateKey, []byte(record)))
	return store
}

func assertFreshTiming(t *testing.T, s *ApplicationState) {
	t.Helper()
	assert.Equal(t, epoch, s.LastFrame())
	assert.Zero(t, s.FrameTime())
}

func TestLoadStateWithoutStore(t *testing.T) {
	s := LoadState(nil, fixedClock(epoch), nil)

	assert.Equal(t, "Hello World!", s.Label)
	assert.Equal(t, 2.7, s.Value)
	assertFreshTiming(t, s)
}

func TestLoadStateWithoutRecord(t *testing.T) {
	s := LoadState(storage.NewMemoryStore(), fixedClock(epoch), nil)

	assert.Equal(t, DefaultLabel, s.Label)
	assert.Equal(t, DefaultValue, s.Value)
	assertFreshTiming(t, s)
}

func TestLoadStateRestoresPersistedFields(t *testing.T) {
	s := LoadState(storeWith(t, `{"label":"x","value":500.0}`), fixedClock(epoch), nil)

	assert.Equal(t, "x", s.Label)
	assert.Equal(t, 500.0, s.Value)
	assertFreshTiming(t, s)
}

func TestLoadStateFallsBackOnMalformedRecords(t *testing.T) {
	records := map[string]string{
		"empty":        "",
		"garbage":      "\x00\x01\x02",
		"truncated":    `{"label":"x","val`,
		"wrong types":  `{"label":5,"value":"high"}`,
		"array":        `[1,2,3]`,
		"plain string": `"Hello"`,
	}

	for name, record := range records {
		t.Run(name, func(t *testing.T) {
			s := LoadState(storeWith(t, record), fixedClock(epoch), nil)
			assert.Equal(t, DefaultLabel, s.Label)
			assert.Equal(t, DefaultValue, s.Value)
			assertFreshTiming(t, s)
		})
	}
}

func TestLoadStateDefaultsMissingFields(t *testing.T) {
	s := LoadState(storeWith(t, `{"label":"only label"}`), fixedClock(epoch), nil)
	assert.Equal(t, "only label", s.Label)
	assert.Equal(t, DefaultValue, s.Value)

	s = LoadState(storeWith(t, `{"value":42}`), fixedClock(epoch), nil)
	assert.Equal(t, DefaultLabel, s.Label)
	assert.Equal(t, 42.0, s.Value)
}

func TestLoadStateIgnoresUnknownAndEphemeralKeys(t *testing.T) {
	record := `{"label":"y","value":7,"theme":"dark","frameTime":3.5,"lastFrame":"2001-01-01T00:00:00Z"}`
	s := LoadState(storeWith(t, record), fixedClock(epoch), nil)

	assert.Equal(t, "y", s.Label)
	assert.Equal(t, 7.0, s.Value)
	assertFreshTiming(t, s)
}

func TestLoadStateClampsOutOfRangeValue(t *testing.T) {
	s := LoadState(storeWith(t, `{"label":"far","value":1500}`), fixedClock(epoch), nil)
	assert.Equal(t, MaxValue, s.Value)
}

func TestPersistRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	original := NewDefaultState(fixedClock(epoch))
	original.SetLabel("round trip ✓")
	original.SetValue(321.5)
	original.OnFrame(epoch.Add(time.Second))

	original.Persist(store, nil)
	restored := LoadState(store, fixedClock(epoch), nil)

	assert.Equal(t, original.Label, restored.Label)
	assert.Equal(t, original.Value, restored.Value)
	assertFreshTiming(t, restored)
}

func TestPersistIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	s := NewDefaultState(fixedClock(epoch))
	s.SetLabel("same")

	s.Persist(store, nil)
	first, ok := store.Get(StateKey)
	require.True(t, ok)

	s.Persist(store, nil)
	second, ok := store.Get(StateKey)
	require.True(t, ok)

	assert.Equal(t, first, second)
}

func TestPersistWritesOnlyPersistedFields(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))
	s.OnFrame(epoch.Add(time.Second))

	data, err := EncodeState(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Hello World!","value":2.7}`, string(data))
}

func TestPersistSwallowsWriteFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailWrites(true)

	s := NewDefaultState(fixedClock(epoch))
	assert.NotPanics(t, func() { s.Persist(store, nil) })

	_, ok := store.Get(StateKey)
	assert.False(t, ok)
}

func TestPersistWithoutStoreIsNoOp(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))
	assert.NotPanics(t, func() { s.Persist(nil, nil) })
}

func TestOnFrameSmoothingConvergence(t *testing.T) {
	const d = 0.016
	s := NewDefaultState(fixedClock(epoch))
	now := epoch
	step := time.Duration(d * float64(time.Second))

	for n := 1; n <= 500; n++ {
		now = now.Add(step)
		s.OnFrame(now)

		want := d * (1 - math.Pow(SmoothingDecay, float64(n)))
		require.InDelta(t, want, s.FrameTime(), 1e-12, "frame %d", n)
	}
	assert.InDelta(t, d, s.FrameTime(), 1e-6)
}

func TestOnFrameFirstFrame(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))

	frame := s.OnFrame(epoch)

	assert.Zero(t, s.FrameTime())
	assert.Zero(t, frame.FrameTimeMillis)
	assert.Equal(t, epoch, s.LastFrame())
}

func TestOnFrameIgnoresBackwardsClock(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))

	s.OnFrame(epoch.Add(-time.Second))

	assert.Zero(t, s.FrameTime())
	assert.Equal(t, epoch.Add(-time.Second), s.LastFrame())
}

func TestOnFrameDescribesFrame(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))
	s.SetLabel("draw me")
	s.SetValue(250)

	now := epoch.Add(100 * time.Millisecond)
	frame := s.OnFrame(now)

	assert.Equal(t, "draw me", frame.Label)
	assert.Equal(t, 250.0, frame.Value)
	assert.Equal(t, 250.0, frame.CircleOffsetX)
	assert.Equal(t, CircleRadius, frame.CircleRadius)
	assert.Equal(t, MinValue, frame.MinValue)
	assert.Equal(t, MaxValue, frame.MaxValue)
	assert.Equal(t, now, frame.Now)
	assert.InDelta(t, 2.0, frame.FrameTimeMillis, 1e-9)
	assert.True(t, frame.Repaint)
	assert.Contains(t, frame.Readout(), "frame time: 2.00ms")
	assert.Contains(t, frame.Readout(), "12:00:00.100")
}

func TestIncrement(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))

	s.Increment()
	assert.InDelta(t, 12.7, s.Value, 1e-9)

	s.SetValue(995)
	s.Increment()
	assert.Equal(t, MaxValue, s.Value)
}

func TestSetValueClamps(t *testing.T) {
	s := NewDefaultState(fixedClock(epoch))

	s.SetValue(1500)
	assert.Equal(t, 1000.0, s.Value)

	s.SetValue(-3)
	assert.Equal(t, 0.0, s.Value)

	s.SetValue(math.NaN())
	assert.Equal(t, 0.0, s.Value)

	s.SetValue(640)
	assert.Equal(t, 640.0, s.Value)
}
