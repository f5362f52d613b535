package models

import (
	"fmt"
	"math"
	"time"

	"neurotic-crabs/internal/logger"
	"neurotic-crabs/internal/storage"

	"github.com/bytedance/sonic"
)

const (
	// StateKey is the well-known record key for persisted application state
	StateKey = "app"

	DefaultLabel  = "Hello World!"
	DefaultValue  = 2.7
	MinValue      = 0.0
	MaxValue      = 1000.0
	IncrementStep = 10.0

	// SmoothingDecay weights the previous frame time; 1-SmoothingDecay weights the new sample
	SmoothingDecay = 0.98
	CircleRadius   = 50.0

	component = "State"
)

// Clock supplies the current instant
type Clock func() time.Time

// PersistedState is the on-disk record. Only these fields survive a restart.
type PersistedState struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

func defaultPersisted() PersistedState {
	return PersistedState{Label: DefaultLabel, Value: DefaultValue}
}

// ApplicationState is the single state object owned by the running application.
// It is touched only from the host's UI goroutine and carries no locking.
type ApplicationState struct {
	Label string
	Value float64

	lastFrame time.Time
	frameTime float64
}

// Frame describes everything drawn during one tick
type Frame struct {
	Label           string
	Value           float64
	MinValue        float64
	MaxValue        float64
	CircleOffsetX   float64
	CircleRadius    float64
	Now             time.Time
	FrameTimeMillis float64
	Repaint         bool
}

// Readout is the timestamp and frame time text shown above the controls
func (f Frame) Readout() string {
	return fmt.Sprintf("'t is %s\n frame time: %.02fms",
		f.Now.Format("15:04:05.000"), f.FrameTimeMillis)
}

func newState(p PersistedState, clock Clock) *ApplicationState {
	if clock == nil {
		clock = time.Now
	}
	return &ApplicationState{
		Label:     p.Label,
		Value:     clampValue(p.Value),
		lastFrame: clock(),
		frameTime: 0,
	}
}

func NewDefaultState(clock Clock) *ApplicationState {
	return newState(defaultPersisted(), clock)
}

// DecodeState parses a persisted record. Keys absent from data keep their
// default values; unknown keys are ignored.
func DecodeState(data []byte) (PersistedState, error) {
	p := defaultPersisted()
	if err := sonic.ConfigStd.Unmarshal(data, &p); err != nil {
		return defaultPersisted(), fmt.Errorf("decode persisted state: %w", err)
	}
	return p, nil
}

// EncodeState serializes the persisted fields of s
func EncodeState(s *ApplicationState) ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(PersistedState{Label: s.Label, Value: s.Value})
	if err != nil {
		return nil, fmt.Errorf("encode persisted state: %w", err)
	}
	return data, nil
}

// LoadState restores state from store. It never fails: an absent store,
// a missing record, or an undecodable record all produce the default state.
func LoadState(store storage.Store, clock Clock, log logger.Logger) *ApplicationState {
	if log == nil {
		log = logger.NoOp{}
	}
	if store == nil {
		log.Debug(component, "no storage available, using defaults", nil)
		return NewDefaultState(clock)
	}

	data, ok := store.Get(StateKey)
	if !ok {
		log.Debug(component, "no persisted state, using defaults", nil)
		return NewDefaultState(clock)
	}

	p, err := DecodeState(data)
	if err != nil {
		log.Warning(component, "discarding unreadable persisted state", map[string]interface{}{
			"error": err.Error(),
			"bytes": len(data),
		})
		return NewDefaultState(clock)
	}

	log.Info(component, "persisted state restored", map[string]interface{}{
		"label": p.Label,
		"value": p.Value,
	})
	return newState(p, clock)
}

// Persist writes label and value under StateKey. Failures are logged, not returned.
func (s *ApplicationState) Persist(store storage.Store, log logger.Logger) {
	if log == nil {
		log = logger.NoOp{}
	}
	if store == nil {
		return
	}

	data, err := EncodeState(s)
	if err != nil {
		log.Error(component, err, nil)
		return
	}
	if err := store.Set(StateKey, data); err != nil {
		log.Error(component, fmt.Errorf("write persisted state: %w", err), map[string]interface{}{
			"key": StateKey,
		})
		return
	}

	log.Debug(component, "state persisted", map[string]interface{}{"bytes": len(data)})
}

// OnFrame advances the frame timer to now and returns what to draw
func (s *ApplicationState) OnFrame(now time.Time) Frame {
	delta := now.Sub(s.lastFrame).Seconds()
	if delta < 0 {
		delta = 0
	}
	s.frameTime = SmoothingDecay*s.frameTime + (1-SmoothingDecay)*delta
	s.lastFrame = now

	return Frame{
		Label:           s.Label,
		Value:           s.Value,
		MinValue:        MinValue,
		MaxValue:        MaxValue,
		CircleOffsetX:   s.Value,
		CircleRadius:    CircleRadius,
		Now:             now,
		FrameTimeMillis: 1000 * s.frameTime,
		Repaint:         true,
	}
}

func (s *ApplicationState) SetLabel(label string) {
	s.Label = label
}

// SetValue stores v limited to [MinValue, MaxValue]
func (s *ApplicationState) SetValue(v float64) {
	s.Value = clampValue(v)
}

func (s *ApplicationState) Increment() {
	s.SetValue(s.Value + IncrementStep)
}

// FrameTime is the smoothed frame duration in seconds
func (s *ApplicationState) FrameTime() float64 {
	return s.frameTime
}

func (s *ApplicationState) LastFrame() time.Time {
	return s.lastFrame
}

func clampValue(v float64) float64 {
	if math.IsNaN(v) {
		return MinValue
	}
	return math.Max(MinValue, math.Min(MaxValue, v))
}
