package device

import (
	"errors"
	"testing"
	"time"

	"github.com/goCycleKeys/cycle"
	"github.com/goCycleKeys/hid"
	"github.com/goCycleKeys/keybus"
	"github.com/goCycleKeys/keymaps"
	"github.com/goCycleKeys/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockKeyboard struct {
	mock.Mock
}

func (m *mockKeyboard) KeyDown(key int) error { return m.Called(key).Error(0) }
func (m *mockKeyboard) KeyUp(key int) error   { return m.Called(key).Error(0) }

type rawCall struct {
	code    uint16
	pressed bool
}

type rawRecorder struct {
	calls []rawCall
}

func (r *rawRecorder) SendRaw(code uint16, pressed bool) error {
	r.calls = append(r.calls, rawCall{code, pressed})
	return nil
}

func TestCodes_RoundTrip(t *testing.T) {
	for u, code := range linuxCodes {
		back, ok := UsageOf(code)
		require.True(t, ok, "code %d", code)
		assert.Equal(t, u, back)
	}

	code, ok := LinuxCode(hid.KeyA)
	assert.True(t, ok)
	assert.EqualValues(t, 30, code)
	code, _ = LinuxCode(hid.Backspace)
	assert.EqualValues(t, 14, code)
	code, _ = LinuxCode(hid.RightAlt)
	assert.EqualValues(t, 100, code)

	_, ok = UsageOf(116) // KEY_POWER
	assert.False(t, ok)
}

func TestOutput_Send(t *testing.T) {
	kb := &mockKeyboard{}
	kb.On("KeyDown", 30).Return(nil).Once()
	kb.On("KeyUp", 30).Return(nil).Once()
	kb.On("KeyDown", 57).Return(errors.New("gone")).Once()

	out := NewOutput(kb)
	require.NoError(t, out.Send(keybus.Event{Usage: hid.KeyA, Pressed: true}))
	require.NoError(t, out.Send(keybus.Event{Usage: hid.KeyA}))
	assert.EqualError(t, out.Send(keybus.Event{Usage: hid.Space, Pressed: true}), "gone")
	assert.Error(t, out.Send(keybus.Event{Usage: hid.Usage(0x99), Pressed: true}))

	kb.AssertExpectations(t)
}

func newTestLoop(t *testing.T) (*Loop, *keybus.Recorder, *rawRecorder, *time.Duration) {
	t.Helper()
	var now time.Duration
	clock := func() time.Duration { return now }

	mapping := testMapping()
	rec := &keybus.Recorder{}
	engine := cycle.NewEngine(cycle.Options{
		Bindings: len(mapping.Bindings),
		Table:    wordlist.Lists{{"the"}, {"be", "been"}},
		Output:   rec,
		Clock:    clock,
	})
	raw := &rawRecorder{}
	detectors := []*ComboDetector{NewComboDetector(keymaps.KeyMapping{Bindings: mapping.Bindings[:2]}, 0, 50*time.Millisecond)}
	return NewLoop(engine, detectors, raw, clock, nil), rec, raw, &now
}

func TestLoop_ComboTypesWord(t *testing.T) {
	loop, rec, _, now := newTestLoop(t)
	b, _ := LinuxCode(hid.KeyB)
	e, _ := LinuxCode(hid.KeyE)

	loop.Handle(RawKey{Code: b, Pressed: true})
	*now = 5 * time.Millisecond
	loop.Handle(RawKey{Code: e, Pressed: true})
	loop.Handle(RawKey{Code: e, Pressed: false})
	loop.Handle(RawKey{Code: b, Pressed: false})

	assert.Equal(t, []hid.Usage{hid.KeyB, hid.KeyE, hid.Space}, rec.Presses())

	rec.Reset()
	loop.Handle(RawKey{Code: b, Pressed: true})
	loop.Handle(RawKey{Code: e, Pressed: true})
	assert.Equal(t, []hid.Usage{
		hid.Backspace, hid.Backspace, hid.Backspace,
		hid.KeyB, hid.KeyE, hid.KeyE, hid.KeyN, hid.Space,
	}, rec.Presses())
}

func TestLoop_PlainKeysAndExpiry(t *testing.T) {
	loop, rec, _, now := newTestLoop(t)
	b, _ := LinuxCode(hid.KeyB)
	x, _ := LinuxCode(hid.KeyX)

	loop.Handle(RawKey{Code: x, Pressed: true})
	loop.Handle(RawKey{Code: x, Pressed: false})
	assert.Equal(t, []hid.Usage{hid.KeyX}, rec.Presses())

	loop.Handle(RawKey{Code: b, Pressed: true})
	assert.Equal(t, []hid.Usage{hid.KeyX}, rec.Presses())
	*now = 60 * time.Millisecond
	loop.Expire()
	assert.Equal(t, []hid.Usage{hid.KeyX, hid.KeyB}, rec.Presses())
}

func TestLoop_UnknownCodeForwardedRaw(t *testing.T) {
	loop, rec, raw, _ := newTestLoop(t)
	b, _ := LinuxCode(hid.KeyB)
	e, _ := LinuxCode(hid.KeyE)

	loop.Handle(RawKey{Code: b, Pressed: true})
	loop.Handle(RawKey{Code: e, Pressed: true})
	st, _ := loop.engine.Registry.State(1)
	require.True(t, st.Active)

	loop.Handle(RawKey{Code: 116, Pressed: true})
	loop.Handle(RawKey{Code: 116, Pressed: false})
	assert.Equal(t, []rawCall{{116, true}, {116, false}}, raw.calls)
	assert.False(t, loop.engine.Registry.AnyActive())
	assert.Equal(t, []hid.Usage{hid.KeyB, hid.KeyE, hid.Space}, rec.Presses())
}
