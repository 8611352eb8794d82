package device

import (
	"fmt"

	"github.com/bendahl/uinput"
	"github.com/goCycleKeys/keybus"
)

// KeySender is the part of a uinput keyboard the output needs.
type KeySender interface {
	KeyDown(key int) error
	KeyUp(key int) error
}

// Output writes bubbled bus events to a virtual keyboard.
type Output struct {
	kb KeySender
}

// NewOutput wraps a virtual keyboard.
func NewOutput(kb KeySender) *Output {
	return &Output{kb: kb}
}

// CreateVirtualKeyboard opens /dev/uinput and registers a keyboard.
func CreateVirtualKeyboard(name string) (uinput.Keyboard, error) {
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	return kb, nil
}

// Send implements keybus.Output.
func (o *Output) Send(ev keybus.Event) error {
	code, ok := LinuxCode(ev.Usage)
	if !ok {
		return fmt.Errorf("no input code for %s", ev.Usage)
	}
	return o.SendRaw(code, ev.Pressed)
}

// SendRaw forwards a key code that has no usage mapping.
func (o *Output) SendRaw(code uint16, pressed bool) error {
	if pressed {
		return o.kb.KeyDown(int(code))
	}
	return o.kb.KeyUp(int(code))
}
