package device

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/goCycleKeys/keymaps"
	"github.com/goCycleKeys/logging"
	evdev "github.com/gvalkov/golang-evdev"
)

// InputDevice represents a physical input device
type InputDevice struct {
	device       *evdev.InputDevice
	name         string
	path         string
	keyboardType int
}

func (d *InputDevice) Name() string      { return d.name }
func (d *InputDevice) Path() string      { return d.path }
func (d *InputDevice) KeyboardType() int { return d.keyboardType }

// FindInputDevices locates the wanted keyboard devices
func FindInputDevices(wantedDevs []string) ([]*InputDevice, error) {
	var devices []*InputDevice

	devFiles, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}

		matched := false
		for _, wanted := range wantedDevs {
			if dev.Name == wanted {
				devices = append(devices, &InputDevice{
					device:       dev,
					name:         dev.Name,
					path:         path,
					keyboardType: keymaps.GetKeyboardType(dev.Name),
				})
				matched = true
				break
			}
		}
		if !matched {
			dev.File.Close()
		}
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("no suitable input devices found")
	}
	return devices, nil
}

// Grab takes exclusive access so the host only sees our output.
func (d *InputDevice) Grab() error {
	return d.device.Grab()
}

// Close releases the grab and closes the device file.
func (d *InputDevice) Close() error {
	_ = d.device.Release()
	return d.device.File.Close()
}

// Read forwards key transitions from the device until ctx is done or the
// device fails. Repeats and non-key events are dropped.
func (d *InputDevice) Read(ctx context.Context, source int, out chan<- RawKey, logger logging.Logger) {
	for {
		event, err := d.device.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("error reading device", "device", d.name, "err", err)
			return
		}
		if event.Type != EvKey || event.Value == KeyValueRepeat {
			continue
		}
		select {
		case out <- RawKey{Source: source, Code: event.Code, Pressed: event.Value == KeyValueDown}:
		case <-ctx.Done():
			return
		}
	}
}
