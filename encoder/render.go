package encoder

import "github.com/goCycleKeys/hid"

// Renderer plays key events against the layout table and keeps the text a
// host would show. It is how tests and the simulator read output back.
type Renderer struct {
	text    []rune
	held    map[hid.Usage]bool
	Unknown int // taps the layout could not render
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{held: make(map[hid.Usage]bool)}
}

// Apply feeds one key transition.
func (r *Renderer) Apply(u hid.Usage, pressed bool) {
	if u.IsModifier() {
		r.held[u] = pressed
		return
	}
	if !pressed {
		return
	}
	switch u {
	case hid.Backspace:
		if len(r.text) > 0 {
			r.text = r.text[:len(r.text)-1]
		}
		return
	case hid.Enter:
		r.text = append(r.text, '\n')
		return
	}
	in := Instruction{Modifier: r.modifier(), Base: u}
	if ch, ok := Decode(in); ok {
		r.text = append(r.text, ch)
		return
	}
	if in.Modifier == hid.LeftShift && u >= hid.KeyA && u <= hid.KeyZ {
		r.text = append(r.text, rune('A'+(u-hid.KeyA)))
		return
	}
	r.Unknown++
}

func (r *Renderer) modifier() hid.Usage {
	switch {
	case r.held[hid.RightAlt]:
		return hid.RightAlt
	case r.held[hid.LeftShift], r.held[hid.RightShift]:
		return hid.LeftShift
	}
	return hid.None
}

// String returns the rendered text.
func (r *Renderer) String() string {
	return string(r.text)
}

// Reset clears the text and the held modifiers.
func (r *Renderer) Reset() {
	r.text = r.text[:0]
	clear(r.held)
	r.Unknown = 0
}
