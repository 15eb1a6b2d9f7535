package runner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Oscillator produces a smooth vertical offset swinging between -amplitude
// and +amplitude. Each half swing is one eased tween.
type Oscillator struct {
	amplitude float32
	halfSwing float32 // Ticks from one extreme to the other
	target    float32
	tween     *gween.Tween
	offset    float32
}

// NewOscillator starts at offset zero heading towards the upper (negative)
// extreme when up is set, otherwise towards the lower one.
func NewOscillator(amplitude float64, period int, up bool) *Oscillator {
	o := &Oscillator{
		amplitude: float32(amplitude),
		halfSwing: float32(period) / 2,
	}
	o.target = o.amplitude
	if up {
		o.target = -o.amplitude
	}
	// The first leg only covers half the distance.
	o.tween = gween.New(0, o.target, o.halfSwing/2, ease.InOutSine)
	return o
}

// Update advances the oscillation by one tick and returns the new offset.
func (o *Oscillator) Update() float64 {
	if o.amplitude == 0 || o.halfSwing <= 0 {
		return 0
	}
	current, finished := o.tween.Update(1)
	o.offset = current
	if finished {
		o.offset = o.target
		o.target = -o.target
		o.tween = gween.New(o.offset, o.target, o.halfSwing, ease.InOutSine)
	}
	return float64(o.offset)
}

// Offset returns the current offset without advancing.
func (o *Oscillator) Offset() float64 {
	return float64(o.offset)
}

// Amplitude returns the maximum distance from the centre.
func (o *Oscillator) Amplitude() float64 {
	return float64(o.amplitude)
}
