package composer

import "github.com/joeydtaylor/meditation/pkg/internal/types"

// WithLogger registers loggers for the composer.
func WithLogger(l ...types.Logger) types.Option[*Composer] {
	return func(c *Composer) {
		c.ConnectLogger(l...)
	}
}

// WithVoice attaches the voice synthesizer used for scripts.
func WithVoice(v types.VoiceSynthesizer) types.Option[*Composer] {
	return func(c *Composer) {
		c.voice = v
	}
}

// WithWriter attaches the session writer used by Generate.
func WithWriter(w types.SessionWriter) types.Option[*Composer] {
	return func(c *Composer) {
		c.writer = w
	}
}

// WithPublisher attaches the publisher used by Generate.
func WithPublisher(p types.Publisher) types.Option[*Composer] {
	return func(c *Composer) {
		c.publisher = p
	}
}

// WithMovement replaces the sweep applied to bed sounds.
func WithMovement(m types.Movement) types.Option[*Composer] {
	return func(c *Composer) {
		c.movement = m
	}
}

// WithBedMix sets the bed weight under a voice track.
func WithBedMix(alpha float64) types.Option[*Composer] {
	return func(c *Composer) {
		c.bedMix = alpha
	}
}

// WithSampleRate sets the session sample rate. It must match the synthesizer's.
func WithSampleRate(rate int) types.Option[*Composer] {
	return func(c *Composer) {
		if rate > 0 {
			c.sampleRate = rate
		}
	}
}

// WithSensor attaches sensors that observe session stages.
func WithSensor(sensor ...types.Sensor) types.Option[*Composer] {
	return func(c *Composer) {
		for _, s := range sensor {
			if s != nil {
				c.sensors = append(c.sensors, s)
			}
		}
	}
}
