package composer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joeydtaylor/meditation/pkg/internal/analysis"
	"github.com/joeydtaylor/meditation/pkg/internal/mixer"
	"github.com/joeydtaylor/meditation/pkg/internal/sensor"
	"github.com/joeydtaylor/meditation/pkg/internal/types"
	"github.com/joeydtaylor/meditation/pkg/logschema"
)

// Compose returns the normalized stereo mix for req. The result has exactly
// int(req.Duration*sampleRate) frames.
func (c *Composer) Compose(ctx context.Context, req Request) (types.Waveform, error) {
	if req.Duration <= 0 {
		return types.Waveform{}, fmt.Errorf("composer: duration must be positive, got %v", req.Duration)
	}
	if c.synth == nil {
		return types.Waveform{}, errors.New("composer: synthesizer is required")
	}
	if req.Script != "" && c.voice == nil {
		return types.Waveform{}, errors.New("composer: script given but no voice synthesizer configured")
	}
	start := time.Now()

	stage := c.beginStage(sensor.StageBed)
	bed, err := c.bed(ctx, req)
	if err != nil {
		return types.Waveform{}, c.failStage(sensor.StageBed, err)
	}
	c.endStage(sensor.StageBed, stage)

	mix := bed
	if req.Script != "" {
		if err := ctx.Err(); err != nil {
			return types.Waveform{}, err
		}
		stage = c.beginStage(sensor.StageVoice)
		voiceTrack, err := c.voice.Synthesize(ctx, req.Script)
		if err != nil {
			return types.Waveform{}, c.failStage(sensor.StageVoice, fmt.Errorf("composer: voice: %w", err))
		}
		voiceTrack = mixer.Fit(mixer.DuplicateToStereo(voiceTrack), bed.Len())
		mix, err = mixer.Blend(voiceTrack, c.bedMix, bed)
		if err != nil {
			return types.Waveform{}, c.failStage(sensor.StageVoice, fmt.Errorf("composer: voice mix: %w", err))
		}
		c.endStage(sensor.StageVoice, stage)
		c.NotifyLoggers(types.DebugLevel, "Compose: voice mixed", "component", c.componentMetadata, "bed_mix", c.bedMix)
	}

	stage = c.beginStage(sensor.StageNormalize)
	if !mixer.Normalize(mix) {
		c.NotifyLoggers(types.WarnLevel, "Compose: mix is silent, skipping normalization", "component", c.componentMetadata)
		for _, s := range c.sensors {
			s.InvokeOnSilentMix(c.componentMetadata)
		}
	}
	c.endStage(sensor.StageNormalize, stage)

	summary := analysis.Summarize(mix)
	c.NotifyLoggers(types.InfoLevel, "Compose: session mixed",
		"component", c.componentMetadata,
		"seconds", summary.Seconds,
		logschema.FieldFrames, summary.Frames,
		"peak", summary.Peak,
		"rms", summary.RMS,
		"dominant_frequency", summary.DominantFrequency,
		logschema.FieldElapsed, time.Since(start),
	)
	return mix, nil
}

// bed returns the ambient layer: the spatialized presets averaged, or the band tone in stereo.
func (c *Composer) bed(ctx context.Context, req Request) (types.Waveform, error) {
	n := int(req.Duration * float64(c.sampleRate))

	if len(req.Sounds) == 0 {
		tone, err := c.synth.Tone(req.Band, req.Duration)
		if err != nil {
			return types.Waveform{}, err
		}
		c.NotifyLoggers(types.DebugLevel, "Compose: tone bed", "component", c.componentMetadata, logschema.FieldBand, req.Band)
		return mixer.Fit(mixer.DuplicateToStereo(tone), n), nil
	}

	if c.renderer == nil {
		return types.Waveform{}, errors.New("composer: renderer is required for sounds")
	}
	bed := types.NewStereo(c.sampleRate, n)
	weight := 1 / float64(len(req.Sounds))
	for _, name := range req.Sounds {
		if err := ctx.Err(); err != nil {
			return types.Waveform{}, err
		}
		preset, err := c.synth.Preset(name)
		if err != nil {
			return types.Waveform{}, err
		}
		mono, err := c.synth.Special(name, req.Duration)
		if err != nil {
			return types.Waveform{}, err
		}
		movement := c.movement
		rendered, err := c.renderer.Render(ctx, mono, preset.Position, &movement)
		if err != nil {
			return types.Waveform{}, fmt.Errorf("composer: render %s: %w", name, err)
		}
		if err := mixer.AddScaled(bed, weight, mixer.Fit(mixer.DuplicateToStereo(rendered), n)); err != nil {
			return types.Waveform{}, fmt.Errorf("composer: mix %s: %w", name, err)
		}
		c.NotifyLoggers(types.DebugLevel, "Compose: sound placed", "component", c.componentMetadata, logschema.FieldSound, name, logschema.FieldPosition, preset.Position)
	}
	return bed, nil
}

// Generate composes req, writes it under name and publishes the result when a publisher is
// attached.
func (c *Composer) Generate(ctx context.Context, req Request, name string) (types.Session, error) {
	if c.writer == nil {
		return types.Session{}, errors.New("composer: writer is required")
	}
	id := uuid.New()

	wave, err := c.Compose(ctx, req)
	if err != nil {
		return types.Session{}, err
	}
	stage := c.beginStage(sensor.StageWrite)
	path, err := c.writer.Write(wave, name)
	if err != nil {
		return types.Session{}, c.failStage(sensor.StageWrite, err)
	}
	c.endStage(sensor.StageWrite, stage)
	for _, s := range c.sensors {
		s.InvokeOnSessionWritten(c.componentMetadata, path)
	}

	session := types.Session{
		ID:       id,
		Wave:     wave,
		Path:     path,
		Duration: req.Duration,
		Band:     req.Band,
		Sounds:   append([]string(nil), req.Sounds...),
		Voiced:   req.Script != "",
	}
	if c.publisher != nil {
		stage = c.beginStage(sensor.StagePublish)
		if err := c.publisher.Publish(ctx, session); err != nil {
			return session, c.failStage(sensor.StagePublish, err)
		}
		c.endStage(sensor.StagePublish, stage)
	}

	c.NotifyLoggers(types.InfoLevel, "Generate: session complete",
		"component", c.componentMetadata,
		logschema.FieldSessionID, id.String(),
		logschema.FieldPath, path,
	)
	return session, nil
}
