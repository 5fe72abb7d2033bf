package composer

import (
	"time"
)

func (c *Composer) beginStage(stage string) time.Time {
	for _, s := range c.sensors {
		s.InvokeOnStageStart(c.componentMetadata, stage)
	}
	return time.Now()
}

func (c *Composer) endStage(stage string, started time.Time) {
	elapsed := time.Since(started)
	for _, s := range c.sensors {
		s.InvokeOnStageComplete(c.componentMetadata, stage, elapsed)
	}
}

// failStage reports err to the sensors and returns it unchanged.
func (c *Composer) failStage(stage string, err error) error {
	for _, s := range c.sensors {
		s.InvokeOnError(c.componentMetadata, stage, err)
	}
	return err
}
