package audio

import (
	"log/slog"
)

// DefaultBeeps maps cues to the number of terminal bells. Victory and draw
// share a sound.
var DefaultBeeps = map[Cue]int{
	CueClick:   1,
	CueVictory: 2,
	CueDraw:    2,
}

// Beeper plays cues on the terminal bell.
type Beeper struct {
	logger *slog.Logger
	beep   func() error
	beeps  map[Cue]int
}

func NewBeeper(logger *slog.Logger, beep func() error, beeps map[Cue]int) *Beeper {
	if beeps == nil {
		beeps = DefaultBeeps
	}

	return &Beeper{
		logger: logger.With("component", "beeper"),
		beep:   beep,
		beeps:  beeps,
	}
}

func (that *Beeper) Play(cue Cue) {
	log := that.logger.With("method", "Play", "cue", cue)

	count, ok := that.beeps[cue]
	if !ok {
		log.Debug("no sound for cue, skipping")
		return
	}

	for range count {
		if err := that.beep(); err != nil {
			log.Debug("failed to beep, skipping", "error", err)
			return
		}
	}
}

// Loop plays the cue once. A bell cannot loop, and cues without a bell
// mapping, such as the background, stay silent.
func (that *Beeper) Loop(cue Cue) {
	that.Play(cue)
}

// Stop has nothing to cancel: every bell has already rung when Play returns.
func (that *Beeper) Stop() {}
