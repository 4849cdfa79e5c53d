// Package audio provides the sound cues played by a game session.
package audio

// Cue names a sound the session asks for.
type Cue string

const (
	CueClick      Cue = "click"
	CueVictory    Cue = "victory"
	CueDraw       Cue = "draw"
	CueBackground Cue = "background"
)

// Player plays cues. Implementations must never fail the caller: a cue that
// cannot be played is skipped.
type Player interface {
	Play(cue Cue)
	Loop(cue Cue)
	Stop()
}

type nopPlayer struct{}

// NewNop returns a Player that plays nothing.
func NewNop() Player {
	return nopPlayer{}
}

func (nopPlayer) Play(Cue) {}

func (nopPlayer) Loop(Cue) {}

func (nopPlayer) Stop() {}
