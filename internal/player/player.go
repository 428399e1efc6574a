// Package player simulates a media player and binds it to the overlay engines.
package player

import (
	"math"
	"time"

	"github.com/cristianoliveira/segbar/internal/ports"
)

// Player is a simulated media player clock.
type Player struct {
	current  float64
	duration float64
	rate     float64
	volume   float64
	muted    bool
	paused   bool
}

// New returns a player at time zero with normal speed and full volume.
func New(duration float64) *Player {
	return &Player{
		duration: math.Max(0, duration),
		rate:     1,
		volume:   1,
	}
}

// Advance moves the clock forward by d of wall time scaled by the playback rate.
func (p *Player) Advance(d time.Duration) {
	if p.paused {
		return
	}
	p.Seek(p.current + d.Seconds()*p.rate)
}

// Seek jumps to t, clamped to the media.
func (p *Player) Seek(t float64) {
	p.current = math.Max(0, math.Min(p.duration, t))
}

// CurrentTime returns the playback position in seconds.
func (p *Player) CurrentTime() float64 { return p.current }

// Duration returns the media duration in seconds.
func (p *Player) Duration() float64 { return p.duration }

// SetRate changes the playback rate. Non-positive rates are ignored.
func (p *Player) SetRate(rate float64) {
	if rate > 0 {
		p.rate = rate
	}
}

// SetVolume changes the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.volume = math.Max(0, math.Min(1, v))
}

// SetMuted mutes or unmutes the audio.
func (p *Player) SetMuted(muted bool) { p.muted = muted }

// Muted reports whether audio is muted.
func (p *Player) Muted() bool { return p.muted }

// TogglePause pauses or resumes playback.
func (p *Player) TogglePause() { p.paused = !p.paused }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// Ended reports whether playback reached the end.
func (p *Player) Ended() bool { return p.current >= p.duration }

// State returns a snapshot for the notice.
func (p *Player) State() ports.PlayerState {
	volume := p.volume
	if p.muted {
		volume = 0
	}
	return ports.PlayerState{
		CurrentTime:  p.current,
		PlaybackRate: p.rate,
		Volume:       volume,
	}
}
