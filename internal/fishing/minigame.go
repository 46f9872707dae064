// Package fishing implements the hook-timing minigame played before a fish can be dated.
//
// The game is advanced by explicit Tick calls; it never reads a clock.
package fishing

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Phase is the stage of one fishing attempt.
type Phase int

const (
	Casting Phase = iota
	Waiting
	Reeling
	Result
)

func (p Phase) String() string {
	switch p {
	case Casting:
		return "casting"
	case Waiting:
		return "waiting"
	case Reeling:
		return "reeling"
	default:
		return "result"
	}
}

// Timing of the phases.
const (
	CastDuration = 1500 * time.Millisecond
	MinWait      = time.Second
	MaxWait      = 3 * time.Second
	ReelTimeout  = 5 * time.Second
)

// Outcome is the final result of an attempt.
type Outcome struct {
	Caught bool
	Size   domain.FishSize
}

// Minigame is one fishing attempt. The zero value is not usable; call New.
type Minigame struct {
	phase Phase
	timer time.Duration
	wait  time.Duration

	cursor    float64 // 0..1 along the bar
	direction float64 // +1 or -1
	speed     float64 // bar lengths per second

	zoneStart float64
	zoneWidth float64

	outcome Outcome
}

// New starts an attempt against a fish of the given difficulty (0 easy, 1 hard).
// Harder fish have a narrower catch zone and a faster cursor.
func New(difficulty float64, rng *rand.Rand) *Minigame {
	difficulty = min(max(difficulty, 0), 1)
	width := 0.25 - 0.15*difficulty
	return &Minigame{
		phase:     Casting,
		wait:      MinWait + time.Duration(rng.Float64()*float64(MaxWait-MinWait)),
		direction: 1,
		speed:     0.5 + difficulty,
		zoneStart: rng.Float64() * (1 - width),
		zoneWidth: width,
	}
}

// Phase returns the current stage.
func (m *Minigame) Phase() Phase { return m.phase }

// Cursor returns the cursor position in 0..1.
func (m *Minigame) Cursor() float64 { return m.cursor }

// Zone returns the catch zone as start and width in 0..1.
func (m *Minigame) Zone() (start, width float64) { return m.zoneStart, m.zoneWidth }

// Outcome reports the result once the attempt is over.
func (m *Minigame) Outcome() (Outcome, bool) {
	return m.outcome, m.phase == Result
}

// Tick advances the game by dt.
func (m *Minigame) Tick(dt time.Duration) {
	if dt <= 0 || m.phase == Result {
		return
	}
	m.timer += dt

	switch m.phase {
	case Casting:
		if m.timer > CastDuration {
			m.enter(Waiting)
		}
	case Waiting:
		if m.timer > m.wait {
			m.enter(Reeling)
		}
	case Reeling:
		m.cursor += m.direction * m.speed * dt.Seconds()
		switch {
		case m.cursor >= 1:
			m.cursor, m.direction = 1, -1
		case m.cursor <= 0:
			m.cursor, m.direction = 0, 1
		}
		if m.timer > ReelTimeout {
			m.outcome = Outcome{}
			m.enter(Result)
		}
	}
}

// Hook is the player's strike. It only counts while reeling and reports whether it was taken.
func (m *Minigame) Hook() bool {
	if m.phase != Reeling {
		return false
	}

	if m.cursor >= m.zoneStart && m.cursor <= m.zoneStart+m.zoneWidth {
		half := m.zoneWidth / 2
		accuracy := 1 - math.Abs(m.cursor-(m.zoneStart+half))/half
		m.outcome = Outcome{Caught: true, Size: sizeFor(accuracy)}
	} else {
		m.outcome = Outcome{}
	}
	m.enter(Result)
	return true
}

func (m *Minigame) enter(p Phase) {
	m.phase = p
	m.timer = 0
}

func sizeFor(accuracy float64) domain.FishSize {
	switch {
	case accuracy > 0.8:
		return domain.SizeLarge
	case accuracy > 0.4:
		return domain.SizeMedium
	default:
		return domain.SizeSmall
	}
}

// Bar draws the catch bar: '#' for the zone, '|' for the cursor, '-' elsewhere.
func (m *Minigame) Bar(width int) string {
	inner := width - 2
	if inner < 2 {
		return "[]"
	}
	zs := int(m.zoneStart * float64(inner))
	ze := int((m.zoneStart + m.zoneWidth) * float64(inner))
	cur := int(m.cursor * float64(inner-1))

	var sb strings.Builder
	sb.WriteByte('[')
	for i := range inner {
		switch {
		case i == cur:
			sb.WriteByte('|')
		case i >= zs && i <= ze:
			sb.WriteByte('#')
		default:
			sb.WriteByte('-')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
