package health

import (
	"math"

	"redgrid/internal/config"
	"redgrid/internal/logger"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of a Damage call.
type Outcome int

const (
	Ignored Outcome = iota // invulnerable or already game over
	Hurt
	Died
)

func (o Outcome) String() string {
	switch o {
	case Hurt:
		return "hurt"
	case Died:
		return "died"
	}
	return "ignored"
}

// Manager owns the player's lives and the invulnerability window. It is the
// only place lives change.
type Manager struct {
	Lives             int
	InvulnerableUntil float64
	HitAt             float64
	GameOver          bool
	GameOverAt        float64

	invulnerableTime float64
	blinkInterval    float64
	gameOverGrace    float64
	log              *logrus.Entry
}

// NewManager starts with a full set of lives.
func NewManager(cfg config.HealthConfig) *Manager {
	return &Manager{
		Lives:             cfg.Lives,
		InvulnerableUntil: math.Inf(-1),
		invulnerableTime:  cfg.InvulnerableTime,
		blinkInterval:     cfg.BlinkInterval,
		gameOverGrace:     cfg.GameOverGrace,
		log:               logger.For("health"),
	}
}

// Damage takes one life unless the player is invulnerable or the game is over.
func (m *Manager) Damage(now float64) Outcome {
	if m.GameOver || m.Invulnerable(now) {
		return Ignored
	}

	m.Lives--
	m.HitAt = now
	if m.Lives <= 0 {
		m.Lives = 0
		m.GameOver = true
		m.GameOverAt = now
		m.log.WithField("time", now).Info("Player died")
		return Died
	}

	m.InvulnerableUntil = now + m.invulnerableTime
	m.log.WithFields(logrus.Fields{"lives": m.Lives, "until": m.InvulnerableUntil}).Info("Player hurt")
	return Hurt
}

// Invulnerable reports whether damage is currently ignored.
func (m *Manager) Invulnerable(now float64) bool {
	return now < m.InvulnerableUntil
}

// Visible reports whether the player sprite is drawn this frame. It blinks
// while invulnerable, starting hidden.
func (m *Manager) Visible(now float64) bool {
	if !m.Invulnerable(now) || m.blinkInterval <= 0 {
		return true
	}
	phase := int(math.Floor((now - m.HitAt) / m.blinkInterval))
	return phase%2 == 1
}

// CanDismiss reports whether the game over screen accepts input yet.
func (m *Manager) CanDismiss(now float64) bool {
	return m.GameOver && now-m.GameOverAt >= m.gameOverGrace
}
