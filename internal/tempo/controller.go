package tempo

import "math"

type Mode uint8

const (
	// Multiplicative scales the base speed by an accuracy multiplier
	Multiplicative Mode = iota
	// Additive subtracts an accumulated miss penalty from the base speed
	Additive
)

// FloorSpeed is used when a config leaves MinSpeed unset
const FloorSpeed = 0.1

type Config struct {
	Mode     Mode
	MinSpeed float64
	MaxSpeed float64 // 0 leaves the speed unbounded above

	// Multiplicative
	Ceiling          float64 // cap on the accuracy multiplier, 0 for none
	Recovery         float64 // applied on every hit
	Slowdown         float64 // applied once MissesToSlowDown misses in a row
	MissesToSlowDown int

	// Additive
	PenaltyStep  float64
	RecoveryStep float64
}

var (
	DrumsConfig = Config{
		Mode:         Additive,
		MinSpeed:     0.5,
		PenaltyStep:  0.1,
		RecoveryStep: 0.01,
	}
	PianoConfig = Config{
		Mode:             Multiplicative,
		MinSpeed:         0.5,
		Ceiling:          1.0,
		Recovery:         1.02,
		Slowdown:         0.9,
		MissesToSlowDown: 2,
	}
)

// Controller owns the playback speed. It is not safe for concurrent use.
type Controller struct {
	cfg      Config
	schedule Schedule

	multiplier  float64
	penalty     float64
	consecutive int // misses in a row
}

func New(cfg Config, schedule Schedule) *Controller {
	if schedule == nil {
		schedule = Steady
	}
	if cfg.MinSpeed <= 0 {
		cfg.MinSpeed = FloorSpeed
	}
	c := &Controller{cfg: cfg, schedule: schedule}
	c.Reset()
	return c
}

func (c *Controller) Reset() {
	c.multiplier = 1
	c.penalty = 0
	c.consecutive = 0
}

func (c *Controller) Hit() {
	c.consecutive = 0
	switch c.cfg.Mode {
	case Additive:
		c.penalty = math.Max(0, c.penalty-c.cfg.RecoveryStep)
	default:
		c.multiplier *= c.cfg.Recovery
		if c.cfg.Ceiling > 0 && c.multiplier > c.cfg.Ceiling {
			c.multiplier = c.cfg.Ceiling
		}
	}
}

func (c *Controller) Miss() {
	switch c.cfg.Mode {
	case Additive:
		c.penalty += c.cfg.PenaltyStep
	default:
		c.consecutive++
		if c.consecutive >= c.cfg.MissesToSlowDown {
			c.multiplier = math.Max(c.multiplier*c.cfg.Slowdown, c.cfg.MinSpeed)
			c.consecutive = 0
		}
	}
}

// Multiplier is the accuracy axis alone, 1 for additive controllers
func (c *Controller) Multiplier() float64 {
	return c.multiplier
}

func (c *Controller) Penalty() float64 {
	return c.penalty
}

func (c *Controller) ConsecutiveMisses() int {
	return c.consecutive
}

func (c *Controller) Speed(p Progress) float64 {
	base := c.schedule.Base(p)
	var speed float64
	if c.cfg.Mode == Additive {
		speed = base - c.penalty
	} else {
		speed = base * c.multiplier
	}
	if speed < c.cfg.MinSpeed {
		speed = c.cfg.MinSpeed
	}
	if c.cfg.MaxSpeed > 0 && speed > c.cfg.MaxSpeed {
		speed = c.cfg.MaxSpeed
	}
	return speed
}

// Interval is the gap between two beats at the current speed
func (c *Controller) Interval(base float64, p Progress) float64 {
	return base / c.Speed(p)
}
