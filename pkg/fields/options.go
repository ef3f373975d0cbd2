package fields

import "time"

// Option customises a descriptor at construction time. Options that do not
// apply to a kind are ignored by its constructor.
type Option func(*config)

type config struct {
	allowNull bool
	hints     Fragment
	def       Default
	maxLength *int
	minLength *int
	max       *float64
	min       *float64
	latest    *time.Time
	earliest  *time.Time
	strict    bool
	plain     bool
}

func newConfig(options []Option) config {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// AllowNull accepts null/unset values without further checks.
func AllowNull() Option {
	return func(c *config) {
		c.allowNull = true
	}
}

// WithDefault declares a concrete default value.
func WithDefault(v any) Option {
	return func(c *config) {
		c.def = Value(v)
	}
}

// WithDefaultFunc declares a deferred default. Scalar descriptors call fn once
// at construction; List and Dict call it for every Default.
func WithDefaultFunc(fn func() any) Option {
	return func(c *config) {
		c.def = Producer(fn)
	}
}

// Hints merges schema overrides into the descriptor's fragment. Later calls
// win on key collisions.
func Hints(hints Fragment) Option {
	return func(c *config) {
		if len(hints) == 0 {
			return
		}
		if c.hints == nil {
			c.hints = make(Fragment, len(hints))
		}
		for key, value := range hints.Clone() {
			c.hints[key] = value
		}
	}
}

// MaxLength bounds the rune length of Text values.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = &n
	}
}

// MinLength sets the minimum rune length of non-empty Text values.
func MinLength(n int) Option {
	return func(c *config) {
		c.minLength = &n
	}
}

// Max bounds Number values from above.
func Max(n float64) Option {
	return func(c *config) {
		c.max = &n
	}
}

// Min bounds non-zero Number values from below.
func Min(n float64) Option {
	return func(c *config) {
		c.min = &n
	}
}

// Latest rejects Timestamp values after t.
func Latest(t time.Time) Option {
	return func(c *config) {
		c.latest = &t
	}
}

// Earliest rejects non-zero Timestamp values before t.
func Earliest(t time.Time) Option {
	return func(c *config) {
		c.earliest = &t
	}
}

// Strict makes a Dict reject keys that are not declared as components.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// PlainText makes a Text reject values carrying HTML markup.
func PlainText() Option {
	return func(c *config) {
		c.plain = true
	}
}
