package docmap

import "go.uber.org/zap"

// ArrayIndexMode describes how index segments in set expressions are
// applied to lists.
type ArrayIndexMode int

const (
	// Additive always appends to the addressed list, ignoring the
	// literal index value. Writes never go out of bounds, but existing
	// elements cannot be overwritten.
	Additive ArrayIndexMode = iota

	// Explicit takes the index literally: an in-range index overwrites
	// that slot, index == length appends, and anything else fails the
	// write.
	Explicit
)

// String returns the mode name.
func (m ArrayIndexMode) String() string {
	if m == Explicit {
		return "explicit"
	}
	return "additive"
}

// Options holds the configuration for a Mapper. The zero value is not
// usable directly; start from DefaultOptions or use New with Option
// setters.
type Options struct {
	// SetNulls controls whether nil values are ever written. When
	// false, a nil write (including one produced by Map) is a no-op
	// and the destination key is not created.
	SetNulls bool

	// ArrayIndexMode selects the list write policy, see the mode
	// constants.
	ArrayIndexMode ArrayIndexMode

	// Logger receives debug-level notes about container
	// materialization. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns the default configuration: nulls are written
// and list indexes are additive.
func DefaultOptions() *Options {
	return &Options{
		SetNulls:       true,
		ArrayIndexMode: Additive,
		Logger:         zap.NewNop(),
	}
}

// Option mutates Options during construction.
type Option func(*Options)

// WithSetNulls controls whether nil values are written at all.
func WithSetNulls(enable bool) Option {
	return func(o *Options) {
		o.SetNulls = enable
	}
}

// WithArrayIndexMode selects the list index policy for writes.
func WithArrayIndexMode(mode ArrayIndexMode) Option {
	return func(o *Options) {
		o.ArrayIndexMode = mode
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Mapper reads and writes values on Documents using dot-notation
// expressions. Configuration is fixed at construction. A Mapper holds
// no document state and may be shared; concurrent use is safe as long
// as no two calls mutate the same Document at once.
type Mapper struct {
	setNulls bool
	mode     ArrayIndexMode
	index    indexStrategy
	log      *zap.Logger
}

// New creates a Mapper. Without options it writes nulls and treats
// list indexes additively, matching DefaultOptions.
func New(opts ...Option) *Mapper {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	m := &Mapper{
		setNulls: o.SetNulls,
		mode:     o.ArrayIndexMode,
		log:      o.Logger,
	}
	if o.ArrayIndexMode == Explicit {
		m.index = explicitIndex{}
	} else {
		m.index = additiveIndex{}
	}
	return m
}

// Mode returns the configured array index mode.
func (m *Mapper) Mode() ArrayIndexMode {
	return m.mode
}

// SetsNulls reports whether nil values are written.
func (m *Mapper) SetsNulls() bool {
	return m.setNulls
}

// Map copies the value addressed by sourceExpr in source to the
// position addressed by targetExpr in target. A nil source or target
// is a no-op, as is a nil resolved value when null writes are
// disabled. The value is transferred as-is, without conversion.
func (m *Mapper) Map(source *Document, sourceExpr string, target *Document, targetExpr string) error {
	if source == nil || target == nil {
		return nil
	}

	value, err := m.GetValue(source, sourceExpr)
	if err != nil {
		return err
	}
	if !m.setNulls && value == nil {
		return nil
	}
	return m.SetValue(target, targetExpr, value)
}
