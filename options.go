package machina

import "github.com/plan-systems/klog"

// DefaultVerbosity is the klog verbosity at which machines log mutations and
// transitions unless WithVerbosity says otherwise.
const DefaultVerbosity klog.Level = 4

type config struct {
	name      string
	verbosity klog.Level
}

// Option configures a Machine or a Moore machine.
type Option func(*config)

// WithName sets the name used to prefix the machine's log lines.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithVerbosity sets the klog verbosity of the machine's log lines.
func WithVerbosity(level klog.Level) Option {
	return func(c *config) {
		c.verbosity = level
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		name:      "machina",
		verbosity: DefaultVerbosity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) logf(format string, args ...any) {
	klog.V(c.verbosity).Infof("%s: "+format, append([]any{c.name}, args...)...)
}
