package recipe

type config struct {
	mirrored bool
	fn       Function
	observer Observer
}

// Option configures a template at construction time.
type Option func(*config)

// WithMirrored makes a shaped template also match its horizontal mirror image.
// Shapeless templates ignore it.
func WithMirrored() Option {
	return func(c *config) {
		c.mirrored = true
	}
}

// WithFunction sets the function computing the craft output.
func WithFunction(fn Function) Option {
	return func(c *config) {
		c.fn = fn
	}
}

// WithObserver sets the hook notified of template construction and resolved outputs.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

func newConfig(opts []Option) config {
	c := config{observer: nopObserver{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
