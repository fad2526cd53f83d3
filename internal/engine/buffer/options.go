package buffer

type options struct {
	capacity int
}

// Option is a functional option for configuring a GapBuffer.
type Option func(*options)

// WithCapacity sets the initial backing capacity. Values <= 0 select
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}
