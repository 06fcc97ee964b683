package matching

// Discipline selects how the working set of free proposers is consumed.
type Discipline int

const (
	// Stack pops the most recently freed proposer first (LIFO). Default.
	Stack Discipline = iota

	// Queue serves free proposers in arrival order (FIFO).
	Queue
)

// Option customizes a single Solve call.
// Options are applied in order; later options override earlier ones.
type Option func(*config)

// config is resolved per call and never shared.
type config struct {
	order      []int
	discipline Discipline
}

// WithOrder sets the initial order in which free proposers enter the
// working set. order must be a permutation of [0,n); Solve rejects it with
// ErrInvalidInput otherwise. The resulting Matching does not depend on it.
func WithOrder(order []int) Option {
	cp := append([]int(nil), order...)
	return func(c *config) {
		c.order = cp
	}
}

// WithQueue makes the working set FIFO.
func WithQueue() Option {
	return func(c *config) { c.discipline = Queue }
}

// WithStack makes the working set LIFO (the default).
func WithStack() Option {
	return func(c *config) { c.discipline = Stack }
}

// WithDiscipline sets the working-set discipline explicitly.
// Panics on an unknown value: option constructors fail fast, algorithms never panic.
func WithDiscipline(d Discipline) Option {
	if d != Stack && d != Queue {
		panic("matching: WithDiscipline(unknown)")
	}
	return func(c *config) { c.discipline = d }
}

func newConfig(opts ...Option) config {
	cfg := config{discipline: Stack}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
