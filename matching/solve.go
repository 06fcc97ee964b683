package matching

import (
	"fmt"
	"time"
)

// Solve returns the proposer-optimal stable matching for the given
// preference tables.
//
// Contracts:
//   - len(proposers) == len(reviewers) == n, n ≥ 0.
//   - Every list is a permutation of [0,n) over the opposite group.
//
// The returned Matching is indexed by proposer and is a permutation of
// [0,n). Options only affect processing order, never the result.
//
// Errors: ErrInvalidInput (before any work), ErrInternalConsistency.
//
// Complexity: O(n²) time, O(n²) space for the reviewer rank tables.
func Solve(proposers, reviewers []PreferenceList, opts ...Option) (Matching, error) {
	res, err := solve(proposers, reviewers, opts)
	if err != nil {
		return nil, err
	}

	return res.Matching, nil
}

// SolveInstance is Solve over an Instance, returning the Matching together
// with the proposal count and the time spent in the proposal loop.
func SolveInstance(in Instance, opts ...Option) (Result, error) {
	return solve(in.Proposers, in.Reviewers, opts)
}

func solve(proposers, reviewers []PreferenceList, opts []Option) (Result, error) {
	// Stage 1: validate everything before building any state.
	if err := Validate(proposers, reviewers); err != nil {
		return Result{}, err
	}
	cfg := newConfig(opts...)
	n := len(proposers)
	if cfg.order != nil {
		if err := validateOrder(cfg.order, n); err != nil {
			return Result{}, err
		}
	}
	if n == 0 {
		return Result{Matching: Matching{}}, nil
	}

	// Stage 2: run deferred acceptance to its fixed point.
	start := time.Now()
	res, err := run(proposers, reviewers, cfg)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// run executes the proposal loop on already validated tables.
func run(proposers, reviewers []PreferenceList, cfg config) (Result, error) {
	var (
		s    = newState(proposers, reviewers)
		free = newWorkSet(s.n, cfg.discipline)
	)

	order := cfg.order
	if order == nil {
		order = make([]int, s.n)
		for i := range order {
			order[i] = i
		}
	}
	free.fill(order)

	for free.len() > 0 {
		p := free.pop()
		next, err := s.propose(p)
		if err != nil {
			return Result{}, err
		}
		if next != unmatched {
			free.push(next)
		}
	}

	m := make(Matching, s.n)
	for p, r := range s.partner {
		if r == unmatched {
			return Result{}, fmt.Errorf("%w: proposer %d left unmatched", ErrInternalConsistency, p)
		}
		m[p] = r
	}

	return Result{Matching: m, Proposals: s.proposals}, nil
}

// state is the working memory of one run.
type state struct {
	n         int
	prefs     []PreferenceList
	rank      []int // rank[r*n+p]: position of proposer p in reviewer r's list
	cursor    []int // next position to propose to, per proposer
	partner   []int // proposer → held-by reviewer, or unmatched
	holder    []int // reviewer → held proposer, or unmatched
	proposals int
}

func newState(proposers, reviewers []PreferenceList) *state {
	n := len(proposers)
	s := &state{
		n:       n,
		prefs:   proposers,
		rank:    buildRanks(reviewers),
		cursor:  make([]int, n),
		partner: make([]int, n),
		holder:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.partner[i] = unmatched
		s.holder[i] = unmatched
	}

	return s
}

// buildRanks inverts every reviewer list into a flat rank table so that
// preference comparisons are O(1).
func buildRanks(reviewers []PreferenceList) []int {
	n := len(reviewers)
	rank := make([]int, n*n)
	for r, list := range reviewers {
		for pos, p := range list {
			rank[r*n+p] = pos
		}
	}

	return rank
}

// prefers reports whether reviewer r ranks proposer a above proposer b.
func (s *state) prefers(r, a, b int) bool {
	return s.rank[r*s.n+a] < s.rank[r*s.n+b]
}

// propose lets free proposer p propose to the next reviewer on its list.
// The cursor advances regardless of the outcome. It returns the proposer that
// is free afterwards: p itself when rejected, the displaced holder, or
// unmatched when the reviewer was free.
func (s *state) propose(p int) (int, error) {
	if s.cursor[p] >= s.n {
		return unmatched, fmt.Errorf("%w: proposer %d exhausted all %d reviewers",
			ErrInternalConsistency, p, s.n)
	}
	r := s.prefs[p][s.cursor[p]]
	s.cursor[p]++
	s.proposals++

	held := s.holder[r]
	switch {
	case held == unmatched:
		s.holder[r] = p
		s.partner[p] = r
		return unmatched, nil
	case s.prefers(r, p, held):
		s.holder[r] = p
		s.partner[p] = r
		s.partner[held] = unmatched
		return held, nil
	default:
		return p, nil
	}
}

// workSet holds the free proposers. At most n are free at any time, so a
// fixed ring of size n serves both disciplines.
type workSet struct {
	buf        []int
	head, size int
	discipline Discipline
}

func newWorkSet(n int, d Discipline) *workSet {
	return &workSet{buf: make([]int, n), discipline: d}
}

func (w *workSet) len() int { return w.size }

// fill loads the initial order so that order[0] is served first under
// either discipline.
func (w *workSet) fill(order []int) {
	if w.discipline == Stack {
		for i := len(order) - 1; i >= 0; i-- {
			w.push(order[i])
		}
		return
	}
	for _, p := range order {
		w.push(p)
	}
}

func (w *workSet) push(p int) {
	w.buf[(w.head+w.size)%len(w.buf)] = p
	w.size++
}

func (w *workSet) pop() int {
	var p int
	if w.discipline == Stack {
		w.size--
		p = w.buf[(w.head+w.size)%len(w.buf)]
		return p
	}
	p = w.buf[w.head]
	w.head = (w.head + 1) % len(w.buf)
	w.size--

	return p
}
