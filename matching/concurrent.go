package matching

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// SolveConcurrent computes the same Matching as Solve with a pool of
// workers proposing in parallel.
//
// Concurrency model:
//   - Each reviewer's held proposer is guarded by its own mutex, so the
//     compare-and-replace step is atomic per reviewer.
//   - A free proposer is owned by exactly one worker at a time; ownership is
//     handed over through a channel, which also isolates cursor updates.
//   - The run ends when all n reviewers hold a proposer. At that point no
//     proposer can be free, so the channel is closed safely.
//
// workers ≤ 0 selects runtime.GOMAXPROCS(0). ctx only serves to stop the
// remaining workers once one of them fails; the result is complete or an
// error is returned.
//
// Errors: ErrInvalidInput, ErrInternalConsistency, or ctx.Err() when the
// caller cancels ctx first.
func SolveConcurrent(ctx context.Context, proposers, reviewers []PreferenceList, workers int) (Matching, error) {
	res, err := SolveConcurrentInstance(ctx, Instance{Proposers: proposers, Reviewers: reviewers}, workers)
	if err != nil {
		return nil, err
	}

	return res.Matching, nil
}

// SolveConcurrentInstance is SolveConcurrent returning a Result. Every
// proposer stops at the same partner whatever the interleaving, so
// Proposals equals the count reported by SolveInstance.
func SolveConcurrentInstance(ctx context.Context, in Instance, workers int) (Result, error) {
	proposers, reviewers := in.Proposers, in.Reviewers
	if err := Validate(proposers, reviewers); err != nil {
		return Result{}, err
	}
	n := len(proposers)
	if n == 0 {
		return Result{Matching: Matching{}}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	start := time.Now()
	s := newSharedState(proposers, reviewers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return s.work(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Matching: make(Matching, n)}
	for r, p := range s.holder {
		res.Matching[p] = r
	}
	// A cursor counts the proposals its proposer made.
	for _, c := range s.cursor {
		res.Proposals += c
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// sharedState is the concurrent counterpart of state.
type sharedState struct {
	n      int
	prefs  []PreferenceList
	rank   []int
	cursor []int // touched only by the worker owning the proposer
	holder []int // guarded by locks[r]
	locks  []sync.Mutex
	held   atomic.Int64 // reviewers holding a proposer
	free   chan int
	once   sync.Once
}

func newSharedState(proposers, reviewers []PreferenceList) *sharedState {
	n := len(proposers)
	s := &sharedState{
		n:      n,
		prefs:  proposers,
		rank:   buildRanks(reviewers),
		cursor: make([]int, n),
		holder: make([]int, n),
		locks:  make([]sync.Mutex, n),
		free:   make(chan int, n),
	}
	for i := 0; i < n; i++ {
		s.holder[i] = unmatched
		s.free <- i
	}

	return s
}

// work drains free proposers until the channel is closed or ctx is done.
func (s *sharedState) work(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-s.free:
			if !ok {
				return nil
			}
			if err := s.settle(p); err != nil {
				return err
			}
		}
	}
}

// settle keeps proposing on behalf of p until some reviewer holds it.
// A displaced proposer is handed back to the pool.
func (s *sharedState) settle(p int) error {
	for {
		if s.cursor[p] >= s.n {
			return fmt.Errorf("%w: proposer %d exhausted all %d reviewers",
				ErrInternalConsistency, p, s.n)
		}
		r := s.prefs[p][s.cursor[p]]
		s.cursor[p]++

		s.locks[r].Lock()
		held := s.holder[r]
		switch {
		case held == unmatched:
			s.holder[r] = p
			s.locks[r].Unlock()
			if s.held.Add(1) == int64(s.n) {
				s.once.Do(func() { close(s.free) })
			}
			return nil
		case s.rank[r*s.n+p] < s.rank[r*s.n+held]:
			s.holder[r] = p
			s.locks[r].Unlock()
			s.free <- held
			return nil
		default:
			s.locks[r].Unlock()
		}
	}
}
