// SPDX-License-Identifier: MIT

package novelty

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsort/core"
)

// Sleep returns a sorted copy of s by simulating sleep sort on a discrete
// clock. The clock runs max(s)+1 ticks, which must not exceed
// Options.MaxAux.
//
// Errors: ErrNegativeInput; ErrRangeTooLarge.
func Sleep[T constraints.Integer](s []T, opts ...core.Option) ([]T, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	o := core.Resolve(opts...)
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}
	if hi >= uint64(o.MaxAux) {
		return nil, fmt.Errorf("%w: clock of %d ticks, limit %d", ErrRangeTooLarge, hi, o.MaxAux)
	}

	// wake[t] is the number of sleepers whose alarm rings at tick t.
	wake := make([]int, hi+1)
	for _, v := range s {
		wake[v]++
	}
	out := make([]T, 0, len(s))
	sr := core.NewSorter(out, core.Ascending[T], o)
	for tick := range wake {
		for ; wake[tick] > 0; wake[tick]-- {
			out = append(out, T(tick))
			sr.AddWrites(1)
		}
	}

	return out, nil
}

// SleepTimed sorts s with one goroutine per element, each sleeping v·unit
// before appending v to the output. The result holds the elements of s in
// wake-up order, which usually but not necessarily is ascending.
//
// If ctx is cancelled before every goroutine woke up, SleepTimed returns
// ctx's error and no slice.
//
// Errors: ErrNegativeInput; ErrInvalidUnit; ErrRangeTooLarge when v·unit
// overflows time.Duration; ctx.Err().
func SleepTimed[T constraints.Integer](ctx context.Context, s []T, unit time.Duration) ([]T, error) {
	if unit <= 0 {
		return nil, fmt.Errorf("%w: unit=%v", ErrInvalidUnit, unit)
	}
	if len(s) == 0 {
		return []T{}, nil
	}
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}
	if hi > uint64(math.MaxInt64/int64(unit)) {
		return nil, fmt.Errorf("%w: %d×%v overflows time.Duration", ErrRangeTooLarge, hi, unit)
	}

	var (
		mu  sync.Mutex
		out = make([]T, 0, len(s))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, v := range s {
		g.Go(func() error {
			timer := time.NewTimer(time.Duration(v) * unit)
			defer timer.Stop()
			select {
			case <-timer.C:
				mu.Lock()
				out = append(out, v)
				mu.Unlock()

				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// nonNegativeMax returns max(s) as uint64 or ErrNegativeInput.
func nonNegativeMax[T constraints.Integer](s []T) (uint64, error) {
	var hi uint64
	for i, v := range s {
		if v < 0 {
			return 0, fmt.Errorf("%w: s[%d]=%d", ErrNegativeInput, i, v)
		}
		hi = max(hi, uint64(v))
	}

	return hi, nil
}
