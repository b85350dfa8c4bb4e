package list

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type (
	flow[I, O any] struct {
		inCh        chan listItem[I]
		outCh       chan listItem[O]
		errCh       chan error
		closeCh     chan struct{}
		closeOnce   sync.Once
		mapper      Mapper[I, O]
		concurrency int
		tasks       sync.WaitGroup
	}

	listItem[V any] struct {
		idx   int
		value V
	}

	flowConfig[R any] struct {
		concurrency         int
		initialReducerValue R
	}

	// Option configures MapReduce
	Option[R any] func(fc *flowConfig[R])

	Mapper[I, O any]  func(int, I) (O, error)
	Reducer[R, O any] func(R, int, O) (R, error)
)

func newFlow[I, O any](c int, m Mapper[I, O]) *flow[I, O] {
	return &flow[I, O]{
		inCh:        make(chan listItem[I]),
		outCh:       make(chan listItem[O]),
		errCh:       make(chan error, c),
		closeCh:     make(chan struct{}),
		mapper:      m,
		concurrency: c,
	}
}

func (f *flow[I, O]) start(ctx context.Context) {
	for i := 0; i < f.concurrency; i++ {
		f.tasks.Add(1)

		go func() {
			defer f.tasks.Done()
			for {
				select {
				case item, ok := <-f.inCh:
					if !ok {
						return
					}
					result, err := f.mapper(item.idx, item.value)
					if err != nil {
						if errors.Is(err, ErrSkip) {
							continue
						}

						f.errCh <- err
						return
					}

					select {
					case f.outCh <- listItem[O]{idx: item.idx, value: result}:
					case <-f.closeCh:
						return
					case <-ctx.Done():
						return
					}
				case <-f.closeCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		f.tasks.Wait()
		close(f.outCh)
	}()
}

// stop is safe to call from both the feeder and the reducer
func (f *flow[I, O]) stop() {
	f.closeOnce.Do(func() {
		close(f.closeCh)
	})
}

func feed[I, O any](ctx context.Context, in []I, f *flow[I, O]) {
	defer close(f.inCh)
	for i, v := range in {
		select {
		case f.inCh <- listItem[I]{idx: i, value: v}:
			continue
		case <-f.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func WithInitialValue[R any](r R) Option[R] {
	return func(fc *flowConfig[R]) {
		fc.initialReducerValue = r
	}
}

func WithConcurrency[R any](c int) Option[R] {
	return func(fc *flowConfig[R]) {
		fc.concurrency = c
	}
}

// MapReduce maps every item of in on a pool of workers and folds the
// results in arrival order, which is not the order of in. The first
// mapper or reducer error, or the cancellation of ctx, stops the flow
// and is returned together with the initial value.
func MapReduce[I, O, R any](
	ctx context.Context,
	in []I,
	mapper Mapper[I, O],
	reducer Reducer[R, O],
	options ...Option[R],
) (R, error) {
	cfg := flowConfig[R]{concurrency: 1, initialReducerValue: zero[R]()}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = 1
	}

	f := newFlow(cfg.concurrency, mapper)
	defer f.stop()
	f.start(ctx)

	go feed(ctx, in, f)

	acc, err := reduce(ctx, f, reducer, cfg.initialReducerValue)
	if err != nil {
		return cfg.initialReducerValue, err
	}

	return acc, nil
}

func reduce[R, O, I any](
	ctx context.Context,
	f *flow[I, O],
	r Reducer[R, O],
	initialValue R,
) (R, error) {
	acc := initialValue
	for {
		select {
		case item, ok := <-f.outCh:
			if !ok {
				return finish(ctx, f, acc)
			}
			var err error
			acc, err = r(acc, item.idx, item.value)
			if err != nil {
				f.stop()
				return acc, err
			}
		case <-ctx.Done():
			f.stop()
			return acc, ctx.Err()
		case err := <-f.errCh:
			f.stop()
			return acc, err
		}
	}
}

// finish runs once every worker is gone. Workers also leave on a mapper
// error or on cancellation, so a closed output alone is not success.
func finish[R, O, I any](ctx context.Context, f *flow[I, O], acc R) (R, error) {
	select {
	case err := <-f.errCh:
		return acc, err
	default:
	}

	if err := ctx.Err(); err != nil {
		return acc, err
	}

	return acc, nil
}

func zero[T any]() T {
	var z T
	return z
}
