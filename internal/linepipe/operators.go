package linepipe

import "context"

// funcIter adapts a pull function to Iterator. Close closes the upstream.
type funcIter[T any] struct {
	pull     func(ctx context.Context) (T, bool, error)
	upstream interface{ Close() error }
}

func (it *funcIter[T]) Next(ctx context.Context) (T, bool, error) { return it.pull(ctx) }
func (it *funcIter[T]) Close() error                              { return it.upstream.Close() }

// derive builds a pipeline whose iterator pulls from p's through pull.
func derive[I, O any](p *Pipeline[I], pull func(src Iterator[I]) func(context.Context) (O, bool, error)) *Pipeline[O] {
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			src := p.create(ctx)
			return &funcIter[O]{pull: pull(src), upstream: src}
		},
	}
}

// Map applies fn to every value. The first error stops the pipeline.
func Map[I, O any](p *Pipeline[I], fn func(context.Context, I) (O, error)) *Pipeline[O] {
	return derive(p, func(src Iterator[I]) func(context.Context) (O, bool, error) {
		return func(ctx context.Context) (O, bool, error) {
			var zero O
			v, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}
			out, err := fn(ctx, v)
			if err != nil {
				return zero, false, err
			}
			return out, true, nil
		}
	})
}

// Filter drops values for which keep returns false.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return derive(p, func(src Iterator[T]) func(context.Context) (T, bool, error) {
		return func(ctx context.Context) (T, bool, error) {
			for {
				v, ok, err := src.Next(ctx)
				if err != nil || !ok || keep(v) {
					return v, ok, err
				}
			}
		}
	})
}
