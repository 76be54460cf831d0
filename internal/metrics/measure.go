package metrics

import "context"

type Measurer interface {
	MeasureOperation(ctx context.Context, name string, op func(context.Context) error, tags ...Tag) error
}

// Measure times op through m and passes its result and error through unchanged.
func Measure[T any](ctx context.Context, m Measurer, name string, op func(context.Context) (T, error), tags ...Tag) (T, error) {
	var out T
	err := m.MeasureOperation(ctx, name, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}, tags...)
	return out, err
}
