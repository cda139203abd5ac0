package script

import (
	"context"
	"fmt"
	"io"

	"github.com/zeebo/errs"

	"github.com/vitalouivi/oop-exercise-05/internal/logging"
	"github.com/vitalouivi/oop-exercise-05/pkg/containers"
)

type Runner struct {
	Out io.Writer

	// KeepGoing makes Run execute every operation and report the combined
	// failures instead of stopping at the first one.
	KeepGoing bool
}

func (r Runner) Run(ctx context.Context, q *containers.Queue[string], ops []Op) error {
	log := logging.FromContext(ctx)

	var failures []error
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return errs.New("context finished: %w", err)
		}

		err := r.apply(q, op)
		if err == nil {
			log.Debug("applied operation",
				logging.Int("position", i),
				logging.String("op", op.String()),
				logging.Int("length", q.Length()),
			)
			continue
		}

		err = scriptErr.New("operation %d (%s): %w", i, op, err)
		log.Warn("operation failed", logging.Error(err))
		if !r.KeepGoing {
			return err
		}
		failures = append(failures, err)
	}

	return errs.Combine(failures...)
}

func (r Runner) apply(q *containers.Queue[string], op Op) error {
	switch op.Kind {
	case Push:
		q.Push(op.Value)
		return nil
	case Pop:
		return q.Pop()
	case Top:
		top, err := q.Top()
		if err != nil {
			return err
		}
		return r.println(*top)
	case Len:
		return r.println(q.Length())
	case Print:
		return r.println(q.String())
	case Delete:
		return q.DeleteIndex(op.Index)
	case Insert:
		return q.InsertIndex(op.Index, op.Value)
	default:
		return op.validate()
	}
}

func (r Runner) println(v any) error {
	if r.Out == nil {
		return nil
	}
	_, err := fmt.Fprintln(r.Out, v)
	return errs.Wrap(err)
}
