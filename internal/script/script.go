// Package script parses and runs sequences of queue operations.
package script

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

var scriptErr = errs.Class("script")

type Kind string

const (
	Push   Kind = "push"
	Pop    Kind = "pop"
	Top    Kind = "top"
	Len    Kind = "len"
	Print  Kind = "print"
	Delete Kind = "delete"
	Insert Kind = "insert"
)

// Op is a single queue operation. Index is used by Delete and Insert, Value
// by Push and Insert.
type Op struct {
	Kind  Kind
	Index int
	Value string
}

func (o Op) String() string {
	switch o.Kind {
	case Push:
		return fmt.Sprintf("%s:%s", o.Kind, o.Value)
	case Delete:
		return fmt.Sprintf("%s:%d", o.Kind, o.Index)
	case Insert:
		return fmt.Sprintf("%s:%d:%s", o.Kind, o.Index, o.Value)
	default:
		return string(o.Kind)
	}
}

func (o Op) validate() error {
	switch o.Kind {
	case Push, Pop, Top, Len, Print, Delete, Insert:
		return nil
	default:
		return scriptErr.New("unknown operation %q", o.Kind)
	}
}

// Parse reads operations in their compact text form, one per argument:
//
//	push:V pop top len print delete:N insert:N:V
func Parse(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, arg := range args {
		op, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOne(arg string) (Op, error) {
	kind, rest, _ := strings.Cut(arg, ":")
	op := Op{Kind: Kind(kind)}

	switch op.Kind {
	case Push:
		op.Value = rest
	case Pop, Top, Len, Print:
		if rest != "" {
			return Op{}, scriptErr.New("%q takes no argument", kind)
		}
	case Delete:
		idx, err := strconv.Atoi(rest)
		if err != nil {
			return Op{}, scriptErr.New("bad index in %q: %w", arg, err)
		}
		op.Index = idx
	case Insert:
		idxStr, val, ok := strings.Cut(rest, ":")
		if !ok {
			return Op{}, scriptErr.New("%q needs an index and a value", arg)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return Op{}, scriptErr.New("bad index in %q: %w", arg, err)
		}
		op.Index, op.Value = idx, val
	default:
		return Op{}, scriptErr.New("unknown operation %q", kind)
	}

	return op, nil
}

// jsonOp keeps Index as a pointer so a missing key can be told apart from
// index 0.
type jsonOp struct {
	Kind  Kind   `json:"op"`
	Index *int   `json:"index"`
	Value string `json:"value"`
}

func (j jsonOp) op() (Op, error) {
	op := Op{Kind: j.Kind, Value: j.Value}
	if err := op.validate(); err != nil {
		return Op{}, err
	}

	switch op.Kind {
	case Delete, Insert:
		if j.Index == nil {
			return Op{}, scriptErr.New("%q needs an index", op.Kind)
		}
		op.Index = *j.Index
	default:
		if j.Index != nil {
			return Op{}, scriptErr.New("%q takes no index", op.Kind)
		}
	}

	return op, nil
}

// ParseJSON reads a JSON array of operations. Delete and insert must carry
// an explicit index.
func ParseJSON(r io.Reader) ([]Op, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	var decoded []jsonOp
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, scriptErr.New("could not decode operations: %w", err)
	}

	ops := make([]Op, 0, len(decoded))
	for i, j := range decoded {
		op, err := j.op()
		if err != nil {
			return nil, scriptErr.New("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}
