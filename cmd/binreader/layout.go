package main

import (
	"fmt"
	"strings"

	"github.com/tommy351/binreader"
	"github.com/tommy351/binreader/internal/convert"
)

const (
	opUint8   = "u8"
	opUint16  = "u16"
	opUint32  = "u32"
	opUint64  = "u64"
	opInt8    = "i8"
	opInt16   = "i16"
	opInt32   = "i32"
	opInt64   = "i64"
	opCString = "cstr"
	opBytes   = "bytes"
	opSkip    = "skip"
	opSeek    = "seek"
	opAlign   = "align"
	opLittle  = "le"
	opBig     = "be"
)

// nolint: gochecknoglobals
var argOps = map[string]bool{
	opBytes: true,
	opSkip:  true,
	opSeek:  true,
	opAlign: true,
}

type LayoutError struct {
	Step string
}

func (l LayoutError) Error() string {
	return fmt.Sprintf("invalid layout step %q", l.Step)
}

type Step struct {
	Op  string
	Arg int
}

func (s Step) String() string {
	if argOps[s.Op] {
		return fmt.Sprintf("%s:%d", s.Op, s.Arg)
	}

	return s.Op
}

// Field is a value decoded by a step.
type Field struct {
	Step   string
	Offset int
	Value  interface{}
}

func ParseLayout(s string) ([]Step, error) {
	var steps []Step

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)

		if part == "" {
			continue
		}

		op, arg := part, ""

		if i := strings.IndexByte(part, ':'); i >= 0 {
			op, arg = part[:i], part[i+1:]
		}

		step := Step{Op: op}

		switch {
		case argOps[op]:
			n, err := convert.Int(arg)

			if err != nil {
				return nil, LayoutError{Step: part}
			}

			step.Arg = n

		case arg != "":
			return nil, LayoutError{Step: part}

		default:
			switch op {
			case opUint8, opUint16, opUint32, opUint64,
				opInt8, opInt16, opInt32, opInt64,
				opCString, opLittle, opBig:
			default:
				return nil, LayoutError{Step: part}
			}
		}

		steps = append(steps, step)
	}

	return steps, nil
}

// RunLayout applies every step to r and prints the decoded fields.
func RunLayout(r *binreader.Reader, steps []Step, printer Printer) error {
	if err := printer.Start(); err != nil {
		return err
	}

	for _, step := range steps {
		offset := r.Position()
		value, err := runStep(r, step)

		if err != nil {
			return fmt.Errorf("failed to run step %s at offset %d: %w", step, offset, err)
		}

		if value == nil {
			continue
		}

		if err := printer.Field(&Field{
			Step:   step.String(),
			Offset: offset,
			Value:  value,
		}); err != nil {
			return err
		}
	}

	return printer.End()
}

// nolint: gocyclo
func runStep(r *binreader.Reader, step Step) (interface{}, error) {
	switch step.Op {
	case opUint8:
		return r.ReadUint8()
	case opUint16:
		return r.ReadUint16()
	case opUint32:
		return r.ReadUint32()
	case opUint64:
		return r.ReadUint64()
	case opInt8:
		return r.ReadInt8()
	case opInt16:
		return r.ReadInt16()
	case opInt32:
		return r.ReadInt32()
	case opInt64:
		return r.ReadInt64()
	case opCString:
		return r.ReadCString()
	case opBytes:
		return r.ReadBytes(step.Arg)
	case opSkip:
		r.Advance(step.Arg)
	case opSeek:
		r.Seek(step.Arg)
	case opAlign:
		return nil, r.Align(step.Arg)
	case opLittle:
		r.SetByteOrder(binreader.LittleEndian)
	case opBig:
		r.SetByteOrder(binreader.BigEndian)
	}

	return nil, nil
}
