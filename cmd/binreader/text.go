package main

import (
	"fmt"
	"io"

	"github.com/tommy351/binreader/internal/convert"
)

// TextPrinter prints one field per line: offset, step and value.
type TextPrinter struct {
	writer io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{
		writer: w,
	}
}

func (t *TextPrinter) Start() error {
	return nil
}

func (t *TextPrinter) End() error {
	return nil
}

func (t *TextPrinter) Field(field *Field) error {
	value, err := convert.String(field.Value)

	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(t.writer, "%08x\t%s\t%s\n", field.Offset, field.Step, value)
	return err
}
