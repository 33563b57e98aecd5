package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type JSONPrinter struct {
	writer io.Writer
	index  int
}

type jsonField struct {
	Step   string      `json:"step"`
	Offset int         `json:"offset"`
	Value  interface{} `json:"value"`
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{
		writer: w,
	}
}

func (j *JSONPrinter) print(args ...interface{}) error {
	_, err := fmt.Fprint(j.writer, args...)
	return err
}

func (j *JSONPrinter) Start() error {
	return j.print("[")
}

func (j *JSONPrinter) End() error {
	return j.print("]")
}

func (j *JSONPrinter) Field(field *Field) error {
	if j.index > 0 {
		if err := j.print(","); err != nil {
			return err
		}
	}

	value := field.Value

	// Byte ranges are printed as arrays of numbers instead of base64.
	if buf, ok := value.([]byte); ok {
		ints := make([]int, len(buf))

		for i, b := range buf {
			ints[i] = int(b)
		}

		value = ints
	}

	buf, err := json.Marshal(jsonField{
		Step:   field.Step,
		Offset: field.Offset,
		Value:  value,
	})

	if err != nil {
		return err
	}

	if _, err := j.writer.Write(buf); err != nil {
		return err
	}

	j.index++
	return nil
}
