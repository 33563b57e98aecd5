package main

type Printer interface {
	Start() error
	End() error
	Field(field *Field) error
}
