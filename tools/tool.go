package tools

import "context"

// Tool is an ITool with typed input and output
type Tool[I any, O any] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}
