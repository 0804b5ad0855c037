package source

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Kind identifies how an input argument should be turned into text.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindHTML Kind = "html"
)

// ErrUnsupportedInput is returned when an input matches neither recognized shape.
type ErrUnsupportedInput struct {
	Input string
}

func (e *ErrUnsupportedInput) Error() string {
	return fmt.Sprintf("unsupported input %q: provide a .pdf file, an .html file, or a URL", e.Input)
}

// Source turns a path or URL into the document's raw text.
type Source interface {
	Text(ctx context.Context, input string) (string, error)
}

// Detect classifies an input argument by suffix and scheme.
func Detect(input string) (Kind, error) {
	lower := strings.ToLower(input)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return KindPDF, nil
	case strings.HasSuffix(lower, ".html"), strings.HasPrefix(input, "http"):
		return KindHTML, nil
	default:
		return "", &ErrUnsupportedInput{Input: input}
	}
}

// For returns the source implementation for an input, classifying it first.
func For(input string, fetchTimeout time.Duration) (Source, Kind, error) {
	kind, err := Detect(input)
	if err != nil {
		return nil, "", err
	}
	switch kind {
	case KindPDF:
		return &PDFSource{}, kind, nil
	default:
		return NewHTMLSource(fetchTimeout), kind, nil
	}
}
