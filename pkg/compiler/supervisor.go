package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorKind classifies a diagnostic by the pipeline stage that produced it.
type ErrorKind int

const (
	LexError ErrorKind = iota
	ParseError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex"
	case ParseError:
		return "parse"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ErrorSink collects diagnostics from the lexer and the parser. Both stop
// producing output once HasErrors reports true.
type ErrorSink interface {
	HasErrors() bool
	Report(kind ErrorKind, pos Position, msg string)
}

// Diagnostic is a single reported problem with its source span.
type Diagnostic struct {
	Kind    ErrorKind
	Pos     Position
	Message string
}

// Supervisor is the pipeline's error sink. It keeps the source text so it
// can print the offending line with a caret underline.
type Supervisor struct {
	source string
	errs   []Diagnostic
}

// NewSupervisor returns a sink for one run over the given source text.
func NewSupervisor(source string) *Supervisor {
	return &Supervisor{source: source}
}

// HasErrors reports whether any diagnostic has been collected.
func (s *Supervisor) HasErrors() bool {
	return len(s.errs) > 0
}

// Report records a diagnostic. Order of arrival is preserved.
func (s *Supervisor) Report(kind ErrorKind, pos Position, msg string) {
	s.errs = append(s.errs, Diagnostic{Kind: kind, Pos: pos, Message: msg})
}

// Errors returns the collected diagnostics in arrival order.
func (s *Supervisor) Errors() []Diagnostic {
	return s.errs
}

// Error makes the Supervisor usable as the pipeline's error value.
func (s *Supervisor) Error() string {
	msgs := make([]string, 0, len(s.errs))
	for _, d := range s.errs {
		msgs = append(msgs, fmt.Sprintf("%s error: %s", d.Kind, d.Message))
	}
	return strings.Join(msgs, "; ")
}

// lineSpan is the half-open byte range of one source line, newline excluded.
type lineSpan struct {
	start int
	end   int
}

func (s *Supervisor) lineSpans() []lineSpan {
	var spans []lineSpan
	start := 0
	for i := 0; i < len(s.source); i++ {
		if s.source[i] == '\n' {
			spans = append(spans, lineSpan{start: start, end: i})
			start = i + 1
		}
	}
	return append(spans, lineSpan{start: start, end: len(s.source)})
}

// Dump pretty-prints every collected diagnostic to w:
//
//	error: expected ';' after return statement's expression while parsing
//	 --> 3:8
//	  |
//	 3| return x
//	  |        ^
func (s *Supervisor) Dump(w io.Writer) {
	for _, d := range s.errs {
		s.printDiagnostic(w, d)
	}
}

func (s *Supervisor) printDiagnostic(w io.Writer, d Diagnostic) {
	headline := color.New(color.FgRed, color.Bold)
	message := color.New(color.Bold)

	headline.Fprint(w, "error")
	message.Fprintf(w, ": %s\n", d.Message)

	spans := s.lineSpans()
	lineIdx := 0
	for i, span := range spans {
		if d.Pos.Start >= span.start && d.Pos.Start <= span.end {
			lineIdx = i
			break
		}
	}
	span := spans[lineIdx]

	fmt.Fprintf(w, " --> %d:%d\n", lineIdx+1, d.Pos.Start-span.start+1)
	fmt.Fprintf(w, "  |\n")
	fmt.Fprintf(w, "%2d| %s\n", lineIdx+1, s.source[span.start:span.end])

	caretStart := d.Pos.Start - span.start
	caretLen := d.Pos.End - d.Pos.Start
	if caretLen < 1 {
		caretLen = 1
	}
	if caretStart+caretLen > span.end-span.start {
		caretLen = span.end - span.start - caretStart
		if caretLen < 1 {
			caretLen = 1
		}
	}
	fmt.Fprintf(w, "  | %s", strings.Repeat(" ", caretStart))
	headline.Fprint(w, strings.Repeat("^", caretLen))
	fmt.Fprintln(w)
}
