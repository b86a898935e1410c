package tek

import "fmt"

// Level is a diagnostic's severity.
type Level int

const (
	ERROR Level = iota
	WARNING
	INFO
)

func (l Level) String() string {
	switch l {
	case ERROR:
		return "error"
	case WARNING:
		return "warning"
	case INFO:
		return "info"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Source identifies which pipeline stage produced a Diagnostic.
type Source string

const (
	SourceTokenizer Source = "tokenizer"
	SourceParser    Source = "parser"
	SourceLinter    Source = "linter"
)

// DiagnosticInfo is a secondary annotation attached to a Diagnostic,
// pointing at a related span with its own short message (e.g. "class
// declared here" pointing back at the enclosing class).
type DiagnosticInfo struct {
	Message string
	Span    Span
}

// Diagnostic is the stable, append-only record every stage emits. It is
// plain data — never a Go error — so downstream stages and callers can
// freely inspect, filter, and render it without unwrapping anything.
type Diagnostic struct {
	Level   Level
	Source  Source
	Message string
	Span    Span
	Info    []DiagnosticInfo
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s at %s", d.Level, d.Source, d.Message, d.Span)
}

// diagnosticSink accumulates diagnostics in pipeline order. Each stage
// owns one and returns its contents by value; nothing downstream retains
// a reference into another stage's sink.
type diagnosticSink struct {
	source Source
	diags  []Diagnostic
}

func newDiagnosticSink(source Source) *diagnosticSink {
	return &diagnosticSink{source: source}
}

func (s *diagnosticSink) report(level Level, message string, span Span, info ...DiagnosticInfo) {
	s.diags = append(s.diags, Diagnostic{
		Level:   level,
		Source:  s.source,
		Message: message,
		Span:    span,
		Info:    info,
	})
}

func (s *diagnosticSink) errorf(span Span, format string, args ...any) {
	s.report(ERROR, fmt.Sprintf(format, args...), span)
}
