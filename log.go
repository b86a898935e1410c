package tek

import "github.com/juju/loggo"

// Package loggers, one per pipeline stage, declared the way the teacher
// repo's indirect loggo dependency is conventionally wired up: a single
// package-scope logger per concern, used only for TRACE/DEBUG-level
// internals. Nothing here ever substitutes for a Diagnostic — these lines
// are invisible unless a caller turns loggo's default config up.
var (
	tokenizerLog = loggo.GetLogger("tek.tokenizer")
	parserLog    = loggo.GetLogger("tek.parser")
	linterLog    = loggo.GetLogger("tek.linter")
)
