package tek

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagnosticSinkReportOrderIsStable(t *testing.T) {
	sink := newDiagnosticSink(SourceLinter)
	sink.report(ERROR, "first", Span{Position{0, 0}, Position{0, 1}})
	sink.report(WARNING, "second", Span{Position{1, 0}, Position{1, 1}},
		DiagnosticInfo{Message: "related", Span: Span{Position{0, 0}, Position{0, 1}}})

	want := []Diagnostic{
		{Level: ERROR, Source: SourceLinter, Message: "first", Span: Span{Position{0, 0}, Position{0, 1}}},
		{
			Level: WARNING, Source: SourceLinter, Message: "second", Span: Span{Position{1, 0}, Position{1, 1}},
			Info: []DiagnosticInfo{{Message: "related", Span: Span{Position{0, 0}, Position{0, 1}}}},
		},
	}

	if diff := cmp.Diff(want, sink.diags); diff != "" {
		t.Errorf("diagnostic sink contents mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileFrontEndDiagnosticsAreDeterministic(t *testing.T) {
	src := "return 1\n"
	first := CompileFrontEnd(src, DefaultRuleSet())
	second := CompileFrontEnd(src, DefaultRuleSet())

	if diff := cmp.Diff(first.Diagnostics, second.Diagnostics); diff != "" {
		t.Errorf("compiling the same source twice must be deterministic (-first +second):\n%s", diff)
	}
}
