package runner

import (
	"context"
	"strings"
	"testing"

	"github.com/reltrack/reltrack/internal/graph"
)

func run(t *testing.T, script string) string {
	t.Helper()
	g := graph.New(graph.Config{InitialEntityCapacity: 4, InitialTypeCapacity: 4})
	var out strings.Builder
	err := Run(context.Background(), strings.NewReader(script), &out, Options{Graph: g})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestScenario1End2End(t *testing.T) {
	script := "addent \"alice\"\n" +
		"addent \"bob\"\n" +
		"addrel \"alice\" \"bob\" \"follows\"\n" +
		"report\n"
	want := `"follows" "bob" 1; ` + "\n"
	if got := run(t, script); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestMultipleReportsInOneSession(t *testing.T) {
	script := "addent \"a\"\n" +
		"addent \"b\"\n" +
		"report\n" +
		"addrel \"a\" \"b\" \"r\"\n" +
		"report\n"
	want := "none\n" + `"r" "b" 1; ` + "\n"
	if got := run(t, script); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEndTerminatesSessionEarly(t *testing.T) {
	script := "addent \"a\"\n" +
		"end\n" +
		"addent \"b\"\n" +
		"report\n"
	if got := run(t, script); got != "" {
		t.Errorf("output = %q, want empty: commands after end must not run", got)
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	script := "addent \"a\"\n" +
		"bogus line\n" +
		"addent \"a\n" +
		"addent \"b\"\n" +
		"addrel \"a\" \"b\" \"r\"\n" +
		"report\n"
	want := `"r" "b" 1; ` + "\n"
	if got := run(t, script); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEmptyInputProducesNoOutput(t *testing.T) {
	if got := run(t, ""); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}
