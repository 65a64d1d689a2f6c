package automata

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteReport(t *testing.T) {
	tc := &TestCase{
		ID: 1,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
	}
	d, err := tc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var sb strings.Builder
	if err := WriteReport(&sb, tc.ID, d); err != nil {
		t.Fatalf("WriteReport error = %v", err)
	}

	want := `1:
# States
S A

# Alphabet
a

# Start State
S

# Final States
A

# Transitions
S a A
`
	if diff := cmp.Diff(sb.String(), want); diff != "" {
		t.Errorf("report diff (-got +want):\n%s", diff)
	}
}

func TestWriteReport_AlphabetInsertionOrder(t *testing.T) {
	// b declared before a; the report must keep that order, not sort.
	d := NewDFA()
	d.AddSymbol("b")
	d.AddSymbol("a")
	d.SetStart("S")
	d.AddTransition("S", "b", "A")
	d.AddTransition("S", "a", "A")
	d.AddFinal("A")

	var sb strings.Builder
	if err := WriteReport(&sb, 7, d); err != nil {
		t.Fatalf("WriteReport error = %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "# Alphabet\nb a\n") {
		t.Errorf("alphabet not in insertion order:\n%s", out)
	}
	// Transitions follow alphabet order too.
	if !strings.Contains(out, "# Transitions\nS b A\nS a A\n") {
		t.Errorf("transitions not in alphabet order:\n%s", out)
	}
}

func TestWriteReports_ErrorIsolation(t *testing.T) {
	good := &TestCase{
		ID: 1,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
	}
	bad := &TestCase{
		ID: 2,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "abc"}}),
		},
	}

	d, err := good.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	_, badErr := bad.Run()
	if badErr == nil {
		t.Fatal("bad.Run() error = nil, want error")
	}

	var sb strings.Builder
	results := []Result{
		{Case: bad, Err: badErr},
		{Case: good, DFA: d},
	}
	if err := WriteReports(&sb, results); err != nil {
		t.Fatalf("WriteReports error = %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "2: error:") {
		t.Errorf("failed case not reported:\n%s", out)
	}
	if !strings.Contains(out, "1:\n# States") {
		t.Errorf("good case missing after failed one:\n%s", out)
	}
}
