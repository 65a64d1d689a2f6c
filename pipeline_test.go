package automata

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun_Complement(t *testing.T) {
	tc := &TestCase{
		ID: 1,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a", "b"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
		Operation: "Complement",
	}

	d, err := tc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	tests := []struct {
		in   string
		want bool
	}{
		{"a", false},
		{"", true},
		{"b", true},
		{"ab", true},
		{"aa", true},
	}
	for _, test := range tests {
		if got := d.AcceptsString(test.in); got != test.want {
			t.Errorf("AcceptsString(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	if got, want := d.Start(), StartName; got != want {
		t.Errorf("d.Start() = %q, want %q (pipeline renames readable)", got, want)
	}
}

func TestRun_Union(t *testing.T) {
	tc := &TestCase{
		ID: 2,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a", "b"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
			buildGrammar("G2", []Symbol{"a", "b"}, []StateID{"S"}, "S", [][2]string{{"S", "b"}}),
		},
		Operation: "union",
	}

	d, err := tc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, s := range stringsUpTo([]Symbol{"a", "b"}, 3) {
		if got, want := d.AcceptsString(s), s == "a" || s == "b"; got != want {
			t.Errorf("AcceptsString(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestRun_EmptyOperationPassesThrough(t *testing.T) {
	tc := &TestCase{
		ID: 3,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
	}

	d, err := tc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff(d.Edges(), []Edge{{From: "S", On: "a", To: "A"}}); diff != "" {
		t.Errorf("edges diff (-got +want):\n%s", diff)
	}
}

func TestRun_UnknownOperation(t *testing.T) {
	tc := &TestCase{
		ID: 4,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
		Operation: "minimize",
	}

	if _, err := tc.Run(); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Run() error = %v, want ErrUnknownOperation", err)
	}

	d, err := tc.Run(LenientOperations(true))
	if err != nil {
		t.Fatalf("Run(LenientOperations) error = %v", err)
	}
	if !d.AcceptsString("a") {
		t.Error("lenient run did not pass the first DFA through")
	}
}

func TestRun_UnionNeedsTwoGrammars(t *testing.T) {
	tc := &TestCase{
		ID: 5,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
		Operation: "union",
	}
	if _, err := tc.Run(); !errors.Is(err, ErrMissingGrammar) {
		t.Errorf("Run() error = %v, want ErrMissingGrammar", err)
	}
}

func TestRun_CustomRenames(t *testing.T) {
	tc := &TestCase{
		ID: 6,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		},
		Renames: map[StateID]StateID{"S": "start", "F_G1": "accept"},
	}

	d, err := tc.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff(d.Edges(), []Edge{{From: "start", On: "a", To: "accept"}}); diff != "" {
		t.Errorf("edges diff (-got +want):\n%s", diff)
	}
}

func TestRunAll(t *testing.T) {
	good := func(id int) *TestCase {
		return &TestCase{
			ID: id,
			Grammars: []*Grammar{
				buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
			},
		}
	}
	bad := &TestCase{
		ID: 2,
		Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "abc"}}),
		},
	}
	cases := []*TestCase{good(1), bad, good(3)}

	for _, limit := range []int{1, 2, 8} {
		results, err := RunAll(context.Background(), cases, GoroutineLimit(limit))
		if err != nil {
			t.Fatalf("RunAll(limit=%d) error = %v", limit, err)
		}
		if got, want := len(results), len(cases); got != want {
			t.Fatalf("RunAll(limit=%d) returned %d results, want %d", limit, got, want)
		}
		for i, res := range results {
			if got, want := res.Case.ID, cases[i].ID; got != want {
				t.Errorf("results[%d].Case.ID = %d, want %d (order must be stable)", i, got, want)
			}
		}
		if !errors.Is(results[1].Err, ErrUnsupportedProduction) {
			t.Errorf("results[1].Err = %v, want ErrUnsupportedProduction", results[1].Err)
		}
		for _, i := range []int{0, 2} {
			if results[i].Err != nil {
				t.Errorf("results[%d].Err = %v, want nil (failures must not leak)", i, results[i].Err)
			}
			if results[i].DFA == nil || !results[i].DFA.AcceptsString("a") {
				t.Errorf("results[%d] DFA does not accept %q", i, "a")
			}
		}
	}
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []*TestCase{
		{ID: 1, Grammars: []*Grammar{
			buildGrammar("G1", []Symbol{"a"}, []StateID{"S"}, "S", [][2]string{{"S", "a"}}),
		}},
	}
	if _, err := RunAll(ctx, cases, GoroutineLimit(0)); !errors.Is(err, context.Canceled) {
		t.Errorf("RunAll error = %v, want context.Canceled", err)
	}
}
