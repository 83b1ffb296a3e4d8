package cli

import (
	"strings"
	"testing"
)

func TestRunEvaluatesLines(t *testing.T) {
	in := strings.NewReader("2 + 3 * 4\n(2 + 3) * 4\nexit\n1 + 1\n")
	var out strings.Builder

	if err := New(in, &out, nil).Run(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "14\n") {
		t.Errorf("expected 14 in output, got %q", got)
	}
	if !strings.Contains(got, "20\n") {
		t.Errorf("expected 20 in output, got %q", got)
	}
	if strings.Contains(got, "2\n") {
		t.Errorf("expected the loop to stop at exit, got %q", got)
	}
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	in := strings.NewReader("1.2.3\n5 - 2\n")
	var out strings.Builder

	if err := New(in, &out, nil).Run(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "error:") {
		t.Errorf("expected an error line, got %q", got)
	}
	if !strings.Contains(got, "3\n") {
		t.Errorf("expected the loop to keep going after an error, got %q", got)
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n   \n7\n")
	var out strings.Builder

	if err := New(in, &out, nil).Run(); err != nil {
		t.Fatal(err)
	}

	if strings.Count(out.String(), "\n") != 1 {
		t.Errorf("expected exactly one output line, got %q", out.String())
	}
}

func TestEvaluateOnce(t *testing.T) {
	var out strings.Builder
	if err := EvaluateOnce(&out, []string{"3", "+", "4", "*", "(2", "-", "1)"}, nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "7\n" {
		t.Errorf("expected 7, got %q", out.String())
	}

	if err := EvaluateOnce(&out, []string{"4", "+"}, nil); err == nil {
		t.Error("expected an error for a dangling operator")
	}
}
