package selector

import (
	"bytes"
	"strings"
	"testing"

	"copygen/internal/catalog"
)

var threeModules = []catalog.Module{"bar", "foo", "zap"}

func runText(t *testing.T, input string, available []catalog.Module) ([]catalog.Module, string) {
	t.Helper()
	var out bytes.Buffer
	sel := &Text{In: strings.NewReader(input), Out: &out}
	got, err := sel.Select(available)
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	return got, out.String()
}

func TestTextSelectAll(t *testing.T) {
	got, _ := runText(t, "all\n", threeModules)
	if len(got) != 3 {
		t.Fatalf("expected all 3 modules, got %v", got)
	}
}

func TestTextSelectNone(t *testing.T) {
	got, _ := runText(t, "none\n", threeModules)
	if len(got) != 0 {
		t.Fatalf("expected no modules, got %v", got)
	}
}

func TestTextSelectIndices(t *testing.T) {
	got, _ := runText(t, "1,3\n", threeModules)
	if len(got) != 2 || got[0] != "bar" || got[1] != "zap" {
		t.Fatalf("expected [bar zap], got %v", got)
	}
}

func TestTextDiscardsOutOfRangeIndices(t *testing.T) {
	got, _ := runText(t, "5\n", threeModules)
	if len(got) != 0 {
		t.Fatalf("out-of-range index must select nothing, got %v", got)
	}
}

func TestTextRepromptsOnGarbage(t *testing.T) {
	got, output := runText(t, "abc\n2\n", threeModules)
	if len(got) != 1 || got[0] != "foo" {
		t.Fatalf("expected [foo] after re-prompt, got %v", got)
	}
	if !strings.Contains(output, "Invalid selection") {
		t.Fatalf("expected an invalid-selection message, got %q", output)
	}
	if strings.Count(output, "> ") != 2 {
		t.Fatalf("expected exactly two prompts, got %q", output)
	}
}

func TestTextEmptyCatalogShortCircuits(t *testing.T) {
	got, output := runText(t, "", nil)
	if got != nil {
		t.Fatalf("expected nil selection, got %v", got)
	}
	if !strings.Contains(output, "No module instruction files found") {
		t.Fatalf("expected informational message, got %q", output)
	}
	if strings.Contains(output, "> ") {
		t.Fatal("empty catalog must not prompt")
	}
}

func TestTextNumbersListIsOneIndexed(t *testing.T) {
	_, output := runText(t, "none\n", threeModules)
	if !strings.Contains(output, "1. bar") || !strings.Contains(output, "3. zap") {
		t.Fatalf("expected a 1-indexed listing, got %q", output)
	}
}

func TestTextClosedInputReturnsError(t *testing.T) {
	sel := &Text{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	if _, err := sel.Select(threeModules); err == nil {
		t.Fatal("expected error when input closes before a valid answer")
	}
}

func TestParseSelectionEmptyAnswer(t *testing.T) {
	got, err := ParseSelection("", threeModules)
	if err != nil {
		t.Fatalf("empty answer must be valid: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty answer selects nothing, got %v", got)
	}
}

func TestParseSelectionMixedValidity(t *testing.T) {
	got, err := ParseSelection("2, 9, 1", threeModules)
	if err != nil {
		t.Fatalf("ParseSelection returned error: %v", err)
	}
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Fatalf("expected [foo bar], got %v", got)
	}
}
