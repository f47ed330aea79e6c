package assemble

import (
	"strings"
	"testing"

	"copygen/internal/catalog"
)

func TestAssembleBaseOnly(t *testing.T) {
	got := Assemble(Input{Universal: "U", Core: "C"})
	if got != "U\n\nC\n" {
		t.Fatalf("unexpected output: %q", got)
	}
	if strings.Contains(got, SectionHeader) {
		t.Fatal("empty selection must not emit the module section header")
	}
}

func TestAssembleEndToEnd(t *testing.T) {
	got := Assemble(Input{
		Universal: "U",
		Core:      "C",
		Catalog:   []catalog.Module{"bar", "foo"},
		Selected:  []catalog.Module{"foo", "bar"},
		Content:   map[catalog.Module]string{"foo": "F", "bar": "B"},
	})
	want := "U\n\nC\n\n## Library-Specific Instructions\n\nB\n\nF\n\n"
	if got != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestAssembleUsesCatalogOrderNotSelectionOrder(t *testing.T) {
	got := Assemble(Input{
		Universal: "U",
		Core:      "C",
		Catalog:   []catalog.Module{"alpha", "beta", "gamma"},
		Selected:  []catalog.Module{"gamma", "alpha"},
		Content:   map[catalog.Module]string{"alpha": "A", "beta": "B", "gamma": "G"},
	})
	if !strings.Contains(got, "A\n\nG\n\n") {
		t.Fatalf("expected alpha before gamma in catalog order, got %q", got)
	}
	if strings.Contains(got, "B\n\n") {
		t.Fatalf("unselected module must not appear, got %q", got)
	}
}

func TestAssembleSkipsEmptyContent(t *testing.T) {
	got := Assemble(Input{
		Universal: "U",
		Core:      "C",
		Catalog:   []catalog.Module{"gone", "here"},
		Selected:  []catalog.Module{"gone", "here"},
		Content:   map[catalog.Module]string{"gone": "", "here": "H"},
	})
	want := "U\n\nC\n\n## Library-Specific Instructions\n\nH\n\n"
	if got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestAssembleDuplicateSelectionEmitsOnce(t *testing.T) {
	got := Assemble(Input{
		Universal: "U",
		Core:      "C",
		Catalog:   []catalog.Module{"dup"},
		Selected:  []catalog.Module{"dup", "dup"},
		Content:   map[catalog.Module]string{"dup": "D"},
	})
	if strings.Count(got, "D") != 1 {
		t.Fatalf("expected module content exactly once, got %q", got)
	}
}
