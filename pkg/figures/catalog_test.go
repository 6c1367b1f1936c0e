package figures

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evmauth/figgen/pkg/figure"
)

func TestAllMatchesOrder(t *testing.T) {
	figs := All()
	if len(figs) != len(Order) {
		t.Fatalf("catalog has %d figures, order names %d", len(figs), len(Order))
	}

	names := make([]string, len(figs))
	for i, fig := range figs {
		names[i] = fig.Name()
	}
	if diff := cmp.Diff(Order, names); diff != "" {
		t.Fatalf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Order {
		if seen[name] {
			t.Fatalf("duplicate catalog name %q", name)
		}
		seen[name] = true
	}
}

func TestCatalogFiguresComplete(t *testing.T) {
	for _, fig := range All() {
		if fig.Title() == "" {
			t.Errorf("figure %s has no title", fig.Name())
		}
		switch fig.Category() {
		case figure.CategoryCost, figure.CategoryDesign:
		default:
			t.Errorf("figure %s has unknown category %q", fig.Name(), fig.Category())
		}
		w, h := fig.Size()
		if w <= 0 || h <= 0 {
			t.Errorf("figure %s has non-positive size %v x %v", fig.Name(), w, h)
		}
	}
}

func TestRegister(t *testing.T) {
	reg := figure.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := reg.Len(); got != len(Order) {
		t.Fatalf("registry has %d figures, want %d", got, len(Order))
	}
	for _, name := range Order {
		if !reg.Has(name) {
			t.Errorf("registry missing %q", name)
		}
	}
}

func TestRegisterTwiceFails(t *testing.T) {
	reg := figure.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(reg); err == nil {
		t.Fatal("expected second registration to fail on duplicates")
	}
}
