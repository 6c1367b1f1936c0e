package figure

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type stubFigure struct {
	name string
}

func (s stubFigure) Name() string       { return s.name }
func (s stubFigure) Title() string      { return "Stub " + s.name }
func (s stubFigure) Category() Category { return CategoryCost }
func (s stubFigure) Size() (vg.Length, vg.Length) {
	return vg.Inch, vg.Inch
}
func (s stubFigure) Draw(dc draw.Canvas) error { return nil }

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubFigure{name: "alpha"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := reg.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	if !reg.Has("alpha") {
		t.Fatal("expected alpha to be registered")
	}
}

func TestRegistryRegisterNil(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(nil); err == nil {
		t.Fatal("expected error for nil figure")
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubFigure{}); err == nil {
		t.Fatal("expected error for empty figure name")
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(stubFigure{name: "alpha"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := reg.Register(stubFigure{name: "alpha"})
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubFigure{name: "alpha"})

	fig, err := reg.Get("alpha")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fig.Name() != "alpha" {
		t.Fatalf("got figure %q, want alpha", fig.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Fatal("expected error for unknown figure")
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"gamma", "alpha", "beta"} {
		reg.MustRegister(stubFigure{name: name})
	}

	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryMustRegisterPanics(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubFigure{name: "alpha"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate MustRegister")
		}
	}()
	reg.MustRegister(stubFigure{name: "alpha"})
}
