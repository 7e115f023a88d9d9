package registry

import (
	"testing"

	"github.com/vovakirdan/crossing-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }

func (g *stubGame) Title() string { return "Stub " + g.id }

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(func() Game { return &stubGame{id: "zz_stub"} }, "arrows: move")

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	info, ok := Info("zz_stub")
	if !ok {
		t.Fatal("Info() should find the registered game")
	}
	if info.Title != "Stub zz_stub" || info.Controls != "arrows: move" {
		t.Errorf("Info() = %+v", info)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	found := false
	for _, gi := range List() {
		if gi.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(func() Game { return &stubGame{id: "zz_dup"} }, "")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(func() Game { return &stubGame{id: "zz_dup"} }, "")
}
