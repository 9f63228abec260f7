package registry

import (
	"testing"

	"github.com/vovakirdan/skyclimb/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz-missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", g.ID())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
