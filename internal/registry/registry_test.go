package registry

import (
	"testing"

	"github.com/vovakirdan/wordblocks/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) should be true after Register")
	}
	if got := Title("stub_a"); got != "Stub stub_a" {
		t.Errorf("Title(stub_a) = %q, expected %q", got, "Stub stub_a")
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q, expected the ID back", got)
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a) error = %v", err)
	}
	if res := g.Step(core.NewInputFrame()); res.State.Score != 1 {
		t.Errorf("Step() score = %d, expected 1", res.State.Score)
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub_a")
	if g2.State().Score != 0 {
		t.Errorf("second instance score = %d, expected 0", g2.State().Score)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	for _, info := range list {
		if info.ID == "stub_b" && info.String() != "Stub stub_b (stub_b)" {
			t.Errorf("String() = %q", info.String())
		}
	}
}
