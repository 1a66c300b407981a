package screen

import (
	"testing"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/journal"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
)

func init() {
	logger.Discard()
}

func testEnv() (Env, *journal.MemoryStore) {
	store := journal.NewMemoryStore()
	return Env{
		Dataset:    catalog.Demo(),
		Journal:    journal.New(store),
		Engine:     forge.NewEngine(forge.DefaultRules()),
		ForgeDelay: 0,
	}, store
}

func press(h input.Handler, actions ...input.Action) {
	for _, a := range actions {
		h.HandleAction(a)
	}
}

func repeat(a input.Action, n int) []input.Action {
	out := make([]input.Action, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestSessionStartsHome(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	if s.Current() != input.ScreenHome {
		t.Fatalf("expected home, got %s", s.Current())
	}
	if _, ok := s.Active().(*Home); !ok {
		t.Fatalf("expected home controller, got %T", s.Active())
	}
}

func TestGlobalActionsNavigate(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	r := s.Router()
	cases := []struct {
		action input.Action
		screen input.Screen
	}{
		{input.ActionForge, input.ScreenForge},
		{input.ActionQuests, input.ScreenQuests},
		{input.ActionLog, input.ScreenLog},
		{input.ActionInventory, input.ScreenInventory},
		{input.ActionSystem, input.ScreenHome},
	}
	for _, tc := range cases {
		r.Dispatch(tc.action)
		if s.Current() != tc.screen {
			t.Fatalf("expected %s after %s, got %s", tc.screen, tc.action, s.Current())
		}
		if s.Active().Screen() != tc.screen {
			t.Fatalf("expected %s controller, got %s", tc.screen, s.Active().Screen())
		}
	}
}

func TestReenteringCurrentScreenKeepsController(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	s.Router().Dispatch(input.ActionInventory)
	inv := s.Active()
	press(inv, input.ActionRight, input.ActionRight)

	s.Router().Dispatch(input.ActionInventory)
	if s.Active() != inv {
		t.Fatalf("expected the same controller")
	}
	if got := inv.Focus().Index; got != 2 {
		t.Fatalf("expected global action to leave focus at 2, got %d", got)
	}
}

func TestConfirmNeverNavigates(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	s.Router().Dispatch(input.ActionInventory)
	for i := 0; i < 3; i++ {
		s.Router().Dispatch(input.ActionConfirm)
	}
	if s.Current() != input.ScreenInventory {
		t.Fatalf("expected inventory, got %s", s.Current())
	}
}

func TestNavigationBuildsFreshController(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	s.Router().Dispatch(input.ActionForge)
	first := s.Active()
	s.Router().Dispatch(input.ActionDown)
	if first.Focus().Area != AreaPot {
		t.Fatalf("expected pot focus, got %q", first.Focus().Area)
	}

	s.Router().Dispatch(input.ActionLog)
	s.Router().Dispatch(input.ActionForge)
	if s.Active() == first {
		t.Fatalf("expected a new forge controller")
	}
	if got := s.Active().Focus(); got.Area != AreaInventory || got.Index != 0 {
		t.Fatalf("expected fresh focus, got %+v", got)
	}
}

func TestStaleControllerDoesNotReceiveActions(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	s.Router().Dispatch(input.ActionInventory)
	old := s.Active()
	s.Router().Dispatch(input.ActionQuests)
	s.Router().Dispatch(input.ActionRight)
	if got := old.Focus().Index; got != 0 {
		t.Fatalf("expected detached inventory to stay at 0, got %d", got)
	}
}

func TestLeavingForgeAbandonsCommit(t *testing.T) {
	env, store := testEnv()
	s := NewSession(env)
	s.OpenInForge("I-002")
	f := s.Active().(*Forge)
	f.Pot().Add(mustItem(t, env, "I-114"))
	if !f.Commit() {
		t.Fatalf("expected commit to start")
	}

	s.Navigate(input.ScreenLog)
	time.Sleep(20 * time.Millisecond)
	f.Update(time.Now())
	s.Update()

	if raws, _ := store.ReadAll(journal.NamespaceChanges); len(raws) != 0 {
		t.Fatalf("expected no journaled change, got %d", len(raws))
	}
}

func TestCloseDetaches(t *testing.T) {
	env, _ := testEnv()
	s := NewSession(env)
	home := s.Active()
	s.Close()
	s.Router().Dispatch(input.ActionDown)
	if got := home.Focus().Index; got != 0 {
		t.Fatalf("expected closed session to drop actions, got index %d", got)
	}
}

func mustItem(t *testing.T, env Env, id string) catalog.Item {
	t.Helper()
	it, ok := env.Dataset.Item(id)
	if !ok {
		t.Fatalf("expected item %s in dataset", id)
	}
	return it
}
