package journal

import (
	"path/filepath"
	"testing"

	"github.com/10thony/campaignion-engine/internal/grid"
)

func TestStoreAppendLoad(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "log.jsonl")

	store, err := NewStore(logPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	err = store.Append(&MoveCommittedEvent{
		TokenID: "goblin-1",
		From:    grid.Position{X: 5, Y: 5},
		To:      grid.Position{X: 5, Y: 3},
		Cost:    10,
	})
	if err != nil {
		t.Fatalf("failed to append move: %v", err)
	}

	err = store.Append(&AttackResolvedEvent{
		Attacker: "hero",
		Target:   "goblin-1",
		Total:    18,
		TargetAC: 15,
		Hit:      true,
		Damage:   9,
	})
	if err != nil {
		t.Fatalf("failed to append attack: %v", err)
	}

	events, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events loaded, got %d", len(events))
	}

	e1, ok := events[0].(*MoveCommittedEvent)
	if !ok {
		t.Errorf("expected first event to be MoveCommittedEvent")
	} else if e1.TokenID != "goblin-1" {
		t.Errorf("expected token goblin-1, got %s", e1.TokenID)
	}

	e2, ok := events[1].(*AttackResolvedEvent)
	if !ok {
		t.Errorf("expected second event to be AttackResolvedEvent")
	} else if e2.Damage != 9 {
		t.Errorf("expected damage 9, got %d", e2.Damage)
	}
}
