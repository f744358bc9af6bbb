package model

import "testing"

func TestNewReaction(t *testing.T) {
	r := NewReaction("r-1")

	if r.Trigger != DefaultReactionTrigger || r.Action != DefaultReactionAction {
		t.Errorf("Unexpected defaults: %+v", r)
	}
	if !r.Active {
		t.Error("New reaction should be active")
	}
	if r.HasImage() {
		t.Error("New reaction should have no image")
	}
}

func TestActiveReactions(t *testing.T) {
	reactions := []Reaction{
		{ID: "1", Active: true},
		{ID: "2", Active: false},
		{ID: "3", Active: true},
	}

	active := ActiveReactions(reactions)
	if len(active) != 2 {
		t.Fatalf("Expected 2 active reactions, got %d", len(active))
	}
	if active[0].ID != "1" || active[1].ID != "3" {
		t.Errorf("Order not preserved: %v", active)
	}

	if got := ActiveReactions(nil); len(got) != 0 {
		t.Errorf("Expected empty result for nil input, got %v", got)
	}
}
