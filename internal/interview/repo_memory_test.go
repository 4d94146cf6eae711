package interview

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoHandsOutSnapshots(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	session := NewSession(testProfile())
	session.Pending = &PendingQuestion{TurnID: 1, Question: "q1"}
	session.TurnCount = 1
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Pending.Answer = "mutated"
	got.Turns = append(got.Turns, Turn{ID: 1})

	again, err := repo.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if again.Pending.Answered() {
		t.Fatalf("expected stored pending question untouched by caller mutation")
	}
	if len(again.Turns) != 0 {
		t.Fatalf("expected stored turns untouched, got %d", len(again.Turns))
	}
}

func TestMemoryRepoDuplicateCreate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	session := NewSession(testProfile())
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, session); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}
}

func TestMemoryRepoUpdateUnknown(t *testing.T) {
	repo := NewMemoryRepo()

	err := repo.Update(context.Background(), NewSession(testProfile()))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
