package store

import (
	"context"
	"testing"

	"github.com/robalobadob/mastermind/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	a := game.New(game.NewSeededGenerator(1))
	b := game.New(game.NewSeededGenerator(2))
	for _, g := range []*game.Game{a, b, a} {
		if err := st.Save(ctx, g); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	list, err := st.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Fatalf("List() = %v", list)
	}
}

func TestMemoryStoreRejectsAnonymousGame(t *testing.T) {
	if err := NewMemoryStore().Save(context.Background(), &game.Game{}); err == nil {
		t.Fatal("expected error for game without id")
	}
}
