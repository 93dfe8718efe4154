package assets

import (
	"strings"
	"testing"
)

func TestMigrationsOrdered(t *testing.T) {
	ms, err := Migrations()
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) < 2 {
		t.Fatalf("got %d migrations", len(ms))
	}
	if ms[0].Name != "001_games.sql" || !strings.Contains(ms[0].SQL, "CREATE TABLE") {
		t.Fatalf("first migration = %q", ms[0].Name)
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].Name >= ms[i].Name {
			t.Fatalf("migrations out of order: %s, %s", ms[i-1].Name, ms[i].Name)
		}
	}
}
