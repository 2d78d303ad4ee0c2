package registry

import (
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := mazes
	mazes = make(map[string]Definition)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		mazes = saved
		mu.Unlock()
	})
}

func TestListIsInCampaignOrder(t *testing.T) {
	reset(t)
	Register(Definition{ID: "b", Title: "Second", Order: 2, Layout: []string{"P.."}})
	Register(Definition{ID: "a", Title: "First", Order: 1, Layout: []string{"P.", "  "}})
	Register(Definition{ID: "c", Title: "Also second", Order: 2, Layout: []string{"P"}})

	got := IDs()
	want := []string{"a", "b", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("IDs() = %v, expected %v", got, want)
	}

	info := List()[0]
	if info.Cols != 2 || info.Rows != 2 || info.Title != "First" {
		t.Errorf("List()[0] = %+v", info)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	reset(t)
	Register(Definition{ID: "x", Layout: []string{"P."}})

	def, err := Get("x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	def.Layout[0] = "##"

	again, _ := Get("x")
	if again.Layout[0] != "P." {
		t.Errorf("registry layout was mutated through Get: %q", again.Layout[0])
	}

	if _, err := Get("missing"); err == nil {
		t.Error("Get should fail for an unknown maze")
	}
	if !Exists("x") || Exists("missing") {
		t.Error("Exists reports the wrong answer")
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	reset(t)
	Register(Definition{ID: "dup", Layout: []string{"P"}})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Definition{ID: "dup", Layout: []string{"P"}})
}
