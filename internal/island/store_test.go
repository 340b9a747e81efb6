package island

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func createTestGdataManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("raccoon_island_test_%s_%d", name, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return manager
}

func assertWorldRoundTrip(t *testing.T, s *Store) {
	t.Helper()
	c, w := loadedWorld(t)
	c.AdvanceDay(w)

	if s.HasWorld("slot1") {
		t.Fatalf("expected empty store")
	}
	if err := s.SaveWorld("slot1", w); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !s.HasWorld("slot1") {
		t.Fatalf("expected saved slot")
	}
	restored, err := s.LoadWorld("slot1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if restored.ID != w.ID || restored.UniqueID != w.UniqueID || restored.TotalDays != w.TotalDays {
		t.Fatalf("world header mismatch: %+v vs %+v", restored, w)
	}
	name := c.Config().LocationName
	want := mustLocation(t, w, name)
	isl := mustLocation(t, restored, name)
	if len(isl.Terrain) != len(want.Terrain) || len(isl.Objects) != len(want.Objects) {
		t.Fatalf("island contents not restored")
	}
	for at, tree := range want.Terrain {
		if isl.Terrain[at] != tree {
			t.Fatalf("tree at %+v: expected %+v, got %+v", at, tree, isl.Terrain[at])
		}
	}
	if len(isl.Features) != 0 {
		t.Fatalf("expected features to stay out of the save")
	}
	if n := len(mustLocation(t, restored, "Tent03").Furniture); n != 3 {
		t.Fatalf("expected tent furniture restored, got %d", n)
	}

	if err := c.Load(restored); err != nil {
		t.Fatalf("reload restored world: %v", err)
	}
	if len(isl.Terrain) != len(want.Terrain) {
		t.Fatalf("expected restored island not to be replanted")
	}
	if n := len(mustLocation(t, restored, FarmLocation).Warps); n != 1 {
		t.Fatalf("expected farm warp not duplicated, got %d", n)
	}
}

func TestStoreMemoryRoundTrip(t *testing.T) {
	s := NewStore(nil)
	if s.Persistent() {
		t.Fatalf("expected memory-only store")
	}
	assertWorldRoundTrip(t, s)
}

func TestStoreGdataRoundTrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	assertWorldRoundTrip(t, NewStore(manager))
}

func TestStoreMissingAndInvalidSlots(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.LoadWorld("nothing"); !errors.Is(err, ErrNoWorld) {
		t.Fatalf("expected ErrNoWorld, got %v", err)
	}
	if err := s.SaveWorld("../escape", NewWorldWithID(1)); err == nil {
		t.Fatalf("expected invalid slot to be rejected")
	}
	if err := s.SaveWorld("", NewWorldWithID(1)); err == nil {
		t.Fatalf("expected empty slot to be rejected")
	}
	if s.HasWorld("../escape") {
		t.Fatalf("expected invalid slot to report missing")
	}
}
