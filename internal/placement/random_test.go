package placement

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	rngA := NewRNG(12345)
	rngB := NewRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestDaySeedSaltDecorrelates(t *testing.T) {
	beach := DaySeed(555, 3, 0)
	town := DaySeed(555, 3, 777)
	if beach == town {
		t.Fatalf("expected salted seeds to differ")
	}
	if DaySeed(555, 4, 0) == beach {
		t.Fatalf("expected a new day to change the seed")
	}
}
