package starfall

import "testing"

func TestDeriveSeedDeterministic(t *testing.T) {
	a := deriveSeed("top-seed", _labelGrid)
	b := deriveSeed("top-seed", _labelGrid)
	if a != b {
		t.Fatalf("same (parent,label) must derive same child: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("child seed should be 32-byte hex, got len %d", len(a))
	}
}

func TestDeriveSeedLabelIndependence(t *testing.T) {
	seen := map[string]string{}
	labels := []string{_labelGrid, "cascade:0", "cascade:1", "multiplier:0", "multiplier:1", _labelFreeSpinTrigger}
	for _, label := range labels {
		child := deriveSeed("top-seed", label)
		if prev, ok := seen[child]; ok {
			t.Fatalf("labels %q and %q derived identical seeds", prev, label)
		}
		seen[child] = label
	}
	// 不同父种子同标签也必须不同
	if deriveSeed("seed-a", _labelGrid) == deriveSeed("seed-b", _labelGrid) {
		t.Fatal("different parents derived identical children")
	}
}

func TestRollerReproducible(t *testing.T) {
	r1 := newRoller(deriveSeed("s", "cascade:3"))
	r2 := newRoller(deriveSeed("s", "cascade:3"))
	for i := 0; i < 1000; i++ {
		if r1.float64() != r2.float64() {
			t.Fatalf("roller stream diverged at draw %d", i)
		}
	}
}

func TestRollerPickWeighted(t *testing.T) {
	r := newRoller("fixed")
	weights := []int64{0, 10, 0, 90}
	counts := make([]int, len(weights))
	for i := 0; i < 10000; i++ {
		counts[r.pickWeighted(weights)]++
	}
	if counts[0] != 0 || counts[2] != 0 {
		t.Fatalf("zero-weight entries were drawn: %v", counts)
	}
	if counts[1] == 0 || counts[3] == 0 {
		t.Fatalf("positive-weight entries never drawn: %v", counts)
	}
	if counts[3] <= counts[1] {
		t.Fatalf("weight 90 drawn less often than weight 10: %v", counts)
	}
}
