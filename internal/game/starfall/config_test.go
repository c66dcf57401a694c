package starfall

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProfilesLoaded(t *testing.T) {
	for _, kind := range []ProfileKind{ProfileReal, ProfileDemo} {
		p, err := getProfile(kind)
		if err != nil {
			t.Fatalf("profile %s: %v", kind, err)
		}
		if p.kind != kind {
			t.Fatalf("profile %s mislabeled as %s", kind, p.kind)
		}
	}
	if _, err := getProfile("boosted"); err == nil {
		t.Fatal("unknown profile must be rejected, not defaulted")
	}
}

// 真钱与试玩是两份独立配置，权重表不得相同
func TestProfileIsolation(t *testing.T) {
	real := _profiles[ProfileReal]
	demo := _profiles[ProfileDemo]
	same := true
	for i := range real.SymbolWeights.Base {
		if real.SymbolWeights.Base[i] != demo.SymbolWeights.Base[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("real and demo base weights are identical")
	}
	if real.ScatterChance.Base == demo.ScatterChance.Base {
		t.Fatal("real and demo scatter chance are identical")
	}
	if real.MultiplierTriggerRatio.Base == demo.MultiplierTriggerRatio.Base {
		t.Fatal("real and demo multiplier trigger chance are identical")
	}
}

func TestUnknownModeRefused(t *testing.T) {
	p := _profiles[ProfileReal]
	if _, err := p.weights(Mode("bonus")); err == nil {
		t.Fatal("unknown mode must not fall back to another mode's weights")
	}
	if _, err := p.scatterChance(Mode("bonus")); err == nil {
		t.Fatal("unknown mode scatter chance must be refused")
	}
}

func TestClusterPayTiers(t *testing.T) {
	p := _profiles[ProfileReal]
	cases := []struct {
		symbol int64
		size   int64
		want   string
	}{
		{_sapphire, 4, "0"},   // 未达最小成簇数
		{_sapphire, 5, "0.5"}, // 首档
		{_sapphire, 7, "0.8"}, // 介于6和8之间取6档
		{_sapphire, 8, "2"},   // 精确命中8+档
		{_sapphire, 30, "25"}, // 超过最高档取最高档
		{_crown, 15, "100"},
	}
	for _, c := range cases {
		pay, err := p.clusterPay(c.symbol, c.size)
		if err != nil {
			t.Fatalf("symbol %d size %d: %v", c.symbol, c.size, err)
		}
		if !pay.Equal(decimal.RequireFromString(c.want)) {
			t.Fatalf("symbol %d size %d: pay %s, want %s", c.symbol, c.size, pay, c.want)
		}
	}
	if _, err := p.clusterPay(_scatter, 5); err == nil {
		t.Fatal("paytable lookup for scatter must fail, not pay zero silently")
	}
}

// 赔付表缺项/权重表不合法必须是配置错误
func TestMalformedProfileRejected(t *testing.T) {
	mutate := func(from, to string) string {
		if !strings.Contains(_realProfileRaw, from) {
			t.Fatalf("fixture drift: %q not found in profile raw", from)
		}
		return strings.Replace(_realProfileRaw, from, to, 1)
	}
	cases := []struct {
		name string
		raw  string
	}{
		{"cum weight exceeds 100", mutate(`{"value": 25, "cum_weight": 100}`, `{"value": 25, "cum_weight": 120}`)},
		{"non-monotonic cum weights", mutate(`{"value": 3, "cum_weight": 64}`, `{"value": 3, "cum_weight": 20}`)},
		{"cum weights short of 100", mutate(`{"value": 25, "cum_weight": 100}`, `{"value": 25, "cum_weight": 99}`)},
		{"negative weight", mutate(`[215, 195, 170, 145, 115, 85, 50, 25]`, `[-1, 195, 170, 145, 115, 85, 50, 25]`)},
		{"scatter chance out of range", mutate(`"scatter_chance": {"base": 0.014`, `"scatter_chance": {"base": 1.4`)},
		{"trigger threshold too low", mutate(`"trigger_scatter_count": 4`, `"trigger_scatter_count": 1`)},
		{"tier counts not increasing", mutate(`{"count": 6, "pay": "2.0"}`, `{"count": 5, "pay": "2.0"}`)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newMathProfile(ProfileReal, c.raw)
			if err == nil {
				t.Fatal("malformed profile accepted")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("want *ConfigError, got %T: %v", err, err)
			}
		})
	}
}

// 符号长期出现频率收敛到各自模型配置的权重，而非另一模型的
func TestSymbolFrequencyConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("frequency convergence needs large sample")
	}
	for _, kind := range []ProfileKind{ProfileReal, ProfileDemo} {
		p := _profiles[kind]
		r := newRoller(deriveSeed("freq-"+string(kind), _labelGrid))
		const draws = 500000
		counts := make([]int64, _scatter+1)
		for i := 0; i < draws; i++ {
			counts[drawCell(r, p.SymbolWeights.Base, p.ScatterChance.Base)]++
		}

		total := int64(0)
		for _, w := range p.SymbolWeights.Base {
			total += w
		}
		nonScatter := int64(draws) - counts[_scatter]
		for symbol := _minPaySymbol; symbol <= _wild; symbol++ {
			want := float64(p.SymbolWeights.Base[symbol-_minPaySymbol]) / float64(total)
			got := float64(counts[symbol]) / float64(nonScatter)
			if got < want*0.9 || got > want*1.1 {
				t.Errorf("%s symbol %d frequency %.4f, configured %.4f", kind, symbol, got, want)
			}
		}
		scatterRate := float64(counts[_scatter]) / float64(draws)
		if scatterRate < p.ScatterChance.Base*0.8 || scatterRate > p.ScatterChance.Base*1.2 {
			t.Errorf("%s scatter rate %.5f, configured %.5f", kind, scatterRate, p.ScatterChance.Base)
		}
	}
}
