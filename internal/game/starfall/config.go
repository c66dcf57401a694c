package starfall

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var _profiles map[ProfileKind]*mathProfile

func init() {
	initProfiles()
}

// initProfiles 加载两套数学模型（真钱/试玩），任一解析或校验失败直接panic
func initProfiles() {
	if _profiles != nil {
		return
	}
	real, err := newMathProfile(ProfileReal, _realProfileRaw)
	if err != nil {
		panic("parse real profile failed: " + err.Error())
	}
	demo, err := newMathProfile(ProfileDemo, _demoProfileRaw)
	if err != nil {
		panic("parse demo profile failed: " + err.Error())
	}
	_profiles = map[ProfileKind]*mathProfile{
		ProfileReal: real,
		ProfileDemo: demo,
	}
}

// getProfile 按类型取数学模型，未知类型是校验错误而非兜底
func getProfile(kind ProfileKind) (*mathProfile, error) {
	p, ok := _profiles[kind]
	if !ok {
		return nil, newValidationError("profile", "unknown profile %q", kind)
	}
	return p, nil
}

// payTier 赔付档位（簇大小阈值 -> 下注倍率）
type payTier struct {
	Count int64           `json:"count"` // 簇大小下限
	Pay   decimal.Decimal `json:"pay"`   // 下注倍率
}

// symbolPay 单个符号的赔付规则
type symbolPay struct {
	Symbol     int64     `json:"symbol"`      // 符号ID
	MinCluster int64     `json:"min_cluster"` // 最小成簇数量
	WildJoins  bool      `json:"wild_joins"`  // 百搭是否可参与该符号的簇
	Tiers      []payTier `json:"tiers"`       // 赔付档位（按count升序）
}

// modeChance 按模式区分的概率值
type modeChance struct {
	Base float64 `json:"base"`       // 基础模式
	Free float64 `json:"free_spins"` // 免费模式
}

// modeWeights 按模式区分的符号权重（索引=符号ID-1，含百搭）
type modeWeights struct {
	Base []int64 `json:"base"`
	Free []int64 `json:"free_spins"`
}

// multiplierBand 倍数档位（累计权重表，最后一档必须为100）
type multiplierBand struct {
	Value     int64 `json:"value"`
	CumWeight int64 `json:"cum_weight"`
}

// mathProfile 数学模型（真钱与试玩各一份，互不共享任何可变状态）
type mathProfile struct {
	kind ProfileKind

	GameID                 int64            `json:"game_id"`
	PayTable               []symbolPay      `json:"pay_table"`                // 符号1..7
	SymbolWeights          modeWeights      `json:"symbol_weights"`           // 符号1..8（含百搭）
	ScatterChance          modeChance       `json:"scatter_chance"`           // 单格夺宝概率
	MultiplierTriggerRatio modeChance       `json:"multiplier_trigger_ratio"` // 单步倍数事件触发概率
	MultiplierTable        []multiplierBand `json:"multiplier_table"`         // 倍数值累计权重表
	TriggerScatterCount    int64            `json:"trigger_scatter_count"`    // 触发免费的夺宝数量
	FreeSpinsAward         int64            `json:"free_spins_award"`         // 触发赠送次数
	RetriggerAward         int64            `json:"retrigger_award"`          // 再触发追加次数
}

func newMathProfile(kind ProfileKind, raw string) (*mathProfile, error) {
	p := &mathProfile{}
	if err := jsoniter.UnmarshalFromString(raw, p); err != nil {
		return nil, newConfigError("profile", "unmarshal: %v", err)
	}
	p.kind = kind
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// validate 全量校验，任何缺项或不合法的权重表都是致命错误
func (p *mathProfile) validate() error {
	if p.GameID <= 0 {
		return newConfigError("game_id", "must be positive, got %d", p.GameID)
	}
	if err := p.validatePayTable(); err != nil {
		return err
	}
	if err := p.validateWeights("symbol_weights.base", p.SymbolWeights.Base); err != nil {
		return err
	}
	if err := p.validateWeights("symbol_weights.free_spins", p.SymbolWeights.Free); err != nil {
		return err
	}
	if err := validateChance("scatter_chance", p.ScatterChance); err != nil {
		return err
	}
	if err := validateChance("multiplier_trigger_ratio", p.MultiplierTriggerRatio); err != nil {
		return err
	}
	if err := p.validateMultiplierTable(); err != nil {
		return err
	}
	if p.TriggerScatterCount < 3 {
		return newConfigError("trigger_scatter_count", "must be >= 3, got %d", p.TriggerScatterCount)
	}
	if p.FreeSpinsAward <= 0 || p.RetriggerAward <= 0 {
		return newConfigError("free_spins_award", "awards must be positive, got %d/%d", p.FreeSpinsAward, p.RetriggerAward)
	}
	return nil
}

func (p *mathProfile) validatePayTable() error {
	if int64(len(p.PayTable)) != _maxPaySymbol-_minPaySymbol+1 {
		return newConfigError("pay_table", "expect %d symbols, got %d", _maxPaySymbol-_minPaySymbol+1, len(p.PayTable))
	}
	for i, sp := range p.PayTable {
		if sp.Symbol != _minPaySymbol+int64(i) {
			return newConfigError("pay_table", "symbol %d out of order at index %d", sp.Symbol, i)
		}
		if sp.MinCluster < 2 {
			return newConfigError("pay_table", "symbol %d: min_cluster must be >= 2", sp.Symbol)
		}
		if len(sp.Tiers) == 0 {
			return newConfigError("pay_table", "symbol %d: empty tiers", sp.Symbol)
		}
		if sp.Tiers[0].Count != sp.MinCluster {
			return newConfigError("pay_table", "symbol %d: first tier count %d != min_cluster %d",
				sp.Symbol, sp.Tiers[0].Count, sp.MinCluster)
		}
		prev := int64(0)
		for _, t := range sp.Tiers {
			if t.Count <= prev {
				return newConfigError("pay_table", "symbol %d: tier counts not strictly increasing", sp.Symbol)
			}
			if !t.Pay.IsPositive() {
				return newConfigError("pay_table", "symbol %d: tier %d pay must be positive", sp.Symbol, t.Count)
			}
			prev = t.Count
		}
	}
	return nil
}

func (p *mathProfile) validateWeights(field string, weights []int64) error {
	if int64(len(weights)) != _wild-_minPaySymbol+1 {
		return newConfigError(field, "expect %d weights, got %d", _wild-_minPaySymbol+1, len(weights))
	}
	total := int64(0)
	for i, w := range weights {
		if w < 0 {
			return newConfigError(field, "weight for symbol %d is negative", i+1)
		}
		total += w
	}
	if total <= 0 {
		return newConfigError(field, "total weight must be positive")
	}
	return nil
}

func validateChance(field string, c modeChance) error {
	if c.Base <= 0 || c.Base >= 1 {
		return newConfigError(field, "base chance %v out of (0,1)", c.Base)
	}
	if c.Free <= 0 || c.Free >= 1 {
		return newConfigError(field, "free_spins chance %v out of (0,1)", c.Free)
	}
	return nil
}

func (p *mathProfile) validateMultiplierTable() error {
	if len(p.MultiplierTable) == 0 {
		return newConfigError("multiplier_table", "empty")
	}
	prev := int64(0)
	for _, b := range p.MultiplierTable {
		if b.Value < 2 {
			return newConfigError("multiplier_table", "value %d must be >= 2", b.Value)
		}
		if b.CumWeight <= prev {
			return newConfigError("multiplier_table", "cumulative weights not strictly increasing at value %d", b.Value)
		}
		if b.CumWeight > 100 {
			return newConfigError("multiplier_table", "cumulative weight %d exceeds 100", b.CumWeight)
		}
		prev = b.CumWeight
	}
	if prev != 100 {
		return newConfigError("multiplier_table", "cumulative weights must end at 100, got %d", prev)
	}
	return nil
}

// weights 取指定模式的符号权重，模式未配置是错误而非回退
func (p *mathProfile) weights(mode Mode) ([]int64, error) {
	switch mode {
	case ModeBase:
		return p.SymbolWeights.Base, nil
	case ModeFreeSpins:
		return p.SymbolWeights.Free, nil
	}
	return nil, newValidationError("mode", "unknown mode %q", mode)
}

func (p *mathProfile) scatterChance(mode Mode) (float64, error) {
	switch mode {
	case ModeBase:
		return p.ScatterChance.Base, nil
	case ModeFreeSpins:
		return p.ScatterChance.Free, nil
	}
	return 0, newValidationError("mode", "unknown mode %q", mode)
}

func (p *mathProfile) multiplierTriggerChance(mode Mode) (float64, error) {
	switch mode {
	case ModeBase:
		return p.MultiplierTriggerRatio.Base, nil
	case ModeFreeSpins:
		return p.MultiplierTriggerRatio.Free, nil
	}
	return 0, newValidationError("mode", "unknown mode %q", mode)
}

// symbolPayRule 取符号赔付规则，缺项是致命配置错误
func (p *mathProfile) symbolPayRule(symbol int64) (*symbolPay, error) {
	idx := symbol - _minPaySymbol
	if idx < 0 || idx >= int64(len(p.PayTable)) {
		return nil, newConfigError("pay_table", "no entry for symbol %d", symbol)
	}
	return &p.PayTable[idx], nil
}

// clusterPay 计算簇赔付倍率：取该簇大小能达到的最高档位，每簇仅结算一次
func (p *mathProfile) clusterPay(symbol, clusterSize int64) (decimal.Decimal, error) {
	rule, err := p.symbolPayRule(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	pay := decimal.Zero
	for _, t := range rule.Tiers {
		if clusterSize >= t.Count {
			pay = t.Pay
		}
	}
	return pay, nil
}

// pickMultiplierValue 按累计权重表选取倍数值
func (p *mathProfile) pickMultiplierValue(roll int64) int64 {
	for _, b := range p.MultiplierTable {
		if roll < b.CumWeight {
			return b.Value
		}
	}
	return p.MultiplierTable[len(p.MultiplierTable)-1].Value
}
