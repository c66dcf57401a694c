package starfall

import "fmt"

// tryTriggerMultiplier 倍数事件判定（每个连消步一次）
// 触发掷点、数值、落点、角色均来自同一派生种子的独立子掷点；
// 落点与角色仅供表现层使用，不参与任何数值计算。
func (p *mathProfile) tryTriggerMultiplier(cascadeIdx int64, parentSeed string, mode Mode) (*MultiplierEvent, error) {
	chance, err := p.multiplierTriggerChance(mode)
	if err != nil {
		return nil, err
	}
	seed := deriveSeed(parentSeed, fmt.Sprintf("%s%d", _labelMultPrefix, cascadeIdx))
	r := newRoller(seed)

	event := &MultiplierEvent{SourceSeed: seed}
	if r.float64() >= chance {
		return event, nil
	}

	event.Triggered = true
	event.Value = p.pickMultiplierValue(r.int64n(100))
	event.Position = Position{Row: r.int64n(_rowCount), Col: r.int64n(_colCount)}
	event.Character = _multiplierCharacters[r.int64n(int64(len(_multiplierCharacters)))]
	return event, nil
}
