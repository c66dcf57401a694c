package starfall

// drawCell 单格抽取：先掷夺宝概率，否则按权重抽普通/百搭符号
// 每格独立同分布，夺宝与普通符号互斥（一格只判定一次）
func drawCell(r *roller, weights []int64, scatterChance float64) int64 {
	if r.float64() < scatterChance {
		return _scatter
	}
	return _minPaySymbol + int64(r.pickWeighted(weights))
}

// fillGrid 生成整张网格
func (p *mathProfile) fillGrid(r *roller, mode Mode) (Grid, error) {
	weights, err := p.weights(mode)
	if err != nil {
		return Grid{}, err
	}
	chance, err := p.scatterChance(mode)
	if err != nil {
		return Grid{}, err
	}
	var g Grid
	for row := int64(0); row < _rowCount; row++ {
		for col := int64(0); col < _colCount; col++ {
			g[row][col] = drawCell(r, weights, chance)
		}
	}
	return g, nil
}

// collapse 重力下落：每列非空符号保持顺序下移，空白上浮到列顶
func collapse(g *Grid) {
	for col := int64(0); col < _colCount; col++ {
		stack := make([]int64, 0, _rowCount)
		for row := int64(0); row < _rowCount; row++ {
			if g[row][col] != _blank {
				stack = append(stack, g[row][col])
			}
		}
		for row := int64(0); row < _rowCount; row++ {
			g[row][col] = _blank
		}
		offset := _rowCount - int64(len(stack))
		for i, symbol := range stack {
			g[offset+int64(i)][col] = symbol
		}
	}
}

// refill 从列顶补充新符号（与初始生成同一抽取规则、同一种子流）
func (p *mathProfile) refill(g *Grid, r *roller, mode Mode) error {
	weights, err := p.weights(mode)
	if err != nil {
		return err
	}
	chance, err := p.scatterChance(mode)
	if err != nil {
		return err
	}
	for col := int64(0); col < _colCount; col++ {
		for row := int64(0); row < _rowCount; row++ {
			if g[row][col] == _blank {
				g[row][col] = drawCell(r, weights, chance)
			}
		}
	}
	return nil
}

// countScatter 统计网格上的夺宝符号数量
func countScatter(g *Grid) int64 {
	count := int64(0)
	for _, row := range g {
		for _, symbol := range row {
			if symbol == _scatter {
				count++
			}
		}
	}
	return count
}

// checkColumnConservation 列守恒自检：下落只能重排列内符号，不得凭空增减
// before为消除后的网格，after为下落后的网格
func checkColumnConservation(before, after *Grid) bool {
	for col := int64(0); col < _colCount; col++ {
		var want, got []int64
		for row := int64(0); row < _rowCount; row++ {
			if before[row][col] != _blank {
				want = append(want, before[row][col])
			}
			if after[row][col] != _blank {
				got = append(got, after[row][col])
			}
		}
		if len(want) != len(got) {
			return false
		}
		for i := range want {
			if want[i] != got[i] {
				return false
			}
		}
	}
	return true
}
