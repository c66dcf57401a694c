package starfall

// cluster 相邻同符号簇（四方向洪泛填充，可含百搭）
type cluster struct {
	symbol int64
	cells  []Position
}

var _floodDirs = [4][2]int64{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// findClusters 查找所有达到最小成簇数量的符号簇
// 规则：百搭可加入任意付费符号的簇（由赔付表wild_joins显式开启），但不能独立成簇；
// 夺宝不参与任何簇。逐符号独立扫描，同一百搭格可同时计入多个符号的簇。
func findClusters(g *Grid, p *mathProfile) ([]*cluster, error) {
	var clusters []*cluster
	for symbol := _minPaySymbol; symbol <= _maxPaySymbol; symbol++ {
		rule, err := p.symbolPayRule(symbol)
		if err != nil {
			return nil, err
		}
		var visited [_rowCount][_colCount]bool
		for row := int64(0); row < _rowCount; row++ {
			for col := int64(0); col < _colCount; col++ {
				if visited[row][col] || g[row][col] != symbol {
					continue
				}
				c := floodFill(g, &visited, row, col, symbol, rule.WildJoins)
				if int64(len(c.cells)) >= rule.MinCluster {
					clusters = append(clusters, c)
				}
			}
		}
	}
	return clusters, nil
}

// floodFill 从 (row,col) 出发收集与symbol连通的格子（含可替代的百搭）
// 入口必为真实符号格，保证纯百搭连通域不会被当作簇
func floodFill(g *Grid, visited *[_rowCount][_colCount]bool, row, col, symbol int64, wildJoins bool) *cluster {
	c := &cluster{symbol: symbol}
	queue := []Position{{Row: row, Col: col}}
	visited[row][col] = true
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		c.cells = append(c.cells, pos)
		for _, d := range _floodDirs {
			nr, nc := pos.Row+d[0], pos.Col+d[1]
			if nr < 0 || nr >= _rowCount || nc < 0 || nc >= _colCount || visited[nr][nc] {
				continue
			}
			next := g[nr][nc]
			if next == symbol || (wildJoins && next == _wild) {
				visited[nr][nc] = true
				queue = append(queue, Position{Row: nr, Col: nc})
			}
		}
	}
	return c
}

// removeClusters 消除所有中奖簇占用的格子（多簇共用的百搭格只消除一次）
func removeClusters(g *Grid, clusters []*cluster) {
	for _, c := range clusters {
		for _, pos := range c.cells {
			g[pos.Row][pos.Col] = _blank
		}
	}
}
