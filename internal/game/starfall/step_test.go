package starfall

import "testing"

// 构造网格：行优先填入，未列出的格子为琥珀(1)
func makeGrid(cells map[Position]int64) Grid {
	var g Grid
	for r := int64(0); r < _rowCount; r++ {
		for c := int64(0); c < _colCount; c++ {
			g[r][c] = _amber
		}
	}
	// 先打散底色，避免整盘琥珀自成一簇
	breakers := []int64{_quartz, _topaz, _emerald, _ruby}
	for r := int64(0); r < _rowCount; r++ {
		for c := int64(0); c < _colCount; c++ {
			if (r+c)%2 == 1 {
				g[r][c] = breakers[(r*_colCount+c)%int64(len(breakers))]
			}
		}
	}
	for pos, symbol := range cells {
		g[pos.Row][pos.Col] = symbol
	}
	return g
}

func TestFindClustersBasic(t *testing.T) {
	p := _profiles[ProfileReal]
	// 第0行前5格 + 第1行第0格 = 蓝宝石6连
	cells := map[Position]int64{}
	for c := int64(0); c < 5; c++ {
		cells[Position{Row: 0, Col: c}] = _sapphire
	}
	cells[Position{Row: 1, Col: 0}] = _sapphire
	g := makeGrid(cells)

	clusters, err := findClusters(&g, p)
	if err != nil {
		t.Fatal(err)
	}
	var found *cluster
	for _, c := range clusters {
		if c.symbol == _sapphire {
			found = c
		}
	}
	if found == nil {
		t.Fatalf("sapphire cluster not found:\n%s", gridToString(&g))
	}
	if len(found.cells) != 6 {
		t.Fatalf("cluster size %d, want 6", len(found.cells))
	}
}

func TestFindClustersBelowMinimumIgnored(t *testing.T) {
	p := _profiles[ProfileReal]
	cells := map[Position]int64{}
	for c := int64(0); c < 4; c++ { // 只有4连，低于最小成簇数5
		cells[Position{Row: 2, Col: c}] = _crown
	}
	g := makeGrid(cells)
	clusters, err := findClusters(&g, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range clusters {
		if c.symbol == _crown {
			t.Fatalf("4-cell cluster paid, min cluster is 5")
		}
	}
}

func TestFindClustersWildJoins(t *testing.T) {
	p := _profiles[ProfileReal]
	// 3个红宝石 + 2个百搭连通 = 合格的5连
	cells := map[Position]int64{
		{Row: 0, Col: 0}: _ruby,
		{Row: 0, Col: 1}: _ruby,
		{Row: 0, Col: 2}: _wild,
		{Row: 0, Col: 3}: _wild,
		{Row: 0, Col: 4}: _ruby,
	}
	g := makeGrid(cells)
	clusters, err := findClusters(&g, p)
	if err != nil {
		t.Fatal(err)
	}
	var found *cluster
	for _, c := range clusters {
		if c.symbol == _ruby {
			found = c
		}
	}
	if found == nil || len(found.cells) != 5 {
		t.Fatalf("wild-joined ruby cluster missing or wrong size: %+v", found)
	}
}

func TestFindClustersPureWildNotACluster(t *testing.T) {
	p := _profiles[ProfileReal]
	cells := map[Position]int64{}
	for c := int64(0); c < 6; c++ {
		cells[Position{Row: 3, Col: c}] = _scatter // 夺宝隔离带，切断百搭与上方符号
		cells[Position{Row: 4, Col: c}] = _wild
	}
	g := makeGrid(cells)
	clusters, err := findClusters(&g, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, cl := range clusters {
		for _, pos := range cl.cells {
			if pos.Row == 4 {
				t.Fatalf("pure wild run scored as cluster of symbol %d", cl.symbol)
			}
		}
	}
}

func TestScatterNeverMatches(t *testing.T) {
	p := _profiles[ProfileReal]
	cells := map[Position]int64{}
	for c := int64(0); c < 6; c++ {
		cells[Position{Row: 3, Col: c}] = _scatter
	}
	g := makeGrid(cells)
	clusters, err := findClusters(&g, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, cl := range clusters {
		if cl.symbol == _scatter {
			t.Fatal("scatter formed a cluster")
		}
	}
}

func TestCollapseGravity(t *testing.T) {
	var g Grid
	for r := int64(0); r < _rowCount; r++ {
		for c := int64(0); c < _colCount; c++ {
			g[r][c] = _blank
		}
	}
	// 第0列: 顶部红宝石，中部空，底部黄玉 -> 下落后两者贴底且保持顺序
	g[0][0] = _ruby
	g[2][0] = _topaz

	before := g
	collapse(&g)

	if g[_rowCount-1][0] != _topaz || g[_rowCount-2][0] != _ruby {
		t.Fatalf("gravity order broken:\n%s", gridToString(&g))
	}
	if !checkColumnConservation(&before, &g) {
		t.Fatal("collapse violated column conservation")
	}
}

func TestRemoveClustersSharedWildRemovedOnce(t *testing.T) {
	g := makeGrid(nil)
	clusters := []*cluster{
		{symbol: _ruby, cells: []Position{{0, 0}, {0, 1}}},
		{symbol: _topaz, cells: []Position{{0, 1}, {0, 2}}}, // (0,1)被两簇共享
	}
	removeClusters(&g, clusters)
	for _, pos := range []Position{{0, 0}, {0, 1}, {0, 2}} {
		if g[pos.Row][pos.Col] != _blank {
			t.Fatalf("cell %v not removed", pos)
		}
	}
}
