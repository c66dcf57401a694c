package starfall

import "github.com/shopspring/decimal"

// Grid 符号网格（5×6），每个连消步前后各取一次不可变快照
type Grid [_rowCount][_colCount]int64

// Position 网格坐标
type Position struct {
	Row int64 `json:"row"`
	Col int64 `json:"col"`
}

// ClusterWin 单个中奖簇（逐簇结算，同符号多簇不合并）
type ClusterWin struct {
	Symbol int64           `json:"symbol"`
	Cells  []Position      `json:"cells"`
	Size   int64           `json:"size"`
	Pay    decimal.Decimal `json:"pay"` // 本簇赔付金额 = 下注 × 档位倍率
}

// MultiplierEvent 倍数事件：数值累加进本次spin倍数总和；位置/角色仅为表现层元数据
type MultiplierEvent struct {
	Triggered  bool     `json:"triggered"`
	Value      int64    `json:"value"`
	Position   Position `json:"position"`
	Character  string   `json:"character"`
	SourceSeed string   `json:"source_seed"`
}

// CascadeStep 单个连消步（消除→下落→补充）
type CascadeStep struct {
	Index            int64            `json:"index"`
	GridBefore       Grid             `json:"grid_before"`
	Clusters         []ClusterWin     `json:"clusters"`
	StepWin          decimal.Decimal  `json:"step_win"`
	GridAfterRemoval Grid             `json:"grid_after_removal"` // 消除后、下落前（含空白占位）
	GridAfter        Grid             `json:"grid_after"`         // 下落补充后
	Multiplier       *MultiplierEvent `json:"multiplier,omitempty"`
}

// FreeSpinsSession 免费回合会话（需由调用方持久化并在请求间传递）
// AccumulatedMultiplier 在整个会话内只增不减，每次spin后无条件写回
type FreeSpinsSession struct {
	Active                bool  `json:"active"`
	SpinsRemaining        int64 `json:"spins_remaining"`
	AccumulatedMultiplier int64 `json:"accumulated_multiplier"`
}

// AuditRecord 审计记录：子种子标签、派生种子与掷点结果，支持离线重放验证
type AuditRecord struct {
	Label   string `json:"label"`
	Seed    string `json:"seed"`
	Outcome string `json:"outcome"`
}

// SpinRequest 单次spin的完整输入（引擎为纯函数，输入之外无任何隐式状态）
type SpinRequest struct {
	Bet     decimal.Decimal   `json:"bet"`
	Seed    string            `json:"seed"`
	Mode    Mode              `json:"mode"`
	Profile ProfileKind       `json:"profile"`
	Session *FreeSpinsSession `json:"session,omitempty"`
}

// SpinOutcome 单次spin的完整结果（交还调用方后视为不可变）
type SpinOutcome struct {
	GameID                 int64             `json:"game_id"`
	Seed                   string            `json:"seed"`
	Mode                   Mode              `json:"mode"`
	Profile                ProfileKind       `json:"profile"`
	InitialGrid            Grid              `json:"initial_grid"`
	Steps                  []*CascadeStep    `json:"steps"`
	BaseWin                decimal.Decimal   `json:"base_win"`
	AppliedMultiplierTotal int64             `json:"applied_multiplier_total"`
	TotalWin               decimal.Decimal   `json:"total_win"`
	ScatterCount           int64             `json:"scatter_count"`
	FreeSpinsAwarded       int64             `json:"free_spins_awarded"` // 本次spin新赠送的免费次数（触发或再触发）
	Session                *FreeSpinsSession `json:"session,omitempty"`  // spin后的会话状态，会话结束为nil
	AuditTrail             []AuditRecord     `json:"audit_trail"`
}
