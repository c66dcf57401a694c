package starfall

// 游戏基础配置
const _gameID = 19327 // 游戏ID

// 网格配置
const (
	_rowCount int64 = 5 // 行数
	_colCount int64 = 6 // 列数
)

// 符号定义
const (
	_blank    int64 = 0 // 空白符号（消除后占位）
	_amber    int64 = 1 // 琥珀
	_quartz   int64 = 2 // 水晶
	_topaz    int64 = 3 // 黄玉
	_emerald  int64 = 4 // 翡翠
	_sapphire int64 = 5 // 蓝宝石
	_ruby     int64 = 6 // 红宝石
	_crown    int64 = 7 // 星冠
	_wild     int64 = 8 // 百搭(流星)
	_scatter  int64 = 9 // 夺宝(超新星)
)

// 付费符号范围 [1, _crown]
const (
	_minPaySymbol = _amber
	_maxPaySymbol = _crown
)

// 游戏规则配置
const (
	_maxCascadeSteps = 100 // 连消步数上限（超过视为配置错误）
	_moneyPrecision  = 2   // 货币最小单位精度（分）
)

// 子种子标签
const (
	_labelGrid            = "grid"
	_labelCascadePrefix   = "cascade:"
	_labelMultPrefix      = "multiplier:"
	_labelFreeSpinTrigger = "freespins_trigger"
)

// Mode 游戏模式
type Mode string

const (
	ModeBase      Mode = "base"       // 基础模式
	ModeFreeSpins Mode = "free_spins" // 免费模式
)

// ProfileKind 数学模型类型（真钱/试玩完全隔离）
type ProfileKind string

const (
	ProfileReal ProfileKind = "real" // 真钱模型
	ProfileDemo ProfileKind = "demo" // 试玩模型（RTP上调）
)

// 倍数事件的表现用角色（仅供前端展示，不影响数值结果）
var _multiplierCharacters = []string{"comet", "nova", "meteor", "astral"}
