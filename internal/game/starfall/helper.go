package starfall

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// GameID 游戏ID（订单与审计消息使用）
func GameID() int64 { return _gameID }

// GridRows 网格行数
func GridRows() int64 { return _rowCount }

// GridCols 网格列数
func GridCols() int64 { return _colCount }

// VerifyAuditSeed 校验审计记录的子种子确实由顶层种子按标签派生
func VerifyAuditSeed(topSeed string, rec AuditRecord) bool {
	return deriveSeed(topSeed, rec.Label) == rec.Seed
}

// PublicProfile 对外公开的模型摘要（不含权重与概率）
type PublicProfile struct {
	Kind                ProfileKind
	GameID              int64
	FreeSpinsAward      int64
	RetriggerAward      int64
	TriggerScatterCount int64
}

// PublicProfiles 列出全部已加载模型的公开摘要
func PublicProfiles() []PublicProfile {
	out := make([]PublicProfile, 0, len(_profiles))
	for _, kind := range []ProfileKind{ProfileReal, ProfileDemo} {
		p := _profiles[kind]
		out = append(out, PublicProfile{
			Kind:                kind,
			GameID:              p.GameID,
			FreeSpinsAward:      p.FreeSpinsAward,
			RetriggerAward:      p.RetriggerAward,
			TriggerScatterCount: p.TriggerScatterCount,
		})
	}
	return out
}

// gridToString 网格转字符串（调试输出）
func gridToString(g *Grid) string {
	var b strings.Builder
	for r := int64(0); r < _rowCount; r++ {
		b.WriteString("[")
		for c := int64(0); c < _colCount; c++ {
			b.WriteString(strconv.FormatInt(g[r][c], 10))
			if c < _colCount-1 {
				b.WriteString(",")
			}
		}
		b.WriteString("]")
		if r < _rowCount-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ToJSON json string
func ToJSON(v any) string {
	j, err := jsoniter.MarshalToString(v)
	if err != nil {
		return err.Error()
	}
	return j
}
