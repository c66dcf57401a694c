package starfall

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
)

// deriveSeed 种子派生：HMAC-SHA256(父种子, 标签) -> 十六进制子种子
// 同一 (父种子, 标签) 永远得到同一子种子；不同标签互不相关，支持整棵种子树重放
func deriveSeed(parentSeed, label string) string {
	mac := hmac.New(sha256.New, []byte(parentSeed))
	mac.Write([]byte(label))
	return hex.EncodeToString(mac.Sum(nil))
}

// roller 随机数流（由派生种子完全决定，无任何全局状态）
type roller struct {
	seed string
	rng  *rand.Rand
}

// newRoller 用派生种子前16字节初始化PCG流
func newRoller(seed string) *roller {
	sum := sha256.Sum256([]byte(seed))
	hi := binary.BigEndian.Uint64(sum[0:8])
	lo := binary.BigEndian.Uint64(sum[8:16])
	return &roller{seed: seed, rng: rand.New(rand.NewPCG(hi, lo))}
}

// float64 返回 [0,1) 均匀分布
func (r *roller) float64() float64 {
	return r.rng.Float64()
}

// int64n 返回 [0,n) 均匀分布
func (r *roller) int64n(n int64) int64 {
	return r.rng.Int64N(n)
}

// pickWeighted 按权重随机取下标（权重之和必须大于0，由配置校验保证）
func (r *roller) pickWeighted(weights []int64) int {
	total := int64(0)
	for _, w := range weights {
		total += w
	}
	num := r.int64n(total)
	for i, w := range weights {
		if num < w {
			return i
		}
		num -= w
	}
	return len(weights) - 1
}
