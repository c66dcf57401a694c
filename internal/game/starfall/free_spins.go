package starfall

// 免费回合会话状态机：
// Inactive -> Triggered(奖励次数) -> Active(剩余次数, 累计倍数)
//          -> Active(再触发延长) -> Ended
// 累计倍数从1起步，会话内只增不减，直到会话结束才随会话一起销毁。

// newFreeSpinsSession 基础模式夺宝达标后创建会话
func newFreeSpinsSession(award int64) *FreeSpinsSession {
	return &FreeSpinsSession{
		Active:                true,
		SpinsRemaining:        award,
		AccumulatedMultiplier: 1,
	}
}

// enterSpin 免费spin入场：先扣减剩余次数
func (s *FreeSpinsSession) enterSpin() error {
	if !s.Active {
		return newValidationError("session", "free spins session not active")
	}
	if s.SpinsRemaining <= 0 {
		return newValidationError("session", "no free spins remaining")
	}
	if s.AccumulatedMultiplier < 1 {
		return newValidationError("session", "accumulated multiplier %d below 1", s.AccumulatedMultiplier)
	}
	s.SpinsRemaining--
	return nil
}

// retrigger 再触发：延长剩余次数，累计倍数不受影响
func (s *FreeSpinsSession) retrigger(award int64) {
	s.SpinsRemaining += award
}

// carryForward 无条件前滚累计倍数：本次spin无新事件时和为0，旧值原样写回，绝不重置
func (s *FreeSpinsSession) carryForward(eventSum int64) {
	s.AccumulatedMultiplier += eventSum
}

// ended 剩余次数耗尽且无再触发时会话结束
func (s *FreeSpinsSession) ended() bool {
	return s.SpinsRemaining <= 0
}
