package starfall

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ResolveSpin 单次spin的完整解算（纯函数）：
// 同一组输入永远得到逐位一致的结果；不触碰存储、网络与任何全局状态。
// 返回spin结果与更新后的会话（会话结束或从未激活时为nil）。
func ResolveSpin(req SpinRequest) (*SpinOutcome, *FreeSpinsSession, error) {
	profile, err := getProfile(req.Profile)
	if err != nil {
		return nil, nil, err
	}
	if err := validateRequest(&req); err != nil {
		return nil, nil, err
	}

	s := &spinState{
		req:     req,
		profile: profile,
	}
	if req.Session != nil {
		cp := *req.Session
		s.session = &cp
	}

	// 免费模式入场先扣次数，并以会话已累计倍数为本次spin的倍数底值
	if req.Mode == ModeFreeSpins {
		if err := s.session.enterSpin(); err != nil {
			return nil, nil, err
		}
		s.priorMultiplier = s.session.AccumulatedMultiplier
	}

	if err := s.generateInitialGrid(); err != nil {
		return nil, nil, err
	}
	if err := s.runCascades(); err != nil {
		return nil, nil, err
	}
	if err := s.settle(); err != nil {
		return nil, nil, err
	}
	return s.outcome, s.sessionOut, nil
}

// validateRequest 入参校验：任何违规在第一次随机数生成前拒绝，不产生半成品状态
func validateRequest(req *SpinRequest) error {
	if !req.Bet.IsPositive() {
		return newValidationError("bet", "must be positive, got %s", req.Bet)
	}
	if !req.Bet.Equal(req.Bet.Round(_moneyPrecision)) {
		return newValidationError("bet", "%s not representable in minor units", req.Bet)
	}
	if req.Seed == "" {
		return newValidationError("seed", "must not be empty")
	}
	switch req.Mode {
	case ModeBase:
		if req.Session != nil && req.Session.Active {
			return newValidationError("mode", "base spin requested while free spins session is active")
		}
	case ModeFreeSpins:
		if req.Session == nil {
			return newValidationError("session", "free spins mode requires an active session")
		}
	default:
		return newValidationError("mode", "unknown mode %q", req.Mode)
	}
	return nil
}

// spinState 单次解算的工作数据（仅存活于一次ResolveSpin调用内）
type spinState struct {
	req     SpinRequest
	profile *mathProfile

	grid            Grid
	steps           []*CascadeStep
	baseWin         decimal.Decimal
	eventSum        int64 // 本次spin新触发的倍数事件之和（加法，永不相乘）
	priorMultiplier int64 // 免费会话入场前已累计的倍数

	session    *FreeSpinsSession // 本次spin内更新的会话副本
	sessionOut *FreeSpinsSession
	audit      []AuditRecord
	outcome    *SpinOutcome
}

func (s *spinState) addAudit(label, seed, format string, args ...any) {
	s.audit = append(s.audit, AuditRecord{Label: label, Seed: seed, Outcome: fmt.Sprintf(format, args...)})
}

func (s *spinState) generateInitialGrid() error {
	seed := deriveSeed(s.req.Seed, _labelGrid)
	grid, err := s.profile.fillGrid(newRoller(seed), s.req.Mode)
	if err != nil {
		return err
	}
	s.grid = grid
	s.baseWin = decimal.Zero
	s.addAudit(_labelGrid, seed, "initial grid %dx%d, scatters=%d", _rowCount, _colCount, countScatter(&grid))
	return nil
}

// runCascades 连消主循环：找簇→结算→消除→下落→补充，直到无簇可消
func (s *spinState) runCascades() error {
	for stepIdx := int64(0); ; stepIdx++ {
		if stepIdx >= _maxCascadeSteps {
			return newInvariantError(s.req.Seed, stepIdx, "cascade step ceiling %d exceeded", _maxCascadeSteps)
		}

		clusters, err := findClusters(&s.grid, s.profile)
		if err != nil {
			return err
		}
		if len(clusters) == 0 {
			return nil
		}

		step := &CascadeStep{Index: stepIdx, GridBefore: s.grid, StepWin: decimal.Zero}
		for _, c := range clusters {
			payRate, err := s.profile.clusterPay(c.symbol, int64(len(c.cells)))
			if err != nil {
				return err
			}
			pay := s.req.Bet.Mul(payRate)
			step.Clusters = append(step.Clusters, ClusterWin{
				Symbol: c.symbol,
				Cells:  c.cells,
				Size:   int64(len(c.cells)),
				Pay:    pay,
			})
			step.StepWin = step.StepWin.Add(pay)
		}
		// 基础赢分逐簇精确累加，四舍五入只在spin末尾做一次
		s.baseWin = s.baseWin.Add(step.StepWin)

		removeClusters(&s.grid, clusters)
		step.GridAfterRemoval = s.grid

		collapse(&s.grid)
		if !checkColumnConservation(&step.GridAfterRemoval, &s.grid) {
			return newInvariantError(s.req.Seed, stepIdx, "column mass conservation failed")
		}

		refillSeed := deriveSeed(s.req.Seed, fmt.Sprintf("%s%d", _labelCascadePrefix, stepIdx))
		if err := s.profile.refill(&s.grid, newRoller(refillSeed), s.req.Mode); err != nil {
			return err
		}
		if hasBlank(&s.grid) {
			return newInvariantError(s.req.Seed, stepIdx, "blank cells left after refill")
		}
		step.GridAfter = s.grid
		s.addAudit(fmt.Sprintf("%s%d", _labelCascadePrefix, stepIdx), refillSeed,
			"clusters=%d step_win=%s", len(clusters), step.StepWin)

		event, err := s.profile.tryTriggerMultiplier(stepIdx, s.req.Seed, s.req.Mode)
		if err != nil {
			return err
		}
		step.Multiplier = event
		if event.Triggered {
			s.eventSum += event.Value
			s.addAudit(fmt.Sprintf("%s%d", _labelMultPrefix, stepIdx), event.SourceSeed,
				"triggered value=%d position=%d,%d character=%s",
				event.Value, event.Position.Row, event.Position.Col, event.Character)
		} else {
			s.addAudit(fmt.Sprintf("%s%d", _labelMultPrefix, stepIdx), event.SourceSeed, "not triggered")
		}

		s.steps = append(s.steps, step)
	}
}

// settle 终盘结算：夺宝计数、免费会话迁移、赢分合成
func (s *spinState) settle() error {
	scatterCount := countScatter(&s.grid)
	triggerSeed := deriveSeed(s.req.Seed, _labelFreeSpinTrigger)

	awarded := int64(0)
	switch s.req.Mode {
	case ModeBase:
		s.session = nil
		if scatterCount >= s.profile.TriggerScatterCount {
			awarded = s.profile.FreeSpinsAward
			s.session = newFreeSpinsSession(awarded)
		}
		s.addAudit(_labelFreeSpinTrigger, triggerSeed, "scatters=%d awarded=%d", scatterCount, awarded)
	case ModeFreeSpins:
		if scatterCount >= s.profile.TriggerScatterCount {
			awarded = s.profile.RetriggerAward
			s.session.retrigger(awarded)
		}
		// 无论本次是否有新事件，累计倍数都显式前滚
		s.session.carryForward(s.eventSum)
		if s.session.AccumulatedMultiplier < s.priorMultiplier {
			return newInvariantError(s.req.Seed, int64(len(s.steps)), "accumulator decreased: %d -> %d",
				s.priorMultiplier, s.session.AccumulatedMultiplier)
		}
		s.addAudit(_labelFreeSpinTrigger, triggerSeed, "scatters=%d awarded=%d accumulated=%d",
			scatterCount, awarded, s.session.AccumulatedMultiplier)
		if s.session.ended() {
			s.session = nil
		}
	}
	s.sessionOut = s.session

	// 倍数总和为加法：基础模式取本次事件和，免费模式取入场前累计值+本次事件和
	appliedTotal := s.eventSum
	if s.req.Mode == ModeFreeSpins {
		appliedTotal = s.priorMultiplier + s.eventSum
	}
	if appliedTotal < 0 {
		return newInvariantError(s.req.Seed, int64(len(s.steps)), "negative multiplier total %d", appliedTotal)
	}

	effective := appliedTotal
	if effective < 1 {
		effective = 1
	}
	totalWin := s.baseWin.Mul(decimal.NewFromInt(effective)).Round(_moneyPrecision)

	s.outcome = &SpinOutcome{
		GameID:                 s.profile.GameID,
		Seed:                   s.req.Seed,
		Mode:                   s.req.Mode,
		Profile:                s.req.Profile,
		InitialGrid:            gridOf(s.steps, s.grid),
		Steps:                  s.steps,
		BaseWin:                s.baseWin,
		AppliedMultiplierTotal: appliedTotal,
		TotalWin:               totalWin,
		ScatterCount:           scatterCount,
		FreeSpinsAwarded:       awarded,
		Session:                s.sessionOut,
		AuditTrail:             s.audit,
	}
	return nil
}

// gridOf 初始网格快照：有连消步时取第一步消除前的网格，否则就是终盘
func gridOf(steps []*CascadeStep, settled Grid) Grid {
	if len(steps) > 0 {
		return steps[0].GridBefore
	}
	return settled
}

func hasBlank(g *Grid) bool {
	for _, row := range g {
		for _, symbol := range row {
			if symbol == _blank {
				return true
			}
		}
	}
	return false
}
