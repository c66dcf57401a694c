package biz

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	v1 "starfall/api/game/v1"
	"starfall/internal/game/starfall"

	"github.com/shopspring/decimal"
	kerrors "github.com/yola1107/kratos/v2/errors"
	"github.com/yola1107/kratos/v2/log"
)

// SpinOrder is the persisted record of one resolved spin.
type SpinOrder struct {
	ID              int64           `xorm:"pk autoincr 'id'"`
	OrderSN         string          `xorm:"varchar(64) notnull unique 'order_sn'"`
	MemberID        int64           `xorm:"notnull index 'member_id'"`
	GameID          int64           `xorm:"notnull 'game_id'"`
	Profile         string          `xorm:"varchar(16) notnull 'profile'"`
	Mode            string          `xorm:"varchar(16) notnull 'mode'"`
	Seed            string          `xorm:"varchar(128) notnull 'seed'"`
	Bet             decimal.Decimal `xorm:"decimal(20,2) notnull 'bet'"`
	Win             decimal.Decimal `xorm:"decimal(20,2) notnull 'win'"`
	MultiplierTotal int64           `xorm:"notnull 'multiplier_total'"`
	ScatterCount    int64           `xorm:"notnull 'scatter_count'"`
	Steps           string          `xorm:"longtext 'steps'"`
	CreatedAt       time.Time       `xorm:"created 'created_at'"`
}

// TableName xorm table name.
func (SpinOrder) TableName() string { return "starfall_spin_order" }

// SessionRepo persists the per-player free spins session. Load returns nil
// when no session exists. Lock is the per-player mutual exclusion guard: two
// concurrent spins for one player must never interleave on the accumulator.
type SessionRepo interface {
	Load(ctx context.Context, memberID int64) (*starfall.FreeSpinsSession, error)
	Save(ctx context.Context, memberID int64, s *starfall.FreeSpinsSession) error
	Clear(ctx context.Context, memberID int64) error
	Lock(ctx context.Context, memberID int64) (func(), error)
}

// OrderRepo persists spin orders and publishes audit trails for the
// offline replay verifier.
type OrderRepo interface {
	Save(ctx context.Context, order *SpinOrder) error
	PublishAudit(ctx context.Context, order *SpinOrder, outcome *starfall.SpinOutcome) error
}

// SpinUsecase drives one spin end to end: guard, load session, resolve,
// write session forward, record order. The engine itself stays pure.
type SpinUsecase struct {
	sessions SessionRepo
	orders   OrderRepo
	log      *log.Helper
}

// NewSpinUsecase new a Spin usecase.
func NewSpinUsecase(sessions SessionRepo, orders OrderRepo, logger log.Logger) *SpinUsecase {
	return &SpinUsecase{sessions: sessions, orders: orders, log: log.NewHelper(logger)}
}

// Spin resolves one bet for the given player. Seed is optional; when empty a
// fresh server seed is generated. The mode is decided by the stored session:
// an active session forces free_spins, anything else is a base spin.
func (uc *SpinUsecase) Spin(ctx context.Context, memberID int64, bet decimal.Decimal, profile, seed string) (*SpinOrder, *starfall.SpinOutcome, error) {
	if memberID <= 0 {
		return nil, nil, kerrors.BadRequest(v1.ReasonInvalidArgument, "member_id must be positive")
	}

	unlock, err := uc.sessions.Lock(ctx, memberID)
	if err != nil {
		return nil, nil, kerrors.Conflict(v1.ReasonSpinInProgress, "spin already in progress")
	}
	defer unlock()

	session, err := uc.sessions.Load(ctx, memberID)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("load session: member=%d err=%v", memberID, err)
		return nil, nil, kerrors.InternalServer(v1.ReasonInternal, "load session failed")
	}

	mode := starfall.ModeBase
	if session != nil && session.Active {
		mode = starfall.ModeFreeSpins
	}
	if seed == "" {
		seed = newServerSeed()
	}

	outcome, next, err := starfall.ResolveSpin(starfall.SpinRequest{
		Bet:     bet,
		Seed:    seed,
		Mode:    mode,
		Profile: starfall.ProfileKind(profile),
		Session: session,
	})
	if err != nil {
		return nil, nil, mapEngineError(err)
	}

	// 会话必须先于订单写回：订单落库失败可由审计消息补偿，会话丢失不可补偿
	if next != nil {
		err = uc.sessions.Save(ctx, memberID, next)
	} else {
		err = uc.sessions.Clear(ctx, memberID)
	}
	if err != nil {
		uc.log.WithContext(ctx).Errorf("write session: member=%d err=%v", memberID, err)
		return nil, nil, kerrors.InternalServer(v1.ReasonInternal, "persist session failed")
	}

	order := &SpinOrder{
		OrderSN:         newOrderSN(outcome.GameID, memberID),
		MemberID:        memberID,
		GameID:          outcome.GameID,
		Profile:         string(outcome.Profile),
		Mode:            string(outcome.Mode),
		Seed:            seed,
		Bet:             bet,
		Win:             outcome.TotalWin,
		MultiplierTotal: outcome.AppliedMultiplierTotal,
		ScatterCount:    outcome.ScatterCount,
		Steps:           starfall.ToJSON(outcome.Steps),
	}
	if err := uc.orders.Save(ctx, order); err != nil {
		uc.log.WithContext(ctx).Errorf("save order: sn=%s err=%v", order.OrderSN, err)
		return nil, nil, kerrors.InternalServer(v1.ReasonInternal, "persist order failed")
	}
	if err := uc.orders.PublishAudit(ctx, order, outcome); err != nil {
		// 审计消息丢失可离线重放补齐，不阻断结算
		uc.log.WithContext(ctx).Warnf("publish audit: sn=%s err=%v", order.OrderSN, err)
	}
	return order, outcome, nil
}

// Replay re-resolves a historical spin from its complete input set. Pure;
// nothing is persisted or published.
func (uc *SpinUsecase) Replay(ctx context.Context, req starfall.SpinRequest) (*starfall.SpinOutcome, *starfall.FreeSpinsSession, error) {
	outcome, session, err := starfall.ResolveSpin(req)
	if err != nil {
		return nil, nil, mapEngineError(err)
	}
	return outcome, session, nil
}

// Profiles lists the public math profile summaries.
func (uc *SpinUsecase) Profiles() []starfall.PublicProfile {
	return starfall.PublicProfiles()
}

// mapEngineError translates typed engine failures onto the transport error
// model without losing the reason class.
func mapEngineError(err error) error {
	var vErr *starfall.ValidationError
	if errors.As(err, &vErr) {
		return kerrors.BadRequest(v1.ReasonInvalidArgument, vErr.Error())
	}
	var cErr *starfall.ConfigError
	if errors.As(err, &cErr) {
		return kerrors.InternalServer(v1.ReasonConfigBroken, cErr.Error())
	}
	var iErr *starfall.InvariantError
	if errors.As(err, &iErr) {
		return kerrors.InternalServer(v1.ReasonInvariantBroken, iErr.Error())
	}
	return kerrors.InternalServer(v1.ReasonInternal, err.Error())
}

// newServerSeed 32-byte crypto random hex seed.
func newServerSeed() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func newOrderSN(gameID, memberID int64) string {
	return fmt.Sprintf("%d-%d-%d", gameID, memberID, time.Now().UnixNano())
}
