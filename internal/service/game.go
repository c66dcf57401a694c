package service

import (
	"context"

	v1 "starfall/api/game/v1"
	"starfall/internal/biz"
	"starfall/internal/game/starfall"

	"github.com/shopspring/decimal"
	kerrors "github.com/yola1107/kratos/v2/errors"
)

// GameService is the starfall game service.
type GameService struct {
	uc *biz.SpinUsecase
}

// NewGameService new a game service.
func NewGameService(uc *biz.SpinUsecase) *GameService {
	return &GameService{uc: uc}
}

// Spin resolves one bet and returns the full outcome.
func (s *GameService) Spin(ctx context.Context, in *v1.SpinRequest) (*v1.SpinReply, error) {
	bet, err := decimal.NewFromString(in.Bet)
	if err != nil {
		return nil, kerrors.BadRequest(v1.ReasonInvalidArgument, "bet is not a decimal: "+in.Bet)
	}
	order, outcome, err := s.uc.Spin(ctx, in.MemberID, bet, in.Profile, in.Seed)
	if err != nil {
		return nil, err
	}
	return &v1.SpinReply{
		OrderSN: order.OrderSN,
		Outcome: outcome,
		Session: outcome.Session,
	}, nil
}

// Replay deterministically re-resolves a historical spin for verification.
func (s *GameService) Replay(ctx context.Context, in *v1.ReplayRequest) (*v1.ReplayReply, error) {
	bet, err := decimal.NewFromString(in.Bet)
	if err != nil {
		return nil, kerrors.BadRequest(v1.ReasonInvalidArgument, "bet is not a decimal: "+in.Bet)
	}
	outcome, session, err := s.uc.Replay(ctx, starfall.SpinRequest{
		Bet:     bet,
		Seed:    in.Seed,
		Mode:    starfall.Mode(in.Mode),
		Profile: starfall.ProfileKind(in.Profile),
		Session: in.Session,
	})
	if err != nil {
		return nil, err
	}
	return &v1.ReplayReply{Outcome: outcome, Session: session}, nil
}

// Profiles lists the public math profile summaries.
func (s *GameService) Profiles(ctx context.Context) (*v1.ProfilesReply, error) {
	var reply v1.ProfilesReply
	for _, p := range s.uc.Profiles() {
		reply.Profiles = append(reply.Profiles, v1.ProfileInfo{
			Profile:           string(p.Kind),
			GameID:            p.GameID,
			Rows:              starfall.GridRows(),
			Cols:              starfall.GridCols(),
			FreeSpinsAward:    p.FreeSpinsAward,
			RetriggerAward:    p.RetriggerAward,
			TriggerScatterMin: p.TriggerScatterCount,
		})
	}
	return &reply, nil
}
