package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"starfall/internal/biz"
	"starfall/internal/game/starfall"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/yola1107/kratos/v2/log"
)

const (
	sessionTTL  = 90 * 24 * time.Hour // 场景数据缓存90天
	spinLockTTL = 10 * time.Second
)

var sceneKeyPrefix = fmt.Sprintf("starfall:scene:%d", starfall.GameID())

type sessionRepo struct {
	data *Data
	log  *log.Helper
}

// NewSessionRepo .
func NewSessionRepo(data *Data, logger log.Logger) biz.SessionRepo {
	return &sessionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *sessionRepo) sceneKey(memberID int64) string {
	return fmt.Sprintf("%s:%d", sceneKeyPrefix, memberID)
}

func (r *sessionRepo) lockKey(memberID int64) string {
	return fmt.Sprintf("starfall:betlock:%d:%d", starfall.GameID(), memberID)
}

// Load 无会话时返回nil，损坏的场景数据按错误上抛而不是静默清掉
func (r *sessionRepo) Load(ctx context.Context, memberID int64) (*starfall.FreeSpinsSession, error) {
	v, err := r.data.rdb.Get(ctx, r.sceneKey(memberID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	session := &starfall.FreeSpinsSession{}
	if err := jsoniter.UnmarshalFromString(v, session); err != nil {
		return nil, fmt.Errorf("corrupt session for member %d: %w", memberID, err)
	}
	return session, nil
}

func (r *sessionRepo) Save(ctx context.Context, memberID int64, s *starfall.FreeSpinsSession) error {
	v, err := jsoniter.MarshalToString(s)
	if err != nil {
		return err
	}
	return r.data.rdb.Set(ctx, r.sceneKey(memberID), v, sessionTTL).Err()
}

func (r *sessionRepo) Clear(ctx context.Context, memberID int64) error {
	return r.data.rdb.Del(ctx, r.sceneKey(memberID)).Err()
}

// Lock 每玩家互斥：同一玩家的并发spin不得交错修改会话
func (r *sessionRepo) Lock(ctx context.Context, memberID int64) (func(), error) {
	key := r.lockKey(memberID)
	ok, err := r.data.rdb.SetNX(ctx, key, 1, spinLockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("member %d spin lock busy", memberID)
	}
	return func() {
		if err := r.data.rdb.Del(context.Background(), key).Err(); err != nil {
			r.log.Warnf("release spin lock: member=%d err=%v", memberID, err)
		}
	}, nil
}
