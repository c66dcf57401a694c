package data

import (
	"context"

	"starfall/internal/biz"
	"starfall/internal/game/starfall"

	jsoniter "github.com/json-iterator/go"
	"github.com/yola1107/kratos/v2/log"
)

const auditRoutingKey = "starfall.spin.audit"

type orderRepo struct {
	data *Data
	log  *log.Helper
}

// NewOrderRepo .
func NewOrderRepo(data *Data, logger log.Logger) biz.OrderRepo {
	return &orderRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *orderRepo) Save(ctx context.Context, order *biz.SpinOrder) error {
	_, err := r.data.db.Context(ctx).Insert(order)
	return err
}

// auditMessage 审计消息：订单号+完整spin输入输出，离线验证器凭种子重放比对
type auditMessage struct {
	OrderSN  string                `json:"order_sn"`
	MemberID int64                 `json:"member_id"`
	Bet      string                `json:"bet"`
	Outcome  *starfall.SpinOutcome `json:"outcome"`
}

func (r *orderRepo) PublishAudit(ctx context.Context, order *biz.SpinOrder, outcome *starfall.SpinOutcome) error {
	body, err := jsoniter.Marshal(&auditMessage{
		OrderSN:  order.OrderSN,
		MemberID: order.MemberID,
		Bet:      order.Bet.StringFixed(2),
		Outcome:  outcome,
	})
	if err != nil {
		return err
	}
	return r.data.pub.Publish(auditRoutingKey, body)
}
