// 审计消息验证客户端：消费spin审计队列，校验审计链里每个子种子
// 都能仅凭顶层种子重新派生，基础模式订单再做一次完整重算比对。
package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"starfall/internal/game/starfall"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
)

const (
	rabbitMQHost     = "127.0.0.1"
	rabbitMQPort     = "5672"
	rabbitMQUser     = "guest"
	rabbitMQPassword = "guest"
	exchangeName     = "starfall-audit"
	queueName        = "starfall-audit-verify"
	routingKey       = "starfall.spin.audit"
)

// buildRabbitMQURL 构建RabbitMQ连接URL（自动编码特殊字符）
func buildRabbitMQURL() string {
	encodedUser := url.QueryEscape(rabbitMQUser)
	encodedPassword := url.QueryEscape(rabbitMQPassword)
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", encodedUser, encodedPassword, rabbitMQHost, rabbitMQPort)
}

type auditMessage struct {
	OrderSN  string                `json:"order_sn"`
	MemberID int64                 `json:"member_id"`
	Bet      string                `json:"bet"`
	Outcome  *starfall.SpinOutcome `json:"outcome"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := consume(ctx); err != nil {
		log.Fatalf("[验证] 退出: %v", err)
	}
}

func consume(ctx context.Context) error {
	conn, err := amqp.Dial(buildRabbitMQURL())
	if err != nil {
		return fmt.Errorf("连接RabbitMQ失败: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("创建通道失败: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("声明交换机失败: %w", err)
	}
	if _, err = ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("声明队列失败: %w", err)
	}
	if err = ch.QueueBind(queueName, routingKey, exchangeName, false, nil); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("注册消费者失败: %w", err)
	}

	log.Println("[验证] 已启动，等待审计消息...")

	for {
		select {
		case <-ctx.Done():
			log.Println("[验证] 已停止")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			verify(msg.Body)
			_ = msg.Ack(false)
		}
	}
}

// verify 重放验证：先核对审计链种子派生，基础模式再整单重算
func verify(body []byte) {
	var m auditMessage
	if err := jsoniter.Unmarshal(body, &m); err != nil {
		log.Printf("[验证] ✗ 消息解析失败: %v", err)
		return
	}
	out := m.Outcome
	if out == nil {
		log.Printf("[验证] ✗ %s: 缺少outcome", m.OrderSN)
		return
	}

	for _, rec := range out.AuditTrail {
		if !starfall.VerifyAuditSeed(out.Seed, rec) {
			log.Printf("[验证] ✗ %s: 标签%s的种子无法重新派生", m.OrderSN, rec.Label)
			return
		}
	}

	// 免费模式订单需要spin前会话才能整单重算，这里只做种子链校验
	if out.Mode == starfall.ModeBase {
		bet, err := decimal.NewFromString(m.Bet)
		if err != nil {
			log.Printf("[验证] ✗ %s: 下注金额非法: %v", m.OrderSN, err)
			return
		}
		replayed, _, err := starfall.ResolveSpin(starfall.SpinRequest{
			Bet:     bet,
			Seed:    out.Seed,
			Mode:    out.Mode,
			Profile: out.Profile,
		})
		if err != nil {
			log.Printf("[验证] ✗ %s: 重算失败: %v", m.OrderSN, err)
			return
		}
		if !replayed.TotalWin.Equal(out.TotalWin) || replayed.AppliedMultiplierTotal != out.AppliedMultiplierTotal {
			log.Printf("[验证] ✗ %s: 重算结果不一致 win=%s/%s mult=%d/%d",
				m.OrderSN, replayed.TotalWin, out.TotalWin,
				replayed.AppliedMultiplierTotal, out.AppliedMultiplierTotal)
			return
		}
	}

	log.Printf("[验证] ✓ %s: member=%d win=%s mult=%d", m.OrderSN, m.MemberID, out.TotalWin, out.AppliedMultiplierTotal)
}
