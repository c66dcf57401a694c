package data

import (
	"fmt"
	"net/url"

	"starfall/internal/conf"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	kredis "github.com/yola1107/kratos/v2/library/db/redis"
	kxorm "github.com/yola1107/kratos/v2/library/db/xorm"
	"github.com/yola1107/kratos/v2/log"
	"xorm.io/xorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewRedis, NewMysql, NewAuditPublisher, NewSessionRepo, NewOrderRepo)

// Data .
type Data struct {
	db  *xorm.Engine
	rdb redis.UniversalClient
	pub *AuditPublisher
}

// NewData .
func NewData(c *conf.Data, logger log.Logger, db *xorm.Engine, rdb redis.UniversalClient, pub *AuditPublisher) (*Data, func(), error) {
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
	}
	return &Data{
		db:  db,
		rdb: rdb,
		pub: pub,
	}, cleanup, nil
}

func NewRedis(c *conf.Data, logger log.Logger) redis.UniversalClient {
	return kredis.NewClient(kredis.WithAddress(c.Redis.Addr))
}

func NewMysql(c *conf.Data, logger log.Logger) (*xorm.Engine, func(), error) {
	engine, err := kxorm.NewEngine(
		kxorm.WithDriver(c.Database.Driver),
		kxorm.WithDataSource(c.Database.Source),
	)
	if err != nil {
		return nil, nil, err
	}
	return engine, func() { engine.Close() }, nil
}

// AuditPublisher publishes resolved spin audit trails to a direct exchange.
type AuditPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAuditPublisher dials rabbitmq and declares the audit exchange.
func NewAuditPublisher(c *conf.Data, logger log.Logger) (*AuditPublisher, func(), error) {
	addr := fmt.Sprintf("amqp://%s:%s@%s:%d/%s",
		url.QueryEscape(c.Rabbitmq.Username),
		url.QueryEscape(c.Rabbitmq.Password),
		c.Rabbitmq.Host, c.Rabbitmq.Port,
		url.QueryEscape(c.Rabbitmq.Vhost),
	)
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	if err := ch.ExchangeDeclare(c.Rabbitmq.Exchange, "direct", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}
	pub := &AuditPublisher{conn: conn, ch: ch, exchange: c.Rabbitmq.Exchange}
	cleanup := func() {
		ch.Close()
		conn.Close()
	}
	return pub, cleanup, nil
}

// Publish sends one persistent JSON message.
func (p *AuditPublisher) Publish(routingKey string, body []byte) error {
	return p.ch.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
