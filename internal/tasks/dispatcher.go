package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"travel-planner/config"

	"github.com/segmentio/kafka-go"
)

// Envelope : сообщение очереди задач
type Envelope struct {
	Name         string          `json:"name"`
	Args         json.RawMessage `json:"args"`
	DispatchedAt time.Time       `json:"dispatched_at"`
}

// MessageWriter : часть kafka.Writer, нужная диспетчеру
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Dispatcher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewDispatcher(writer MessageWriter) *Dispatcher {
	return &Dispatcher{writer: writer, now: time.Now}
}

// NewKafkaWriter : WriteMessages ждет подтверждения лидера, поэтому ошибки брокера
// (в том числе Message Size Too Large) возвращаются вызывающему
func NewKafkaWriter(cfg *config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchBytes:   cfg.MaxMessageBytes,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// EnsureTopic создает топик задач с max.message.bytes из конфигурации.
// Лимит уже существующего топика не меняется
func EnsureTopic(ctx context.Context, cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return errors.New("[Dispatcher] не заданы брокеры kafka")
	}

	var dialer kafka.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("[Dispatcher] ошибка подключения к kafka: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("[Dispatcher] не удалось найти controller: %w", err)
	}
	admin, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("[Dispatcher] ошибка подключения к controller: %w", err)
	}
	defer admin.Close()

	err = admin.CreateTopics(topicConfig(cfg))
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("[Dispatcher] не удалось создать топик %s: %w", cfg.Topic, err)
	}
	return nil
}

func topicConfig(cfg *config.KafkaConfig) kafka.TopicConfig {
	return kafka.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			{ConfigName: "max.message.bytes", ConfigValue: strconv.FormatInt(cfg.MaxMessageBytes, 10)},
		},
	}
}

// Dispatch : ставит задачу в очередь и возвращает ошибку, если брокер ее не принял
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("[Dispatcher] ошибка сериализации аргументов %s: %w", name, err)
	}

	payload, err := json.Marshal(Envelope{Name: name, Args: raw, DispatchedAt: d.now().UTC()})
	if err != nil {
		return fmt.Errorf("[Dispatcher] ошибка сериализации задачи %s: %w", name, err)
	}

	if err := d.writer.WriteMessages(ctx, kafka.Message{Key: []byte(name), Value: payload}); err != nil {
		return fmt.Errorf("[Dispatcher] не удалось отправить задачу %s: %w", name, err)
	}

	slog.Debug("[Dispatcher] задача отправлена", "task", name)
	return nil
}

func (d *Dispatcher) Close() error {
	if err := d.writer.Close(); err != nil {
		return fmt.Errorf("[Dispatcher] ошибка закрытия writer: %w", err)
	}
	return nil
}
