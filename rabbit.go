package main

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Rabbit publica el resumen de la corrida. Opcional: con RABBITMQ_URL
// vacío devuelve nil y todos los métodos son no-op.
type Rabbit struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewRabbit(url, queue string) (*Rabbit, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Rabbit{conn: conn, ch: ch, queue: queue}, nil
}

func (r *Rabbit) Close() {
	if r == nil {
		return
	}
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

func (r *Rabbit) PublishResult(ctx context.Context, res RunResult) error {
	if r == nil || r.ch == nil {
		return nil
	}
	body, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return r.ch.PublishWithContext(ctx, "", r.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
}
