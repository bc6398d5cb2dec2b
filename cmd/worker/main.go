package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/notHeisenberg/TakaFlow-Server/internal/config"
	"github.com/notHeisenberg/TakaFlow-Server/internal/infra/mongodb"
)

// TransactionEvent is the JSON payload published by the API on every
// committed transfer.
type TransactionEvent struct {
	Reference  string `json:"reference"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Status     string `json:"status"`
}

func main() {
	cfg := config.Load()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	mongoClient, err := mongo.Connect(clientOptions)
	if err != nil {
		log.Fatalf("failed to create MongoDB client: %v", err)
	}

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect from Mongo: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	log.Println("connected to MongoDB")
	auditRepo := mongodb.NewAuditRepository(mongoClient, cfg.MongoDatabase)

	conn, err := amqp.DialConfig(cfg.RabbitURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "AuditWorker_Consumer",
		},
	})
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("failed to close RabbitMQ connection: %v", err)
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			log.Printf("failed to close RabbitMQ channel: %v", err)
		}
	}()

	// Prefetch one message at a time; the worker acks each write.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to configure QoS: %v", err)
	}

	err = ch.ExchangeDeclare(
		"takaflow_events", // name
		"topic",           // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		log.Fatalf("failed to declare exchange: %v", err)
	}

	q, err := ch.QueueDeclare(
		"audit_queue", // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	// Everything under "transaction." lands in the audit queue.
	err = ch.QueueBind(
		q.Name,
		"transaction.#",
		"takaflow_events",
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("failed to bind queue: %v", err)
	}

	msgs, err := ch.Consume(
		q.Name,         // queue
		"audit_worker", // consumer tag
		false,          // auto-ack: manual so a Mongo failure requeues
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		log.Fatalf("failed to register consumer: %v", err)
	}

	notifyClose := make(chan *amqp.Error)
	ch.NotifyClose(notifyClose)

	log.Printf("worker started, waiting for messages on queue %s", q.Name)

	go func() {
		for {
			select {
			case err := <-notifyClose:
				if err != nil {
					log.Printf("RabbitMQ channel closed: %v", err)
					os.Exit(1)
				}
				return
			case d, ok := <-msgs:
				if !ok {
					log.Println("message channel closed")
					os.Exit(1)
				}

				var event TransactionEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("failed to decode event JSON: %v", err)
					if err := d.Nack(false, false); err != nil {
						log.Printf("failed to nack invalid message: %v", err)
					}
					continue
				}

				auditLog := mongodb.AuditLog{
					Reference:  event.Reference,
					SenderID:   event.SenderID,
					ReceiverID: event.ReceiverID,
					Amount:     event.Amount,
					Fee:        event.Fee,
					Status:     event.Status,
				}

				saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := auditRepo.Save(saveCtx, auditLog); err != nil {
					log.Printf("failed to save audit log: %v", err)
					if err := d.Nack(false, true); err != nil {
						log.Printf("failed to nack message: %v", err)
					}
					cancel()
					continue
				}
				cancel()

				if err := d.Ack(false); err != nil {
					log.Printf("failed to ack message: %v", err)
				}
			}
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	<-stopChan

	log.Println("shutting down worker...")
}
