package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nlefevre/gocommerce/config"
	"github.com/nlefevre/gocommerce/pkg/helpers"
	"github.com/nlefevre/gocommerce/pkg/mailer"
)

// The worker drains the email queue and delivers through Mailgun. Messages
// that fail to send are requeued once; poison messages (undecodable) are
// dropped so they cannot wedge the queue.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.WithError(err).Fatal("rabbitmq dial failed")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Fatal("rabbitmq channel failed")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		logger.WithError(err).Fatal("queue declare failed")
	}
	if err := ch.Qos(5, 0, false); err != nil {
		logger.WithError(err).Fatal("qos failed")
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.WithError(err).Fatal("consume failed")
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithField("queue", cfg.RabbitMQEmailQueue).Info("email worker consuming")
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopping")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			var job mailer.EmailJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				logger.WithError(err).Warn("dropping undecodable email job")
				_ = d.Nack(false, false)
				continue
			}
			if !cfg.MailSendEnabled {
				logger.WithField("to", job.To).Info("mail sending disabled, acking without delivery")
				_ = d.Ack(false)
				continue
			}
			if err := mg.Send(ctx, job.To, job.Subject, job.Text, job.HTML); err != nil {
				logger.WithError(err).WithField("to", job.To).Error("mailgun send failed")
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			logger.WithField("to", job.To).Info("email delivered")
			_ = d.Ack(false)
		}
	}
}
