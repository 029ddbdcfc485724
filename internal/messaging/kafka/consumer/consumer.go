package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ezra12363/Conge-sub001/internal/balance"
	"github.com/Ezra12363/Conge-sub001/internal/events"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewEmployeeLifecycleReader builds the consumer-group reader for the
// employee topic.
func NewEmployeeLifecycleReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          events.TopicEmployees,
		GroupID:        groupID,
		CommitInterval: time.Second,
		StartOffset:    kafkago.FirstOffset,
	})
}

// ConsumeEmployeeLifecycle seeds the current-year leave balance for every
// newly created employee. Balance creation is idempotent, so replayed
// events are harmless.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	balances balance.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreated
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee.created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		employeeID, err := uuid.Parse(event.EmployeeID)
		if err != nil {
			log.Error("employee.created event carries invalid employee id",
				zap.String("employee_id", event.EmployeeID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		year := time.Now().UTC().Year()
		if _, err := balance.GetOrCreate(ctx, balances, employeeID, year, event.Role, event.Grade); err != nil {
			log.Error("seed leave balance failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Int("year", year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("leave balance seeded from employee.created event",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", year),
		)
	}
}
