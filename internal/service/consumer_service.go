package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/entity"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/events"
	pktNats "notely-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EntryActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	logEntry := &entity.ActivityLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		EntryId:   payload.EntryId,
		Action:    entity.ActivityAction(payload.Action),
		Details:   payload.Details,
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityRepository().Create(ctx, logEntry); err != nil {
		log.Printf("[ERROR] Failed to persist activity log: %v", err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// Mirror onto the event bus for downstream consumers. Auxiliary, so
	// failures are logged and the message is still acked.
	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "ENTRY_ACTIVITY",
			Data: map[string]interface{}{
				"user_id":  payload.UserId,
				"entry_id": payload.EntryId,
				"action":   payload.Action,
				"details":  payload.Details,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish ENTRY_ACTIVITY event: %v", err)
		}
	}

	msg.Ack()
}
