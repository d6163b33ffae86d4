package repository

import (
	"context"
	"time"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
	"github.com/Fjodor83/MyFidelityCard/internal/domain/repository"
	"github.com/Fjodor83/MyFidelityCard/internal/usecase/constants"
	"github.com/Fjodor83/MyFidelityCard/pkg/messaging"
)

// FidelityRegisteredEvent 등록 이벤트 페이로드
type FidelityRegisteredEvent struct {
	ID           uint      `json:"id_fidelity"`
	Code         string    `json:"cd_fidelity"`
	Store        string    `json:"store"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventRepository 메시지 버스 이벤트 발행 어댑터
type EventRepository struct {
	publisher messaging.Publisher
	channel   string
}

// NewEventRepository 이벤트 발행 어댑터 생성
func NewEventRepository(publisher messaging.Publisher, channel string) repository.EventPublisher {
	return &EventRepository{
		publisher: publisher,
		channel:   channel,
	}
}

// PublishFidelityRegistered 등록 이벤트 발행
func (e *EventRepository) PublishFidelityRegistered(ctx context.Context, fidelity *entity.Fidelity) error {
	event := FidelityRegisteredEvent{
		ID:           fidelity.ID,
		Code:         fidelity.Code,
		Store:        fidelity.StoreCode,
		Email:        fidelity.Email,
		RegisteredAt: fidelity.CreatedAt,
	}
	return e.publisher.Publish(ctx, e.channel, constants.EventFidelityRegistered, event)
}

// noopEventRepository 이벤트 발행 비활성화
type noopEventRepository struct{}

// NewNoopEventRepository 아무것도 발행하지 않는 구현체
func NewNoopEventRepository() repository.EventPublisher {
	return noopEventRepository{}
}

func (noopEventRepository) PublishFidelityRegistered(context.Context, *entity.Fidelity) error {
	return nil
}
