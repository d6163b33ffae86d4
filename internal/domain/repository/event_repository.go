package repository

import (
	"context"

	"github.com/Fjodor83/MyFidelityCard/internal/domain/entity"
)

// EventPublisher 도메인 이벤트 발행
type EventPublisher interface {
	PublishFidelityRegistered(ctx context.Context, fidelity *entity.Fidelity) error
}
