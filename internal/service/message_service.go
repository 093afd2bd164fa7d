package service

import (
	"context"
	"fmt"

	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/repository"
)

// MessageService is the read-only delivery history surface. The ledger is
// written exclusively by the scheduler; nothing here mutates it.
type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) (*MessageService, error) {
	if messages == nil {
		return nil, fmt.Errorf("message repository is required")
	}
	return &MessageService{messages: messages}, nil
}

func (s *MessageService) List(ctx context.Context, params repository.MessageListParams) ([]domain.Message, int64, error) {
	return s.messages.List(ctx, params)
}
