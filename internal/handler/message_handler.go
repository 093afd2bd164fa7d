package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/repository"
)

type MessageService interface {
	List(ctx context.Context, params repository.MessageListParams) ([]domain.Message, int64, error)
}

type MessageHandler struct {
	service MessageService
}

func NewMessageHandler(service MessageService) (*MessageHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("message service is required")
	}
	return &MessageHandler{service: service}, nil
}

func RegisterMessageRoutes(router fiber.Router, service MessageService) error {
	h, err := NewMessageHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Get("/messages", h.ListMessages)

	return nil
}

type messageResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	QuoteID       string    `json:"quoteId"`
	DeliveryDay   string    `json:"deliveryDay"`
	Status        string    `json:"status"`
	ProviderSID   *string   `json:"providerSid,omitempty"`
	FailureReason *string   `json:"failureReason,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}

type listMessagesResponse struct {
	Data []messageResponse `json:"data"`
	Meta listMeta          `json:"meta"`
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	params, err := parseMessageListParams(c)
	if err != nil {
		return toHTTPError(err)
	}

	messages, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]messageResponse, 0, len(messages))
	for _, message := range messages {
		m := message
		responses = append(responses, toMessageResponse(&m))
	}

	return c.Status(fiber.StatusOK).JSON(listMessagesResponse{
		Data: responses,
		Meta: listMeta{
			Page:     params.Page,
			PageSize: params.PageSize,
			Total:    total,
		},
	})
}

func parseMessageListParams(c *fiber.Ctx) (repository.MessageListParams, error) {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return repository.MessageListParams{}, err
	}

	params := repository.MessageListParams{
		Page:     page,
		PageSize: pageSize,
	}

	if rawUserID := strings.TrimSpace(c.Query("userId")); rawUserID != "" {
		params.UserID = &rawUserID
	}

	if rawStatus := strings.TrimSpace(c.Query("status")); rawStatus != "" {
		status, err := domain.ParseDeliveryStatusFromString(rawStatus)
		if err != nil {
			return repository.MessageListParams{}, err
		}
		params.Status = &status
	}

	from, err := parseRFC3339Query(c.Query("from"), "from")
	if err != nil {
		return repository.MessageListParams{}, err
	}
	to, err := parseRFC3339Query(c.Query("to"), "to")
	if err != nil {
		return repository.MessageListParams{}, err
	}
	params.From = from
	params.To = to

	return params, nil
}

func parseRFC3339Query(value string, field string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC3339", domain.ErrValidation, field)
	}
	return &t, nil
}

func toMessageResponse(m *domain.Message) messageResponse {
	if m == nil {
		return messageResponse{}
	}

	return messageResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		QuoteID:       m.QuoteID,
		DeliveryDay:   m.DeliveryDay,
		Status:        m.Status.String(),
		ProviderSID:   m.ProviderSID,
		FailureReason: m.FailureReason,
		SentAt:        m.SentAt,
	}
}
