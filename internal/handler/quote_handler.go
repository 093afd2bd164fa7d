package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/infinifab/infinifab/internal/domain"
)

type QuoteService interface {
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context, page int, pageSize int) ([]domain.Quote, int64, error)
}

type QuoteHandler struct {
	service QuoteService
}

func NewQuoteHandler(service QuoteService) (*QuoteHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("quote service is required")
	}
	return &QuoteHandler{service: service}, nil
}

func RegisterQuoteRoutes(router fiber.Router, service QuoteService) error {
	h, err := NewQuoteHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Get("/quotes", h.ListQuotes)
	v1.Get("/quotes/:id", h.GetQuote)

	return nil
}

type quoteResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

type listQuotesResponse struct {
	Data []quoteResponse `json:"data"`
	Meta listMeta        `json:"meta"`
}

func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	quote, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toQuoteResponse(quote))
}

func (h *QuoteHandler) ListQuotes(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return toHTTPError(err)
	}

	quotes, total, err := h.service.List(c.Context(), page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]quoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		q := quote
		responses = append(responses, toQuoteResponse(&q))
	}

	return c.Status(fiber.StatusOK).JSON(listQuotesResponse{
		Data: responses,
		Meta: listMeta{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	if q == nil {
		return quoteResponse{}
	}

	return quoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}
