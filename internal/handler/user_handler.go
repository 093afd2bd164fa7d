package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 100
)

type UserService interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page int, pageSize int) ([]domain.User, int64, error)
	Update(ctx context.Context, id string, update service.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) (*UserHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("user service is required")
	}
	return &UserHandler{service: service}, nil
}

func RegisterUserRoutes(router fiber.Router, service UserService) error {
	h, err := NewUserHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Post("/users", h.RegisterUser)
	v1.Get("/users", h.ListUsers)
	v1.Get("/users/:id", h.GetUser)
	v1.Put("/users/:id", h.UpdateUser)
	v1.Delete("/users/:id", h.DeleteUser)

	return nil
}

type registerUserRequest struct {
	Phone         string `json:"phone"`
	Timezone      string `json:"timezone"`
	PreferredTime string `json:"preferredTime"`
}

type updateUserRequest struct {
	Timezone      *string `json:"timezone"`
	PreferredTime *string `json:"preferredTime"`
	IsActive      *bool   `json:"isActive"`
}

type userResponse struct {
	ID            string    `json:"id"`
	Phone         string    `json:"phone"`
	Timezone      string    `json:"timezone"`
	PreferredTime string    `json:"preferredTime"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
	Meta listMeta       `json:"meta"`
}

type listMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var req registerUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user := domain.User{
		Phone:         strings.TrimSpace(req.Phone),
		Timezone:      strings.TrimSpace(req.Timezone),
		PreferredTime: strings.TrimSpace(req.PreferredTime),
	}

	created, err := h.service.Register(c.Context(), &user)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(created))
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	user, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(user))
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, pageSize, err := parsePagination(c)
	if err != nil {
		return toHTTPError(err)
	}

	users, total, err := h.service.List(c.Context(), page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		u := user
		responses = append(responses, toUserResponse(&u))
	}

	return c.Status(fiber.StatusOK).JSON(listUsersResponse{
		Data: responses,
		Meta: listMeta{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	id := strings.TrimSpace(c.Params("id"))
	updated, err := h.service.Update(c.Context(), id, service.UserUpdate{
		Timezone:      req.Timezone,
		PreferredTime: req.PreferredTime,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toUserResponse(updated))
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if err := h.service.Delete(c.Context(), id); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parsePagination(c *fiber.Ctx) (int, int, error) {
	page := c.QueryInt("page", defaultPage)
	pageSize := c.QueryInt("pageSize", defaultPageSize)

	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, fmt.Errorf("%w: pageSize must be between 1 and %d", domain.ErrValidation, maxPageSize)
	}

	return page, pageSize, nil
}

func toUserResponse(u *domain.User) userResponse {
	if u == nil {
		return userResponse{}
	}

	return userResponse{
		ID:            u.ID,
		Phone:         u.Phone,
		Timezone:      u.Timezone,
		PreferredTime: u.PreferredTime,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
