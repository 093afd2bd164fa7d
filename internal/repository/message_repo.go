package repository

import (
	"context"
	"time"

	"github.com/infinifab/infinifab/internal/domain"
	"gorm.io/gorm"
)

type MessageListParams struct {
	UserID   *string
	Status   *domain.DeliveryStatus
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// MessageRepository is the delivery ledger: append-only writes, with the
// sent-today probe the due evaluation depends on. Reads go straight to the
// database, so a record committed earlier in the same run is always visible.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	HasSentOnDay(ctx context.Context, userID string, day string) (bool, error)
	List(ctx context.Context, params MessageListParams) ([]domain.Message, int64, error)
}

type GormMessageRepo struct {
	db *gorm.DB
}

func NewGormMessageRepo(db *gorm.DB) *GormMessageRepo {
	return &GormMessageRepo{db: db}
}

func (r *GormMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	model := messageModelFromDomain(m)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if m != nil {
		*m = *messageModelToDomain(model)
	}
	return nil
}

func (r *GormMessageRepo) HasSentOnDay(ctx context.Context, userID string, day string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Where("user_id = ? AND delivery_day = ? AND status = ?", userID, day, domain.DeliverySent).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormMessageRepo) List(ctx context.Context, params MessageListParams) ([]domain.Message, int64, error) {
	query := r.db.WithContext(ctx).Model(&MessageModel{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.From != nil {
		query = query.Where("sent_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("sent_at <= ?", *params.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	pageSize = min(pageSize, 100)

	var models []MessageModel
	err := query.
		Order("sent_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	messages := make([]domain.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *messageModelToDomain(&models[i]))
	}

	return messages, total, nil
}
