package repository

import (
	"context"
	"errors"

	"github.com/infinifab/infinifab/internal/domain"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	CreateBatch(ctx context.Context, quotes []*domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	List(ctx context.Context, page int, pageSize int) ([]domain.Quote, int64, error)
	ListAll(ctx context.Context) ([]domain.Quote, error)
	Count(ctx context.Context) (int64, error)
}

type GormQuoteRepo struct {
	db *gorm.DB
}

func NewGormQuoteRepo(db *gorm.DB) *GormQuoteRepo {
	return &GormQuoteRepo{db: db}
}

func (r *GormQuoteRepo) CreateBatch(ctx context.Context, quotes []*domain.Quote) error {
	models := make([]QuoteModel, 0, len(quotes))
	for _, q := range quotes {
		if model := quoteModelFromDomain(q); model != nil {
			models = append(models, *model)
		}
	}

	if len(models) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).CreateInBatches(&models, 100).Error
}

func (r *GormQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	var model QuoteModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return quoteModelToDomain(&model), nil
}

func (r *GormQuoteRepo) List(ctx context.Context, page int, pageSize int) ([]domain.Quote, int64, error) {
	query := r.db.WithContext(ctx).Model(&QuoteModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []QuoteModel
	err := query.
		Order("author ASC, text ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	quotes := make([]domain.Quote, 0, len(models))
	for i := range models {
		quotes = append(quotes, *quoteModelToDomain(&models[i]))
	}

	return quotes, total, nil
}

func (r *GormQuoteRepo) ListAll(ctx context.Context) ([]domain.Quote, error) {
	var models []QuoteModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(models))
	for i := range models {
		quotes = append(quotes, *quoteModelToDomain(&models[i]))
	}

	return quotes, nil
}

func (r *GormQuoteRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&QuoteModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
