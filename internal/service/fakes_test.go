package service

import (
	"context"

	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/provider"
	"github.com/infinifab/infinifab/internal/repository"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, u *domain.User) error
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	getByPhoneFn func(ctx context.Context, phone string) (*domain.User, error)
	listFn       func(ctx context.Context, page, pageSize int) ([]domain.User, int64, error)
	listActiveFn func(ctx context.Context) ([]domain.User, error)
	updateFn     func(ctx context.Context, u *domain.User) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if f.getByPhoneFn != nil {
		return f.getByPhoneFn(ctx, phone)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]domain.User, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeQuoteRepo struct {
	createBatchFn func(ctx context.Context, quotes []*domain.Quote) error
	getByIDFn     func(ctx context.Context, id string) (*domain.Quote, error)
	listFn        func(ctx context.Context, page, pageSize int) ([]domain.Quote, int64, error)
	listAllFn     func(ctx context.Context) ([]domain.Quote, error)
	countFn       func(ctx context.Context) (int64, error)
}

func (f *fakeQuoteRepo) CreateBatch(ctx context.Context, quotes []*domain.Quote) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, quotes)
	}
	return nil
}

func (f *fakeQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeQuoteRepo) List(ctx context.Context, page, pageSize int) ([]domain.Quote, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (f *fakeQuoteRepo) ListAll(ctx context.Context) ([]domain.Quote, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeQuoteRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

type fakeMessageRepo struct {
	createFn       func(ctx context.Context, m *domain.Message) error
	hasSentOnDayFn func(ctx context.Context, userID, day string) (bool, error)
	listFn         func(ctx context.Context, params repository.MessageListParams) ([]domain.Message, int64, error)
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	if f.createFn != nil {
		return f.createFn(ctx, m)
	}
	return nil
}

func (f *fakeMessageRepo) HasSentOnDay(ctx context.Context, userID, day string) (bool, error) {
	if f.hasSentOnDayFn != nil {
		return f.hasSentOnDayFn(ctx, userID, day)
	}
	return false, nil
}

func (f *fakeMessageRepo) List(ctx context.Context, params repository.MessageListParams) ([]domain.Message, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

type fakeProvider struct {
	sendFn func(ctx context.Context, to, body string) (*provider.ProviderResponse, error)
}

func (f *fakeProvider) Send(ctx context.Context, to, body string) (*provider.ProviderResponse, error) {
	if f.sendFn != nil {
		return f.sendFn(ctx, to, body)
	}
	return &provider.ProviderResponse{StatusCode: 201, MessageSID: "SM-fake"}, nil
}

type fakeRateLimiter struct {
	waitFn func(ctx context.Context, channel string) error
}

func (f *fakeRateLimiter) Allow(ctx context.Context, channel string) (bool, error) {
	return true, nil
}

func (f *fakeRateLimiter) Wait(ctx context.Context, channel string) error {
	if f.waitFn != nil {
		return f.waitFn(ctx, channel)
	}
	return nil
}
