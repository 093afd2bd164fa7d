package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/observability"
	"github.com/infinifab/infinifab/internal/provider"
	"github.com/infinifab/infinifab/internal/ratelimit"
	"github.com/infinifab/infinifab/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTickInterval        = time.Hour
	minDispatchConcurrency     = 1
	defaultDispatchConcurrency = 8
	smsChannel                 = "sms"
)

// Scheduler drives the daily delivery loop: on every tick it evaluates
// which active users are due a quote right now, sends through the provider,
// and appends the outcome to the message ledger. All idempotence derives
// from ledger state, so the loop is safely restartable.
type Scheduler struct {
	users       repository.UserRepository
	quotes      repository.QuoteRepository
	messages    repository.MessageRepository
	provider    provider.Provider
	rateLimiter ratelimit.RateLimiter
	logger      *zap.Logger
	metrics     *observability.Metrics
	interval    time.Duration
	concurrency int
	now         func() time.Time
	randIntn    func(n int) int
}

type dispatchItem struct {
	user domain.User
	day  string
}

func NewScheduler(
	users repository.UserRepository,
	quotes repository.QuoteRepository,
	messages repository.MessageRepository,
	smsProvider provider.Provider,
	rateLimiter ratelimit.RateLimiter,
	interval time.Duration,
	concurrency int,
	logger *zap.Logger,
) (*Scheduler, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if quotes == nil {
		return nil, fmt.Errorf("quote repository is required")
	}
	if messages == nil {
		return nil, fmt.Errorf("message repository is required")
	}
	if smsProvider == nil {
		return nil, fmt.Errorf("sms provider is required")
	}
	if interval <= 0 {
		interval = defaultTickInterval
	}
	if concurrency < minDispatchConcurrency {
		concurrency = defaultDispatchConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		users:       users,
		quotes:      quotes,
		messages:    messages,
		provider:    smsProvider,
		rateLimiter: rateLimiter,
		logger:      logger,
		interval:    interval,
		concurrency: concurrency,
		now:         time.Now,
		randIntn:    rand.Intn,
	}, nil
}

func (s *Scheduler) SetMetrics(metrics *observability.Metrics) {
	if s == nil {
		return
	}
	s.metrics = metrics
}

// Start runs the tick loop until ctx is canceled. Ticks are serialized: a
// tick that outlasts the interval delays the next wake instead of
// overlapping it. On cancellation, dispatch work already started is allowed
// to finish before Start returns.
func (s *Scheduler) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Run an initial tick so already-due users do not wait for the first ticker edge.
	if err := s.tick(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("scheduler initial tick failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.Error("scheduler tick failed", zap.Error(err))
			}
		}
	}
}

// tick evaluates every active user against the current instant and
// dispatches the due ones. Infrastructure failures abort only this tick;
// the next wake retries naturally.
func (s *Scheduler) tick(ctx context.Context) error {
	s.metrics.IncSchedulerTick()
	now := s.now().UTC()

	users, err := s.users.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	quotes, err := s.quotes.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load quote catalog: %w", err)
	}
	if len(quotes) == 0 {
		s.logger.Warn("quote catalog is empty, skipping dispatch")
		return nil
	}

	due := make([]dispatchItem, 0, len(users))
	for i := range users {
		user := users[i]

		day, err := LocalDeliveryDay(user, now)
		if err != nil {
			s.logger.Warn("skipping user with unresolvable timezone",
				zap.String("userId", user.ID),
				zap.String("timezone", user.Timezone),
				zap.Error(err),
			)
			continue
		}

		sentToday, err := s.messages.HasSentOnDay(ctx, user.ID, day)
		if err != nil {
			return fmt.Errorf("failed to check delivery ledger: %w", err)
		}

		isDue, err := IsDue(user, now, sentToday)
		if err != nil {
			s.logger.Warn("skipping user that cannot be evaluated",
				zap.String("userId", user.ID),
				zap.Error(err),
			)
			continue
		}
		if isDue {
			due = append(due, dispatchItem{user: user, day: day})
		}
	}

	if len(due) == 0 {
		return nil
	}

	s.logger.Info("dispatching daily quotes",
		zap.Int("due", len(due)),
		zap.Time("tick", now),
	)

	// Plain errgroup on purpose: one user's failure must not cancel the
	// siblings, so dispatch never returns an error to the group.
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i := range due {
		item := due[i]
		g.Go(func() error {
			// A stop signal prevents new dispatch work from starting, but an
			// attempt already in flight runs to completion and is recorded.
			if ctx.Err() != nil {
				return nil
			}
			s.dispatch(context.WithoutCancel(ctx), item, quotes)
			return nil
		})
	}
	_ = g.Wait()

	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, item dispatchItem, quotes []domain.Quote) {
	user := item.user

	quote, err := PickQuote(quotes, s.randIntn)
	if err != nil {
		s.logger.Error("failed to select quote",
			zap.String("userId", user.ID),
			zap.Error(err),
		)
		return
	}

	s.metrics.IncDispatchInFlight()
	defer s.metrics.DecDispatchInFlight()

	if s.rateLimiter != nil {
		if err := s.rateLimiter.Wait(ctx, smsChannel); err != nil {
			s.logger.Error("rate limiter wait failed",
				zap.String("userId", user.ID),
				zap.Error(err),
			)
			return
		}
	}

	sendStart := s.now()
	resp, sendErr := s.provider.Send(ctx, user.Phone, quote.SMSBody())
	s.metrics.ObserveSendDuration(s.now().Sub(sendStart))

	msg := &domain.Message{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		QuoteID:     quote.ID,
		DeliveryDay: item.day,
		Status:      domain.DeliverySent,
		SentAt:      sendStart.UTC(),
	}
	if sendErr != nil {
		msg.Status = domain.DeliveryFailed
		reason := sendErr.Error()
		msg.FailureReason = &reason
	} else if resp != nil && strings.TrimSpace(resp.MessageSID) != "" {
		sid := strings.TrimSpace(resp.MessageSID)
		msg.ProviderSID = &sid
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		s.logger.Error("failed to record delivery attempt",
			zap.String("userId", user.ID),
			zap.String("quoteId", quote.ID),
			zap.Error(err),
		)
		return
	}

	if sendErr != nil {
		s.metrics.IncSMSFailed(failureReason(sendErr))
		s.logger.Warn("daily quote delivery failed",
			zap.String("userId", user.ID),
			zap.String("quoteId", quote.ID),
			zap.String("day", item.day),
			zap.Error(sendErr),
		)
		return
	}

	s.metrics.IncSMSSent()
	s.logger.Info("daily quote sent",
		zap.String("userId", user.ID),
		zap.String("quoteId", quote.ID),
		zap.String("day", item.day),
	)
}

func failureReason(err error) string {
	var providerErr *provider.ProviderError
	if errors.As(err, &providerErr) && providerErr.StatusCode > 0 {
		return "provider_rejected"
	}
	return "channel_error"
}
