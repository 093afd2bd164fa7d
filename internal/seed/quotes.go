package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/infinifab/infinifab/internal/domain"
	"github.com/infinifab/infinifab/internal/repository"
	"go.uber.org/zap"
)

// starterQuotes is the initial catalog loaded into an empty database.
var starterQuotes = []domain.Quote{
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "motivation"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt", Category: "motivation"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill", Category: "perseverance"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Category: "inspiration"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius", Category: "perseverance"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair", Category: "courage"},
	{Text: "Believe in yourself. You are braver than you think, more talented than you know, and capable of more than you imagine.", Author: "Roy T. Bennett", Category: "self-belief"},
	{Text: "I learned that courage was not the absence of fear, but the triumph over it.", Author: "Nelson Mandela", Category: "courage"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins", Category: "motivation"},
	{Text: "Your limitation—it's only your imagination.", Author: "Unknown", Category: "inspiration"},
	{Text: "Great things never come from comfort zones.", Author: "Unknown", Category: "growth"},
	{Text: "Dream it. Wish it. Do it.", Author: "Unknown", Category: "motivation"},
	{Text: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown", Category: "motivation"},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown", Category: "perseverance"},
	{Text: "Don't stop when you're tired. Stop when you're done.", Author: "Unknown", Category: "perseverance"},
	{Text: "Wake up with determination. Go to bed with satisfaction.", Author: "Unknown", Category: "motivation"},
	{Text: "Do something today that your future self will thank you for.", Author: "Unknown", Category: "inspiration"},
	{Text: "Little things make big days.", Author: "Unknown", Category: "inspiration"},
	{Text: "It's going to be hard, but hard does not mean impossible.", Author: "Unknown", Category: "perseverance"},
	{Text: "Don't wait for opportunity. Create it.", Author: "Unknown", Category: "motivation"},
}

// Quotes populates the quote catalog when it is empty. Subsequent runs are
// no-ops so restarts never duplicate the starter set.
func Quotes(ctx context.Context, quotes repository.QuoteRepository, logger *zap.Logger) error {
	if quotes == nil {
		return fmt.Errorf("quote repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	count, err := quotes.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count quotes: %w", err)
	}
	if count > 0 {
		logger.Debug("quote catalog already seeded", zap.Int64("count", count))
		return nil
	}

	batch := make([]*domain.Quote, 0, len(starterQuotes))
	for _, quote := range starterQuotes {
		q := quote
		q.ID = uuid.NewString()
		batch = append(batch, &q)
	}

	if err := quotes.CreateBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to seed quotes: %w", err)
	}

	logger.Info("seeded quote catalog", zap.Int("count", len(batch)))
	return nil
}
