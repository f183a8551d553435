package usecase

import (
	"context"
	"fmt"

	"murray-moving/internal/data/entity"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/dto/request"
	"murray-moving/internal/dto/response"
	"murray-moving/internal/pricing"
	"murray-moving/pkg/metrics"
	"murray-moving/pkg/utils"

	"go.uber.org/zap"
)

// QuoteNotifier is told about every accepted quote. It must not block.
type QuoteNotifier interface {
	NotifyQuote(quote *entity.QuoteRequest)
}

type QuoteService interface {
	Submit(ctx context.Context, req *request.CreateQuoteRequest) (*response.QuoteResponse, error)
	List(ctx context.Context) ([]response.QuoteResponse, error)
	Get(ctx context.Context, id int64) (*response.QuoteResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*response.QuoteResponse, error)
}

type quoteService struct {
	quoteRepo repository.QuoteRepository
	notifier  QuoteNotifier
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	notifier QuoteNotifier,
	m *metrics.Metrics,
	log *zap.Logger,
) QuoteService {
	return &quoteService{
		quoteRepo: quoteRepo,
		notifier:  notifier,
		metrics:   m,
		log:       log.With(zap.String("service", "quote")),
	}
}

func (s *quoteService) Submit(ctx context.Context, req *request.CreateQuoteRequest) (*response.QuoteResponse, error) {
	// 1. Validate every field
	if err := validate(req); err != nil {
		s.log.Warn("Quote validation failed", zap.Error(err))
		return nil, err
	}

	moveDate, _ := utils.NormalizeDate(req.MoveDate)

	quote := &entity.QuoteRequest{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		FromAddress:     req.FromAddress,
		FromZip:         req.FromZip,
		ToAddress:       req.ToAddress,
		ToZip:           req.ToZip,
		MoveDate:        moveDate,
		HomeSize:        req.HomeSize,
		HomeType:        req.HomeType,
		Services:        dedupe(req.Services),
		SpecialRequests: req.SpecialRequests,
	}

	// 2. Price it
	estimate, err := pricing.Calculate(quote.FromZip, quote.ToZip, quote.HomeSize)
	if err != nil {
		s.log.Error("Failed to price quote", zap.Error(err),
			zap.String("from_zip", quote.FromZip), zap.String("to_zip", quote.ToZip))
		return nil, fmt.Errorf("price quote: %w", err)
	}
	estimate.Apply(quote)

	// 3. Persist with status new
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		s.log.Error("Failed to store quote", zap.Error(err), zap.String("email", quote.Email))
		return nil, fmt.Errorf("store quote: %w", err)
	}

	// 4. Notify without waiting
	if s.notifier != nil {
		s.notifier.NotifyQuote(quote)
	}

	s.metrics.QuoteSubmitted(quote.TotalEstimate)
	s.log.Info("Quote submitted",
		zap.Int64("quote_id", quote.ID),
		zap.Int("total_estimate", quote.TotalEstimate),
		zap.String("home_size", quote.HomeSize),
	)

	resp := response.QuoteToResponse(quote)
	return &resp, nil
}

func (s *quoteService) List(ctx context.Context) ([]response.QuoteResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	quotes, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list quotes", zap.Error(err))
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return response.QuotesToResponse(quotes), nil
}

func (s *quoteService) Get(ctx context.Context, id int64) (*response.QuoteResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find quote", zap.Error(err), zap.Int64("quote_id", id))
		return nil, fmt.Errorf("find quote: %w", err)
	}
	if quote == nil {
		return nil, fmt.Errorf("quote %d: %w", id, ErrNotFound)
	}

	resp := response.QuoteToResponse(quote)
	return &resp, nil
}

func (s *quoteService) UpdateStatus(ctx context.Context, id int64, status string) (*response.QuoteResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	next := entity.QuoteStatus(status)
	if !next.IsValid() {
		s.log.Warn("Invalid quote status", zap.String("status", status), zap.Int64("quote_id", id))
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidInput)
	}

	quote, err := s.quoteRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		s.log.Error("Failed to update quote status", zap.Error(err), zap.Int64("quote_id", id))
		return nil, fmt.Errorf("update quote status: %w", err)
	}
	if quote == nil {
		return nil, fmt.Errorf("quote %d: %w", id, ErrNotFound)
	}

	s.metrics.QuoteStatusChanged(status)
	s.log.Info("Quote status updated",
		zap.Int64("quote_id", id),
		zap.String("status", status),
	)

	resp := response.QuoteToResponse(quote)
	return &resp, nil
}

// dedupe keeps the first occurrence of each service, in order.
func dedupe(services []string) []string {
	out := make([]string, 0, len(services))
	seen := make(map[string]bool, len(services))
	for _, svc := range services {
		if seen[svc] {
			continue
		}
		seen[svc] = true
		out = append(out, svc)
	}
	return out
}
