package usecase

import (
	"context"
	"fmt"

	"murray-moving/internal/data/entity"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/dto/request"
	"murray-moving/internal/dto/response"
	"murray-moving/pkg/metrics"

	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, req *request.CreateContactRequest) (*response.ContactResponse, error)
	List(ctx context.Context) ([]response.ContactResponse, error)
	Get(ctx context.Context, id int64) (*response.ContactResponse, error)
	SetRead(ctx context.Context, id int64, isRead *bool) (*response.ContactResponse, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	metrics     *metrics.Metrics
	log         *zap.Logger
}

func NewContactService(contactRepo repository.ContactRepository, m *metrics.Metrics, log *zap.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		metrics:     m,
		log:         log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, req *request.CreateContactRequest) (*response.ContactResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Contact validation failed", zap.Error(err))
		return nil, err
	}

	submission := &entity.ContactSubmission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}

	if err := s.contactRepo.Create(ctx, submission); err != nil {
		s.log.Error("Failed to store contact submission", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("store contact submission: %w", err)
	}

	s.metrics.ContactSubmitted()
	s.log.Info("Contact submitted", zap.Int64("contact_id", submission.ID))

	resp := response.ContactToResponse(submission)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context) ([]response.ContactResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	submissions, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list contact submissions", zap.Error(err))
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}

	return response.ContactsToResponse(submissions), nil
}

func (s *contactService) Get(ctx context.Context, id int64) (*response.ContactResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	submission, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find contact submission", zap.Error(err), zap.Int64("contact_id", id))
		return nil, fmt.Errorf("find contact submission: %w", err)
	}
	if submission == nil {
		return nil, fmt.Errorf("contact submission %d: %w", id, ErrNotFound)
	}

	resp := response.ContactToResponse(submission)
	return &resp, nil
}

func (s *contactService) SetRead(ctx context.Context, id int64, isRead *bool) (*response.ContactResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	if isRead == nil {
		return nil, fmt.Errorf("isRead must be a boolean: %w", ErrInvalidInput)
	}

	submission, err := s.contactRepo.UpdateRead(ctx, id, *isRead)
	if err != nil {
		s.log.Error("Failed to update contact submission", zap.Error(err), zap.Int64("contact_id", id))
		return nil, fmt.Errorf("update contact submission: %w", err)
	}
	if submission == nil {
		return nil, fmt.Errorf("contact submission %d: %w", id, ErrNotFound)
	}

	s.log.Info("Contact read flag updated",
		zap.Int64("contact_id", id),
		zap.Bool("is_read", *isRead),
	)

	resp := response.ContactToResponse(submission)
	return &resp, nil
}
