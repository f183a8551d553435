package usecase

import (
	"context"
	"sync"
	"testing"

	"murray-moving/internal/data/entity"
	"murray-moving/internal/data/repository"
	"murray-moving/internal/dto/request"
	"murray-moving/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu     sync.Mutex
	quotes []*entity.QuoteRequest
}

func (n *recordingNotifier) NotifyQuote(quote *entity.QuoteRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.quotes = append(n.quotes, quote.Clone())
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.quotes)
}

func adminContext() context.Context {
	return utils.SetIdentityContext(context.Background(), utils.Identity{UserID: 1, Username: "admin", IsAdmin: true})
}

func userContext() context.Context {
	return utils.SetIdentityContext(context.Background(), utils.Identity{UserID: 2, Username: "staff"})
}

func validQuote() *request.CreateQuoteRequest {
	return &request.CreateQuoteRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "6095551234",
		FromAddress: "12 Main Street",
		FromZip:     "08016",
		ToAddress:   "400 W 34th Street",
		ToZip:       "10001",
		MoveDate:    "2026-04-15",
		HomeSize:    entity.HomeSizeTwoBedroom,
		HomeType:    "apartment",
	}
}

func validContact() *request.CreateContactRequest {
	return &request.CreateContactRequest{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john@example.com",
		Subject:   "Storage",
		Message:   "Do you offer storage?",
	}
}

func newQuoteService(t *testing.T) (QuoteService, *repository.Repository, *recordingNotifier) {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	notifier := &recordingNotifier{}
	return NewQuoteService(repo.Quote, notifier, nil, zap.NewNop()), repo, notifier
}

func newContactService(t *testing.T) (ContactService, *repository.Repository) {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	return NewContactService(repo.Contact, nil, zap.NewNop()), repo
}

// ==================== QUOTES ====================

func TestQuoteSubmit_PricesAndStores(t *testing.T) {
	svc, repo, notifier := newQuoteService(t)

	quote, err := svc.Submit(context.Background(), validQuote())
	require.NoError(t, err)

	assert.Equal(t, int64(1), quote.ID)
	assert.Equal(t, 100, quote.Distance)
	assert.Equal(t, 1000, quote.BasePrice)
	assert.Equal(t, 200, quote.DistancePrice)
	assert.Equal(t, 1200, quote.TotalEstimate)
	assert.Equal(t, entity.QuoteStatusNew, quote.Status)
	assert.Equal(t, []string{}, quote.Services)
	assert.False(t, quote.CreatedAt.IsZero())

	stored, err := repo.Quote.FindByID(context.Background(), quote.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 1200, stored.TotalEstimate)
	assert.Equal(t, 1, notifier.count())
}

func TestQuoteSubmit_NormalizesInput(t *testing.T) {
	svc, _, _ := newQuoteService(t)

	req := validQuote()
	req.MoveDate = "2026-04-15T09:30:00Z"
	req.Services = []string{"packing", "storage", "packing"}

	quote, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-15", quote.MoveDate)
	assert.Equal(t, []string{"packing", "storage"}, quote.Services)
}

func TestQuoteSubmit_ReportsEveryInvalidField(t *testing.T) {
	svc, repo, notifier := newQuoteService(t)

	req := validQuote()
	req.FirstName = "J"
	req.Email = "not-an-email"
	req.FromZip = "8016"
	req.HomeSize = "mansion"

	_, err := svc.Submit(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"firstName", "email", "fromZip", "homeSize"}, fields)

	all, _ := repo.Quote.FindAll(context.Background())
	assert.Empty(t, all)
	assert.Zero(t, notifier.count())
}

func TestQuoteSubmit_RejectsUnknownService(t *testing.T) {
	svc, _, _ := newQuoteService(t)

	req := validQuote()
	req.Services = []string{"packing", "cleaning"}

	_, err := svc.Submit(context.Background(), req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "services[1]", verr.Errors[0].Field)
}

func TestQuoteSubmit_ConcurrentIDsAreUnique(t *testing.T) {
	svc, _, _ := newQuoteService(t)

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			quote, err := svc.Submit(context.Background(), validQuote())
			if assert.NoError(t, err) {
				ids <- quote.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestQuoteList_NewestFirst(t *testing.T) {
	svc, _, _ := newQuoteService(t)

	for _, name := range []string{"Alice", "Bella", "Carla"} {
		req := validQuote()
		req.FirstName = name
		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	quotes, err := svc.List(adminContext())
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "Carla", quotes[0].FirstName)
	assert.Equal(t, "Bella", quotes[1].FirstName)
	assert.Equal(t, "Alice", quotes[2].FirstName)
}

func TestQuoteAdminOperations_RequireAdmin(t *testing.T) {
	svc, repo, _ := newQuoteService(t)

	created, err := svc.Submit(context.Background(), validQuote())
	require.NoError(t, err)

	for _, ctx := range []context.Context{context.Background(), userContext()} {
		_, err = svc.List(ctx)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = svc.UpdateStatus(ctx, created.ID, "completed")
		assert.ErrorIs(t, err, ErrUnauthorized)
	}

	stored, err := repo.Quote.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusNew, stored.Status)
}

func TestQuoteGet_NotFound(t *testing.T) {
	svc, _, _ := newQuoteService(t)

	_, err := svc.Get(adminContext(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuoteUpdateStatus(t *testing.T) {
	svc, _, _ := newQuoteService(t)
	ctx := adminContext()

	created, err := svc.Submit(context.Background(), validQuote())
	require.NoError(t, err)

	// any transition is allowed, including backwards and self
	for _, status := range []string{"completed", "contacted", "contacted", "new", "cancelled"} {
		updated, err := svc.UpdateStatus(ctx, created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, entity.QuoteStatus(status), updated.Status)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.TotalEstimate, updated.TotalEstimate)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	}
}

func TestQuoteUpdateStatus_InvalidLeavesRecord(t *testing.T) {
	svc, _, _ := newQuoteService(t)
	ctx := adminContext()

	created, err := svc.Submit(context.Background(), validQuote())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusNew, got.Status)
}

func TestQuoteUpdateStatus_NotFoundCreatesNothing(t *testing.T) {
	svc, _, _ := newQuoteService(t)
	ctx := adminContext()

	_, err := svc.UpdateStatus(ctx, 42, "contacted")
	assert.ErrorIs(t, err, ErrNotFound)

	quotes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

// ==================== CONTACTS ====================

func TestContactSubmit(t *testing.T) {
	svc, _ := newContactService(t)

	contact, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)

	assert.Equal(t, int64(1), contact.ID)
	assert.False(t, contact.IsRead)
	assert.Equal(t, "Storage", contact.Subject)
}

func TestContactSubmit_MessageLength(t *testing.T) {
	svc, _ := newContactService(t)

	req := validContact()
	req.Message = "123456789"
	_, err := svc.Submit(context.Background(), req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "message", verr.Errors[0].Field)

	req.Message = "1234567890"
	_, err = svc.Submit(context.Background(), req)
	assert.NoError(t, err)
}

func TestContactSetRead(t *testing.T) {
	svc, _ := newContactService(t)
	ctx := adminContext()

	created, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)

	yes, no := true, false

	updated, err := svc.SetRead(ctx, created.ID, &yes)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	updated, err = svc.SetRead(ctx, created.ID, &no)
	require.NoError(t, err)
	assert.False(t, updated.IsRead)

	_, err = svc.SetRead(ctx, created.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetRead(ctx, 99, &yes)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactAdminOperations_RequireAdmin(t *testing.T) {
	svc, _ := newContactService(t)

	created, err := svc.Submit(context.Background(), validContact())
	require.NoError(t, err)

	yes := true
	_, err = svc.SetRead(userContext(), created.ID, &yes)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	got, err := svc.Get(adminContext(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)
}

func TestContactList_NewestFirst(t *testing.T) {
	svc, _ := newContactService(t)

	for _, subject := range []string{"A subject", "B subject", "C subject"} {
		req := validContact()
		req.Subject = subject
		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	contacts, err := svc.List(adminContext())
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "C subject", contacts[0].Subject)
	assert.Equal(t, "A subject", contacts[2].Subject)
}
