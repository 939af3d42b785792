package api

import (
	"context"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/service"
	"github.com/gameforge/gameforge-api/internal/task"
)

// fakeDispatcher records batch requests and returns a canned handle.
type fakeDispatcher struct {
	handle task.BatchHandle
	err    error

	calls []dispatchCall
}

type dispatchCall struct {
	count    int
	itemType domain.ItemType
	lang     string
}

var _ BatchDispatcher = (*fakeDispatcher)(nil)

func (f *fakeDispatcher) RequestBatch(
	ctx context.Context,
	count int,
	itemType domain.ItemType,
	lang string,
) (task.BatchHandle, error) {
	f.calls = append(f.calls, dispatchCall{count, itemType, lang})
	if f.err != nil {
		return task.BatchHandle{}, f.err
	}
	return f.handle, nil
}

// fakeReviewService returns canned results for moderation tests.
type fakeReviewService struct {
	pending    []*domain.Item
	pendingErr error

	result    *service.ReviewResult
	submitErr error

	submitted []service.ReviewRequest
}

var _ service.ReviewService = (*fakeReviewService)(nil)

func (f *fakeReviewService) ListPending(ctx context.Context) ([]*domain.Item, error) {
	return f.pending, f.pendingErr
}

func (f *fakeReviewService) SubmitReview(
	ctx context.Context,
	req service.ReviewRequest,
) (*service.ReviewResult, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.result, nil
}

// fakeStatsService returns a canned overview.
type fakeStatsService struct {
	overview *service.StatsOverview
	err      error
}

var _ service.StatsService = (*fakeStatsService)(nil)

func (f *fakeStatsService) Overview(ctx context.Context) (*service.StatsOverview, error) {
	return f.overview, f.err
}

// fakePickerService returns a canned item.
type fakePickerService struct {
	item *domain.Item
	err  error
}

var _ service.PickerService = (*fakePickerService)(nil)

func (f *fakePickerService) RandomApproved(ctx context.Context) (*domain.Item, error) {
	return f.item, f.err
}

// fakePromptService stores the prompt in memory.
type fakePromptService struct {
	prompt string
	getErr error
	setErr error
}

var _ service.PromptService = (*fakePromptService)(nil)

func (f *fakePromptService) Get(ctx context.Context) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.prompt, nil
}

func (f *fakePromptService) Set(ctx context.Context, prompt string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if prompt == "" {
		return domain.ErrPromptEmpty
	}
	f.prompt = prompt
	return nil
}

// makeItem builds a valid domain item for response shape tests.
func makeItem(itemType domain.ItemType, status domain.ItemStatus) *domain.Item {
	item, err := domain.NewItem(itemType, "en", []byte(`{"title":"t"}`))
	if err != nil {
		panic(err)
	}
	item.Status = status
	return item
}
