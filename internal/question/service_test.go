package question

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) List(ctx context.Context, f repository.QuestionFilter) ([]models.Question, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]models.Question)
	return rows, args.Error(1)
}

func (m *mockQuestionStore) Create(ctx context.Context, q *models.Question) error {
	args := m.Called(ctx, q)
	if args.Error(0) == nil {
		q.ID = 42
	}
	return args.Error(0)
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryChecker struct {
	mock.Mock
}

func (m *mockCategoryChecker) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func rowsN(n int) []models.Question {
	rows := make([]models.Question, n)
	for i := range rows {
		rows[i] = models.Question{ID: i + 1, Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return rows
}

func newTestService() (*Service, *mockQuestionStore, *mockCategoryChecker) {
	store := new(mockQuestionStore)
	cats := new(mockCategoryChecker)
	return NewService(store, cats, zerolog.Nop()), store, cats
}

func TestService_List(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("List", mock.Anything, repository.QuestionFilter{}).Return(rowsN(15), nil)

	page, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 15, page.Total)
	require.Len(t, page.Questions, 5)
	assert.Equal(t, 11, page.Questions[0].ID)
	store.AssertExpectations(t)
}

func TestService_ListEmptyPageIsNotFound(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("List", mock.Anything, repository.QuestionFilter{}).Return(rowsN(3), nil)

	_, err := svc.List(context.Background(), 2)
	assert.Equal(t, httperrors.KindNotFound, httperrors.KindOf(err))
}

func TestService_ListStoreFailureIsInternal(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background(), 1)
	assert.Equal(t, httperrors.KindInternal, httperrors.KindOf(err))
}

func TestService_ListByCategory(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("List", mock.Anything, repository.QuestionFilter{CategoryID: repository.InCategory(3)}).Return(rowsN(2), nil)
	store.On("List", mock.Anything, repository.QuestionFilter{CategoryID: repository.InCategory(9999)}).Return([]models.Question{}, nil)

	page, err := svc.ListByCategory(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	_, err = svc.ListByCategory(context.Background(), 9999, 1)
	assert.Equal(t, httperrors.KindNotFound, httperrors.KindOf(err))
}

func TestService_Search(t *testing.T) {
	svc, store, _ := newTestService()
	filter := repository.QuestionFilter{Search: "title", OrderBy: repository.OrderByID}
	store.On("List", mock.Anything, filter).Return(rowsN(1), nil).Once()

	found, err := svc.Search(context.Background(), "title")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	store.On("List", mock.Anything, filter).Return(nil, errors.New("boom")).Once()
	_, err = svc.Search(context.Background(), "title")
	assert.Equal(t, httperrors.KindStorage, httperrors.KindOf(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create(t *testing.T) {
	svc, store, cats := newTestService()
	req := CreateRequest{Question: "Q", Answer: "A", Category: 2, Difficulty: 3}

	cats.On("Exists", mock.Anything, 2).Return(true, nil)
	store.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
		return q.Question == "Q" && q.Answer == "A" && q.Category == 2 && q.Difficulty == 3
	})).Return(nil)
	store.On("List", mock.Anything, repository.QuestionFilter{OrderBy: repository.OrderByID}).Return(rowsN(12), nil)

	created, err := svc.Create(context.Background(), req, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, 12, created.Page.Total)
	assert.Len(t, created.Page.Questions, QuestionsPerPage)
	store.AssertExpectations(t)
}

func TestService_CreateUnknownCategory(t *testing.T) {
	svc, store, cats := newTestService()
	cats.On("Exists", mock.Anything, 77).Return(false, nil)

	_, err := svc.Create(context.Background(), CreateRequest{Question: "Q", Answer: "A", Category: 77, Difficulty: 1}, 1)
	assert.Equal(t, httperrors.KindValidation, httperrors.KindOf(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateStoreFailure(t *testing.T) {
	svc, store, cats := newTestService()
	cats.On("Exists", mock.Anything, 1).Return(true, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("constraint"))

	_, err := svc.Create(context.Background(), CreateRequest{Question: "Q", Answer: "A", Category: 1, Difficulty: 1}, 1)
	assert.Equal(t, httperrors.KindStorage, httperrors.KindOf(err))
	assert.Equal(t, 422, httperrors.KindOf(err).Status())
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantKind httperrors.Kind
		wantErr  bool
	}{
		{"deleted", nil, 0, false},
		{"missing id", repository.ErrNotFound, httperrors.KindValidation, true},
		{"storage failure", errors.New("io"), httperrors.KindStorage, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, _ := newTestService()
			store.On("Delete", mock.Anything, 5).Return(tc.storeErr)

			err := svc.Delete(context.Background(), 5)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantKind, httperrors.KindOf(err))
			assert.Equal(t, 422, httperrors.KindOf(err).Status())
		})
	}
}
