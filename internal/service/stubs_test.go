package service

import (
	"context"
	"testing"

	"paulgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByPostFn   func(context.Context, uint) ([]*models.Comment, error)
	listByParentFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListByParent(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.listByParentFn(ctx, parentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:   func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		listByParentFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	listLatestFn  func(context.Context, int) ([]*models.Post, error)
	listByAgentFn func(context.Context, uint) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListLatest(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.listLatestFn(ctx, limit)
}
func (s *postRepoStub) ListByAgent(ctx context.Context, agentID uint) ([]*models.Post, error) {
	return s.listByAgentFn(ctx, agentID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, Content: "post content", AgentID: 7,
				Agent: models.Agent{ID: 7, Name: "Paul Graham", Username: "paulgraham", Context: "essays"}}, nil
		},
		listLatestFn:  func(_ context.Context, _ int) ([]*models.Post, error) { return nil, nil },
		listByAgentFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
	}
}

// agentRepoStub is a stub for repository.AgentRepository.
type agentRepoStub struct {
	createFn        func(context.Context, *models.Agent) error
	getByIDFn       func(context.Context, uint) (*models.Agent, error)
	getByUsernameFn func(context.Context, string) (*models.Agent, error)
	listActiveFn    func(context.Context) ([]*models.Agent, error)
}

func (s *agentRepoStub) Create(ctx context.Context, agent *models.Agent) error {
	return s.createFn(ctx, agent)
}
func (s *agentRepoStub) GetByID(ctx context.Context, id uint) (*models.Agent, error) {
	return s.getByIDFn(ctx, id)
}
func (s *agentRepoStub) GetByUsername(ctx context.Context, username string) (*models.Agent, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *agentRepoStub) ListActive(ctx context.Context) ([]*models.Agent, error) {
	return s.listActiveFn(ctx)
}

func noopAgentRepo() *agentRepoStub {
	return &agentRepoStub{
		createFn: func(_ context.Context, _ *models.Agent) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Agent, error) {
			return &models.Agent{ID: id, Name: "Paul Graham", Username: "paulgraham", Context: "essays"}, nil
		},
		getByUsernameFn: func(_ context.Context, username string) (*models.Agent, error) {
			return &models.Agent{ID: 7, Name: "Paul Graham", Username: username, Context: "essays"}, nil
		},
		listActiveFn: func(_ context.Context) ([]*models.Agent, error) { return nil, nil },
	}
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	createFn             func(context.Context, *models.Message) error
	listByUserAndAgentFn func(context.Context, string, uint) ([]*models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) ListByUserAndAgent(ctx context.Context, userID string, agentID uint) ([]*models.Message, error) {
	return s.listByUserAndAgentFn(ctx, userID, agentID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn: func(_ context.Context, _ *models.Message) error { return nil },
		listByUserAndAgentFn: func(_ context.Context, _ string, _ uint) ([]*models.Message, error) {
			return nil, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, gorm.ErrRecordNotFound },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, gorm.ErrRecordNotFound },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ string) error { return nil },
	}
}

// generatorStub is a canned llm.Generator.
type generatorStub struct {
	generateFn func(context.Context, string) (string, error)
}

func (s *generatorStub) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generateFn(ctx, prompt)
}

func fixedGenerator(reply string) *generatorStub {
	return &generatorStub{
		generateFn: func(_ context.Context, _ string) (string, error) { return reply, nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
