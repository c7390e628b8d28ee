package service

import (
	"context"
	"errors"
	"time"

	"paulgram/internal/llm"
	"paulgram/internal/middleware"
	"paulgram/internal/models"
	"paulgram/internal/observability"
	"paulgram/internal/repository"

	"gorm.io/gorm"
)

const maxMessageLen = 10000

// ChatService handles one-to-one chat turns between a user and an agent.
type ChatService struct {
	messageRepo repository.MessageRepository
	agentRepo   repository.AgentRepository
	generator   llm.Generator
}

// SendMessageInput carries one inbound chat message.
type SendMessageInput struct {
	UserID  string
	AgentID uint
	Content string
}

// NewChatService creates a new ChatService
func NewChatService(
	messageRepo repository.MessageRepository,
	agentRepo repository.AgentRepository,
	generator llm.Generator,
) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		agentRepo:   agentRepo,
		generator:   generator,
	}
}

// SendMessage persists the user's message, generates one agent reply from the
// persona context and the literal message (no prior history), persists the
// reply and returns it together with the agent's identity.
//
// The two inserts are independent writes: a generation failure after the
// first leaves the user's message in place.
func (s *ChatService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, *models.Agent, error) {
	if in.Content == "" {
		return nil, nil, models.NewValidationError("Message cannot be empty")
	}
	if len(in.Content) > maxMessageLen {
		return nil, nil, models.NewValidationError("Message too long (max 10000 characters)")
	}
	if in.AgentID == 0 {
		return nil, nil, models.NewValidationError("Agent ID must be positive")
	}

	agent, err := s.agentRepo.GetByID(ctx, in.AgentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Agent", in.AgentID)
		}
		return nil, nil, err
	}

	userMessage := &models.Message{
		Content:    in.Content,
		UserID:     in.UserID,
		AgentID:    in.AgentID,
		AuthorType: models.AuthorTypeUser,
	}
	if err := s.messageRepo.Create(ctx, userMessage); err != nil {
		return nil, nil, err
	}

	prompt := llm.BuildChatPrompt(agent, in.Content)

	start := time.Now()
	replyText, err := s.generator.GenerateText(ctx, prompt)
	observability.ObserveGeneration("chat", start, err)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "agent chat reply generation failed",
			"agent_id", in.AgentID, "error", err.Error())
		return nil, nil, models.NewInternalError(nil)
	}

	reply := &models.Message{
		Content:      replyText,
		UserID:       in.UserID,
		AgentID:      in.AgentID,
		AuthorType:   models.AuthorTypeAgent,
		IsAgentReply: true,
	}
	if err := s.messageRepo.Create(ctx, reply); err != nil {
		middleware.Logger.ErrorContext(ctx, "agent chat reply insert failed",
			"agent_id", in.AgentID, "error", err.Error())
		return nil, nil, models.NewInternalError(nil)
	}

	return reply, agent, nil
}

// History returns every turn of one user's chat with an agent, oldest first.
func (s *ChatService) History(ctx context.Context, userID string, agentID uint) ([]*models.Message, *models.Agent, error) {
	if agentID == 0 {
		return nil, nil, models.NewValidationError("Agent ID must be positive")
	}

	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.NewNotFoundError("Agent", agentID)
		}
		return nil, nil, err
	}

	messages, err := s.messageRepo.ListByUserAndAgent(ctx, userID, agentID)
	if err != nil {
		return nil, nil, err
	}
	return messages, agent, nil
}
