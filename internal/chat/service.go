package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stylemind/stylemind-backend/internal/ai"
	userdomain "github.com/stylemind/stylemind-backend/internal/user/domain"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"github.com/stylemind/stylemind-backend/pkg/logger"
)

// FallbackResponse is sent when the model cannot be reached
const FallbackResponse = "I'm having trouble connecting right now. Please try again in a moment! 💫"

const systemPromptTemplate = `You are StyleMind AI, a friendly and knowledgeable personal fashion stylist assistant.

Your expertise includes:
- Personal style advice based on body type, skin tone, and preferences
- Outfit recommendations for various occasions (work, casual, party, date, formal)
- Color coordination and pattern mixing guidance
- Wardrobe building and capsule wardrobe concepts
- Indian fashion (kurtas, sarees, lehengas) and Western fashion
- Seasonal dressing and trend awareness
- Budget-friendly styling tips

Personality:
- Warm, encouraging, and non-judgmental
- Give specific, actionable advice
- Use fashion terminology but explain when needed
- Be enthusiastic about helping users look their best
- Ask clarifying questions when needed

Context about the user (if available):
{user_context}

Guidelines:
- Keep responses concise but helpful (2-4 paragraphs max)
- Use emojis sparingly for warmth 👗✨
- If asked about specific items, relate advice to their wardrobe if known
- Always be body-positive and inclusive
- Suggest items across different price ranges when relevant`

// Result is one chat turn's outcome
type Result struct {
	Success      bool   `json:"success"`
	Response     string `json:"response"`
	Timestamp    string `json:"timestamp,omitempty"`
	MessageCount int    `json:"message_count,omitempty"`
	Diagnostic   string `json:"error,omitempty"`
}

// Service runs the stylist conversation. User profile and wardrobe are
// loaded best-effort to personalize the system prompt.
type Service struct {
	gateway ai.Gateway
	history History
	users   userdomain.UserRepository
	items   wardrobedomain.ItemRepository
}

// NewService creates the chat service
func NewService(gateway ai.Gateway, history History, users userdomain.UserRepository, items wardrobedomain.ItemRepository) *Service {
	return &Service{gateway: gateway, history: history, users: users, items: items}
}

// Chat runs one conversation turn and persists both sides of it
func (s *Service) Chat(ctx context.Context, userID, message string) (Result, error) {
	if userID == "" || message == "" {
		return Result{}, fmt.Errorf("user id and message are required")
	}

	history, err := s.history.Get(ctx, userID)
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("Chat history unavailable, starting fresh")
		history = nil
	}

	systemPrompt := strings.Replace(systemPromptTemplate, "{user_context}", s.userContext(userID), 1)

	if s.gateway == nil {
		return Result{Success: false, Response: FallbackResponse, Diagnostic: "chat model not configured"}, nil
	}

	response, err := s.gateway.Chat(ctx, systemPrompt, history, message)
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Str("user_id", userID).Msg("Chat completion failed")
		return Result{Success: false, Response: FallbackResponse, Diagnostic: err.Error()}, nil
	}

	if err := s.history.Append(ctx, userID,
		ai.Message{Role: ai.RoleUser, Content: message},
		ai.Message{Role: ai.RoleAssistant, Content: response},
	); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("Failed to persist chat history")
	}

	stored := len(history) + 2
	if stored > maxHistoryMessages {
		stored = maxHistoryMessages
	}

	return Result{
		Success:      true,
		Response:     response,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		MessageCount: stored / 2,
	}, nil
}

// OutfitAdvice phrases an occasion request as a chat turn
func (s *Service) OutfitAdvice(ctx context.Context, userID, occasion, preferences string) (Result, error) {
	prompt := fmt.Sprintf("I need outfit advice for a %s occasion.", occasion)
	if preferences != "" {
		prompt += " My preferences: " + preferences
	}
	prompt += " What should I wear?"
	return s.Chat(ctx, userID, prompt)
}

// HistoryFor returns the stored conversation for a user
func (s *Service) HistoryFor(ctx context.Context, userID string) ([]ai.Message, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.history.Get(ctx, userID)
}

// ClearHistory drops a user's conversation
func (s *Service) ClearHistory(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	return s.history.Clear(ctx, userID)
}

func (s *Service) userContext(userID string) string {
	var user *userdomain.User
	if s.users != nil {
		if found, err := s.users.FindByID(userID); err == nil {
			user = found
		} else if !errors.Is(err, userdomain.ErrUserNotFound) {
			logger.Logger.Warn().Err(err).Str("user_id", userID).Msg("User lookup failed for chat context")
		}
	}

	var wardrobe []wardrobedomain.Item
	if s.items != nil {
		if items, err := s.items.FindByUser(userID, ""); err == nil {
			wardrobe = items
		}
	}

	return BuildUserContext(user, wardrobe)
}
