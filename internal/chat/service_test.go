package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stylemind/stylemind-backend/internal/ai"
	userrepo "github.com/stylemind/stylemind-backend/internal/user/repository"
	wardroberepo "github.com/stylemind/stylemind-backend/internal/wardrobe/repository"
)

type scriptedGateway struct {
	reply       string
	err         error
	lastSystem  string
	lastHistory []ai.Message
	lastMessage string
}

func (g *scriptedGateway) AnalyzeClothing(context.Context, string) (ai.ClothingAnalysis, error) {
	return ai.ClothingAnalysis{}, errors.New("not implemented")
}

func (g *scriptedGateway) AnalyzeBody(context.Context, string) (ai.BodyAnalysis, error) {
	return ai.BodyAnalysis{}, errors.New("not implemented")
}

func (g *scriptedGateway) SuggestOutfit(context.Context, ai.SuggestOutfitInput) (ai.OutfitSuggestion, error) {
	return ai.OutfitSuggestion{}, errors.New("not implemented")
}

func (g *scriptedGateway) Chat(_ context.Context, systemPrompt string, history []ai.Message, message string) (string, error) {
	g.lastSystem = systemPrompt
	g.lastHistory = append([]ai.Message{}, history...)
	g.lastMessage = message
	return g.reply, g.err
}

func newTestService(gw ai.Gateway) *Service {
	return NewService(gw, NewMemoryHistory(), userrepo.NewMemoryUserRepository(), wardroberepo.NewMemoryItemRepository())
}

func TestChatTurnRecordsHistory(t *testing.T) {
	gw := &scriptedGateway{reply: "Go with the navy blazer! ✨"}
	svc := newTestService(gw)
	ctx := context.Background()

	result, err := svc.Chat(ctx, "u1", "What should I wear to a wedding?")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if !result.Success {
		t.Fatal("expected success")
	}
	if result.Response != gw.reply {
		t.Errorf("response = %q", result.Response)
	}
	if result.MessageCount != 1 {
		t.Errorf("message count = %d, want 1", result.MessageCount)
	}
	if !strings.Contains(gw.lastSystem, "StyleMind AI") {
		t.Error("system prompt missing persona")
	}
	if strings.Contains(gw.lastSystem, "{user_context}") {
		t.Error("user context placeholder was not substituted")
	}

	history, err := svc.HistoryFor(ctx, "u1")
	if err != nil {
		t.Fatalf("HistoryFor: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Role != ai.RoleUser || history[1].Role != ai.RoleAssistant {
		t.Errorf("history roles = %s, %s", history[0].Role, history[1].Role)
	}
}

func TestChatPassesPriorHistory(t *testing.T) {
	gw := &scriptedGateway{reply: "ok"}
	svc := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.Chat(ctx, "u1", "first"); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if _, err := svc.Chat(ctx, "u1", "second"); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(gw.lastHistory) != 2 {
		t.Errorf("second turn saw %d history messages, want 2", len(gw.lastHistory))
	}
	if gw.lastMessage != "second" {
		t.Errorf("last message = %q", gw.lastMessage)
	}
}

func TestChatFallbackOnGatewayError(t *testing.T) {
	gw := &scriptedGateway{err: errors.New("model unreachable")}
	svc := newTestService(gw)

	result, err := svc.Chat(context.Background(), "u1", "hello")
	if err != nil {
		t.Fatalf("Chat must not surface gateway errors: %v", err)
	}

	if result.Success {
		t.Error("expected unsuccessful result")
	}
	if result.Response != FallbackResponse {
		t.Errorf("response = %q", result.Response)
	}
	if result.Diagnostic == "" {
		t.Error("diagnostic missing")
	}

	history, _ := svc.HistoryFor(context.Background(), "u1")
	if len(history) != 0 {
		t.Errorf("failed turns must not be stored, got %d messages", len(history))
	}
}

func TestChatHistoryCap(t *testing.T) {
	gw := &scriptedGateway{reply: "ok"}
	svc := newTestService(gw)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := svc.Chat(ctx, "u1", fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Chat: %v", err)
		}
	}

	history, err := svc.HistoryFor(ctx, "u1")
	if err != nil {
		t.Fatalf("HistoryFor: %v", err)
	}
	if len(history) != maxHistoryMessages {
		t.Errorf("history length = %d, want %d", len(history), maxHistoryMessages)
	}
	// The oldest turns are the ones evicted.
	if history[0].Content != "message 5" {
		t.Errorf("oldest retained message = %q, want %q", history[0].Content, "message 5")
	}
}

func TestClearHistory(t *testing.T) {
	gw := &scriptedGateway{reply: "ok"}
	svc := newTestService(gw)
	ctx := context.Background()

	if _, err := svc.Chat(ctx, "u1", "hello"); err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if err := svc.ClearHistory(ctx, "u1"); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	history, _ := svc.HistoryFor(ctx, "u1")
	if len(history) != 0 {
		t.Errorf("history not cleared, %d messages remain", len(history))
	}
}

func TestOutfitAdvicePhrasing(t *testing.T) {
	gw := &scriptedGateway{reply: "ok"}
	svc := newTestService(gw)

	if _, err := svc.OutfitAdvice(context.Background(), "u1", "date", "something colorful"); err != nil {
		t.Fatalf("OutfitAdvice: %v", err)
	}

	want := "I need outfit advice for a date occasion. My preferences: something colorful What should I wear?"
	if gw.lastMessage != want {
		t.Errorf("prompt = %q, want %q", gw.lastMessage, want)
	}
}
