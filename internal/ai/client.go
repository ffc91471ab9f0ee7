package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Gateway is the vision-and-chat collaborator. Callers treat every error
// as a cue to fall back to fixed defaults or the rules engine.
type Gateway interface {
	AnalyzeClothing(ctx context.Context, imageBase64 string) (ClothingAnalysis, error)
	AnalyzeBody(ctx context.Context, imageBase64 string) (BodyAnalysis, error)
	SuggestOutfit(ctx context.Context, in SuggestOutfitInput) (OutfitSuggestion, error)
	Chat(ctx context.Context, systemPrompt string, history []Message, message string) (string, error)
}

// Client talks to an OpenAI-compatible completion API
type Client struct {
	client openai.Client
	model  string
}

// NewClient builds the gateway. An empty base URL keeps the SDK default.
func NewClient(key, baseURL, model string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(key)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// AnalyzeClothing classifies a garment photo into wardrobe attributes
func (c *Client) AnalyzeClothing(ctx context.Context, imageBase64 string) (ClothingAnalysis, error) {
	raw, err := c.completeVision(ctx, clothingPrompt, imageBase64, 0.2)
	if err != nil {
		return ClothingAnalysis{}, err
	}

	var out ClothingAnalysis
	if err := json.Unmarshal([]byte(trimJSONFence(raw)), &out); err != nil {
		return ClothingAnalysis{}, fmt.Errorf("decode clothing analysis: %w", err)
	}
	return out, nil
}

// AnalyzeBody derives style recommendations from a selfie
func (c *Client) AnalyzeBody(ctx context.Context, imageBase64 string) (BodyAnalysis, error) {
	raw, err := c.completeVision(ctx, bodyPrompt, imageBase64, 0.3)
	if err != nil {
		return BodyAnalysis{}, err
	}

	var out BodyAnalysis
	if err := json.Unmarshal([]byte(trimJSONFence(raw)), &out); err != nil {
		return BodyAnalysis{}, fmt.Errorf("decode body analysis: %w", err)
	}
	return out, nil
}

// SuggestOutfit asks the model to assemble an outfit from the wardrobe
// summary. The caller validates the returned item ids.
func (c *Client) SuggestOutfit(ctx context.Context, in SuggestOutfitInput) (OutfitSuggestion, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.5),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildOutfitPrompt(in)),
		},
	}

	raw, err := c.complete(ctx, params)
	if err != nil {
		return OutfitSuggestion{}, err
	}

	var out OutfitSuggestion
	if err := json.Unmarshal([]byte(trimJSONFence(raw)), &out); err != nil {
		return OutfitSuggestion{}, fmt.Errorf("decode outfit suggestion: %w", err)
	}
	out.Success = true
	return out, nil
}

// Chat runs one stylist conversation turn over the prior history
func (c *Client) Chat(ctx context.Context, systemPrompt string, history []Message, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, m := range history {
		if m.Role == RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.7),
		Messages:    messages,
	}
	return c.complete(ctx, params)
}

func (c *Client) completeVision(ctx context.Context, prompt, imageBase64 string, temperature float64) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
							{OfText: &openai.ChatCompletionContentPartTextParam{
								Text: prompt,
							}},
							{OfImageURL: &openai.ChatCompletionContentPartImageParam{
								ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
									URL:    imageDataURL(imageBase64),
									Detail: "auto",
								},
							}},
						},
					},
				},
			},
		},
	}
	return c.complete(ctx, params)
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	response, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}

// imageDataURL accepts either a bare base64 payload or a full data URI
func imageDataURL(imageBase64 string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	return "data:image/jpeg;base64," + imageBase64
}
