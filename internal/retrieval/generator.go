package retrieval

import (
	"context"
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Generator turns retrieved snippets and a user question into a chat answer.
type Generator struct {
	// Chat is the underlying chatbot.
	Chat            llms.ChatLLM
	temperature     float64
	maxOutputTokens int
}

// NewGenerator creates a new answer generator using the
// OPENAI_CONVERSATIONAL_MODEL environment variable.
func NewGenerator() (*Generator, error) {
	model := os.Getenv("OPENAI_CONVERSATIONAL_MODEL")
	chat, err := openai.NewChat(openai.WithModel(model))
	if err != nil {
		return nil, err
	}

	return &Generator{
		Chat:            chat,
		temperature:     0.7,
		maxOutputTokens: 1000,
	}, nil
}

// Answer responds to the question, grounding the response on the snippets if
// any were retrieved. With no snippets it answers from general knowledge and
// says so.
func (g *Generator) Answer(ctx context.Context, question string, snippets []Snippet) (string, error) {
	input := []schema.ChatMessage{
		schema.SystemChatMessage{
			Text: "You are a helpful assistant for a personal bookmarking app. You answer questions using passages saved in the user's bookmarks. End all your responses with this emoji: 🔖",
		},
	}

	if len(snippets) > 0 {
		var bigChunk string
		for i, snippet := range snippets {
			bigChunk += fmt.Sprintf("Paragraph %v: %v\n", i+1, snippet.Content)
		}

		input = append(input, schema.HumanChatMessage{
			Text: fmt.Sprintf("Here are passages from my saved bookmarks that are relevant to my question. Use them as your primary source:\n%v", bigChunk),
		})
	} else {
		input = append(input, schema.HumanChatMessage{
			Text: "No relevant passages were found in my saved bookmarks. Answer from general knowledge and mention that nothing in my bookmarks covered it.",
		})
	}

	input = append(input, schema.HumanChatMessage{Text: question})

	res, err := g.Chat.Call(ctx, input, llms.WithTemperature(g.temperature), llms.WithMaxTokens(g.maxOutputTokens))
	if err != nil {
		return "", err
	}

	return res, nil
}
