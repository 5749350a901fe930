package summarize

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/legalease/legallite/internal/common"
)

const (
	openAISystemPrompt = "You are a legal assistant. Simplify legal documents in plain English."

	openAIRiskPrompt = "You are a legal risk analysis assistant. Identify clauses in contracts that could pose legal or financial risks to the signer, explain why, and suggest ways to mitigate them."
)

// OpenAI sends the full document text to the chat completion API using the
// caller-supplied key. Provider errors are surfaced to the caller verbatim
// and never retried.
type OpenAI struct {
	model   string
	timeout time.Duration

	// newClient is swappable in tests.
	newClient func(apiKey string) openAIClient
}

type openAIClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func NewOpenAI(timeout time.Duration) *OpenAI {
	return &OpenAI{
		model:   openai.GPT3Dot5Turbo,
		timeout: timeout,
		newClient: func(apiKey string) openAIClient {
			return openai.NewClient(apiKey)
		},
	}
}

func (o *OpenAI) Summarize(ctx context.Context, req Request) (*Result, error) {
	return o.complete(ctx, req, openAISystemPrompt)
}

// AnalyzeRisks asks the model to point out clauses that could pose legal or
// financial risks to the signer, with mitigation suggestions. Like Summarize
// it runs on the caller-supplied key only.
func (o *OpenAI) AnalyzeRisks(ctx context.Context, req Request) (*Result, error) {
	return o.complete(ctx, req, openAIRiskPrompt)
}

func (o *OpenAI) complete(ctx context.Context, req Request, systemPrompt string) (*Result, error) {
	if req.APIKey == "" {
		return nil, common.ErrAPIKeyRequired
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	client := o.newClient(req.APIKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return &Result{Summary: resp.Choices[0].Message.Content}, nil
}
