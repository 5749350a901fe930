package summarize

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalease/legallite/internal/common"
)

type stubBackend struct {
	result *Result
	err    error
	called int
}

func (s *stubBackend) Summarize(ctx context.Context, req Request) (*Result, error) {
	s.called++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestDispatcher_RoutesByMode(t *testing.T) {
	demo := &stubBackend{result: &Result{Summary: "demo"}}
	oa := &stubBackend{result: &Result{Summary: "openai"}}
	hf := &stubBackend{result: &Result{Summary: "hf"}}
	d := NewDispatcher(demo, oa, hf)

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDemo, "demo"},
		{ModeOpenAI, "openai"},
		{ModeHuggingFace, "hf"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			res, err := d.Summarize(context.Background(), tt.mode, Request{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Summary)
		})
	}

	assert.Equal(t, 1, demo.called)
	assert.Equal(t, 1, oa.called)
	assert.Equal(t, 1, hf.called)
}

func TestDispatcher_UnsetModeRejected(t *testing.T) {
	d := NewDispatcher(&stubBackend{}, &stubBackend{}, &stubBackend{})
	_, err := d.Summarize(context.Background(), ModeUnset, Request{})
	assert.True(t, errors.Is(err, common.ErrModeNotChosen))
}

func TestDispatcher_BackendErrorPropagates(t *testing.T) {
	boom := errors.New("provider down")
	d := NewDispatcher(&stubBackend{}, &stubBackend{err: boom}, &stubBackend{})
	_, err := d.Summarize(context.Background(), ModeOpenAI, Request{APIKey: "k"})
	assert.True(t, errors.Is(err, boom))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"demo", ModeDemo, false},
		{"openai", ModeOpenAI, false},
		{"huggingface", ModeHuggingFace, false},
		{"", ModeUnset, true},
		{"llm", ModeUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- OpenAI backend ---

type fakeOpenAIClient struct {
	gotReq openai.ChatCompletionRequest
	resp   openai.ChatCompletionResponse
	err    error
}

func (f *fakeOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func newTestOpenAI(fake *fakeOpenAIClient) *OpenAI {
	o := NewOpenAI(0)
	o.newClient = func(apiKey string) openAIClient { return fake }
	return o
}

func TestOpenAI_MissingKeyRejectedBeforeCall(t *testing.T) {
	fake := &fakeOpenAIClient{}
	o := newTestOpenAI(fake)

	_, err := o.Summarize(context.Background(), Request{Text: "text"})
	assert.True(t, errors.Is(err, common.ErrAPIKeyRequired))
	assert.Empty(t, fake.gotReq.Messages, "no request should be sent without a key")
}

func TestOpenAI_SendsSystemPromptAndFullText(t *testing.T) {
	fake := &fakeOpenAIClient{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "plain english"}},
			},
		},
	}
	o := newTestOpenAI(fake)

	res, err := o.Summarize(context.Background(), Request{Text: "whereas the party", APIKey: "sk-user"})
	require.NoError(t, err)
	assert.Equal(t, "plain english", res.Summary)

	require.Len(t, fake.gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.gotReq.Messages[0].Role)
	assert.Equal(t, openAISystemPrompt, fake.gotReq.Messages[0].Content)
	assert.Equal(t, "whereas the party", fake.gotReq.Messages[1].Content)
	assert.Equal(t, openai.GPT3Dot5Turbo, fake.gotReq.Model)
}

func TestOpenAI_RiskAnalysisUsesRiskPrompt(t *testing.T) {
	fake := &fakeOpenAIClient{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "clause 4 is risky"}},
			},
		},
	}
	o := newTestOpenAI(fake)

	res, err := o.AnalyzeRisks(context.Background(), Request{Text: "whereas the party", APIKey: "sk-user"})
	require.NoError(t, err)
	assert.Equal(t, "clause 4 is risky", res.Summary)

	require.Len(t, fake.gotReq.Messages, 2)
	assert.Equal(t, openAIRiskPrompt, fake.gotReq.Messages[0].Content)
	assert.Equal(t, "whereas the party", fake.gotReq.Messages[1].Content)
}

func TestOpenAI_RiskAnalysisRequiresKey(t *testing.T) {
	fake := &fakeOpenAIClient{}
	o := newTestOpenAI(fake)

	_, err := o.AnalyzeRisks(context.Background(), Request{Text: "text"})
	assert.True(t, errors.Is(err, common.ErrAPIKeyRequired))
	assert.Empty(t, fake.gotReq.Messages, "no request should be sent without a key")
}

func TestOpenAI_ProviderErrorSurfaces(t *testing.T) {
	fake := &fakeOpenAIClient{err: errors.New("quota exceeded")}
	o := newTestOpenAI(fake)

	_, err := o.Summarize(context.Background(), Request{Text: "t", APIKey: "sk"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestOpenAI_NoChoicesIsError(t *testing.T) {
	fake := &fakeOpenAIClient{}
	o := newTestOpenAI(fake)

	_, err := o.Summarize(context.Background(), Request{Text: "t", APIKey: "sk"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
