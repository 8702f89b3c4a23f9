package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"heystupid/pkg/ai"
	"heystupid/pkg/config"
	"heystupid/pkg/version"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const requestIDHeader = "X-Client-Request-Id"

// OpenAIProvider implements ai.Provider against the chat-completions
// endpoint. It performs exactly one attempt per call.
type OpenAIProvider struct {
	client openai.Client
}

// Option customizes an OpenAIProvider.
type Option func(*openAIOptions)

type openAIOptions struct {
	httpClient *http.Client
	requestID  string
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *openAIOptions) {
		o.httpClient = c
	}
}

// WithRequestID tags requests with a client request id header.
func WithRequestID(id string) Option {
	return func(o *openAIOptions) {
		o.requestID = strings.TrimSpace(id)
	}
}

// NewOpenAIProvider creates a provider from settings. An empty API key is
// allowed: the request is then sent without an Authorization header and
// the endpoint's 401 surfaces as *ai.APIRequestError.
func NewOpenAIProvider(settings config.Settings, opts ...Option) *OpenAIProvider {
	var o openAIOptions
	for _, opt := range opts {
		opt(&o)
	}

	apiURL := strings.TrimSpace(settings.APIURL)
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}

	reqOpts := []option.RequestOption{
		option.WithBaseURL(apiURL),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", version.UserAgent()),
		// The settings file is the only credential source.
		option.WithHeaderDel("OpenAI-Organization"),
		option.WithHeaderDel("OpenAI-Project"),
	}
	if settings.HasAPIKey() {
		reqOpts = append(reqOpts, option.WithAPIKey(settings.OpenAIAPIKey))
	} else {
		reqOpts = append(reqOpts, option.WithHeaderDel("Authorization"))
	}
	if o.requestID != "" {
		reqOpts = append(reqOpts, option.WithHeader(requestIDHeader, o.requestID))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}

	slog.Debug("openai_provider_ready",
		"api_url", apiURL,
		"has_api_key", settings.HasAPIKey(),
	)

	return &OpenAIProvider{client: openai.NewClient(reqOpts...)}
}

// CreateChatCompletion sends a non-streaming chat completion request and
// returns the first choice's content verbatim.
func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, req ai.ChatRequest) (ai.ChatResponse, error) {
	params, err := buildChatParams(req)
	if err != nil {
		return ai.ChatResponse{}, err
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ai.ChatResponse{}, wrapRequestError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return ai.ChatResponse{}, ai.ErrEmptyResponse
	}

	return ai.ChatResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Choices: len(resp.Choices),
	}, nil
}

func buildChatParams(req ai.ChatRequest) (openai.ChatCompletionNewParams, error) {
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("model is required")
	}
	if len(req.Messages) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("messages are required")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		param, err := toChatMessageParam(msg)
		if err != nil {
			return openai.ChatCompletionNewParams{}, err
		}
		messages = append(messages, param)
	}

	return openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}, nil
}

func toChatMessageParam(msg ai.Message) (openai.ChatCompletionMessageParamUnion, error) {
	switch msg.Role {
	case ai.RoleSystem:
		return openai.SystemMessage(msg.Content), nil
	case ai.RoleUser:
		return openai.UserMessage(msg.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("unsupported role: %s", msg.Role)
	}
}

func wrapRequestError(err error) error {
	reqErr := &ai.APIRequestError{Cause: err}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		reqErr.StatusCode = apiErr.StatusCode
	}
	return reqErr
}

var _ ai.Provider = (*OpenAIProvider)(nil)
