package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nexweb-studio/agency-api/internal/observability/metrics"
	"github.com/nexweb-studio/agency-api/pkg/logging"
)

var auditTracer = otel.Tracer("agency.internal.audit")

const promptTemplate = `You are a JSON-only response agent. You must respond with ONLY valid JSON - no other text, tags, or content.

CRITICAL: Do NOT include:
- <think> tags
- Reasoning steps
- Explanations
- Markdown formatting
- Any text before or after the JSON

Analyze the website: %q
Audit type: %q

Return ONLY this JSON format:

{
  "score": number (between 30 and 100),
  "issues": [string],
  "recommendations": [string],
  "loadTime": number (in seconds, like 0.5)
}

Start your response with { and end with }. Nothing else.`

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service produces website audits by prompting the inference service and
// parsing a structured result out of its free-form reply.
type Service struct {
	client  chatClient
	model   string
	timeout time.Duration
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewService returns an inference-backed audit service.
func NewService(client chatClient, model string, timeout time.Duration, logger *logging.Logger, m *metrics.Metrics) *Service {
	if client == nil {
		panic("audit: chat client cannot be nil")
	}
	if model == "" {
		model = "deepseek-ai/DeepSeek-R1-0528"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

// Run audits url along the given dimension. Once the remote call succeeds the
// operation almost never fails: unparsable model output degrades to a canned
// fallback result instead of an error.
func (s *Service) Run(ctx context.Context, url string, auditType Type) (Result, error) {
	if strings.TrimSpace(url) == "" {
		return Result{}, ErrMissingURL
	}
	if !auditType.Valid() {
		return Result{}, ErrUnsupportedType
	}

	ctx, span := auditTracer.Start(ctx, "audit.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("agency.audit.url", url),
		attribute.String("agency.audit.type", string(auditType)),
	)

	prompt := fmt.Sprintf(promptTemplate, url, strings.ToUpper(string(auditType)))

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	s.metrics.ObserveInferenceLatency(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("%w: %v", ErrInferenceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("inference service returned no choices")
		span.RecordError(err)
		return Result{}, fmt.Errorf("%w: %v", ErrInferenceUnavailable, err)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if raw == "" {
		raw = "{}"
	}
	s.logger.Debug("raw model output", "output", raw)

	result, ok := extractResult(raw)
	if !ok {
		s.logger.Warn("model output held no parsable JSON, using fallback result", "url", url)
		span.SetAttributes(attribute.Bool("agency.audit.fallback", true))
		return fallbackResult(), nil
	}
	return result, nil
}
