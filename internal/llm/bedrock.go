package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog/log"

	"github.com/smartcity/traffic-analyzer/internal/domain"
)

// Generation parameters sent with every prompt
const (
	MaxGenLen   = 2000
	Temperature = 0.7
	TopP        = 0.95
)

// ModelInvoker is the subset of the Bedrock runtime client used here
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Config holds the credentials and model used for text generation
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	ModelID   string
}

// BedrockClient sends prompts to a text model hosted on AWS Bedrock
type BedrockClient struct {
	invoker ModelInvoker
	modelID string
}

// NewBedrockClient builds a client from static credentials. Empty credentials are
// accepted here and reported on the first Generate call instead.
func NewBedrockClient(cfg Config) *BedrockClient {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return &BedrockClient{modelID: cfg.ModelID}
	}

	runtime := bedrockruntime.New(bedrockruntime.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		Retryer: aws.NopRetryer{},
	})

	return NewBedrockClientWithInvoker(runtime, cfg.ModelID)
}

// NewBedrockClientWithInvoker wraps an existing invoker, typically a fake in tests
func NewBedrockClientWithInvoker(invoker ModelInvoker, modelID string) *BedrockClient {
	return &BedrockClient{invoker: invoker, modelID: modelID}
}

type generationRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// Generate sends the prompt to the model and returns its generation text.
// If the reply has no generation field, the whole reply is returned as text
// so the caller can see what came back. A generation that is not text is an error.
func (c *BedrockClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.invoker == nil {
		return "", fmt.Errorf("bedrock: %w", domain.ErrMissingCredentials)
	}

	body, err := json.Marshal(generationRequest{
		Prompt:      prompt,
		MaxGenLen:   MaxGenLen,
		Temperature: Temperature,
		TopP:        TopP,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: failed to marshal request: %w", err)
	}

	out, err := c.invoker.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: failed to invoke model %s: %w", c.modelID, err)
	}

	var reply map[string]any
	if err := json.Unmarshal(out.Body, &reply); err != nil {
		return "", fmt.Errorf("bedrock: failed to decode response: %w", err)
	}

	if value, present := reply["generation"]; present {
		generation, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("bedrock: generation field is %T, not text", value)
		}
		return strings.TrimSpace(generation), nil
	}

	log.Warn().Str("model", c.modelID).Msg("Bedrock response has no generation field")
	raw, err := json.MarshalIndent(reply, "", "  ")
	if err != nil {
		return "", fmt.Errorf("bedrock: failed to encode unexpected response: %w", err)
	}
	return fmt.Sprintf("Unexpected response structure. Full response: %s", raw), nil
}
