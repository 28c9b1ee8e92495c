// Package decomposer breaks task titles into small steps using Gemini.
// Without an API key, or when the model call fails, a fixed list of
// generic steps is returned instead.
package decomposer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/runoshun/focus-pulse/internal/domain"
)

// Ensure Decomposer implements domain.Decomposer.
var _ domain.Decomposer = (*Decomposer)(nil)

// NoKeySteps is returned when no API key is configured.
func NoKeySteps() []string {
	return []string{"Start simply", "Do the first logical step", "Review progress"}
}

// FailureSteps is returned when the model call fails or yields nothing usable.
func FailureSteps() []string {
	return []string{"Prepare materials", "Start the first part", "Take a short break", "Finish the rest"}
}

// Prompt builds the breakdown request for a task title.
func Prompt(title string) string {
	return fmt.Sprintf("Break down the following task into 3 to 6 small, actionable, and non-overwhelming steps for someone with ADHD. Keep steps concise. Task: %q", title)
}

// Generator returns the raw model response for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Decomposer implements domain.Decomposer.
// Fields are ordered to minimize memory padding.
type Decomposer struct {
	gen     Generator
	newGen  func(ctx context.Context) (Generator, error)
	logger  domain.Logger
	timeout time.Duration
	once    sync.Once
	genErr  error
	hasKey  bool
}

// New creates a Decomposer backed by the Gemini API.
// The client is created on first use.
func New(cfg domain.AIConfig, logger domain.Logger) *Decomposer {
	model := cfg.Model
	if model == "" {
		model = domain.DefaultAIModel
	}
	apiKey := cfg.APIKey
	return &Decomposer{
		hasKey:  apiKey != "",
		timeout: cfg.TimeoutDuration(),
		logger:  logger,
		newGen: func(ctx context.Context) (Generator, error) {
			g, err := newGeminiGenerator(ctx, apiKey, model)
			if err != nil {
				return nil, err
			}
			return g, nil
		},
	}
}

// NewWithGenerator creates a Decomposer with a custom generator.
// This is useful for testing. A nil generator behaves like a missing key.
func NewWithGenerator(gen Generator, timeout time.Duration, logger domain.Logger) *Decomposer {
	if timeout <= 0 {
		timeout = domain.DefaultAITimeout
	}
	return &Decomposer{
		gen:     gen,
		hasKey:  gen != nil,
		timeout: timeout,
		logger:  logger,
	}
}

// Decompose returns steps for the title. It never fails.
func (d *Decomposer) Decompose(ctx context.Context, title string) []string {
	if !d.hasKey {
		d.log("no API key configured, using generic steps")
		return NoKeySteps()
	}

	gen, err := d.generator(ctx)
	if err != nil {
		d.warn(fmt.Sprintf("create client: %v", err))
		return FailureSteps()
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text, err := gen.Generate(ctx, Prompt(strings.TrimSpace(title)))
	if err != nil {
		d.warn(fmt.Sprintf("generate steps: %v", err))
		return FailureSteps()
	}

	steps, err := parseSteps(text)
	if err != nil {
		d.warn(fmt.Sprintf("parse response: %v", err))
		return FailureSteps()
	}
	if len(steps) == 0 {
		d.warn("model returned no steps")
		return FailureSteps()
	}

	d.log(fmt.Sprintf("decomposed into %d steps", len(steps)))
	return steps
}

func (d *Decomposer) generator(ctx context.Context) (Generator, error) {
	if d.newGen == nil {
		return d.gen, nil
	}
	d.once.Do(func() {
		d.gen, d.genErr = d.newGen(ctx)
	})
	return d.gen, d.genErr
}

// parseSteps decodes a JSON array of strings, trimming and dropping blanks.
func parseSteps(text string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, err
	}
	steps := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	return steps, nil
}

func (d *Decomposer) log(msg string) {
	if d.logger != nil {
		d.logger.Debug("ai", msg)
	}
}

func (d *Decomposer) warn(msg string) {
	if d.logger != nil {
		d.logger.Warn("ai", msg)
	}
}

// geminiGenerator calls the Gemini API with a JSON array response schema.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func newGeminiGenerator(ctx context.Context, apiKey, model string) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{client: client, model: model}, nil
}

// Generate implements Generator.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
