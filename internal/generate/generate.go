package generate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcript-flow/internal/errs"
)

const summaryPrompt = `You are an expert at analyzing spoken-word transcripts. Write a detailed summary of the transcript below.

Requirements:
- Open with a one-sentence headline describing the overall topic
- List every main point in the order it appears
- Explain each point, including caveats and practical tips mentioned by the speaker
- Keep domain terminology as spoken; do not paraphrase technical terms
- Use markdown: headings, bullet points, bold for key terms

Transcript:
---
%s
---`

const outlinePrompt = `You are an expert at structuring spoken-word transcripts into presentation outlines. Turn the transcript below into a sectioned outline.

Requirements:
- Open each section with a numbered heading line such as "I. Section Title" or "1. Section Title"
- Keep section titles to five words or fewer
- Under each heading, write short plain-text lines covering that section's content
- Cover the whole transcript in order; do not invent material
- Output plain text only; no markdown fences

Transcript:
---
%s
---`

// Summarize produces a prose summary of the transcript.
func (g *implGenerator) Summarize(ctx context.Context, transcript string) (string, error) {
	return g.callGemini(ctx, fmt.Sprintf(summaryPrompt, transcript))
}

// Outline produces a heading-structured deck outline of the transcript.
func (g *implGenerator) Outline(ctx context.Context, transcript string) (string, error) {
	return g.callGemini(ctx, fmt.Sprintf(outlinePrompt, transcript))
}

// callGemini sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *implGenerator) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		keyIndex, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		var cfg *genai.GenerateContentConfig
		if g.maxTokens > 0 {
			cfg = &genai.GenerateContentConfig{MaxOutputTokens: int32(g.maxTokens)}
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "API key %d rate limited, rotating", keyIndex+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", errs.Wrap(errs.KindGeneration, "generate content", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", errs.New(errs.KindGeneration, "empty response from model")
	}

	return "", errs.Wrap(errs.KindGeneration, "all API keys exhausted", lastErr)
}

func (g *implGenerator) key() (int, string) {
	g.keyMu.Lock()
	defer g.keyMu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

func (g *implGenerator) rotateKey() {
	g.keyMu.Lock()
	defer g.keyMu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
