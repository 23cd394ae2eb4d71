package enrichment

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"Palpiteiro/internal/model"
	"Palpiteiro/internal/normalize"
)

// Oracle produces short descriptive blurbs for VIP matches. All labels
// of a cycle go out in one batched request, so a full day costs a
// single round trip regardless of how many VIP events there are.
type Oracle struct {
	client  openai.Client
	model   string
	enabled bool
}

// NewOracle creates an Oracle. An empty API key disables enrichment
// entirely; callers then get empty maps and reports degrade to their
// non-enriched form.
func NewOracle(apiKey, baseURL, modelName string) *Oracle {
	if apiKey == "" {
		return &Oracle{}
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	return &Oracle{
		client:  openai.NewClient(opts...),
		model:   modelName,
		enabled: true,
	}
}

// Enabled reports whether the oracle is configured.
func (o *Oracle) Enabled() bool { return o.enabled }

// Describe requests one blurb per VIP event and returns them keyed by
// event label. Any failure logs and returns an empty map; enrichment is
// never fatal.
func (o *Oracle) Describe(ctx context.Context, events []model.Event) map[string]string {
	if !o.enabled {
		return nil
	}
	var labels []string
	for _, ev := range events {
		if ev.VIP {
			labels = append(labels, ev.Label())
		}
	}
	if len(labels) == 0 {
		return nil
	}

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(BuildPrompt(labels))},
	})
	if err != nil {
		log.Printf("[WARN] enrichment oracle: %v", err)
		return nil
	}
	if len(resp.Choices) == 0 {
		log.Println("[WARN] enrichment oracle returned no choices")
		return nil
	}
	return ParseResponse(resp.Choices[0].Message.Content)
}

// BuildPrompt lists every VIP label in one line-oriented prompt.
func BuildPrompt(labels []string) string {
	var b strings.Builder
	b.WriteString("Para cada jogo abaixo, escreva uma única linha no formato exato ")
	b.WriteString("'Jogo = comentário curto', destacando em uma frase por que o confronto é importante hoje.\n\n")
	for _, l := range labels {
		fmt.Fprintf(&b, "%s\n", l)
	}
	return b.String()
}

// ParseResponse splits a line-oriented "Label = text" response into a
// label→text map. Lines without '=' are ignored.
func ParseResponse(text string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		label, blurb, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		blurb = strings.TrimSpace(blurb)
		if label == "" || blurb == "" {
			continue
		}
		out[label] = blurb
	}
	return out
}

// Match finds the blurb for an event label using substring containment
// in either direction on normalized labels. The oracle rephrases names
// often enough that exact equality would drop most lines.
func Match(blurbs map[string]string, label string) string {
	if len(blurbs) == 0 {
		return ""
	}
	want := normalize.Name(label)
	for key, text := range blurbs {
		got := normalize.Name(key)
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return text
		}
	}
	return ""
}
