package enrichment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Palpiteiro/internal/model"
)

func TestBuildPrompt_ListsAllLabels(t *testing.T) {
	labels := []string{"Flamengo x Botafogo", "Real Madrid x Barcelona"}
	prompt := BuildPrompt(labels)
	for _, l := range labels {
		assert.Contains(t, prompt, l)
	}
	assert.Contains(t, prompt, "=", "prompt must describe the expected line format")
}

func TestParseResponse(t *testing.T) {
	text := "Flamengo x Botafogo = Clássico carioca decisivo\n" +
		"uma linha solta sem separador\n" +
		"Real Madrid x Barcelona = El Clásico vale a liderança\n" +
		"  = comentário sem jogo\n"
	blurbs := ParseResponse(text)
	assert.Len(t, blurbs, 2)
	assert.Equal(t, "Clássico carioca decisivo", blurbs["Flamengo x Botafogo"])
	assert.Equal(t, "El Clásico vale a liderança", blurbs["Real Madrid x Barcelona"])
}

func TestMatch_FuzzyContainment(t *testing.T) {
	blurbs := map[string]string{
		"Flamengo x Botafogo (Brasileirão)": "clássico",
		"Real Madrid x Barcelona":           "el clásico",
	}
	// Stored label is a substring of the oracle's label.
	assert.Equal(t, "clássico", Match(blurbs, "Flamengo x Botafogo"))
	// Oracle label is a substring of the stored one.
	assert.Equal(t, "el clásico", Match(blurbs, "Real Madrid x Barcelona - La Liga"))
	// Accents must not break matching.
	assert.Equal(t, "el clásico", Match(blurbs, "REAL MADRID X BARCELONA"))
	assert.Empty(t, Match(blurbs, "Grêmio x Juventude"))
}

func TestDescribe_DisabledOracle(t *testing.T) {
	o := NewOracle("", "", "")
	if o.Enabled() {
		t.Fatal("oracle without API key must be disabled")
	}
	events := []model.Event{{HomeTeam: "Flamengo", AwayTeam: "Botafogo", VIP: true}}
	if blurbs := o.Describe(context.Background(), events); len(blurbs) != 0 {
		t.Fatalf("disabled oracle must return nothing, got %v", blurbs)
	}
}

func TestBuildPrompt_OneLinePerLabel(t *testing.T) {
	labels := []string{"a x b", "c x d", "e x f"}
	prompt := BuildPrompt(labels)
	for _, l := range labels {
		if strings.Count(prompt, l) != 1 {
			t.Errorf("label %q must appear exactly once", l)
		}
	}
}
