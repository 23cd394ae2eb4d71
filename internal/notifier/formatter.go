package notifier

import (
	"fmt"
	"strings"
	"time"

	"Palpiteiro/internal/model"
	"Palpiteiro/internal/oddsmath"
	"Palpiteiro/internal/pipeline"
)

// User-visible fallbacks for cycles that found nothing.
const (
	MsgNoGames       = "Nenhum jogo na grade de hoje. 😴"
	MsgNoAccumulator = "Nenhuma múltipla de valor encontrada hoje."
)

// FormatDailyReport builds the per-event report blocks for one cycle.
func FormatDailyReport(sport pipeline.Sport, groups []pipeline.EventReport) string {
	var b strings.Builder

	icon := "⚽"
	title := "Grade do Dia"
	if sport == pipeline.Basketball {
		icon = "🏀"
		title = "Grade NBA"
	}
	fmt.Fprintf(&b, "%s <b>%s</b> | %s\n", icon, title, time.Now().Format("02/01/2006"))

	for _, g := range groups {
		ev := g.Event
		b.WriteString("\n")
		if ev.VIP {
			b.WriteString("⭐ ")
		}
		fmt.Fprintf(&b, "<b>%s</b> — %s (%s)\n", ev.Label(), ev.League, ev.Kickoff.Format("15:04"))
		for _, line := range g.Lines {
			fmt.Fprintf(&b, "  • %s\n", line)
		}
	}
	return b.String()
}

// FormatAccumulator builds the multi-leg combination block.
func FormatAccumulator(acc *model.Accumulator) string {
	if acc == nil {
		return MsgNoAccumulator
	}
	var b strings.Builder
	b.WriteString("🎯 <b>Múltipla do Dia</b>\n\n")
	for i, leg := range acc.Legs {
		fmt.Fprintf(&b, "%d. %s — %s (@%.2f)\n", i+1, leg.Match, leg.Selection, leg.Price)
	}
	fmt.Fprintf(&b, "\nOdd combinada: <b>@%.2f</b>\n", acc.Product)
	fmt.Fprintf(&b, "Probabilidade implícita: %.1f%%\n", oddsmath.ImpliedProb(acc.Product)*100)
	return b.String()
}

// FormatStatus renders the cache state for the /status command.
func FormatStatus(soccerAge, basketAge time.Duration, soccerOK, basketOK bool) string {
	var b strings.Builder
	b.WriteString("📦 <b>Status</b>\n\n")
	b.WriteString("Grade futebol: " + ageLabel(soccerAge, soccerOK) + "\n")
	b.WriteString("Grade basquete: " + ageLabel(basketAge, basketOK) + "\n")
	return b.String()
}

func ageLabel(age time.Duration, ok bool) string {
	if !ok {
		return "vazia"
	}
	return fmt.Sprintf("atualizada há %s", age.Round(time.Minute))
}
