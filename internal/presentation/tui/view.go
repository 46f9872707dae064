package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quinnjr/fish-dating-simulator/internal/fishing"
	"github.com/quinnjr/fish-dating-simulator/internal/game"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

var titleCaser = cases.Title(language.English)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.game.Screen() {
	case game.MainMenu:
		m.viewMainMenu(&b)
	case game.PondSelect:
		m.viewPondSelect(&b)
	case game.Fishing:
		m.viewFishing(&b)
	case game.CatchResult:
		m.viewCatch(&b)
	case game.Collection:
		m.viewCollection(&b)
	case game.DateSelect:
		m.viewDateSelect(&b)
	case game.Dating:
		m.viewDating(&b)
	case game.DateResult:
		m.viewDateResult(&b)
	case game.GameOver:
		m.viewGameOver(&b)
	}

	for _, a := range m.notices {
		b.WriteString("\n" + noticeStyle.Render("Achievement unlocked: "+a.Name) + "\n")
	}
	if err := m.game.SaveError(); err != nil {
		b.WriteString("\n" + errorStyle.Render("Save failed: "+err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return frameStyle.Render(b.String())
}

func (m Model) contentWidth() int {
	return max(m.width-frameStyle.GetHorizontalFrameSize(), 20)
}

func (m Model) header(b *strings.Builder) {
	screen := strings.ReplaceAll(m.game.Screen().String(), "-", " ")
	b.WriteString(titleStyle.Render("FISH DATING SIMULATOR") + "  ")
	b.WriteString(subtitleStyle.Render(titleCaser.String(screen)) + "\n\n")
}

func renderMenu(b *strings.Builder, menu game.Menu) {
	for i, item := range menu.Items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == menu.Selected {
			b.WriteString("> " + selectedItemStyle.Render(line) + "\n")
			continue
		}
		b.WriteString(itemStyle.Render(line) + "\n")
	}
}

func (m Model) viewMainMenu(b *strings.Builder) {
	m.header(b)
	p := m.game.Player()
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Day %d  ·  %d fish caught  ·  %d dates",
		p.CurrentDay, len(p.Collection), p.DatesCompleted)) + "\n")
	if id, score, ok := p.Closest(); ok {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Closest: %s (%s)",
			m.game.Catalog().Name(id), domain.RelationshipLabel(score))) + "\n")
	}
	b.WriteString("\n")
	renderMenu(b, m.game.MainMenu())
}

func (m Model) viewPondSelect(b *strings.Builder) {
	m.header(b)
	b.WriteString("Where do you want to cast your line?\n\n")
	_, menu := m.game.PondMenu()
	renderMenu(b, menu)
}

func (m Model) viewFishing(b *strings.Builder) {
	m.header(b)
	b.WriteString(subtitleStyle.Render(m.game.Target().Name) + "\n\n")

	mg := m.game.Minigame()
	if mg == nil {
		return
	}
	switch mg.Phase() {
	case fishing.Casting:
		b.WriteString("Casting your line...\n")
	case fishing.Waiting:
		b.WriteString("Waiting for a bite...\n")
	case fishing.Reeling:
		b.WriteString(speakerStyle.Render("Something is biting!") + " Press enter when the cursor is in the zone.\n\n")
		b.WriteString(mg.Bar(min(m.contentWidth(), 50)) + "\n")
	case fishing.Result:
		if out, _ := mg.Outcome(); out.Caught {
			b.WriteString(gainStyle.Render("Got it!") + " Press enter to reel it in.\n")
		} else {
			b.WriteString(lossStyle.Render("It got away...") + " Press enter to try another pond.\n")
		}
	}
}

func (m Model) viewCatch(b *strings.Builder) {
	m.header(b)
	c := m.game.Catch()
	if c == nil {
		return
	}
	def, ok := m.game.Catalog().Lookup(c.Fish)
	if !ok {
		b.WriteString(fmt.Sprintf("You caught %s!\n", m.game.Catalog().Name(c.Fish)))
		return
	}
	b.WriteString(artStyle.Render(strings.Trim(def.ArtForAffection(m.game.Player().Relationship(c.Fish)), "\n")) + "\n\n")
	b.WriteString(fmt.Sprintf("You caught %s the %s! (%s)\n",
		fishStyle(def.Color.Hex()).Render(def.Name), def.Species, c.Size))
	b.WriteString(wordwrap.String(def.Description, m.contentWidth()) + "\n")
}

func (m Model) viewCollection(b *strings.Builder) {
	m.header(b)
	p := m.game.Player()
	cat := m.game.Catalog()
	ids := cat.All()

	for i := m.game.Scroll(); i < len(ids); i++ {
		id := ids[i]
		def, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		if !p.HasCaught(id) {
			b.WriteString(mutedStyle.Render("??? - not caught yet") + "\n")
			continue
		}
		score := p.Relationship(id)
		b.WriteString(fmt.Sprintf("%s %s (%s)  x%d  %s [%d]\n",
			def.ArtSmall,
			fishStyle(def.Color.Hex()).Render(def.Name),
			def.Species,
			p.CatchCount(id),
			domain.RelationshipLabel(score),
			score,
		))
	}

	b.WriteString("\n" + titleStyle.Render("Achievements") + "\n")
	for _, a := range m.game.Achievements() {
		mark := mutedStyle.Render("[ ] " + a.Name)
		if p.HasAchievement(a.ID) {
			mark = gainStyle.Render("[x] " + a.Name)
		}
		b.WriteString(mark + "  " + mutedStyle.Render(a.Description) + "\n")
	}
}

func (m Model) viewDateSelect(b *strings.Builder) {
	m.header(b)
	b.WriteString("Who do you want to spend the day with?\n\n")
	_, menu := m.game.DateMenu()
	renderMenu(b, menu)
}

func (m Model) viewDating(b *strings.Builder) {
	d := m.game.Date()
	if d == nil {
		return
	}
	width := m.contentWidth()

	b.WriteString(titleStyle.Render(d.Def.DateLocation) + "  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Date #%d with %s", d.Number+1, d.Def.Name)) + "\n")
	b.WriteString(artStyle.Render(strings.Trim(d.Def.DateSceneArt, "\n")) + "\n\n")

	view := d.Runner.Current()
	switch view.Kind {
	case domain.ViewText:
		if name := view.SpeakerName(); name != "" {
			b.WriteString(speakerStyle.Render(name+":") + " ")
			b.WriteString(wordwrap.String(view.Text, width-lipgloss.Width(name)-2) + "\n")
		} else {
			b.WriteString(narrationStyle.Render(wordwrap.String(view.Text, width)) + "\n")
		}
		b.WriteString("\n" + mutedStyle.Render("enter: continue") + "\n")
	case domain.ViewChoice:
		b.WriteString(wordwrap.String(view.Prompt, width) + "\n\n")
		if len(view.Choices) == 0 {
			b.WriteString(mutedStyle.Render("(nothing to say... press esc to leave)") + "\n")
		}
		renderMenu(b, d.Choice)
	case domain.ViewEnded:
		b.WriteString(mutedStyle.Render("The date is over. Press enter.") + "\n")
	}

	b.WriteString("\n" + renderGain(d.Gained) + "\n")
}

func renderGain(n int) string {
	switch {
	case n > 0:
		return gainStyle.Render(fmt.Sprintf("affection +%d", n))
	case n < 0:
		return lossStyle.Render(fmt.Sprintf("affection %d", n))
	default:
		return mutedStyle.Render("affection +0")
	}
}

func (m Model) viewDateResult(b *strings.Builder) {
	m.header(b)
	d := m.game.Date()
	if d == nil {
		return
	}
	score := m.game.Player().Relationship(d.Fish)
	b.WriteString(artStyle.Render(strings.Trim(d.Def.ArtForAffection(score), "\n")) + "\n\n")
	b.WriteString(fmt.Sprintf("Your date with %s is over. %s\n",
		fishStyle(d.Def.Color.Hex()).Render(d.Def.Name), renderGain(d.Gained)))
	b.WriteString(fmt.Sprintf("Relationship: %s [%d]\n", domain.RelationshipLabel(score), score))
}

func (m Model) viewGameOver(b *strings.Builder) {
	m.header(b)
	p := m.game.Player()
	id, _, _ := p.Closest()
	b.WriteString(speakerStyle.Render("You found your soulmate!") + "\n\n")
	b.WriteString(wordwrap.String(fmt.Sprintf("After %d days and %d dates, you and %s swim off together.",
		p.CurrentDay, p.DatesCompleted, m.game.Catalog().Name(id)), m.contentWidth()) + "\n\n")
	b.WriteString(mutedStyle.Render("Press enter to start a new game.") + "\n")
}
