package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/questmap"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
)

// --- Styles (temple and parchment) ---
var (
	parchment = lipgloss.NewStyle().Foreground(lipgloss.Color("#e8ddc7"))
	runeTone  = lipgloss.NewStyle().Foreground(lipgloss.Color("#78b7c3"))
	gold      = lipgloss.NewStyle().Foreground(lipgloss.Color("#c9a227")).Bold(true)
	dim       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focused   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e3440")).Background(lipgloss.Color("#78b7c3")).Bold(true)
	panel     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#8c7a5b")).Padding(0, 1)
	panelOn   = panel.BorderForeground(lipgloss.Color("#78b7c3"))
	toast     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e3440")).Background(lipgloss.Color("#c9a227")).Bold(true).Padding(0, 2)
)

func (m *model) View() string {
	var body string
	switch c := m.session.Active().(type) {
	case *screen.Home:
		body = m.viewHome(c)
	case *screen.Inventory:
		body = m.viewInventory(c)
	case *screen.Quests:
		body = m.viewQuests(c)
	case *screen.Forge:
		body = m.viewForge(c)
	case *screen.Log:
		body = m.viewLog(c)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), "", body, "", dim.Render("ctrl+c quit"))
}

func (m *model) viewTabs() string {
	parts := make([]string, 0, len(input.Screens()))
	for _, s := range input.Screens() {
		label := s.String()
		if s == m.session.Current() {
			parts = append(parts, gold.Render("["+label+"]"))
			continue
		}
		parts = append(parts, parchment.Render(" "+label+" "))
	}
	title := gold.Render("FORGE & FIELD")
	if m.cfg.Version != "" {
		title += " " + dim.Render(m.cfg.Version)
	}
	return title + "  " + strings.Join(parts, " ")
}

func cursorLine(on bool, text string) string {
	if on {
		return focused.Render("> " + text)
	}
	return "  " + text
}

func (m *model) viewHome(h *screen.Home) string {
	var b strings.Builder
	b.WriteString(gold.Render("Explore") + "\n\n")
	for i, e := range h.Menu() {
		b.WriteString(cursorLine(h.Focus().Index == i, e.Label) + "\n")
	}
	menu := panelOn.Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, menu, "  ", m.controls)
}

func (m *model) viewInventory(inv *screen.Inventory) string {
	var tabs []string
	for i, c := range inv.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if c == inv.Category() {
			tabs = append(tabs, gold.Render(label))
		} else {
			tabs = append(tabs, dim.Render(label))
		}
	}

	var grid strings.Builder
	idx := inv.Focus().Index
	for i, it := range inv.Items() {
		cell := fmt.Sprintf("%-18s", truncate(it.Name, 16))
		if inv.IsHeld(it.ID) {
			cell = gold.Render(cell)
		}
		if i == idx {
			cell = focused.Render(cell)
		}
		grid.WriteString(cell)
		if (i+1)%screen.InventoryColumns == 0 {
			grid.WriteString("\n")
		}
	}

	var detail strings.Builder
	if it, ok := inv.Selected(); ok {
		detail.WriteString(itemDetail(it))
	}
	fmt.Fprintf(&detail, "\n\nHeld %d/%d", len(inv.Held()), screen.HoldLimit)
	for _, id := range inv.Held() {
		detail.WriteString("\n- " + m.session.Env().Dataset.ItemName(id))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, "  "),
		lipgloss.JoinHorizontal(lipgloss.Top, panelOn.Render(strings.TrimRight(grid.String(), "\n")), " ", panel.Width(40).Render(detail.String())),
		dim.Render("enter hold  backspace clear  o open in forge  tab/1-6 category"),
	)
}

func itemDetail(it catalog.Item) string {
	return strings.Join([]string{
		gold.Render(it.Name),
		fmt.Sprintf("%s  %s  %s", it.ID, it.Type, it.Revision),
		fmt.Sprintf("Status %s  Supplier %s", it.Status, it.Supplier),
		fmt.Sprintf("Cost %.0f  Health %d%%", it.Cost, it.HealthPct),
		dim.Render(it.Description),
	}, "\n")
}

func (m *model) viewQuests(q *screen.Quests) string {
	fs := q.Focus()
	var board strings.Builder
	for i, r := range q.Requests() {
		mark := " "
		if i == q.SelectedIndex() {
			mark = "*"
		}
		line := fmt.Sprintf("%s %s [%s] %s", mark, r.ID, r.Priority, r.Title)
		board.WriteString(cursorLine(fs.Is(screen.AreaBoard, i), line) + "\n")
	}
	boardStyle := panel
	if fs.Area == screen.AreaBoard {
		boardStyle = panelOn
	}

	var path strings.Builder
	for i := 0; i < questmap.StageCount; i++ {
		label := fmt.Sprintf("(%d)", i+1)
		switch q.StageState(i) {
		case questmap.StageDone:
			label = runeTone.Render(label)
		case questmap.StageCurrent:
			label = gold.Render(label)
		default:
			label = dim.Render(label)
		}
		if i == q.ActiveStage() {
			label = "[" + label + "]"
		}
		path.WriteString(label)
		if i < questmap.StageCount-1 {
			path.WriteString(dim.Render("──"))
		}
	}
	brief := q.Brief()
	var b strings.Builder
	b.WriteString(path.String() + "\n\n" + gold.Render(brief.Stage) + "\n")
	for _, line := range questmap.WrapLine(brief.Explanation, questmap.BriefWidth) {
		b.WriteString(line + "\n")
	}
	for _, task := range brief.Tasks {
		for j, line := range questmap.WrapLine(task, questmap.BriefWidth) {
			prefix := "  "
			if j == 0 {
				prefix = "- "
			}
			b.WriteString(dim.Render(prefix+line) + "\n")
		}
	}
	mapStyle := panel
	if fs.Area == screen.AreaMap {
		mapStyle = panelOn
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(strings.TrimRight(board.String(), "\n")),
		" ",
		mapStyle.Render(strings.TrimRight(b.String(), "\n")),
	)
}

func (m *model) viewForge(f *screen.Forge) string {
	fs := f.Focus()
	q := f.Query()
	header := fmt.Sprintf("%s  type: %s  %s", m.search.View(), gold.Render(q.Type), dim.Render("/ search  t type"))

	var inv strings.Builder
	items := f.Items()
	start := 0
	if fs.Area == screen.AreaInventory {
		start = max(0, min(fs.Index-5, len(items)-10))
	}
	for i := start; i < len(items) && i < start+10; i++ {
		inv.WriteString(cursorLine(fs.Is(screen.AreaInventory, i), items[i].Name) + "\n")
	}
	if len(items) == 0 {
		inv.WriteString(dim.Render("No items match"))
	}

	pot := f.Pot()
	var slots []string
	for i := 0; i < forge.PotCapacity; i++ {
		label := "·"
		if it, ok := pot.Slot(i); ok {
			label = truncate(it.Name, 12)
		}
		if fs.Is(screen.AreaPot, i) {
			label = focused.Render(label)
		}
		slots = append(slots, "["+label+"]")
	}

	button := fmt.Sprintf("Forge (%d/%d)", pot.Len(), forge.PotCapacity)
	switch {
	case pot.Busy():
		button = "Forging..."
	case !pot.CanForge():
		button = dim.Render(button)
	}
	if fs.Area == screen.AreaForge {
		button = focused.Render(button)
	}

	var side strings.Builder
	if res, ok := pot.Result(); ok && pot.Len() == 0 {
		side.WriteString(dim.Render("Forged:") + "\n" + itemDetail(res))
	} else if prev, ok := f.Preview(); ok {
		side.WriteString(itemDetail(prev))
	} else {
		fmt.Fprintf(&side, "Add at least %d items", forge.MinForgeItems)
	}
	if hints := f.Hints(); len(hints) > 0 {
		side.WriteString("\n\n" + gold.Render("Recipe hints"))
		for _, h := range hints {
			side.WriteString("\n- " + h.Name)
		}
	}
	side.WriteString("\n\n" + gold.Render("Recent changes"))
	history := f.History()
	if len(history) == 0 {
		side.WriteString("\n" + dim.Render("No local changes yet"))
	}
	for i, c := range history {
		if i == 5 {
			break
		}
		fmt.Fprintf(&side, "\n%s %s %s", c.ID, c.Title, c.ToRev)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		areaStyle(fs.Area == screen.AreaInventory).Render(strings.TrimRight(inv.String(), "\n")),
		areaStyle(fs.Area == screen.AreaPot).Render(strings.Join(slots, " ")),
		button,
	)
	out := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", panel.Width(44).Render(side.String())),
	)
	if text, ok := f.Toast(); ok {
		out = toast.Render(text) + "\n" + out
	}
	return out
}

func areaStyle(on bool) lipgloss.Style {
	if on {
		return panelOn
	}
	return panel
}

func (m *model) viewLog(l *screen.Log) string {
	var changes strings.Builder
	changes.WriteString(gold.Render("Forged variants"))
	for _, c := range l.Changes() {
		fmt.Fprintf(&changes, "\n%s %s", c.ID, c.Title)
	}
	if len(l.Changes()) == 0 {
		changes.WriteString("\n" + dim.Render("Nothing forged yet"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panelOn.Render(m.logView.View()), " ", panel.Render(changes.String()))
}

func renderLogEntries(l *screen.Log, width int) string {
	idx := l.Focus().Index
	lines := make([]string, 0, len(l.Entries()))
	for i, e := range l.Entries() {
		line := truncate(fmt.Sprintf("Y%d: %s", e.Year, e.Entry), max(10, width-4))
		lines = append(lines, cursorLine(i == idx, line))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
