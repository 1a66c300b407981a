package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
	uitheme "github.com/appengine-ltd/forge-and-field/internal/ui/theme"
)

// contentRect is the area above the tab bar.
func (ui *gameUI) contentRect() rl.Rectangle {
	inset := uitheme.FrameInset(ui.width, ui.height)
	return rl.NewRectangle(inset.X+spaceM, inset.Y+spaceM, inset.Width-spaceM*2, inset.Height-spaceM*2-40)
}

func (ui *gameUI) drawHome(h *screen.Home) {
	area := ui.contentRect()
	title := "Forge & Field"
	drawTitle(title, int32(area.X+(area.Width-float32(measureText(title, typeScale.Title)))/2), int32(area.Y)+10, typeScale.Title, AppTheme.Gold)
	drawTextCentered("A controller-first workshop for items, quests and forged variants", area, 64, typeScale.Body, AppTheme.TextOnBG)

	top := area.Y + 110
	colW := (area.Width - spaceL) / 2
	explore := rl.NewRectangle(area.X, top, colW, area.Height-110)
	controls := rl.NewRectangle(area.X+colW+spaceL, top, colW, area.Height-110)

	DrawPanel(explore, "Explore", true)
	y := explore.Y + float32(panelBody())
	for i, entry := range h.Menu() {
		state := listStateNormal
		if h.Focus().Index == i {
			state = listStateFocused
		}
		DrawListItem(listRowRect(explore.X+spaceM, y, explore.Width-spaceM*2), state, entry.Label, navLabel(entry.Screen))
		y += uitheme.RowHeight + spaceXS
	}

	DrawPanel(controls, "Basic Controls", false)
	cy := int32(controls.Y) + panelBody()
	for _, b := range controlBindings() {
		drawText(b.Label, int32(controls.X+spaceM), cy, typeScale.Body, AppTheme.TextPrimary)
		drawText(b.Binding, int32(controls.X+controls.Width/2), cy, typeScale.Body, AppTheme.TextSecondary)
		cy += textLineHeight(typeScale.Body)
	}
}

type binding struct {
	Label   string
	Binding string
}

// controlBindings lists every action with its keys and gamepad button.
func controlBindings() []binding {
	out := make([]binding, 0, len(input.Actions()))
	for _, a := range input.Actions() {
		parts := input.KeysFor(a)
		if idx, ok := input.ButtonFor(a); ok {
			parts = append(parts, input.ButtonName(idx))
		}
		label := a.String()
		out = append(out, binding{
			Label:   strings.ToUpper(label[:1]) + label[1:],
			Binding: strings.Join(parts, " / "),
		})
	}
	return out
}

func (ui *gameUI) drawInventory(inv *screen.Inventory) {
	area := ui.contentRect()
	DrawHeader("Inventory", int32(area.X), int32(area.Y))

	x := int32(area.X)
	tabY := int32(area.Y) + 44
	for i, c := range inv.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		clr := AppTheme.TextOnBG
		if c == inv.Category() {
			clr = AppTheme.Gold
		}
		drawText(label, x, tabY, typeScale.Body, clr)
		x += measureText(label, typeScale.Body) + 24
	}

	gridArea := rl.NewRectangle(area.X, area.Y+80, area.Width*0.6, area.Height-80)
	detail := rl.NewRectangle(gridArea.X+gridArea.Width+spaceL, gridArea.Y, area.Width-gridArea.Width-spaceL, gridArea.Height)

	focus := inv.Focus()
	for i, it := range inv.Items() {
		cell := gridCell(gridArea, screen.InventoryColumns, i, spaceS)
		if cell.Y+cell.Height > gridArea.Y+gridArea.Height {
			break
		}
		uitheme.DrawSlot(cell, focus.Index == i, inv.IsHeld(it.ID), it.Name)
		drawText(it.ID, int32(cell.X+spaceXS), int32(cell.Y+spaceXS), typeScale.Small, AppTheme.TextMuted)
	}

	DrawPanel(detail, "Details", false)
	y := int32(detail.Y) + panelBody()
	if it, ok := inv.Selected(); ok {
		y = drawItemDetail(it, detail, y)
	}
	y += 12
	drawText(fmt.Sprintf("Held %d/%d", len(inv.Held()), screen.HoldLimit), int32(detail.X+spaceM), y, typeScale.Body, AppTheme.TextPrimary)
	y += textLineHeight(typeScale.Body)
	for _, id := range inv.Held() {
		drawText("- "+ui.cfg.itemName(id), int32(detail.X+spaceM), y, typeScale.Small, AppTheme.TextSecondary)
		y += textLineHeight(typeScale.Small)
	}
	DrawHintText("Enter hold  Backspace clear  O open in forge  Tab/1-6 category", int32(detail.X+spaceM), int32(detail.Y+detail.Height)-28)
}

func (cfg AppConfig) itemName(id string) string {
	if cfg.Env.Dataset == nil {
		return id
	}
	return safeText(cfg.Env.Dataset.ItemName(id))
}

// drawItemDetail prints an item's fields and returns the next free y.
func drawItemDetail(it catalog.Item, panel rl.Rectangle, y int32) int32 {
	x := int32(panel.X + spaceM)
	drawText(it.Name, x, y, typeScale.Header, AppTheme.TextPrimary)
	y += textLineHeight(typeScale.Header)
	rows := [][2]string{
		{"ID", it.ID},
		{"Type", it.Type},
		{"Revision", safeText(it.Revision)},
		{"Status", safeText(it.Status)},
		{"Supplier", safeText(it.Supplier)},
		{"Cost", fmt.Sprintf("%.0f", it.Cost)},
	}
	for _, r := range rows {
		DrawLabelValue(r[0], r[1], x, y, AppTheme.TextPrimary)
		y += textLineHeight(typeScale.Body)
	}
	DrawHealthBar(it.HealthPct, rl.NewRectangle(float32(x), float32(y), panel.Width-spaceM*2, 30))
	y += 34
	y = drawWrappedText(it.Description, panel, y-int32(panel.Y), typeScale.Small, AppTheme.TextSecondary) + int32(panel.Y)
	if it.Notes != "" {
		y = drawWrappedText(it.Notes, panel, y-int32(panel.Y), typeScale.Small, AppTheme.TextMuted) + int32(panel.Y)
	}
	return y
}

// gridCell is the rectangle of cell index in a grid of square cells that
// fills area's width.
func gridCell(area rl.Rectangle, columns, index int, gap float32) rl.Rectangle {
	if columns < 1 {
		columns = 1
	}
	size := (area.Width - gap*float32(columns-1)) / float32(columns)
	col, row := index%columns, index/columns
	return rl.NewRectangle(area.X+float32(col)*(size+gap), area.Y+float32(row)*(size+gap), size, size)
}

func (ui *gameUI) drawForge(f *screen.Forge) {
	area := ui.contentRect()
	DrawHeader("Forge", int32(area.X), int32(area.Y))

	focus := f.Focus()
	q := f.Query()
	search := rl.NewRectangle(area.X, area.Y+44, area.Width*0.4, uitheme.ButtonHeight-12)
	DrawInputField(search, q.Text, "Search ( / )", f.Editing())
	drawText("Type: "+q.Type+"  [T]", int32(search.X+search.Width+spaceM), int32(search.Y+10), typeScale.Body, AppTheme.TextOnBG)

	left := rl.NewRectangle(area.X, search.Y+search.Height+spaceM, area.Width*0.6, area.Height)
	left.Height = area.Y + area.Height - left.Y
	right := rl.NewRectangle(left.X+left.Width+spaceL, area.Y+44, area.Width-left.Width-spaceL, area.Height-44)

	invArea := rl.NewRectangle(left.X, left.Y, left.Width, left.Height*0.55)
	DrawPanel(invArea, "Inventory", focus.Area == screen.AreaInventory)
	inner := rl.NewRectangle(invArea.X+spaceM, invArea.Y+float32(panelBody()), invArea.Width-spaceM*2, invArea.Height)
	items := f.Items()
	first := visibleFrom(focus.Index, len(items), forgeVisible, focus.Area == screen.AreaInventory)
	for i := first; i < len(items) && i < first+forgeVisible; i++ {
		cell := gridCell(inner, forgeVisible/2, i-first, spaceS)
		cell.Height *= 0.7
		if cell.Y+cell.Height > invArea.Y+invArea.Height-spaceS {
			break
		}
		uitheme.DrawSlot(cell, focus.Is(screen.AreaInventory, i), false, items[i].Name)
	}
	if len(items) == 0 {
		drawText("No items match", int32(inner.X), int32(inner.Y), typeScale.Body, AppTheme.TextMuted)
	}

	potArea := rl.NewRectangle(left.X, invArea.Y+invArea.Height+spaceS, left.Width, left.Height*0.45-spaceS-uitheme.ButtonHeight-spaceS)
	DrawPanel(potArea, "Pot", focus.Area == screen.AreaPot)
	potInner := rl.NewRectangle(potArea.X+spaceM, potArea.Y+float32(panelBody()), potArea.Width-spaceM*2, potArea.Height)
	pot := f.Pot()
	for i := 0; i < forge.PotCapacity; i++ {
		cell := gridCell(potInner, forge.PotCapacity, i, spaceS)
		label := ""
		if it, ok := pot.Slot(i); ok {
			label = it.Name
		}
		uitheme.DrawSlot(cell, focus.Is(screen.AreaPot, i), i == 0 && label != "", label)
	}

	btn := rl.NewRectangle(left.X, potArea.Y+potArea.Height+spaceS, left.Width, uitheme.ButtonHeight)
	state := buttonStateNormal
	label := fmt.Sprintf("Forge (%d/%d)", pot.Len(), forge.PotCapacity)
	switch {
	case pot.Busy():
		state, label = buttonStateDisabled, "Forging..."
	case !pot.CanForge():
		state = buttonStateDisabled
	}
	if focus.Area == screen.AreaForge && state != buttonStateDisabled {
		state = buttonStateFocused
	}
	DrawButton(btn, state, label)
	if focus.Area == screen.AreaForge {
		rl.DrawRectangleRoundedLinesEx(btn, uitheme.CornerRadius, uitheme.CornerSegments, uitheme.BorderWidthFocus, AppTheme.Accent)
	}

	ui.drawForgeSide(f, right)
	if text, ok := f.Toast(); ok {
		uitheme.DrawToast(text, ui.width)
	}
}

const forgeVisible = 12

// visibleFrom is the first index of a window of size n that keeps focused
// in view.
func visibleFrom(focused, total, n int, active bool) int {
	if !active || total <= n {
		return 0
	}
	return clampInt(focused-n/2, 0, total-n)
}

func (ui *gameUI) drawForgeSide(f *screen.Forge, rect rl.Rectangle) {
	previewRect := rl.NewRectangle(rect.X, rect.Y, rect.Width, rect.Height*0.45)
	DrawPanel(previewRect, "Preview", false)
	y := int32(previewRect.Y) + panelBody()
	if res, ok := f.Pot().Result(); ok && f.Pot().Len() == 0 {
		drawText("Forged:", int32(previewRect.X+spaceM), y, typeScale.Small, AppTheme.TextMuted)
		y += textLineHeight(typeScale.Small)
		drawItemDetail(res, previewRect, y)
	} else if prev, ok := f.Preview(); ok {
		drawItemDetail(prev, previewRect, y)
	} else {
		drawText(fmt.Sprintf("Add at least %d items", forge.MinForgeItems), int32(previewRect.X+spaceM), y, typeScale.Body, AppTheme.TextMuted)
	}

	hintRect := rl.NewRectangle(rect.X, previewRect.Y+previewRect.Height+spaceS, rect.Width, rect.Height*0.25)
	DrawPanel(hintRect, "Recipe Hints", false)
	hy := int32(hintRect.Y) + panelBody()
	for _, h := range f.Hints() {
		drawText(h.Name, int32(hintRect.X+spaceM), hy, typeScale.Body, AppTheme.TextPrimary)
		hy += textLineHeight(typeScale.Body)
	}

	histRect := rl.NewRectangle(rect.X, hintRect.Y+hintRect.Height+spaceS, rect.Width, rect.Y+rect.Height-(hintRect.Y+hintRect.Height+spaceS))
	DrawPanel(histRect, "Recent Changes", false)
	cy := int32(histRect.Y) + panelBody()
	for _, c := range f.History() {
		if cy > int32(histRect.Y+histRect.Height)-textLineHeight(typeScale.Small) {
			break
		}
		drawText(fmt.Sprintf("%s  %s  %s", c.ID, c.Title, c.ToRev), int32(histRect.X+spaceM), cy, typeScale.Small, AppTheme.TextSecondary)
		cy += textLineHeight(typeScale.Small)
	}
	if len(f.History()) == 0 {
		drawText("No local changes yet", int32(histRect.X+spaceM), cy, typeScale.Small, AppTheme.TextMuted)
	}
}

func (ui *gameUI) drawLog(l *screen.Log) {
	area := ui.contentRect()
	DrawHeader("Adventure Log", int32(area.X), int32(area.Y))
	listRect := rl.NewRectangle(area.X, area.Y+48, area.Width*0.62, area.Height-48)
	sideRect := rl.NewRectangle(listRect.X+listRect.Width+spaceL, listRect.Y, area.Width-listRect.Width-spaceL, listRect.Height)

	DrawPanel(listRect, "Entries", true)
	entries := l.Entries()
	rows := int((listRect.Height - float32(panelBody())) / (uitheme.RowHeight + spaceXS))
	focus := l.Focus().Index
	first := visibleFrom(focus, len(entries), max(1, rows), true)
	y := listRect.Y + float32(panelBody())
	for i := first; i < len(entries) && i < first+rows; i++ {
		state := listStateNormal
		if i == focus {
			state = listStateSelected
		}
		DrawListItem(listRowRect(listRect.X+spaceM, y, listRect.Width-spaceM*2), state, fmt.Sprintf("Y%d: %s", entries[i].Year, entries[i].Entry), "")
		y += uitheme.RowHeight + spaceXS
	}

	DrawPanel(sideRect, "Forged Variants", false)
	cy := int32(sideRect.Y) + panelBody()
	for _, c := range l.Changes() {
		drawText(fmt.Sprintf("%s %s", c.ID, c.Title), int32(sideRect.X+spaceM), cy, typeScale.Small, AppTheme.TextPrimary)
		cy += textLineHeight(typeScale.Small)
	}
	if len(l.Changes()) == 0 {
		drawText("Nothing forged yet", int32(sideRect.X+spaceM), cy, typeScale.Small, AppTheme.TextMuted)
	}
}
