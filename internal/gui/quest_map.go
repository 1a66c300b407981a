package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/forge-and-field/internal/questmap"
	"github.com/appengine-ltd/forge-and-field/internal/screen"
	uitheme "github.com/appengine-ltd/forge-and-field/internal/ui/theme"
)

const (
	questBoardRatio = 0.34
	questLayoutGap  = 12
	stageRadius     = 14
)

type questLayout struct {
	Board rl.Rectangle
	Map   rl.Rectangle
	Brief rl.Rectangle
}

func questScreenLayout(area rl.Rectangle) questLayout {
	gap := float32(questLayoutGap)
	boardW := area.Width * questBoardRatio
	rightX := area.X + boardW + gap
	rightW := area.X + area.Width - rightX
	mapH := area.Height * 0.58
	return questLayout{
		Board: rl.NewRectangle(area.X, area.Y, boardW, area.Height),
		Map:   rl.NewRectangle(rightX, area.Y, rightW, mapH),
		Brief: rl.NewRectangle(rightX, area.Y+mapH+gap, rightW, area.Height-mapH-gap),
	}
}

// stagePoints places the layout's stages inside rect. The layout is
// generated at the rect's own size so no scaling is needed.
func stagePoints(layout questmap.Layout, rect rl.Rectangle) [questmap.StageCount]rl.Vector2 {
	var out [questmap.StageCount]rl.Vector2
	for i, p := range layout.Scale(float64(rect.X), float64(rect.Y), 1, 1) {
		out[i] = rl.NewVector2(float32(p.X), float32(p.Y))
	}
	return out
}

func stageColor(state questmap.StageState) rl.Color {
	switch state {
	case questmap.StageDone:
		return AppTheme.Accent
	case questmap.StageCurrent:
		return AppTheme.Gold
	default:
		return AppTheme.Divider
	}
}

func (ui *gameUI) drawQuests(q *screen.Quests) {
	area := ui.contentRect()
	DrawHeader("Quest Board", int32(area.X), int32(area.Y))
	area.Y += 48
	area.Height -= 48
	lay := questScreenLayout(area)
	focus := q.Focus()

	DrawPanel(lay.Board, "Requests", focus.Area == screen.AreaBoard)
	y := lay.Board.Y + float32(panelBody())
	for i, r := range q.Requests() {
		state := listStateNormal
		switch {
		case focus.Is(screen.AreaBoard, i):
			state = listStateFocused
		case i == q.SelectedIndex():
			state = listStateSelected
		}
		DrawListItem(listRowRect(lay.Board.X+spaceM, y, lay.Board.Width-spaceM*2), state, r.Title, string(r.Priority))
		y += uitheme.RowHeight + spaceXS
	}
	if r, ok := q.Selected(); ok {
		detail := rl.NewRectangle(lay.Board.X, y+spaceS, lay.Board.Width, lay.Board.Y+lay.Board.Height-y-spaceS)
		dy := int32(spaceS)
		drawText(fmt.Sprintf("%s  %s", r.ID, r.Status), int32(detail.X+spaceM), int32(detail.Y)+dy, typeScale.Small, AppTheme.TextMuted)
		dy += textLineHeight(typeScale.Small)
		drawWrappedText(r.Description, detail, dy, typeScale.Small, AppTheme.TextSecondary)
	}

	DrawPanel(lay.Map, "Quest Map", focus.Area == screen.AreaMap)
	mapRect := rl.NewRectangle(lay.Map.X, lay.Map.Y+float32(panelBody()), lay.Map.Width, lay.Map.Height-float32(panelBody()))
	layout := q.Layout(float64(mapRect.Width), float64(mapRect.Height))
	region := rl.NewRectangle(mapRect.X+float32(layout.Region.X), mapRect.Y+float32(layout.Region.Y), float32(layout.Region.W), float32(layout.Region.H))
	rl.DrawRectangleRec(region, rl.Fade(AppTheme.Accent, 0.12))
	rl.DrawRectangleLinesEx(region, 1, rl.Fade(AppTheme.Accent, 0.5))

	points := stagePoints(layout, mapRect)
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(points[i-1], points[i], 3, rl.Fade(AppTheme.Border, 0.8))
	}
	for i, p := range points {
		rl.DrawCircleV(p, stageRadius, stageColor(q.StageState(i)))
		if i == q.ActiveStage() {
			rl.DrawCircleLinesV(p, stageRadius+5, AppTheme.TextPrimary)
		}
		label := fmt.Sprintf("%d", i+1)
		drawText(label, int32(p.X)-measureText(label, typeScale.Small)/2, int32(p.Y)-typeScale.Small/2, typeScale.Small, AppTheme.TextPrimary)
	}

	brief := q.Brief()
	DrawPanel(lay.Brief, brief.Stage, false)
	by := int32(lay.Brief.Y) + panelBody()
	for _, line := range questmap.WrapLine(brief.Explanation, questmap.BriefWidth) {
		drawText(line, int32(lay.Brief.X+spaceM), by, typeScale.Body, AppTheme.TextPrimary)
		by += textLineHeight(typeScale.Body)
	}
	for _, task := range brief.Tasks {
		for j, line := range questmap.WrapLine(task, questmap.BriefWidth) {
			prefix := "  "
			if j == 0 {
				prefix = "- "
			}
			drawText(prefix+line, int32(lay.Brief.X+spaceM), by, typeScale.Small, AppTheme.TextSecondary)
			by += textLineHeight(typeScale.Small)
		}
	}
	DrawHintText("Left/Right stage on map  Up/Down switch panel  Enter select quest", int32(lay.Brief.X+spaceM), int32(lay.Brief.Y+lay.Brief.Height)-26)
}
