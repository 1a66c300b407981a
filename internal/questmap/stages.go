package questmap

import (
	"fmt"
	"strings"
)

// StageNames are the request lifecycle steps, in path order.
var StageNames = [StageCount]string{
	"Investigate",
	"Root cause",
	"Design change",
	"Approve ECO",
	"Implement",
	"Verify",
	"Close",
}

// Progress is the number of completed stages for a request status. Open
// requests count the first two stages as done.
func Progress(status string) int {
	if strings.EqualFold(strings.TrimSpace(status), "closed") {
		return StageCount
	}
	return 2
}

// NextStage is the stage a request is working on, or the last one when it
// is complete.
func NextStage(progress int) int {
	return min(max(0, progress), StageCount-1)
}

// StageState classifies a stage relative to progress.
type StageState int

const (
	StagePending StageState = iota
	StageCurrent
	StageDone
)

func StateOf(stage, progress int) StageState {
	switch {
	case stage < progress:
		return StageDone
	case stage == NextStage(progress) && progress < StageCount:
		return StageCurrent
	default:
		return StagePending
	}
}

// Brief is the guidance shown for one stage.
type Brief struct {
	Stage       string
	Explanation string
	Tasks       []string
}

// BriefFor returns the guidance for stage; itemName is the request's linked
// item and appears in the first stage's text.
func BriefFor(stage int, itemName string) Brief {
	stage = min(max(0, stage), StageCount-1)
	if itemName == "" {
		itemName = "item"
	}
	b := briefs[stage]
	b.Stage = StageNames[stage]
	if stage == 0 {
		b.Explanation = fmt.Sprintf(b.Explanation, itemName)
	}
	b.Tasks = append([]string(nil), b.Tasks...)
	return b
}

var briefs = [StageCount]Brief{
	{
		Explanation: "Confirm the issue and gather evidence on %s.",
		Tasks: []string{
			"Interview origin; collect logs/screenshots",
			"Reproduce; note expected vs actual behavior",
			"Capture severity, frequency, environment",
		},
	},
	{
		Explanation: "Trace defect to source and document findings.",
		Tasks: []string{
			"Inspect design/BOM and recent diffs",
			"Review supplier data and revisions",
			"Create 5-Whys or fault tree summary",
		},
	},
	{
		Explanation: "Define the fix and update specs.",
		Tasks: []string{
			"Propose design/BOM updates",
			"Update acceptance criteria & tests",
			"Estimate cost/impact & risks",
		},
	},
	{
		Explanation: "Formalize approval for the change.",
		Tasks: []string{
			"Open ECO and attach artifacts",
			"Route reviewers; collect sign-offs",
			"Link affected items and revisions",
		},
	},
	{
		Explanation: "Apply the change across artifacts and processes.",
		Tasks: []string{
			"Update CAD/docs; bump revision",
			"Notify suppliers/manufacturing",
			"Migrate inventory/processes if needed",
		},
	},
	{
		Explanation: "Prove the fix resolves the issue.",
		Tasks: []string{
			"Execute acceptance tests; record results",
			"Run regression on related items",
			"Field validation where applicable",
		},
	},
	{
		Explanation: "Finish and document completion.",
		Tasks: []string{
			"Update audit log and links",
			"Communicate release notes",
			"Close request and ECO",
		},
	},
}

// BriefWidth is the column budget of the stage brief box.
const BriefWidth = 44

// WrapLine greedily packs words into lines of at most width characters. A
// single word longer than width gets a line of its own.
func WrapLine(text string, width int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(text) {
		if cur == "" {
			cur = w
			continue
		}
		if len([]rune(cur))+1+len([]rune(w)) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
