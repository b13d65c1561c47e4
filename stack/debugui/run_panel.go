package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ziggurat/stack"
)

func NewRunPanelComponent() *RunPanelComponent {
	return &RunPanelComponent{}
}

func (rp *RunPanelComponent) Render(game *stack.Game) {
	if !imgui.BeginV("Run State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := game.State()
	level := game.Level()

	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Lives: %d", state.Lives))
	imgui.Text(fmt.Sprintf("Phase: %s", game.Phase()))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Level %d (max tier %d)", level.ID, level.MaxTier))
	imgui.Text(fmt.Sprintf("Placements: %d / %d", state.LevelPlacements, level.TargetPieces))
	imgui.Text(fmt.Sprintf("Mistakes: %d / %d", state.LevelMistakes, level.MaxAttempts))
	imgui.Text(fmt.Sprintf("Total placements: %d", state.TotalPlacements))
	imgui.Text(fmt.Sprintf("Reward events: %d", state.RewardEvents))

	if imgui.TreeNodeStr("Score Journal") {
		journal := game.Ledger().Journal()
		if len(journal) == 0 {
			imgui.Text("(empty)")
		}
		for i := len(journal) - 1; i >= 0; i-- {
			entry := journal[i]
			imgui.BulletText(fmt.Sprintf("%+d %s", entry.Amount, entry.Reason))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Ground Violations") {
		records := game.Violations().Records()
		if len(records) == 0 {
			imgui.Text("(none)")
		}
		for _, rec := range records {
			imgui.BulletText(fmt.Sprintf("piece %d: -%d at tick %d", rec.PieceID, rec.Penalty, rec.Tick))
		}
		imgui.TreePop()
	}

	imgui.End()
}
