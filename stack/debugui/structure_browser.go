package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ziggurat/sim"
	"github.com/plus3/ziggurat/stack"
)

type PieceInfo struct {
	ID          sim.PieceID
	Tier        stack.Tier
	Phase       string
	Stability   string
	X, Y        float64
	Speed       float64
	StableTicks int
	Active      bool
}

type structureBrowserCache struct {
	pieces        []PieceInfo
	sortColumn    int
	sortAscending bool
}

func NewStructureBrowserComponent(maxPiecesPerPage int) *StructureBrowserComponent {
	return &StructureBrowserComponent{
		cache: &structureBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxPiecesPerPage: maxPiecesPerPage,
	}
}

func (sb *StructureBrowserComponent) Render(game *stack.Game) {
	if !imgui.BeginV("Piece Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.rebuildCache(game)

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PieceTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Piece ID")
		imgui.TableSetupColumn("Tier")
		imgui.TableSetupColumn("Phase")
		imgui.TableSetupColumn("Stability")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Stable Ticks")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.cache.sortColumn = int(spec.ColumnIndex())
			sb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sb.sortPieces()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredPieces := sb.getFilteredPieces()

		startIdx := sb.currentPage * sb.maxPiecesPerPage
		endIdx := startIdx + sb.maxPiecesPerPage
		if startIdx > len(filteredPieces) {
			startIdx = 0
			sb.currentPage = 0
		}
		if endIdx > len(filteredPieces) {
			endIdx = len(filteredPieces)
		}

		for i := startIdx; i < endIdx; i++ {
			piece := filteredPieces[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d", piece.ID)
			if piece.Active {
				label += " *"
			}
			isSelected := sb.selectedPieceId == piece.ID
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selectedPieceId = piece.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", piece.Tier))

			imgui.TableNextColumn()
			imgui.Text(piece.Phase)

			imgui.TableNextColumn()
			imgui.Text(piece.Stability)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.2f, %.2f)", piece.X, piece.Y))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", piece.StableTicks))
		}

		imgui.EndTable()
	}

	filteredPieces := sb.getFilteredPieces()

	if len(filteredPieces) > sb.maxPiecesPerPage {
		totalPages := (len(filteredPieces) + sb.maxPiecesPerPage - 1) / sb.maxPiecesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d pieces)", sb.currentPage+1, totalPages, len(filteredPieces)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d pieces (%d placed)", len(filteredPieces), game.StructureSize()))
	}

	imgui.End()
}

// rebuildCache snapshots the arena every frame. Piece counts are small
// enough that caching across frames buys nothing.
func (sb *StructureBrowserComponent) rebuildCache(game *stack.Game) {
	sb.cache.pieces = sb.cache.pieces[:0]

	active := game.ActivePiece()
	game.Pieces(func(p *stack.Piece) {
		sb.cache.pieces = append(sb.cache.pieces, PieceInfo{
			ID:          p.ID,
			Tier:        p.Tier,
			Phase:       p.Phase.String(),
			Stability:   p.Stability.String(),
			X:           p.Pos.X,
			Y:           p.Pos.Y,
			Speed:       p.Vel.Len(),
			StableTicks: p.StableTicks,
			Active:      active != nil && active.ID == p.ID,
		})
	})

	sb.sortPieces()
}

func (sb *StructureBrowserComponent) sortPieces() {
	sort.Slice(sb.cache.pieces, func(i, j int) bool {
		a, b := sb.cache.pieces[i], sb.cache.pieces[j]
		var less bool

		switch sb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Tier < b.Tier
		case 2:
			less = a.Phase < b.Phase
		case 3:
			less = a.Stability < b.Stability
		case 4:
			less = a.Y < b.Y
		case 5:
			less = a.StableTicks < b.StableTicks
		default:
			less = a.ID < b.ID
		}

		if !sb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (sb *StructureBrowserComponent) getFilteredPieces() []PieceInfo {
	if sb.filterText == "" {
		return sb.cache.pieces
	}

	filtered := make([]PieceInfo, 0, len(sb.cache.pieces))
	filterLower := strings.ToLower(sb.filterText)

	for _, piece := range sb.cache.pieces {
		idStr := fmt.Sprintf("%d", piece.ID)
		tierStr := fmt.Sprintf("%d", piece.Tier)
		phaseStr := strings.ToLower(piece.Phase)
		stabilityStr := strings.ToLower(piece.Stability)

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(tierStr, filterLower) &&
			!strings.Contains(phaseStr, filterLower) &&
			!strings.Contains(stabilityStr, filterLower) {
			continue
		}

		filtered = append(filtered, piece)
	}

	return filtered
}

func (sb *StructureBrowserComponent) GetSelectedPiece() sim.PieceID {
	return sb.selectedPieceId
}
