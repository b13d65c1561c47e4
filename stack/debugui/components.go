package debugui

import (
	"github.com/plus3/ziggurat/sim"
)

type StructureBrowserComponent struct {
	cache            *structureBrowserCache
	selectedPieceId  sim.PieceID
	filterText       string
	maxPiecesPerPage int
	currentPage      int
}

type RunPanelComponent struct{}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
