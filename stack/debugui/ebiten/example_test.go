package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/ziggurat/stack"
	"github.com/plus3/ziggurat/stack/debugui"
	debugui_ebiten "github.com/plus3/ziggurat/stack/debugui/ebiten"
)

// Game implements ebiten.Game and drives the simulation with the debug
// overlay rendered on top.
type Game struct {
	game    *stack.Game
	overlay *debugui.Overlay
	backend debugui_ebiten.ImguiBackend
	timer   *debugui.FrameTimer
}

func (g *Game) Update() error {
	g.backend.BeginFrame()

	dt := g.timer.GetDeltaTime()
	g.game.Tick(float64(dt))
	g.overlay.Render(g.game, dt)

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the tower here, then the overlay on top.
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Ziggurat Debug Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	game := &Game{
		game:    stack.New(stack.DefaultConfig(), stack.Hooks{}),
		overlay: debugui.NewOverlay(),
		backend: debugui_ebiten.ImguiBackend{EbitenBackend: backend},
		timer:   debugui.NewFrameTimer(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
