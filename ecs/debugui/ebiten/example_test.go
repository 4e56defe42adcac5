package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/ecs/debugui"
	debugui_ebiten "github.com/plus3/astro/ecs/debugui/ebiten"
)

type Game struct {
	scheduler *ecs.Scheduler
	backend   debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Debug UI", 1280, 720)

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Hello")
			imgui.Text("Hello from an entity")
			imgui.End()
		},
	})

	scheduler := ecs.NewScheduler(storage)
	debugui.Spawn(storage, scheduler)
	scheduler.Register(&debugui.ImguiSystem{})

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
