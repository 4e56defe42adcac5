package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astro/config"
	"github.com/plus3/astro/ecs"
	"github.com/plus3/astro/ecs/debugui"
	debugui_ebiten "github.com/plus3/astro/ecs/debugui/ebiten"
	"github.com/plus3/astro/shooter"
)

// overlay is the ImGui debug layer drawn over the game.
type overlay struct {
	backend debugui_ebiten.ImguiBackend
	state   *ecs.Singleton[debugui.ImguiInputState]
}

func newOverlay(cfg config.Config, w *shooter.World) *overlay {
	o := &overlay{
		backend: debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height),
	}

	browser := debugui.Spawn(w.Storage, w.Scheduler)
	if id, ok := w.Player(); ok {
		browser.Select(id)
	}
	w.Storage.Spawn(debugui.ImguiItem{Render: func() { renderGamePanel(w) }})
	w.Scheduler.Register(&debugui.ImguiSystem{})

	o.state = ecs.NewSingleton[debugui.ImguiInputState](w.Storage)
	return o
}

// capturing reports whether ImGui owned the mouse on the last frame.
func (o *overlay) capturing() bool {
	s := o.state.Get()
	return s != nil && s.WantCaptureMouse
}

func renderGamePanel(w *shooter.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.Text(w.String())
	if s := w.Scoreboard(); s != nil {
		imgui.Text(fmt.Sprintf("Kills %d  Deaths %d  Shots %d  Enemy shots %d", s.Kills, s.Deaths, s.Shots, s.EnemyShots))
		imgui.Text(fmt.Sprintf("Streak %d  Best %d", s.Streak, s.BestStreak))
	}
	if cam := w.Camera(); cam != nil {
		imgui.Text(fmt.Sprintf("Camera (%.1f, %.1f) zoom %.2f", cam.Position.X, cam.Position.Y, cam.Zoom))
	}
	if w.Physics != nil {
		imgui.Text(fmt.Sprintf("Bodies %d  Projectiles %d", w.Physics.BodyCount(), w.ProjectileCount()))
	}

	imgui.Separator()
	id, ok := w.Player()
	if !ok {
		imgui.Text("Player despawned")
		return
	}
	p := ecs.ReadComponent[shooter.Player](w.Storage, id)
	tr := ecs.ReadComponent[shooter.Transform](w.Storage, id)
	imgui.Text(fmt.Sprintf("Player %s facing %s", id, p.Facing))
	imgui.Text(fmt.Sprintf("Position (%.1f, %.1f)", tr.Position.X, tr.Position.Y))
	imgui.Text(fmt.Sprintf("Dash cooldown %s", p.Cooldown.Remaining()))
	if imgui.Button("Kill player") {
		p.Dead = true
	}
	imgui.SameLine()
	if imgui.Button("Clear projectiles") {
		var ids []ecs.EntityId
		for id := range ecs.NewView[struct{ *shooter.Projectile }](w.Storage).Iter() {
			ids = append(ids, id)
		}
		for _, id := range ids {
			w.Storage.Delete(id)
		}
	}
}
