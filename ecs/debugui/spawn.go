package debugui

import "github.com/plus3/astro/ecs"

// Spawn adds the entity browser, the inspector for its selection and the
// stats panel as ImguiItem entities, and returns the browser.
func Spawn(storage *ecs.Storage, scheduler *ecs.Scheduler) *EntityBrowser {
	ecs.NewSingleton(storage, ImguiInputState{})

	browser := NewEntityBrowser(50)
	inspector := &Inspector{}
	stats := NewStatsPanel(120)

	storage.Spawn(ImguiItem{Render: func() { browser.Render(storage) }})
	storage.Spawn(ImguiItem{Render: func() { inspector.Render(storage, browser.Selected()) }})
	storage.Spawn(ImguiItem{Render: func() { stats.Render(storage, scheduler) }})
	return browser
}
