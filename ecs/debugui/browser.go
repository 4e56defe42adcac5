package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astro/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	ID         ecs.EntityId
	Components []string
}

func (e EntityInfo) matches(filter string) bool {
	if filter == "" {
		return true
	}
	if strings.Contains(e.ID.String(), filter) || strings.Contains(fmt.Sprint(e.ID.Index()), filter) {
		return true
	}
	for _, c := range e.Components {
		if strings.Contains(strings.ToLower(c), filter) {
			return true
		}
	}
	return false
}

// Entities lists the live entities of storage whose id or component names
// contain filter (case-insensitive), in slot order.
func Entities(storage *ecs.Storage, filter string) []EntityInfo {
	filter = strings.ToLower(strings.TrimSpace(filter))

	var out []EntityInfo
	for id := range storage.Entities() {
		types := storage.ComponentTypes(id)
		info := EntityInfo{ID: id, Components: make([]string, len(types))}
		for i, t := range types {
			info.Components[i] = t.String()
		}
		if info.matches(filter) {
			out = append(out, info)
		}
	}
	return out
}

// EntityBrowser is a paged, filterable table of entities with a selection.
type EntityBrowser struct {
	PerPage int

	filter   string
	page     int
	selected ecs.EntityId
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{PerPage: max(perPage, 1)}
}

// Selected returns the selected entity, or 0.
func (b *EntityBrowser) Selected() ecs.EntityId {
	return b.selected
}

func (b *EntityBrowser) Select(id ecs.EntityId) {
	b.selected = id
}

// Page returns the rows shown on the current page, clamping the page to
// what exists.
func (b *EntityBrowser) Page(rows []EntityInfo) []EntityInfo {
	pages := max((len(rows)+b.PerPage-1)/b.PerPage, 1)
	b.page = min(max(b.page, 0), pages-1)
	start := b.page * b.PerPage
	return rows[start:min(start+b.PerPage, len(rows))]
}

func (b *EntityBrowser) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &b.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		b.filter = ""
	}

	rows := Entities(storage, b.filter)
	if b.selected != 0 && !storage.Alive(b.selected) {
		b.selected = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 220), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, row := range b.Page(rows) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(row.ID.String(), b.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = row.ID
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(shortNames(row.Components), ", "))
		}
		imgui.EndTable()
	}

	pages := max((len(rows)+b.PerPage-1)/b.PerPage, 1)
	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", b.page+1, pages, len(rows)))
	imgui.SameLine()
	if imgui.Button("Prev") && b.page > 0 {
		b.page--
	}
	imgui.SameLine()
	if imgui.Button("Next") && b.page < pages-1 {
		b.page++
	}

	imgui.End()
}

// shortNames drops package qualifiers: "shooter.Player" becomes "Player".
func shortNames(names []string) []string {
	out := slices.Clone(names)
	for i, n := range out {
		if dot := strings.LastIndexByte(n, '.'); dot >= 0 {
			out[i] = n[dot+1:]
		}
	}
	return out
}
