package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/astro/ecs"
)

// FieldInfo describes one exported field of a component type.
type FieldInfo struct {
	Name  string
	Index int
	Kind  reflect.Kind
}

var fieldCache sync.Map // reflect.Type -> []FieldInfo

// Fields returns the exported fields of a struct type. Results are cached
// per type.
func Fields(t reflect.Type) []FieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]FieldInfo)
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{Name: f.Name, Index: i, Kind: f.Type.Kind()})
		}
	}
	fieldCache.Store(t, fields)
	return fields
}

// SetNumber writes x into an addressable int, uint or float value,
// truncating as the kind requires. Negative values are rejected for
// unsigned kinds.
func SetNumber(v reflect.Value, x float64) bool {
	if !v.CanSet() {
		return false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(x))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if x < 0 {
			return false
		}
		v.SetUint(uint64(x))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(x)
	default:
		return false
	}
	return true
}

// Inspector edits the components of one entity in place.
type Inspector struct{}

func (in *Inspector) Render(storage *ecs.Storage, id ecs.EntityId) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if id == 0 || !storage.Alive(id) {
		imgui.Text("No entity selected")
		return
	}

	imgui.Text(fmt.Sprintf("Entity %s", id))
	imgui.Separator()
	for _, t := range storage.ComponentTypes(id) {
		component := storage.GetComponent(id, t)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(t.String()) {
			renderStruct(reflect.ValueOf(component).Elem(), t.String())
			imgui.TreePop()
		}
	}
}

func renderStruct(v reflect.Value, path string) {
	for _, f := range Fields(v.Type()) {
		renderField(f.Name, v.Field(f.Index), path+"."+f.Name)
	}
}

func renderField(name string, v reflect.Value, id string) {
	label := fmt.Sprintf("%s##%s", name, id)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := int32(toFloat(v))
		if imgui.InputInt(label, &n) {
			SetNumber(v, float64(n))
		}

	case reflect.Float32, reflect.Float64:
		x := float32(v.Float())
		if imgui.InputFloat(label, &x) {
			SetNumber(v, float64(x))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(label, &b) && v.CanSet() {
			v.SetBool(b)
		}

	case reflect.String:
		s := v.String()
		if imgui.InputTextWithHint(label, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(label) {
			renderStruct(v, id)
			imgui.TreePop()
		}

	case reflect.Pointer, reflect.Func, reflect.Interface:
		if v.IsNil() {
			imgui.Text(name + ": nil")
			return
		}
		imgui.Text(fmt.Sprintf("%s: %s", name, v.Type()))

	case reflect.Slice, reflect.Map:
		imgui.Text(fmt.Sprintf("%s: %d items", name, v.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v))
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	}
	return float64(v.Int())
}
