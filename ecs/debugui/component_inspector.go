package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stratum/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(w *ecs.World, selected ecs.Entity, ok bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !ok {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}
	if ci.selectedEntity != selected {
		ci.lastError = nil
	}
	ci.selectedEntity = selected

	components := w.Components(selected)
	if len(components) == 0 {
		imgui.Text(fmt.Sprintf("Entity %d holds no components", selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", selected))
	if ci.lastError != nil {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.Text(ci.lastError.Error())
		imgui.PopStyleColor()
	}
	imgui.Separator()

	for _, c := range components {
		if imgui.TreeNodeStr(c.Type.String()) {
			ci.renderComponent(w, c)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws an editor for each exported field of c. Edits are
// applied to a copy which is written back through World.SetComponent.
func (ci *ComponentInspectorComponent) renderComponent(w *ecs.World, c ecs.ComponentValue) {
	if c.Value == nil {
		imgui.Text("nil")
		return
	}

	edited := reflect.New(c.Type).Elem()
	edited.Set(reflect.ValueOf(c.Value))

	if edited.Kind() != reflect.Struct {
		if ci.renderField(c.Type.Name(), edited) {
			ci.lastError = w.SetComponent(ci.selectedEntity, edited.Interface())
		}
		return
	}

	if ci.renderStruct(edited) {
		ci.lastError = w.SetComponent(ci.selectedEntity, edited.Interface())
	}
}

func (ci *ComponentInspectorComponent) renderStruct(val reflect.Value) bool {
	changed := false
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		if ci.renderField(field.Name, val.Field(i)) {
			changed = true
		}
	}
	return changed
}

// renderField draws an editor for val and reports whether it was changed.
// val must be settable.
func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			return setNumeric(val, float64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			return setNumeric(val, float64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			return setNumeric(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
			return true
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			val.SetString(v)
			return true
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			changed := ci.renderStruct(val)
			imgui.TreePop()
			return changed
		}

	case reflect.Pointer:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
		} else {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Elem().Interface()))
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		}
	}
	return false
}

// setNumeric stores v into a numeric field of any width. It reports false
// when val is not a settable number.
func setNumeric(val reflect.Value, v float64) bool {
	if !val.CanSet() {
		return false
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val.SetInt(int64(v))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v < 0 {
			return false
		}
		val.SetUint(uint64(v))
	case reflect.Float32, reflect.Float64:
		val.SetFloat(v)
	default:
		return false
	}
	return true
}
