package apx

import (
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/Faultbox/apx-unpack/pkg/encoding"
)

// decodeShaderCode undoes the markup escaping apEx applies to shader source
// and normalizes line endings to LF.
func decodeShaderCode(code string) string {
	return encoding.NormalizeNewlines(html.UnescapeString(code))
}

func shaderCode(el *etree.Element) string {
	code, ok := childText(el, "Code")
	if !ok || code == "" {
		return ""
	}
	return decodeShaderCode(code)
}

func parseParameter(el *etree.Element) Parameter {
	return Parameter{
		GUID:         textField(el, "GUID"),
		Name:         textField(el, "Name"),
		Scope:        intField[ParamScope](el, "Scope"),
		Type:         intField[ParamType](el, "Type"),
		DefaultValue: optionalText(el, "DefaultValue"),
		Value:        optionalText(el, "Value"),
		TextureGUID:  optionalText(el, "TextureGUID"),
	}
}

func parseParameters(el *etree.Element) []Parameter {
	children := el.SelectElements("Parameter")
	params := make([]Parameter, 0, len(children))
	for _, child := range children {
		params = append(params, parseParameter(child))
	}
	return params
}

// parseTextureGenerator returns false when the element lacks a GUID or Name.
func parseTextureGenerator(el *etree.Element) (TextureGenerator, bool) {
	guid := textField(el, "GUID")
	name := textField(el, "Name")
	if guid == "" || name == "" {
		return TextureGenerator{}, false
	}

	return TextureGenerator{
		GUID:       guid,
		Name:       name,
		Code:       shaderCode(el),
		Parameters: parseParameters(el),
	}, true
}

func parseRenderTechnique(el *etree.Element) RenderTechnique {
	tech := RenderTechnique{
		GUID:        textField(el, "GUID"),
		Name:        textField(el, "Name"),
		Type:        intField[TechniqueType](el, "Type"),
		TargetLayer: optionalText(el, "TargetLayer"),
	}

	passes := el.SelectElements("Pass")
	tech.Passes = make([]ShaderPass, 0, len(passes))
	for _, p := range passes {
		tech.Passes = append(tech.Passes, ShaderPass{
			Name:       textField(p, "Name"),
			Code:       shaderCode(p),
			Minifiable: flagField(p, "Minifiable", true),
			Parameters: parseParameters(p),
		})
	}

	return tech
}

func parseTextureOperator(el *etree.Element) TextureOperator {
	op := TextureOperator{
		GUID:       textField(el, "GUID"),
		X1:         intField[int](el, "x1"),
		Y1:         intField[int](el, "y1"),
		X2:         intField[int](el, "x2"),
		Y2:         intField[int](el, "y2"),
		FilterGUID: textField(el, "Filter"),
		Resolution: intField[int](el, "Resolution"),
		Seed:       intField[int](el, "Seed"),
		Parameters: make(map[int]int),
	}

	// <Parameter ID="n">value</Parameter>
	for _, p := range el.SelectElements("Parameter") {
		id := p.SelectAttr("ID")
		text := strings.TrimSpace(p.Text())
		if id == nil || text == "" {
			continue
		}
		key, err := strconv.Atoi(strings.TrimSpace(id.Value))
		if err != nil {
			continue
		}
		val, err := strconv.Atoi(text)
		if err != nil {
			continue
		}
		op.Parameters[key] = val
	}

	return op
}

func parseTexturePage(el *etree.Element) TexturePage {
	page := TexturePage{
		GUID: textField(el, "GUID"),
		Name: textField(el, "Name"),
		XRes: intField[int](el, "xres"),
		YRes: intField[int](el, "yres"),
		HDR:  flagField(el, "hdr", false),
	}

	ops := el.SelectElements("Operator")
	page.Operators = make([]TextureOperator, 0, len(ops))
	for _, op := range ops {
		page.Operators = append(page.Operators, parseTextureOperator(op))
	}

	return page
}

func parseMaterial(el *etree.Element) Material {
	return Material{
		GUID:          textField(el, "GUID"),
		Name:          textField(el, "Name"),
		TechniqueGUID: textField(el, "Tech"),
	}
}

func parseMeshFilter(el *etree.Element) MeshFilter {
	return MeshFilter{
		Type:            intAttr[int](el, "Type"),
		Name:            textField(el, "Name"),
		Transformations: indexedValues(el, "transformation"),
		Parameters:      indexedValues(el, "parameter"),
		Enabled:         flagField(el, "enabled", true),
	}
}

func parseModelObject(el *etree.Element) ModelObject {
	obj := ModelObject{
		GUID:            textField(el, "GUID"),
		Name:            textField(el, "Name"),
		Type:            intAttr[int](el, "Type"),
		Transformations: indexedValues(el, "transformation"),
		Parameters:      indexedValues(el, "parameter"),
		ClonedObject:    optionalText(el, "clonedobject"),
		ParentGUIDs:     []string{},
	}

	if fp := strings.TrimSpace(textField(el, "floatparameter")); fp != "" {
		// NaN and infinities have no JSON form and are treated as absent.
		if v, err := strconv.ParseFloat(fp, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			obj.FloatParameter = &v
		}
	}

	for _, pg := range el.SelectElements("parentguid") {
		guid := pg.SelectAttrValue("value", "")
		if guid == "" || guid == noParentGUID {
			continue
		}
		obj.ParentGUIDs = append(obj.ParentGUIDs, guid)
	}

	filters := el.SelectElements("Filter")
	obj.Filters = make([]MeshFilter, 0, len(filters))
	for _, f := range filters {
		obj.Filters = append(obj.Filters, parseMeshFilter(f))
	}

	return obj
}

func parseModel(el *etree.Element) Model {
	model := Model{
		GUID: textField(el, "GUID"),
		Name: textField(el, "Name"),
	}

	objects := el.SelectElements("Object")
	model.Objects = make([]ModelObject, 0, len(objects))
	for _, obj := range objects {
		model.Objects = append(model.Objects, parseModelObject(obj))
	}

	return model
}

func parseClipData(el *etree.Element) ClipData {
	cd := ClipData{
		TargetClip:     el.SelectAttrValue("targetclip", ""),
		RandSeed:       intField[int](el, "randseed"),
		TurbulenceFreq: intField[int](el, "turbulencefreq"),
	}

	splines := el.SelectElements("clipspline")
	cd.Splines = make([]ClipSpline, 0, len(splines))
	for _, cs := range splines {
		clipSpline := ClipSpline{Type: intAttr[int](cs, "type")}
		if s := cs.SelectElement("spline"); s != nil {
			clipSpline.Spline = parseSpline(s)
		}
		cd.Splines = append(cd.Splines, clipSpline)
	}

	return cd
}

func parseSceneObject(el *etree.Element) SceneObject {
	obj := SceneObject{
		GUID: textField(el, "GUID"),
		Name: textField(el, "Name"),
		Type: intAttr[int](el, "Type"),
	}

	data := el.SelectElements("clipdata")
	obj.ClipData = make([]ClipData, 0, len(data))
	for _, cd := range data {
		obj.ClipData = append(obj.ClipData, parseClipData(cd))
	}

	return obj
}

func parseScene(el *etree.Element) Scene {
	scene := Scene{
		GUID: textField(el, "GUID"),
		Name: textField(el, "Name"),
	}

	clips := el.SelectElements("Clip")
	scene.Clips = make([]Clip, 0, len(clips))
	for _, c := range clips {
		scene.Clips = append(scene.Clips, Clip{
			GUID: textField(c, "GUID"),
			Name: textField(c, "Name"),
		})
	}

	objects := el.SelectElements("Object")
	scene.Objects = make([]SceneObject, 0, len(objects))
	for _, obj := range objects {
		scene.Objects = append(scene.Objects, parseSceneObject(obj))
	}

	return scene
}

func parseTimelineEvent(el *etree.Element) TimelineEvent {
	event := TimelineEvent{
		GUID:           textField(el, "GUID"),
		Name:           textField(el, "Name"),
		Type:           intField[EventType](el, "Type"),
		PassIndex:      intField[int](el, "Pass"),
		StartFrame:     intField[int](el, "StartFrame"),
		EndFrame:       intField[int](el, "EndFrame"),
		TargetRT:       textField(el, "TargetRT"),
		SceneGUID:      optionalText(el, "scene"),
		ClipGUID:       optionalText(el, "clip"),
		CameraGUID:     optionalText(el, "camera"),
		SubsceneTarget: optionalText(el, "subscenetarget"),
	}

	if ts := el.SelectElement("TimeSpline"); ts != nil {
		event.TimeSpline = parseSpline(ts)
	}

	return event
}

func parseRenderTarget(el *etree.Element) RenderTarget {
	return RenderTarget{
		GUID:        textField(el, "GUID"),
		Name:        textField(el, "Name"),
		Resolution:  intField[int](el, "ResolutionDescriptor"),
		PixelFormat: intField[int](el, "PixelFormat"),
		CubeMap:     flagField(el, "CubeMap", false),
		ZResolution: intField[int](el, "ZResolution"),
		Hidden:      flagField(el, "HiddenFromTimeline", false),
	}
}

func parseRenderLayer(el *etree.Element) RenderLayer {
	layer := RenderLayer{
		GUID:          textField(el, "GUID"),
		Name:          textField(el, "Name"),
		RenderTargets: []string{},
		OmitDepth:     flagField(el, "OmitDepthBuffer", false),
		ClearTargets:  flagField(el, "ClearRenderTargets", false),
		Voxelizer:     flagField(el, "Voxelizer", false),
		IgnoreHelpers: flagField(el, "IgnoreHelperObjects", false),
		Pickable:      flagField(el, "Pickable", false),
	}

	for _, rt := range el.SelectElements("RenderTarget") {
		if guid := rt.Text(); guid != "" {
			layer.RenderTargets = append(layer.RenderTargets, guid)
		}
	}

	return layer
}
