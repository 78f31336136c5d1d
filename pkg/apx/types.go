package apx

// Parameter is a shader parameter on a texture generator or render pass.
// DefaultValue, Value and TextureGUID are nil when the project omits them.
type Parameter struct {
	GUID         string     `json:"guid"`
	Name         string     `json:"name"`
	Scope        ParamScope `json:"scope"`
	Type         ParamType  `json:"param_type"`
	DefaultValue *string    `json:"default_value"`
	Value        *string    `json:"value"`
	TextureGUID  *string    `json:"texture_guid"`
}

// ShaderPass is a single render pass within a technique.
type ShaderPass struct {
	Name       string      `json:"name"`
	Code       string      `json:"code"`
	Minifiable bool        `json:"minifiable"`
	Parameters []Parameter `json:"parameters"`
}

// RenderTechnique is a material or post-process technique with shader passes.
type RenderTechnique struct {
	GUID        string        `json:"guid"`
	Name        string        `json:"name"`
	Type        TechniqueType `json:"technique_type"`
	TargetLayer *string       `json:"target_layer"` // render layer GUID
	Passes      []ShaderPass  `json:"passes"`
}

// HasCode reports whether any pass carries shader source.
func (t *RenderTechnique) HasCode() bool {
	for i := range t.Passes {
		if t.Passes[i].Code != "" {
			return true
		}
	}
	return false
}

// TextureGenerator is a procedural texture shader.
type TextureGenerator struct {
	GUID       string      `json:"guid"`
	Name       string      `json:"name"`
	Code       string      `json:"code"`
	Parameters []Parameter `json:"parameters"`
}

// HasCode reports whether the generator carries shader source.
func (g *TextureGenerator) HasCode() bool {
	return g.Code != ""
}

// TextureOperator is a placed generator instance in a texture page graph.
type TextureOperator struct {
	GUID       string      `json:"guid"`
	X1         int         `json:"x1"`
	Y1         int         `json:"y1"`
	X2         int         `json:"x2"`
	Y2         int         `json:"y2"`
	FilterGUID string      `json:"filter_guid"` // TextureGenerator GUID
	Resolution int         `json:"resolution"`
	Seed       int         `json:"seed"`
	Parameters map[int]int `json:"parameters"`
}

// TexturePage is a texture composition graph.
type TexturePage struct {
	GUID      string            `json:"guid"`
	Name      string            `json:"name"`
	XRes      int               `json:"xres"`
	YRes      int               `json:"yres"`
	HDR       bool              `json:"hdr"`
	Operators []TextureOperator `json:"operators"`
}

// Material links a named material to its render technique.
type Material struct {
	GUID          string `json:"guid"`
	Name          string `json:"name"`
	TechniqueGUID string `json:"technique_guid"`
}

// MeshFilter is a mesh generation step applied to a model object.
type MeshFilter struct {
	Type            int         `json:"filter_type"`
	Name            string      `json:"name"`
	Transformations map[int]int `json:"transformations"`
	Parameters      map[int]int `json:"parameters"`
	Enabled         bool        `json:"enabled"`
}

// ModelObject is a primitive or derived object within a model.
// ParentGUIDs reference other objects of the same model and may form cycles
// in damaged projects.
type ModelObject struct {
	GUID            string       `json:"guid"`
	Name            string       `json:"name"`
	Type            int          `json:"object_type"`
	Transformations map[int]int  `json:"transformations"`
	Parameters      map[int]int  `json:"parameters"`
	FloatParameter  *float64     `json:"float_parameter"`
	ParentGUIDs     []string     `json:"parent_guids"`
	ClonedObject    *string      `json:"cloned_object"`
	Filters         []MeshFilter `json:"filters"`
}

// Model is a 3D model definition.
type Model struct {
	GUID    string        `json:"guid"`
	Name    string        `json:"name"`
	Objects []ModelObject `json:"objects"`
}

// ClipSpline is a typed animation spline attached to clip data.
type ClipSpline struct {
	Type   int     `json:"spline_type"`
	Spline *Spline `json:"spline"`
}

// ClipData is the animation of one scene object within one clip.
type ClipData struct {
	TargetClip     string       `json:"target_clip"` // Clip GUID
	RandSeed       int          `json:"randseed"`
	TurbulenceFreq int          `json:"turbulence_freq"`
	Splines        []ClipSpline `json:"splines"`
}

// SceneObject is an object placed in a scene.
type SceneObject struct {
	GUID     string     `json:"guid"`
	Name     string     `json:"name"`
	Type     int        `json:"object_type"`
	ClipData []ClipData `json:"clip_data"`
}

// Clip is a named animation timeline scoped to a scene.
type Clip struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

// Scene holds scene objects and their clips.
type Scene struct {
	GUID    string        `json:"guid"`
	Name    string        `json:"name"`
	Clips   []Clip        `json:"clips"`
	Objects []SceneObject `json:"objects"`
}

// SplineCount returns the number of clip splines across all objects.
func (s *Scene) SplineCount() int {
	n := 0
	for i := range s.Objects {
		for j := range s.Objects[i].ClipData {
			n += len(s.Objects[i].ClipData[j].Splines)
		}
	}
	return n
}

// TimelineEvent is an entry on the demo timeline.
type TimelineEvent struct {
	GUID           string    `json:"guid"`
	Name           string    `json:"name"`
	Type           EventType `json:"event_type"`
	PassIndex      int       `json:"pass_index"`
	StartFrame     int       `json:"start_frame"`
	EndFrame       int       `json:"end_frame"`
	TargetRT       string    `json:"target_rt"` // RenderTarget GUID
	TimeSpline     *Spline   `json:"time_spline"`
	SceneGUID      *string   `json:"scene_guid"`
	ClipGUID       *string   `json:"clip_guid"`
	CameraGUID     *string   `json:"camera_guid"`
	SubsceneTarget *string   `json:"subscene_target"`
}

// RenderTarget is an offscreen buffer definition.
type RenderTarget struct {
	GUID        string `json:"guid"`
	Name        string `json:"name"`
	Resolution  int    `json:"resolution"`
	PixelFormat int    `json:"pixel_format"`
	CubeMap     bool   `json:"is_cubemap"`
	ZResolution int    `json:"z_resolution"`
	Hidden      bool   `json:"hidden"`
}

// RenderLayer groups render targets with pass configuration.
type RenderLayer struct {
	GUID          string   `json:"guid"`
	Name          string   `json:"name"`
	RenderTargets []string `json:"render_targets"` // RenderTarget GUIDs
	OmitDepth     bool     `json:"omit_depth"`
	ClearTargets  bool     `json:"clear_targets"`
	Voxelizer     bool     `json:"is_voxelizer"`
	IgnoreHelpers bool     `json:"ignore_helpers"`
	Pickable      bool     `json:"pickable"`
}
