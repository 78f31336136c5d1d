package apx

import "fmt"

// ParamScope describes how a shader parameter receives its value.
type ParamScope int

const (
	ScopeConstant ParamScope = 0
	ScopeVariable ParamScope = 1
	ScopeAnimated ParamScope = 2
)

// String returns the scope label used in shader headers.
func (s ParamScope) String() string {
	switch s {
	case ScopeConstant:
		return "Constant"
	case ScopeVariable:
		return "Variable"
	case ScopeAnimated:
		return "Animated"
	default:
		return fmt.Sprintf("Scope%d", int(s))
	}
}

// ParamType identifies the kind of value a parameter carries.
type ParamType int

var paramTypeNames = map[ParamType]string{
	0: "Float", 1: "Color", 2: "ZMode", 3: "ZFunction", 4: "FillMode",
	5: "CullMode", 6: "RenderPriority", 7: "Texture0", 8: "Texture1",
	9: "Texture2", 10: "Texture3", 11: "Texture4", 12: "Texture5",
	13: "Texture6", 14: "Texture7", 15: "BlendMode0", 16: "BlendMode1",
	17: "BlendMode2", 18: "BlendMode3", 19: "BlendMode4", 20: "BlendMode5",
	21: "BlendMode6", 22: "BlendMode7", 23: "RenderTarget",
	24: "ParticleLifeFloat", 25: "DepthTexture7", 26: "3DTexture6",
	27: "MeshData0", 28: "MeshData1", 29: "MeshData2", 30: "MeshData3",
	31: "MeshData4", 32: "MeshData5", 33: "MeshData6", 34: "MeshData7",
	35: "ParticleLife", 36: "LTC1", 37: "LTC2",
}

// String returns a human-readable parameter type name.
func (t ParamType) String() string {
	if name, ok := paramTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type%d", int(t))
}

// TechniqueType is the render technique category.
type TechniqueType int

const (
	TechniqueMaterial    TechniqueType = 0
	TechniquePostProcess TechniqueType = 1
	TechniqueShaderToy   TechniqueType = 2
	TechniqueParticle    TechniqueType = 3
)

// String returns the technique category name, "Unknown" for unlisted values.
func (t TechniqueType) String() string {
	switch t {
	case TechniqueMaterial:
		return "Material"
	case TechniquePostProcess:
		return "PostProcess"
	case TechniqueShaderToy:
		return "ShaderToy"
	case TechniqueParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// EventType is the timeline event category.
type EventType int

var eventTypeNames = map[EventType]string{
	0: "RenderScene",
	1: "CameraShake",
	2: "Particle",
	3: "CameraOverride",
	4: "SubScene",
	5: "RenderDemo",
	6: "RenderDemo",
	7: "EnvMapFlip",
}

// String returns the event category name.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type%d", int(t))
}
