package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Faultbox/apx-unpack/internal/resolve"
	"github.com/Faultbox/apx-unpack/pkg/apx"
)

// Structured document locations.
const (
	docExt            = ".json"
	texturesDir       = "textures"
	modelsDir         = "models"
	scenesDir         = "scenes"
	timelineFile      = "timeline.json"
	materialsFile     = "materials.json"
	renderTargetsFile = "render_targets.json"
	renderLayersFile  = "render_layers.json"
)

// The *Doc types embed the decoded entity and add resolved names. Fields
// redeclared here shadow the embedded ones when encoded.

type operatorDoc struct {
	apx.TextureOperator
	FilterName string `json:"filter_name"`
}

type texturePageDoc struct {
	apx.TexturePage
	Operators []operatorDoc `json:"operators"`
}

type modelObjectDoc struct {
	apx.ModelObject
	ParentNames      []string `json:"parent_names"`
	ClonedObjectName *string  `json:"cloned_object_name,omitempty"`
}

type modelDoc struct {
	apx.Model
	Objects []modelObjectDoc `json:"objects"`
}

type clipDataDoc struct {
	apx.ClipData
	TargetClipName string `json:"target_clip_name"`
}

type sceneObjectDoc struct {
	apx.SceneObject
	ClipData []clipDataDoc `json:"clip_data"`
}

type sceneDoc struct {
	apx.Scene
	Objects []sceneObjectDoc `json:"objects"`
}

type materialDoc struct {
	apx.Material
	TechniqueName string `json:"technique_name"`
}

type eventDoc struct {
	apx.TimelineEvent
	TypeName     string  `json:"type_name"`
	TargetRTName string  `json:"target_rt_name"`
	SceneName    *string `json:"scene_name,omitempty"`
	ClipName     *string `json:"clip_name,omitempty"`
}

type renderLayerDoc struct {
	apx.RenderLayer
	RenderTargetNames []string `json:"render_target_names"`
}

func newTexturePageDoc(page *apx.TexturePage, names *resolve.Resolver) texturePageDoc {
	doc := texturePageDoc{
		TexturePage: *page,
		Operators:   make([]operatorDoc, 0, len(page.Operators)),
	}
	for _, op := range page.Operators {
		doc.Operators = append(doc.Operators, operatorDoc{
			TextureOperator: op,
			FilterName:      names.Name(resolve.KindTextureGenerator, op.FilterGUID),
		})
	}
	return doc
}

func newModelDoc(model *apx.Model, names *resolve.Resolver) modelDoc {
	doc := modelDoc{
		Model:   *model,
		Objects: make([]modelObjectDoc, 0, len(model.Objects)),
	}
	for _, obj := range model.Objects {
		od := modelObjectDoc{
			ModelObject: obj,
			ParentNames: make([]string, 0, len(obj.ParentGUIDs)),
		}
		for _, guid := range obj.ParentGUIDs {
			od.ParentNames = append(od.ParentNames, names.Name(resolve.KindModelObject, guid))
		}
		if obj.ClonedObject != nil && *obj.ClonedObject != "" {
			name := names.Name(resolve.KindModelObject, *obj.ClonedObject)
			od.ClonedObjectName = &name
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}

func newSceneDoc(scene *apx.Scene, names *resolve.Resolver) sceneDoc {
	doc := sceneDoc{
		Scene:   *scene,
		Objects: make([]sceneObjectDoc, 0, len(scene.Objects)),
	}
	for _, obj := range scene.Objects {
		od := sceneObjectDoc{
			SceneObject: obj,
			ClipData:    make([]clipDataDoc, 0, len(obj.ClipData)),
		}
		for _, cd := range obj.ClipData {
			od.ClipData = append(od.ClipData, clipDataDoc{
				ClipData:       cd,
				TargetClipName: names.Name(resolve.KindClip, cd.TargetClip),
			})
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}

func newMaterialDocs(materials []apx.Material, names *resolve.Resolver) []materialDoc {
	docs := make([]materialDoc, 0, len(materials))
	for _, m := range materials {
		docs = append(docs, materialDoc{
			Material:      m,
			TechniqueName: names.Name(resolve.KindTechnique, m.TechniqueGUID),
		})
	}
	return docs
}

func newEventDocs(events []apx.TimelineEvent, names *resolve.Resolver) []eventDoc {
	docs := make([]eventDoc, 0, len(events))
	for _, ev := range events {
		doc := eventDoc{
			TimelineEvent: ev,
			TypeName:      ev.Type.String(),
			TargetRTName:  names.Name(resolve.KindRenderTarget, ev.TargetRT),
		}
		if ev.SceneGUID != nil && *ev.SceneGUID != "" {
			name := names.Name(resolve.KindScene, *ev.SceneGUID)
			doc.SceneName = &name
		}
		if ev.ClipGUID != nil && *ev.ClipGUID != "" {
			name := names.Name(resolve.KindClip, *ev.ClipGUID)
			doc.ClipName = &name
		}
		docs = append(docs, doc)
	}
	return docs
}

func newRenderLayerDocs(layers []apx.RenderLayer, names *resolve.Resolver) []renderLayerDoc {
	docs := make([]renderLayerDoc, 0, len(layers))
	for _, l := range layers {
		docs = append(docs, renderLayerDoc{
			RenderLayer:       l,
			RenderTargetNames: names.NamesOrPrefix(resolve.KindRenderTarget, l.RenderTargets),
		})
	}
	return docs
}

// marshalDocument encodes v as two-space indented JSON without HTML escaping.
func marshalDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (e *Exporter) writeDocument(rel string, v any) error {
	data, err := marshalDocument(v)
	if err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}
	return e.writeFile(rel, data)
}

func (e *Exporter) writeTexturePages(res *Result) error {
	if len(e.project.TexturePages) == 0 {
		return nil
	}
	if err := e.mkdir(texturesDir); err != nil {
		return err
	}
	for i := range e.project.TexturePages {
		page := &e.project.TexturePages[i]
		rel := texturesDir + "/" + Slug(page.Name) + docExt
		if err := e.writeDocument(rel, newTexturePageDoc(page, e.names)); err != nil {
			return err
		}
		res.addDocument(rel)
	}
	return nil
}

func (e *Exporter) writeMaterials(res *Result) error {
	if len(e.project.Materials) == 0 {
		return nil
	}
	if err := e.writeDocument(materialsFile, newMaterialDocs(e.project.Materials, e.names)); err != nil {
		return err
	}
	res.addDocument(materialsFile)
	return nil
}

func (e *Exporter) writeModels(res *Result) error {
	if len(e.project.Models) == 0 {
		return nil
	}
	if err := e.mkdir(modelsDir); err != nil {
		return err
	}
	for i := range e.project.Models {
		model := &e.project.Models[i]
		rel := modelsDir + "/" + Slug(model.Name) + docExt
		if err := e.writeDocument(rel, newModelDoc(model, e.names)); err != nil {
			return err
		}
		res.addDocument(rel)
	}
	return nil
}

func (e *Exporter) writeScenes(res *Result) error {
	if len(e.project.Scenes) == 0 {
		return nil
	}
	if err := e.mkdir(scenesDir); err != nil {
		return err
	}
	for i := range e.project.Scenes {
		scene := &e.project.Scenes[i]
		rel := scenesDir + "/" + Slug(scene.Name) + docExt
		if err := e.writeDocument(rel, newSceneDoc(scene, e.names)); err != nil {
			return err
		}
		res.addDocument(rel)
	}
	return nil
}

func (e *Exporter) writeTimeline(res *Result) error {
	if len(e.project.Events) == 0 {
		return nil
	}
	if err := e.writeDocument(timelineFile, newEventDocs(e.project.Events, e.names)); err != nil {
		return err
	}
	res.addDocument(timelineFile)
	return nil
}

func (e *Exporter) writeRenderTargets(res *Result) error {
	if len(e.project.RenderTargets) == 0 {
		return nil
	}
	if err := e.writeDocument(renderTargetsFile, e.project.RenderTargets); err != nil {
		return err
	}
	res.addDocument(renderTargetsFile)
	return nil
}

func (e *Exporter) writeRenderLayers(res *Result) error {
	if len(e.project.RenderLayers) == 0 {
		return nil
	}
	if err := e.writeDocument(renderLayersFile, newRenderLayerDocs(e.project.RenderLayers, e.names)); err != nil {
		return err
	}
	res.addDocument(renderLayersFile)
	return nil
}
