package tmpasset

import (
	"encoding/json"
	"io"
)

// FloatProperty is one shader float parameter. It serializes as a
// two-element [name, value] array, the layout the patching tool reads.
type FloatProperty struct {
	Name  string
	Value float64
}

// MarshalJSON implements json.Marshaler.
func (p FloatProperty) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Name, p.Value})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *FloatProperty) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &p.Name); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &p.Value)
}

// SavedProperties is the material's serialized property block.
type SavedProperties struct {
	Floats []FloatProperty `json:"m_Floats"`
}

// Material is the sibling shader-parameter document emitted next to a
// font asset. Its gradient scale must agree with the atlas's distance
// spread: the SDF shader maps one gradient-scale unit to the field's
// full distance range.
type Material struct {
	SavedProperties SavedProperties `json:"m_SavedProperties"`
}

// NewMaterial builds the material document for an atlas.
// gradientScale is padding+1 for SDF atlases and 1 for raster atlases.
func NewMaterial(gradientScale float64, atlasWidth, atlasHeight int) *Material {
	return &Material{
		SavedProperties: SavedProperties{
			Floats: []FloatProperty{
				{Name: "_GradientScale", Value: gradientScale},
				{Name: "_TextureWidth", Value: float64(atlasWidth)},
				{Name: "_TextureHeight", Value: float64(atlasHeight)},
			},
		},
	}
}

// Encode writes the document as indented JSON.
func (m *Material) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(m)
}
