package apx

import "github.com/beevik/etree"

// Spline is an animation curve with optional waveform modulation. A spline
// carries static Values, keyframed Keys, or both; the two are independent.
type Spline struct {
	Interpolation          int        `json:"interpolation"`
	Loop                   int        `json:"loop"`
	Waveform               int        `json:"waveform"`
	MultiplicativeWaveform int        `json:"multiplicative_waveform"`
	WFAmplitude            int        `json:"wf_amplitude"`
	WFFrequency            int        `json:"wf_frequency"`
	WFRandSeed             int        `json:"wf_randseed"`
	Values                 []int      `json:"values"`
	Keys                   []Keyframe `json:"keys"`
}

// Keyframe is a single spline key. ControlPos and ControlValues hold the
// optional curve tangents and are empty for linear keys.
type Keyframe struct {
	Time          int   `json:"time"`
	Values        []int `json:"values"`
	ControlPos    []int `json:"control_pos"`
	ControlValues []int `json:"control_values"`
}

// IsAnimated reports whether the spline has keyframes.
func (s *Spline) IsAnimated() bool {
	return len(s.Keys) > 0
}

// HasControlPoints reports whether the key carries tangent data.
func (k *Keyframe) HasControlPoints() bool {
	return len(k.ControlPos) > 0 || len(k.ControlValues) > 0
}

func parseSpline(el *etree.Element) *Spline {
	s := &Spline{
		Interpolation:          intField[int](el, "interpolation"),
		Loop:                   intField[int](el, "loop"),
		Waveform:               intField[int](el, "waveform"),
		MultiplicativeWaveform: intField[int](el, "multiplicativewaveform"),
		WFAmplitude:            intField[int](el, "wfamplitude"),
		WFFrequency:            intField[int](el, "wffrequency"),
		WFRandSeed:             intField[int](el, "wfrandseed"),
		Values:                 intList(el, "value"),
	}

	keys := el.SelectElements("key")
	s.Keys = make([]Keyframe, 0, len(keys))
	for _, key := range keys {
		s.Keys = append(s.Keys, Keyframe{
			Time:          intField[int](key, "time"),
			Values:        intList(key, "value"),
			ControlPos:    intList(key, "controlpos"),
			ControlValues: intList(key, "controlvalue"),
		})
	}

	return s
}
