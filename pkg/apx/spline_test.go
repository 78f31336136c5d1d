package apx

import "testing"

func TestParseSpline_StaticOnly(t *testing.T) {
	s := parseSpline(element(t, `<spline>
		<interpolation>2</interpolation><loop>1</loop><waveform>3</waveform>
		<multiplicativewaveform>1</multiplicativewaveform>
		<wfamplitude>10</wfamplitude><wffrequency>20</wffrequency><wfrandseed>30</wfrandseed>
		<value>1</value><value>2</value><value></value>
	</spline>`))

	if s.Interpolation != 2 || s.Loop != 1 || s.Waveform != 3 || s.MultiplicativeWaveform != 1 {
		t.Errorf("unexpected modes: %+v", s)
	}
	if s.WFAmplitude != 10 || s.WFFrequency != 20 || s.WFRandSeed != 30 {
		t.Errorf("unexpected waveform settings: %+v", s)
	}
	if len(s.Values) != 3 || s.Values[0] != 1 || s.Values[1] != 2 || s.Values[2] != 0 {
		t.Errorf("values = %v, want [1 2 0]", s.Values)
	}
	if s.Keys == nil || len(s.Keys) != 0 {
		t.Errorf("expected empty keyframe list, got %v", s.Keys)
	}
	if s.IsAnimated() {
		t.Error("IsAnimated() = true for static spline")
	}
}

func TestParseSpline_KeysOnly(t *testing.T) {
	s := parseSpline(element(t, `<spline>
		<key><time>0</time><value>5</value></key>
		<key><time>60</time><value>7</value><value>8</value>
			<controlpos>10</controlpos><controlpos>50</controlpos>
			<controlvalue>6</controlvalue><controlvalue>7</controlvalue>
		</key>
	</spline>`))

	if s.Values == nil || len(s.Values) != 0 {
		t.Errorf("expected empty static values, got %v", s.Values)
	}
	if len(s.Keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(s.Keys))
	}
	if s.Keys[0].HasControlPoints() {
		t.Error("first key should have no control points")
	}
	k := s.Keys[1]
	if k.Time != 60 || len(k.Values) != 2 || k.Values[1] != 8 {
		t.Errorf("unexpected key: %+v", k)
	}
	if !k.HasControlPoints() || k.ControlPos[1] != 50 || k.ControlValues[0] != 6 {
		t.Errorf("unexpected control points: %+v", k)
	}
	if !s.IsAnimated() {
		t.Error("IsAnimated() = false for keyed spline")
	}
}

func TestParseSpline_Both(t *testing.T) {
	s := parseSpline(element(t, `<spline>
		<value>4</value>
		<key><time>0</time><value>4</value></key>
	</spline>`))

	if len(s.Values) != 1 || s.Values[0] != 4 {
		t.Errorf("values = %v, want [4]", s.Values)
	}
	if len(s.Keys) != 1 || s.Keys[0].Values[0] != 4 {
		t.Errorf("keys = %+v, want one key with value 4", s.Keys)
	}
}
