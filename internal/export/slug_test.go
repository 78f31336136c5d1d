package export

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Fire [Red]", "fire-red"},
		{"", "unnamed"},
		{"   ", "unnamed"},
		{"!!!", "unnamed"},
		{"Glow", "glow"},
		{"Post FX: Bloom (HDR)", "post-fx-bloom-hdr"},
		{"  leading and   trailing  ", "leading-and-trailing"},
		{"snake_case-and-dash", "snake_case-and-dash"},
		{"[Only]", "only"},
		{"Tab\tSeparated", "tab-separated"},
		{"Ünïcødé Nämé", "ünïcødé-nämé"},
		{"a [b] [c d]", "a-b-c-d"},
		{"a\vb", "a-b"},
		{"a\x1cb\x1fc", "a-b-c"},
		{"next\u0085line", "next-line"},
		{"no\u00a0break", "no-break"},
		{"para\u2029graph", "para-graph"},
		{"\x1dedges\x1e", "edges"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.name); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Fire [Red]", "", "Hello World", "--x--", "A  B\tC", "x/y\\z", "[]", "Ünïcødé",
		"unnamed", "Über-Shader [v2] (final)",
	}

	for _, in := range inputs {
		once := Slug(in)
		if twice := Slug(once); twice != once {
			t.Errorf("Slug(Slug(%q)) = %q, want %q", in, twice, once)
		}
	}
}
