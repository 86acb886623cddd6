package scene

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(rect "floor" :origin p)`,
			expect: `(rect "floor" "__kw_origin" p)`,
		},
		{
			name:   "multiple keywords",
			input:  `(cylinder "c" :height 4 :radius 1)`,
			expect: `(cylinder "c" "__kw_height" 4 "__kw_radius" 1)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"a \" :b" :c`,
			expect: `"a \" :b" "__kw_c"`,
		},
		{
			name:   "backtick string preserved",
			input:  "`raw :kw my-name`",
			expect: "`raw :kw my-name`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def wall-height 3)`,
			expect: `(def wall_height 3)`,
		},
		{
			name:   "minus operator and negative numbers preserved",
			input:  `(- 10 5) (vec3 0 0 -1)`,
			expect: `(- 10 5) (vec3 0 0 -1)`,
		},
		{
			name:   "exponent preserved",
			input:  `1e-6`,
			expect: `1e-6`,
		},
		{
			name:   "comment converted to // style",
			input:  ";; comment with :keyword\n(view v)",
			expect: "// comment with :keyword\n(view v)",
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:half-size`,
			expect: `"__kw_half-size"`,
		},
		{
			name:   "name with hyphen in string preserved",
			input:  `(quad "back-wall" a b c d)`,
			expect: `(quad "back-wall" a b c d)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
