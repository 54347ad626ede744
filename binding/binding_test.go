package binding

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return data
}

func TestInterpolate(t *testing.T) {
	data := decode(t, `{"layout": {"sidebar": 240, "cols": [{"w": "30%"}, {"w": 12.5}]}, "name": "main"}`)

	type tc struct {
		in   string
		want string
	}

	tests := map[string]tc{
		"number with unit": {in: "${layout.sidebar}px", want: "240px"},
		"string":           {in: "${name}", want: "main"},
		"indexed":          {in: "${layout.cols[0].w}", want: "30%"},
		"fraction":         {in: "${layout.cols[1].w}px", want: "12.5px"},
		"missing kept":     {in: "${layout.nope}px", want: "${layout.nope}px"},
		"out of range":     {in: "${layout.cols[5].w}", want: "${layout.cols[5].w}"},
		"no placeholder":   {in: "10px", want: "10px"},
		"spaces trimmed":   {in: "${ name }", want: "main"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Interpolate(tt.in, data); got != tt.want {
				t.Fatalf("Interpolate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${a}", nil); got != "${a}" {
		t.Fatalf("Interpolate with nil data = %q", got)
	}
}

func TestLookup(t *testing.T) {
	data := decode(t, `{"grid": [[1, 2], [3, 4]]}`)
	v, ok := Lookup(data, "grid[1][0]")
	if !ok || v != float64(3) {
		t.Fatalf("Lookup(grid[1][0]) = %v, %v", v, ok)
	}
	if _, ok := Lookup(data, "grid[x]"); ok {
		t.Fatal("non-numeric index should fail")
	}
	if _, ok := Lookup(data, ""); ok {
		t.Fatal("empty path should fail")
	}
}

func TestUnresolved(t *testing.T) {
	got := Unresolved("${a} 4px ${b.c}")
	if len(got) != 2 || got[0] != "${a}" || got[1] != "${b.c}" {
		t.Fatalf("Unresolved() = %v", got)
	}
}
