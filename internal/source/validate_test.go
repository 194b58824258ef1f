package source

import (
	"encoding/json"
	"testing"
)

func decodeAny(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestValidate_CanonicalOK(t *testing.T) {
	v := decodeAny(t, `{"totalCost":1.5,"totalInputTokens":10,"byModel":{},"byDay":{}}`)
	vr := Validate(v)
	if !vr.IsValid || len(vr.Errors) != 0 {
		t.Errorf("want valid, got %+v", vr)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"string totalCost",
			`{"totalCost":"12.5","byModel":{},"byDay":{}}`,
			[]string{"totalCost must be a number"},
		},
		{
			"missing totalCost",
			`{"byModel":{},"byDay":{}}`,
			[]string{"totalCost must be a number"},
		},
		{
			"byModel as array",
			`{"totalCost":1,"byModel":[],"byDay":{}}`,
			[]string{"byModel must be an object"},
		},
		{
			"two violations accumulate",
			`{"totalCost":"x","byDay":[]}`,
			[]string{"totalCost must be a number", "byDay must be an object"},
		},
		{
			"external daily wrong type",
			`{"daily":{"2026-08-31":1}}`,
			[]string{"daily must be an array"},
		},
		{
			"external totals wrong type",
			`{"daily":[],"totals":[]}`,
			[]string{"totals must be an object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vr := Validate(decodeAny(t, tt.raw))
			if vr.IsValid {
				t.Fatal("want invalid")
			}
			if len(vr.Errors) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", vr.Errors, tt.want)
			}
			for i, w := range tt.want {
				if vr.Errors[i] != w {
					t.Errorf("error %d = %q, want %q", i, vr.Errors[i], w)
				}
			}
		})
	}
}

func TestValidate_NonObject(t *testing.T) {
	for _, v := range []any{nil, "text", 42.0, []any{1.0, 2.0}} {
		vr := Validate(v)
		if vr.IsValid {
			t.Errorf("%v: want invalid", v)
		}
		if len(vr.Errors) != 1 || vr.Errors[0] != "input must be an object" {
			t.Errorf("%v: errors = %v, want single object error", v, vr.Errors)
		}
	}
}

func TestValidate_NegativeCostPasses(t *testing.T) {
	// Shape-only validation: value ranges are deliberately unchecked.
	v := decodeAny(t, `{"totalCost":-5,"byModel":{},"byDay":{}}`)
	if vr := Validate(v); !vr.IsValid {
		t.Errorf("negative cost should pass shape validation, got %v", vr.Errors)
	}
}
