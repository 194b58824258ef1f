package source

// ValidationResult reports the outcome of structural validation. Errors are
// human-readable field-level messages; validation never aborts the caller.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate performs structural sanity checks on a decoded JSON value before
// aggregation. Checks are shape/type only: no range or cross-field
// consistency rules, so a negative cost passes. Field checks accumulate, so
// two simultaneous violations yield two messages. Only a nil or non-object
// input short-circuits.
func Validate(v any) ValidationResult {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return ValidationResult{Errors: []string{"input must be an object"}}
	}

	var errs []string

	if DetectShape(m) == ShapeExternal {
		if daily, ok := m["daily"]; ok {
			if _, isArr := daily.([]any); !isArr {
				errs = append(errs, "daily must be an array")
			}
		}
		if totals, ok := m["totals"]; ok {
			if _, isObj := totals.(map[string]any); !isObj {
				errs = append(errs, "totals must be an object")
			}
		}
		return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
	}

	if _, isNum := m["totalCost"].(float64); !isNum {
		errs = append(errs, "totalCost must be a number")
	}
	if byModel, ok := m["byModel"]; ok {
		if _, isObj := byModel.(map[string]any); !isObj {
			errs = append(errs, "byModel must be an object")
		}
	}
	if byDay, ok := m["byDay"]; ok {
		if _, isObj := byDay.(map[string]any); !isObj {
			errs = append(errs, "byDay must be an object")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
