package gochart

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the spec for structural issues and returns an error
// describing all problems found, or nil if the spec is renderable as given.
// Render performs the same checks but degrades to a placeholder instead.
func Validate(spec *ChartSpec) error {
	if spec == nil {
		return fmt.Errorf("validation failed:\n  spec is nil")
	}
	var errs []string

	switch spec.Kind {
	case "":
		errs = append(errs, "kind is empty")
	default:
		known := false
		for _, k := range Kinds {
			if k == spec.Kind {
				known = true
				break
			}
		}
		if !known {
			errs = append(errs, fmt.Sprintf("unsupported kind %q", spec.Kind))
		}
	}
	// Duplicate ids are reported per series below.
	if err := checkRenderable(spec); err != nil && !errors.Is(err, ErrDuplicateSeries) {
		errs = append(errs, err.Error())
	}

	seen := make(map[string]bool, len(spec.Series))
	for i, s := range spec.Series {
		prefix := fmt.Sprintf("series %d", i+1)
		if s.ID == "" {
			errs = append(errs, prefix+": id is empty")
		} else if seen[s.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate id %q", prefix, s.ID))
		}
		seen[s.ID] = true
		if s.Color != "" {
			if _, ok := NormalizeColor(s.Color); !ok {
				errs = append(errs, fmt.Sprintf("%s: color %q is not a hex color", prefix, s.Color))
			}
		}
		switch spec.Kind {
		case KindPie:
			if len(s.Data) == 0 {
				errs = append(errs, prefix+": pie slice has no value")
			}
		case KindScatter:
			if len(s.Data) > 0 {
				errs = append(errs, prefix+": scatter series needs {x,y} points")
			}
		case KindTable, KindHeatmap:
		default:
			if len(s.Data) != len(spec.Labels) {
				errs = append(errs, fmt.Sprintf("%s: %d values for %d labels", prefix, len(s.Data), len(spec.Labels)))
			}
		}
	}

	switch spec.Options.LegendPosition {
	case "", LegendTop, LegendBottom, LegendLeft, LegendRight:
	default:
		errs = append(errs, fmt.Sprintf("legend position %q is invalid", spec.Options.LegendPosition))
	}
	switch spec.Options.LegendSize {
	case "", LegendSmall, LegendMedium, LegendLarge:
	default:
		errs = append(errs, fmt.Sprintf("legend size %q is invalid", spec.Options.LegendSize))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// checkRenderable reports the first missing payload that makes a kind unrenderable.
func checkRenderable(spec *ChartSpec) error {
	missing := func(what string) error {
		return NewSpecError(spec.Kind, "", fmt.Errorf("%w: %s", ErrMissingData, what))
	}
	switch spec.Kind {
	case KindTable:
		if spec.Table == nil || len(spec.Table.Headers) == 0 {
			return missing("table headers")
		}
	case KindHeatmap:
		if spec.Heatmap == nil || len(spec.Heatmap.Cells) == 0 {
			return missing("heatmap cells")
		}
	case KindScatter:
		hasPoints := false
		for _, s := range spec.Series {
			hasPoints = hasPoints || len(s.Points) > 0
		}
		if !hasPoints {
			return missing("scatter points")
		}
	case KindPie:
		if len(spec.Series) == 0 {
			return missing("pie slices")
		}
	default:
		if len(spec.Series) == 0 {
			return missing("series")
		}
		if len(spec.Labels) == 0 {
			return missing("labels")
		}
	}
	return checkUniqueIDs(spec)
}

// checkUniqueIDs rejects series that share an id: rows and colors are keyed
// by id, so a later series would silently replace an earlier one.
func checkUniqueIDs(spec *ChartSpec) error {
	switch spec.Kind {
	case KindTable, KindHeatmap:
		return nil
	}
	seen := make(map[string]bool, len(spec.Series))
	for _, s := range spec.Series {
		if seen[s.ID] {
			return NewSpecError(spec.Kind, s.ID, ErrDuplicateSeries)
		}
		seen[s.ID] = true
	}
	return nil
}
