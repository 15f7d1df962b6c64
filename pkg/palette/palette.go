// Package palette provides color values, named palettes, and group-based
// node color resolution for connectome rendering.
//
// Nodes are colored either uniformly (no grouping), from an explicit
// group→color mapping, or by sampling a named palette with one color per
// distinct group. Palette sampling is a pure function of the sorted distinct
// group set and the palette name, so color assignment is deterministic.
package palette

import (
	"slices"

	"github.com/connectoviz/connectoviz/pkg/errors"
)

// Default is the palette used when the caller does not name one:
// the standard 20-color categorical palette.
const Default = "tab20"

// DefaultNodeColor is used for every node when no group labels are given.
var DefaultNodeColor = MustParse("black")

// categorical palettes are fixed color lists sampled by index.
var categorical = map[string][]string{
	"tab10": {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
	"tab20": {
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	},
}

// sequential palettes are anchor stops blended in HCL space.
var sequential = map[string][]string{
	"viridis": {
		"#440154", "#46327e", "#365c8d", "#277f8e",
		"#1fa187", "#4ac16d", "#a0da39", "#fde725",
	},
	"magma": {
		"#000004", "#1d1147", "#51127c", "#822681",
		"#b73779", "#e55c30", "#fc8961", "#fcfdbf",
	},
}

// Names returns the sorted names of all available palettes.
func Names() []string {
	names := make([]string, 0, len(categorical)+len(sequential))
	for name := range categorical {
		names = append(names, name)
	}
	for name := range sequential {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sample returns n colors drawn from the named palette at evenly spaced
// positions. Categorical palettes are indexed, sequential palettes are
// interpolated. Returns an INVALID_PALETTE error for unknown names.
func Sample(name string, n int) ([]Color, error) {
	if n <= 0 {
		return nil, nil
	}
	if hexes, ok := categorical[name]; ok {
		return sampleCategorical(hexes, n), nil
	}
	if anchors, ok := sequential[name]; ok {
		return sampleSequential(anchors, n), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidPalette, "unknown palette %q", name)
}

func sampleCategorical(hexes []string, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		t := position(i, n)
		idx := int(t * float64(len(hexes)))
		if idx >= len(hexes) {
			idx = len(hexes) - 1
		}
		out[i] = MustParse(hexes[idx])
	}
	return out
}

func sampleSequential(hexes []string, n int) []Color {
	anchors := make([]Color, len(hexes))
	for i, h := range hexes {
		anchors[i] = MustParse(h)
	}
	out := make([]Color, n)
	for i := range out {
		t := position(i, n)
		span := t * float64(len(anchors)-1)
		lo := int(span)
		if lo >= len(anchors)-1 {
			out[i] = anchors[len(anchors)-1]
			continue
		}
		if frac := span - float64(lo); frac > 0 {
			out[i] = blend(anchors[lo], anchors[lo+1], frac)
		} else {
			out[i] = anchors[lo]
		}
	}
	return out
}

// position maps sample i of n onto [0, 1], with a single sample at 0.
func position(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Resolve computes one color per node from optional group labels.
//
// Resolution rules:
//   - groups nil: every node gets [DefaultNodeColor].
//   - len(groups) != n: SHAPE_MISMATCH.
//   - explicit non-nil: every distinct group must have an entry; otherwise a
//     [errors.MissingGroupColorError] listing the missing identifiers.
//   - otherwise: the named palette is sampled with one color per distinct
//     group, assigned in sorted group order.
func Resolve(groups []string, explicit map[string]Color, paletteName string, n int) ([]Color, error) {
	if groups == nil {
		out := make([]Color, n)
		for i := range out {
			out[i] = DefaultNodeColor
		}
		return out, nil
	}

	if len(groups) != n {
		return nil, errors.New(errors.ErrCodeShapeMismatch,
			"group labels must match node count: %d labels for %d nodes", len(groups), n)
	}

	distinct := distinctSorted(groups)

	byGroup := explicit
	if byGroup != nil {
		var missing []string
		for _, g := range distinct {
			if _, ok := byGroup[g]; !ok {
				missing = append(missing, g)
			}
		}
		if len(missing) > 0 {
			return nil, &errors.MissingGroupColorError{Missing: missing}
		}
	} else {
		sampled, err := Sample(paletteName, len(distinct))
		if err != nil {
			return nil, err
		}
		byGroup = make(map[string]Color, len(distinct))
		for i, g := range distinct {
			byGroup[g] = sampled[i]
		}
	}

	out := make([]Color, n)
	for i, g := range groups {
		out[i] = byGroup[g]
	}
	return out, nil
}

// distinctSorted returns the distinct group identifiers in sorted order.
// The ordering drives palette index assignment, so it must be stable.
func distinctSorted(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	var out []string
	for _, g := range groups {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}
