package pipeline

import (
	"fmt"
	"strings"
)

// Feature is a bit-set of the analyses a caller can request. Feature
// selection is resolved once at pipeline configuration time, not re-parsed
// per call.
type Feature uint8

const (
	// FeatureLayout requests layout region detection
	FeatureLayout Feature = 1 << iota
	// FeatureText requests OCR word extraction and line grouping
	FeatureText
	// FeatureTables requests table detection and extraction
	FeatureTables
	// FeatureStyle requests style statistics
	FeatureStyle
)

// FeatureAll requests every analysis. It is the default.
const FeatureAll = FeatureLayout | FeatureText | FeatureTables | FeatureStyle

// Has reports whether f includes flag.
func (f Feature) Has(flag Feature) bool {
	return f&flag != 0
}

// String returns the comma-joined feature names.
func (f Feature) String() string {
	var names []string
	if f.Has(FeatureLayout) {
		names = append(names, "layout")
	}
	if f.Has(FeatureText) {
		names = append(names, "text")
	}
	if f.Has(FeatureTables) {
		names = append(names, "tables")
	}
	if f.Has(FeatureStyle) {
		names = append(names, "style")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseFeatures resolves feature names ("layout", "text", "tables",
// "style") into a Feature set. An empty list means all features.
func ParseFeatures(names []string) (Feature, error) {
	if len(names) == 0 {
		return FeatureAll, nil
	}

	var f Feature
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "layout":
			f |= FeatureLayout
		case "text":
			f |= FeatureText
		case "tables":
			f |= FeatureTables
		case "style":
			f |= FeatureStyle
		default:
			return 0, fmt.Errorf("unknown feature %q", name)
		}
	}
	return f, nil
}
