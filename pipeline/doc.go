// Package pipeline orchestrates document layout analysis.
//
// A Pipeline binds the capability interfaces (page rendering, OCR, layout
// region detection) to the per-page analyses and aggregates the results
// into a model.DocumentLayout. Analyses are selected with a Feature
// bit-set; each requested feature degrades independently, so a failing
// layout service costs layout regions on the affected page but never the
// document.
//
// # Feature selection
//
// Features are resolved once, when the pipeline is configured:
//
//	cfg := pipeline.DefaultConfig()
//	cfg.Features = pipeline.FeatureText | pipeline.FeatureTables
//	p, err := pipeline.New(renderer, recognizer, nil, cfg)
//
// # Degradation
//
// Construction fails with *InitError when a required capability is
// missing. At analysis time only rasterization is fatal; per-feature
// failures are logged as *FeatureError and the feature's output is
// omitted for that page.
package pipeline
