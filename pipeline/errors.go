package pipeline

import "fmt"

// InitError reports that a required capability was unavailable when the
// pipeline was constructed. It is fatal: the pipeline cannot be used.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("pipeline initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// FeatureError reports that one requested feature failed on one page. It
// is recoverable: the pipeline logs it and omits that feature's output for
// the page instead of aborting the document.
type FeatureError struct {
	Feature Feature
	Page    int
	Err     error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature %s failed on page %d: %v", e.Feature, e.Page, e.Err)
}

func (e *FeatureError) Unwrap() error { return e.Err }
