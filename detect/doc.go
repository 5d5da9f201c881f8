// Package detect provides layout region detection for page images.
//
// Region classification itself is delegated to an external pretrained model
// (a PubLayNet-style detector) behind the [Detector] interface, so tests can
// substitute deterministic doubles and the serving model can be swapped
// without touching the pipeline.
//
// The provided [HTTPDetector] talks to a layout inference service over
// HTTP: it posts the page image as PNG and receives detections as corner
// points with a class label and score. Detections scoring below the
// configured confidence threshold are discarded; the detector's own
// ordering is preserved.
package detect
