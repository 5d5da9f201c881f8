package tables

import (
	"image"
	"image/color"

	"github.com/veridoc/layoutkit/model"
)

// DetectTableRegions locates table candidates directly on the raster image.
// The page is binarized into an ink mask, long horizontal and vertical
// line-like structures are isolated by directional morphological opening,
// the two line masks are unioned, and the bounding rectangles of the
// connected regions are kept when they exceed the configured minimum size.
// Small regions are treated as speckle and dropped.
func (e *Extractor) DetectTableRegions(img image.Image) []model.BBox {
	mask := inkMask(img, e.cfg.InkThreshold)

	horizontal := mask.open(e.cfg.HorizontalKernel, 1, e.cfg.Iterations)
	vertical := mask.open(1, e.cfg.VerticalKernel, e.cfg.Iterations)
	lines := horizontal.union(vertical)

	var boxes []model.BBox
	for _, r := range lines.components() {
		w := float64(r.Dx())
		h := float64(r.Dy())
		if w > e.cfg.MinWidth && h > e.cfg.MinHeight {
			boxes = append(boxes, model.NewBBox(float64(r.Min.X), float64(r.Min.Y), w, h))
		}
	}
	return boxes
}

// mask is a binary image; true marks ink.
type mask struct {
	w, h int
	pix  []bool
}

func newMask(w, h int) *mask {
	return &mask{w: w, h: h, pix: make([]bool, w*h)}
}

func (m *mask) at(x, y int) bool     { return m.pix[y*m.w+x] }
func (m *mask) set(x, y int, v bool) { m.pix[y*m.w+x] = v }

// inkMask binarizes an image: pixels darker than threshold count as ink.
func inkMask(img image.Image, threshold uint8) *mask {
	bounds := img.Bounds()
	m := newMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			m.set(x, y, g.Y < threshold)
		}
	}
	return m
}

// open performs morphological opening with a kw x kh rectangular kernel:
// iterations erosions followed by the same number of dilations. With a long
// thin kernel this keeps only structures at least as long as the kernel in
// the kernel's direction.
func (m *mask) open(kw, kh, iterations int) *mask {
	out := m
	for i := 0; i < iterations; i++ {
		out = out.erode(kw, kh)
	}
	for i := 0; i < iterations; i++ {
		out = out.dilate(kw, kh)
	}
	return out
}

// erode keeps a pixel only when the whole kernel window around it is ink.
// Windows extending past the image border never qualify.
func (m *mask) erode(kw, kh int) *mask {
	out := newMask(m.w, m.h)
	left, right := (kw-1)/2, kw/2
	up, down := (kh-1)/2, kh/2

	for y := up; y < m.h-down; y++ {
		for x := left; x < m.w-right; x++ {
			all := true
			for dy := -up; dy <= down && all; dy++ {
				for dx := -left; dx <= right; dx++ {
					if !m.at(x+dx, y+dy) {
						all = false
						break
					}
				}
			}
			out.set(x, y, all)
		}
	}
	return out
}

// dilate marks a pixel when any pixel in the kernel window is ink.
func (m *mask) dilate(kw, kh int) *mask {
	out := newMask(m.w, m.h)
	left, right := (kw-1)/2, kw/2
	up, down := (kh-1)/2, kh/2

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			any := false
			for dy := -up; dy <= down && !any; dy++ {
				yy := y + dy
				if yy < 0 || yy >= m.h {
					continue
				}
				for dx := -left; dx <= right; dx++ {
					xx := x + dx
					if xx < 0 || xx >= m.w {
						continue
					}
					if m.at(xx, yy) {
						any = true
						break
					}
				}
			}
			out.set(x, y, any)
		}
	}
	return out
}

// union returns the pixel-wise OR of two masks of equal size.
func (m *mask) union(other *mask) *mask {
	out := newMask(m.w, m.h)
	for i := range m.pix {
		out.pix[i] = m.pix[i] || other.pix[i]
	}
	return out
}

// components returns the bounding rectangles of the 8-connected ink
// regions of the mask.
func (m *mask) components() []image.Rectangle {
	visited := make([]bool, len(m.pix))
	var regions []image.Rectangle
	var queue []image.Point

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			idx := y*m.w + x
			if !m.pix[idx] || visited[idx] {
				continue
			}

			minX, minY, maxX, maxY := x, y, x, y
			visited[idx] = true
			queue = append(queue[:0], image.Pt(x, y))

			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]

				if p.X < minX {
					minX = p.X
				}
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y < minY {
					minY = p.Y
				}
				if p.Y > maxY {
					maxY = p.Y
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := p.X+dx, p.Y+dy
						if nx < 0 || nx >= m.w || ny < 0 || ny >= m.h {
							continue
						}
						nIdx := ny*m.w + nx
						if m.pix[nIdx] && !visited[nIdx] {
							visited[nIdx] = true
							queue = append(queue, image.Pt(nx, ny))
						}
					}
				}
			}

			regions = append(regions, image.Rect(minX, minY, maxX+1, maxY+1))
		}
	}

	return regions
}
