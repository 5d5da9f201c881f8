package layout

import (
	"sort"
	"strings"

	"github.com/veridoc/layoutkit/model"
)

// AssembleParagraphs builds one paragraph per textual layout region (Text,
// List, Title) from the words geometrically contained in it. Containment is
// boundary-inclusive. Words are concatenated in reading order ((y, x) sort,
// single-space join). Regions with no contained words produce no output;
// region order is otherwise preserved.
func AssembleParagraphs(words []model.Word, regions []model.Region) []model.Paragraph {
	var paragraphs []model.Paragraph

	for _, region := range regions {
		if !region.Type.IsTextual() {
			continue
		}

		var contained []model.Word
		for _, word := range words {
			if region.BoundingBox.ContainsBox(word.BoundingBox) {
				contained = append(contained, word)
			}
		}
		if len(contained) == 0 {
			continue
		}

		sort.SliceStable(contained, func(i, j int) bool {
			if contained[i].BoundingBox.Y != contained[j].BoundingBox.Y {
				return contained[i].BoundingBox.Y < contained[j].BoundingBox.Y
			}
			return contained[i].BoundingBox.X < contained[j].BoundingBox.X
		})

		texts := make([]string, len(contained))
		for i, word := range contained {
			texts[i] = word.Text
		}

		paragraphs = append(paragraphs, model.Paragraph{
			Type:        region.Type,
			Text:        strings.Join(texts, " "),
			BoundingBox: region.BoundingBox,
			Confidence:  region.Confidence,
		})
	}

	return paragraphs
}
