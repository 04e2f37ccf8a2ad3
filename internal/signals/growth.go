package signals

import (
	"regexp"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
)

// Both patterns run against already lower-cased text. There are no word
// boundaries: "jobs" inside "snowjobs" counts.
var (
	hiringExpr = regexp.MustCompile(`hiring|careers|jobs|join us`)
	scaleExpr  = regexp.MustCompile(`growing|expanding|scale|rapid growth`)
)

// CountGrowth counts non-overlapping leftmost-first matches of the hiring and
// scale patterns.
func CountGrowth(text string) domain.GrowthSignals {
	return domain.GrowthSignals{
		HiringMentions: len(hiringExpr.FindAllStringIndex(text, -1)),
		ScaleMentions:  len(scaleExpr.FindAllStringIndex(text, -1)),
	}
}
