package services

// polarityLexicon assigns a coarse polarity to common sentiment-bearing
// words. Values are tunable; the analyzer only needs the sign and a
// rough magnitude.
var polarityLexicon = map[string]float64{
	"amazing":    0.9,
	"awesome":    0.9,
	"great":      0.8,
	"love":       0.8,
	"perfect":    0.9,
	"beautiful":  0.8,
	"happy":      0.7,
	"fun":        0.6,
	"good":       0.5,
	"best":       0.8,
	"excited":    0.7,
	"delicious":  0.7,
	"easy":       0.4,
	"fresh":      0.4,
	"strong":     0.4,
	"win":        0.6,
	"success":    0.6,
	"inspire":    0.6,
	"gentle":     0.3,
	"peaceful":   0.4,
	"calm":       0.3,
	"bad":        -0.6,
	"hard":       -0.3,
	"hate":       -0.8,
	"terrible":   -0.9,
	"awful":      -0.9,
	"worst":      -0.8,
	"sad":        -0.6,
	"angry":      -0.6,
	"fail":       -0.6,
	"pain":       -0.5,
	"boring":     -0.5,
	"difficult":  -0.4,
	"stress":     -0.5,
	"tired":      -0.4,
	"broken":     -0.5,
	"dark":       -0.3,
	"serious":    -0.2,
	"intense":    -0.1,
	"impossible": -0.6,
}

// stopwords are filler words excluded from keyword extraction.
var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "again": {}, "because": {}, "been": {},
	"before": {}, "being": {}, "could": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "every": {}, "from": {}, "have": {},
	"here": {}, "into": {}, "just": {}, "like": {}, "more": {},
	"most": {}, "only": {}, "other": {}, "over": {}, "really": {},
	"same": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "today": {}, "very": {},
	"want": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "will": {}, "with": {}, "would": {}, "your": {},
}
