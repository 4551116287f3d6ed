package strength

// Rating is the qualitative classification derived from the score
type Rating string

const (
	RatingWeak     Rating = "weak"
	RatingModerate Rating = "moderate"
	RatingStrong   Rating = "strong"
)

// Assessment is the result of evaluating a single candidate password.
// Instances are value objects; every call to Evaluate produces a fresh
// one and nothing mutates them afterwards
type Assessment struct {
	Score       int      `json:"score" yaml:"score"`
	Rating      Rating   `json:"rating" yaml:"rating"`
	Feedback    []string `json:"feedback" yaml:"feedback"`
	Tips        []string `json:"tips" yaml:"tips"`
	EntropyBits float64  `json:"entropyBits" yaml:"entropyBits"`
}

// fixed score contributions per rule; the sum is clamped to [0, 100]
// before the rating cutoffs are applied
const (
	scoreLength        = 35
	scorePassphrase    = 20
	scorePerClass      = 4
	scoreNoPatterns    = 12
	scoreNoRepeats     = 8
	scorePatternHit    = -10
	maxPatternPenalty  = -20
	scoreRepeatHit     = -10
	scoreEntropyHigh   = 10
	scoreEntropyMedium = 5
)

type ruleOutcome struct {
	score    int
	feedback []string
	tips     []string
}

type ruleFunc func(Policy, string) ruleOutcome

// rules are applied in this order; feedback in the Assessment follows it
var rules = []ruleFunc{
	checkLength,
	checkCommonPatterns,
	checkRepeats,
	checkPassphrase,
	checkVariety,
	checkEntropy,
}

// Evaluate maps a candidate password to an Assessment. It is total over
// all strings: empty and non-ASCII inputs are fine and simply land on
// the weakest rating. It performs no I/O and holds no state, so
// concurrent calls are safe
func (p Policy) Evaluate(password string) Assessment {
	assessment := Assessment{
		Feedback: []string{},
		Tips:     []string{},
	}

	score := 0
	for _, rule := range rules {
		outcome := rule(p, password)
		score += outcome.score
		assessment.Feedback = append(assessment.Feedback, outcome.feedback...)
		assessment.Tips = append(assessment.Tips, outcome.tips...)
	}

	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	assessment.Score = score
	assessment.Rating = p.rate(score)
	assessment.EntropyBits = estimateEntropyBits(password)
	return assessment
}

func (p Policy) rate(score int) Rating {
	switch {
	case score >= p.StrongAt:
		return RatingStrong
	case score >= p.ModerateAt:
		return RatingModerate
	default:
		return RatingWeak
	}
}
