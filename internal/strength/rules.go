package strength

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

func checkLength(p Policy, password string) ruleOutcome {
	length := utf8.RuneCountInString(password)
	if length >= p.MinLength {
		return ruleOutcome{score: scoreLength}
	}
	return ruleOutcome{
		feedback: []string{fmt.Sprintf("too short: %v characters (need %v+)", length, p.MinLength)},
		tips:     []string{fmt.Sprintf("use a 3-5 word passphrase to reach %v+ characters easily", p.MinLength)},
	}
}

func checkCommonPatterns(p Policy, password string) ruleOutcome {
	lowered := strings.ToLower(password)
	warnings := []string{}

	for _, pattern := range p.Denylist {
		if strings.Contains(lowered, strings.ToLower(pattern)) {
			warnings = append(warnings, fmt.Sprintf("contains common pattern/word: '%s'", pattern))
		}
	}

	// any 4-character window of a known sequence, forward or reversed,
	// counts as predictable (covers qwer, 3456, wxyz, 4321, ...)
	for _, sequence := range p.Sequences {
		windows := len(sequence) - 3
		for i := 0; i < windows; i++ {
			window := sequence[i : i+4]
			if strings.Contains(lowered, window) {
				warnings = append(warnings, fmt.Sprintf("contains keyboard/number sequence: '%s'", window))
			}
			reversed := reverseString(window)
			if strings.Contains(lowered, reversed) {
				warnings = append(warnings, fmt.Sprintf("contains reversed keyboard/number sequence: '%s'", reversed))
			}
		}
	}

	warnings = dedupe(warnings)
	if len(warnings) == 0 {
		return ruleOutcome{score: scoreNoPatterns}
	}
	penalty := scorePatternHit * len(warnings)
	if penalty < maxPatternPenalty {
		penalty = maxPatternPenalty
	}
	return ruleOutcome{
		score:    penalty,
		feedback: warnings,
		tips:     []string{"avoid keyboard patterns (qwerty/asdf), sequences (1234), and repeated chunks"},
	}
}

// PredictableSegments reports the denylisted words, keyboard sequences,
// and repeated chunks found in the password, without scoring it. It is
// used to filter generated credentials.
func (p Policy) PredictableSegments(password string) []string {
	segments := []string{}
	segments = append(segments, checkCommonPatterns(p, password).feedback...)
	segments = append(segments, checkRepeats(p, password).feedback...)
	return segments
}

func checkRepeats(p Policy, password string) ruleOutcome {
	warnings := []string{}
	if hasRepeatedRun(password, p.RepeatThreshold) {
		warnings = append(warnings, fmt.Sprintf("contains %v+ repeated characters in a row", p.RepeatThreshold))
	}
	if hasRepeatedGroup(strings.ToLower(password)) {
		warnings = append(warnings, "contains repeated patterns (e.g. abab, 1212)")
	}

	if len(warnings) == 0 {
		return ruleOutcome{score: scoreNoRepeats}
	}
	return ruleOutcome{
		score:    scoreRepeatHit,
		feedback: warnings,
	}
}

func checkPassphrase(p Policy, password string) ruleOutcome {
	if countWords(password, p.Separators) >= p.MinWords {
		return ruleOutcome{score: scorePassphrase}
	}
	return ruleOutcome{
		tips: []string{fmt.Sprintf("consider a passphrase (%v+ words) using spaces or separators (e.g. hyphens)", p.MinWords)},
	}
}

func checkVariety(p Policy, password string) ruleOutcome {
	missing := missingCharacterClasses(password)
	present := characterClassCount - len(missing)
	outcome := ruleOutcome{score: present * scorePerClass}

	// one absent class is tolerated; passphrases rarely carry symbols
	if len(missing) > 1 {
		outcome.feedback = []string{fmt.Sprintf("missing: %s", strings.Join(missing, ", "))}
		outcome.tips = []string{"add more character variety (mix upper/lower, numbers, and symbols)"}
	}
	return outcome
}

func checkEntropy(p Policy, password string) ruleOutcome {
	entropy := estimateEntropyBits(password)
	switch {
	case entropy >= 70:
		return ruleOutcome{score: scoreEntropyHigh}
	case entropy >= 50:
		return ruleOutcome{score: scoreEntropyMedium}
	default:
		return ruleOutcome{
			tips: []string{"increase randomness: longer length plus more varied characters helps"},
		}
	}
}

// estimateEntropyBits is a rough length-times-pool-size heuristic, not
// a cracking-resistance guarantee
func estimateEntropyBits(password string) float64 {
	pool := 0
	classes := characterClasses(password)
	if classes.hasLower {
		pool += 26
	}
	if classes.hasUpper {
		pool += 26
	}
	if classes.hasDigit {
		pool += 10
	}
	if classes.hasSymbol {
		pool += 32
	}
	if strings.ContainsRune(password, ' ') {
		pool += 1
	}
	if pool < 1 {
		pool = 1
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

const characterClassCount = 4

type characterClassSet struct {
	hasLower  bool
	hasUpper  bool
	hasDigit  bool
	hasSymbol bool
}

func characterClasses(password string) characterClassSet {
	classes := characterClassSet{}
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			classes.hasLower = true
		case unicode.IsUpper(r):
			classes.hasUpper = true
		case unicode.IsDigit(r):
			classes.hasDigit = true
		case unicode.IsSpace(r):
		default:
			classes.hasSymbol = true
		}
	}
	return classes
}

func missingCharacterClasses(password string) []string {
	classes := characterClasses(password)
	missing := []string{}
	if !classes.hasLower {
		missing = append(missing, "lowercase letter")
	}
	if !classes.hasUpper {
		missing = append(missing, "uppercase letter")
	}
	if !classes.hasDigit {
		missing = append(missing, "number")
	}
	if !classes.hasSymbol {
		missing = append(missing, "symbol")
	}
	return missing
}

// countWords counts word-like tokens: runs of 3+ letters delimited by
// spaces or any of the separator characters
func countWords(password string, separators string) int {
	tokens := strings.FieldsFunc(strings.TrimSpace(password), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
	})
	words := 0
	for _, token := range tokens {
		if utf8.RuneCountInString(token) < 3 {
			continue
		}
		isWordish := true
		for _, r := range token {
			if !unicode.IsLetter(r) {
				isWordish = false
				break
			}
		}
		if isWordish {
			words++
		}
	}
	return words
}

func hasRepeatedRun(password string, threshold int) bool {
	if threshold < 2 {
		threshold = 2
	}
	run := 0
	var previous rune
	for i, r := range password {
		if i > 0 && r == previous {
			run++
		} else {
			run = 1
		}
		if run >= threshold {
			return true
		}
		previous = r
	}
	return false
}

// hasRepeatedGroup detects a 2-4 character chunk appearing 3+ times
// back-to-back, e.g. "ababab" or "121212"
func hasRepeatedGroup(s string) bool {
	for size := 2; size <= 4; size++ {
		for i := 0; i+3*size <= len(s); i++ {
			chunk := s[i : i+size]
			if s[i+size:i+2*size] == chunk && s[i+2*size:i+3*size] == chunk {
				return true
			}
		}
	}
	return false
}

func dedupe(values []string) []string {
	seen := map[string]struct{}{}
	output := []string{}
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		output = append(output, value)
	}
	return output
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
