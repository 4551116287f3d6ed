package strength

// Policy holds the tunables for an evaluation. The zero value is not
// usable; start from DefaultPolicy() and override fields as needed.
type Policy struct {
	// MinLength is the length at or above which the length rule passes
	MinLength int `json:"minLength" yaml:"minLength"`

	// Denylist holds known-weak words matched case-insensitively as
	// substrings of the candidate password
	Denylist []string `json:"denylist" yaml:"denylist"`

	// Sequences holds ordered character rows (keyboard rows, digits,
	// the alphabet); any 4-character window of these, forward or
	// reversed, counts as a predictable sequence
	Sequences []string `json:"sequences" yaml:"sequences"`

	// RepeatThreshold is the run length of identical characters at
	// which the repeat rule triggers
	RepeatThreshold int `json:"repeatThreshold" yaml:"repeatThreshold"`

	// MinWords is the number of word-like tokens required for a
	// candidate to be recognised as a passphrase
	MinWords int `json:"minWords" yaml:"minWords"`

	// Separators are the characters (besides spaces) that split a
	// candidate into word-like tokens
	Separators string `json:"separators" yaml:"separators"`

	// StrongAt and ModerateAt are the score cutoffs for the rating;
	// scores below ModerateAt rate as weak
	StrongAt   int `json:"strongAt" yaml:"strongAt"`
	ModerateAt int `json:"moderateAt" yaml:"moderateAt"`
}

// DefaultPolicy returns the stock policy: 15+ characters, the usual
// keyboard/dictionary suspects denylisted, repeat runs of 4+ flagged,
// 2+ words recognised as a passphrase, strong at 85 and moderate at 65
func DefaultPolicy() Policy {
	return Policy{
		MinLength: 15,
		Denylist: []string{
			"qwerty", "asdf", "zxcv", "password", "letmein", "admin",
			"iloveyou", "welcome", "login", "abc123", "monkey",
		},
		Sequences: []string{
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
			"1234567890",
			"abcdefghijklmnopqrstuvwxyz",
		},
		RepeatThreshold: 4,
		MinWords:        2,
		Separators:      "-_.",
		StrongAt:        85,
		ModerateAt:      65,
	}
}
