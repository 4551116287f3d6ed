package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"passguard/internal/strength"
)

const (
	charsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	charsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetDigits    = "0123456789"
	charsetSymbols   = "!@#$%^&*()-_=+[]{};:,.<>?"

	MinimumPasswordLength  = 8
	MinimumPassphraseWords = 2

	maxPasswordAttempts = 32
)

// Password returns a random password of the requested length drawing
// from all four character classes. Candidates containing denylisted
// words, keyboard sequences, or repeated chunks are redrawn
func Password(length int) (string, error) {
	if length < MinimumPasswordLength {
		return "", fmt.Errorf("failed to receive a length of at least %v", MinimumPasswordLength)
	}
	policy := strength.DefaultPolicy()
	charset := charsetLowercase + charsetUppercase + charsetDigits + charsetSymbols
	for attempt := 0; attempt < maxPasswordAttempts; attempt++ {
		var output strings.Builder
		for i := 0; i < length; i++ {
			index, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
			if err != nil {
				return "", fmt.Errorf("failed to read randomness: %s", err)
			}
			output.WriteByte(charset[index.Int64()])
		}
		if len(policy.PredictableSegments(output.String())) == 0 {
			return output.String(), nil
		}
	}
	return "", fmt.Errorf("failed to generate a password without predictable segments")
}

// Passphrase returns a random passphrase of the requested number of
// words joined by the separator
func Passphrase(words int, separator string) (string, error) {
	if words < MinimumPassphraseWords {
		return "", fmt.Errorf("failed to receive a word count of at least %v", MinimumPassphraseWords)
	}
	if separator == "" {
		separator = " "
	}
	output := make([]string, words)
	for i := 0; i < words; i++ {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(wordlist))))
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %s", err)
		}
		output[i] = wordlist[index.Int64()]
	}
	return strings.Join(output, separator), nil
}
