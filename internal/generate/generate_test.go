package generate

import (
	"strings"
	"testing"

	"passguard/internal/strength"
)

func TestPasswordLength(t *testing.T) {
	password, err := Password(20)
	if err != nil {
		t.Fatalf("expected generation to succeed, got: %s", err)
	}
	if len(password) != 20 {
		t.Errorf("expected a 20 character password, got %v characters", len(password))
	}
}

func TestPasswordRejectsShortLengths(t *testing.T) {
	if _, err := Password(4); err == nil {
		t.Errorf("expected an error for a length below the minimum")
	}
}

func TestPasswordsDiffer(t *testing.T) {
	first, err := Password(24)
	if err != nil {
		t.Fatalf("expected generation to succeed, got: %s", err)
	}
	second, err := Password(24)
	if err != nil {
		t.Fatalf("expected generation to succeed, got: %s", err)
	}
	if first == second {
		t.Errorf("expected two generated passwords to differ")
	}
}

func TestPassphraseWordCount(t *testing.T) {
	passphrase, err := Passphrase(4, " ")
	if err != nil {
		t.Fatalf("expected generation to succeed, got: %s", err)
	}
	if words := len(strings.Fields(passphrase)); words != 4 {
		t.Errorf("expected 4 words, got %v in %q", words, passphrase)
	}
}

func TestPassphraseSeparator(t *testing.T) {
	passphrase, err := Passphrase(3, "-")
	if err != nil {
		t.Fatalf("expected generation to succeed, got: %s", err)
	}
	if parts := len(strings.Split(passphrase, "-")); parts != 3 {
		t.Errorf("expected 3 parts, got %v in %q", parts, passphrase)
	}
}

func TestPassphraseRejectsSingleWords(t *testing.T) {
	if _, err := Passphrase(1, " "); err == nil {
		t.Errorf("expected an error for a single word passphrase")
	}
}

func TestGeneratedPasswordSatisfiesDefaultPolicy(t *testing.T) {
	policy := strength.DefaultPolicy()
	for i := 0; i < 16; i++ {
		password, err := Password(20)
		if err != nil {
			t.Fatalf("expected generation to succeed, got: %s", err)
		}
		assessment := policy.Evaluate(password)
		if assessment.Rating == strength.RatingWeak {
			t.Errorf("expected generated password %q to rate above weak, got score %v with feedback %v", password, assessment.Score, assessment.Feedback)
		}
		if len(policy.PredictableSegments(password)) != 0 {
			t.Errorf("expected generated password %q to carry no predictable segments", password)
		}
	}
}

func TestGeneratedPassphraseSatisfiesDefaultPolicy(t *testing.T) {
	policy := strength.DefaultPolicy()
	for i := 0; i < 16; i++ {
		passphrase, err := Passphrase(4, " ")
		if err != nil {
			t.Fatalf("expected generation to succeed, got: %s", err)
		}
		assessment := policy.Evaluate(passphrase)
		if assessment.Rating == strength.RatingWeak {
			t.Errorf("expected generated passphrase %q to rate above weak, got score %v with feedback %v", passphrase, assessment.Score, assessment.Feedback)
		}
	}
}
