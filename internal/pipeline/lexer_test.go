package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"vsh/internal/vsherr"
)

func TestSplitTwoStages(t *testing.T) {
	stages, err := Split("ls | count")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(stages) != 2 || stages[0].Command != "ls" || stages[1].Command != "count" {
		t.Fatalf("stages = %+v", stages)
	}
}

func TestSplitPipeInsideQuotesIsNotAStageSeparator(t *testing.T) {
	stages, err := Split(`grep "a|b"`)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(stages) != 1 {
		t.Fatalf("expected 1 stage, got %d: %+v", len(stages), stages)
	}
	if len(stages[0].Argv) != 1 || stages[0].Argv[0] != "a|b" {
		t.Fatalf("argv = %v, want [a|b]", stages[0].Argv)
	}
}

func TestSplitRejectsUnterminatedQuote(t *testing.T) {
	_, err := Split(`echo "unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
	var verr *vsherr.Error
	if !errors.As(err, &verr) || verr.Name != "InvalidParameter" {
		t.Fatalf("err = %v, want a *vsherr.Error named InvalidParameter", err)
	}
}

func TestSplitRejectsEmptyStage(t *testing.T) {
	_, err := Split("ls ||count")
	if err == nil {
		t.Fatal("expected an error for an empty stage between pipes")
	}
	var verr *vsherr.Error
	if !errors.As(err, &verr) || verr.Name != "InvalidParameter" {
		t.Fatalf("err = %v, want a *vsherr.Error named InvalidParameter", err)
	}
}

func TestSplitStripsQuoteCharsAndUnescapes(t *testing.T) {
	stages, err := Split(`echo k="a b" c=\"x\"`)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	want := []string{`k=a b`, `c="x"`}
	if !reflect.DeepEqual(stages[0].Argv, want) {
		t.Fatalf("argv = %#v, want %#v", stages[0].Argv, want)
	}
}

// Any value built by builtins.shellQuote (see foreach_test.go in package
// builtins) must tokenize back to its original string through this
// lexer; this mirrors that quoting dialect from the lexer's side.
func TestTokenizeWordsRoundTripsQuotedValueWithSpace(t *testing.T) {
	words, err := tokenizeWords(`x="a b"`)
	if err != nil {
		t.Fatalf("tokenizeWords: %v", err)
	}
	if len(words) != 1 || words[0] != "x=a b" {
		t.Fatalf("words = %v, want [x=a b]", words)
	}
}

func TestTokenizeWordsRoundTripsEmptyQuotedValue(t *testing.T) {
	words, err := tokenizeWords(`x=""`)
	if err != nil {
		t.Fatalf("tokenizeWords: %v", err)
	}
	if len(words) != 1 || words[0] != "x=" {
		t.Fatalf("words = %v, want [x=]", words)
	}
}

func TestTokenizeWordsRejectsTrailingBackslash(t *testing.T) {
	_, err := tokenizeWords(`echo\`)
	if err == nil {
		t.Fatal("expected an error for a trailing backslash")
	}
	var verr *vsherr.Error
	if !errors.As(err, &verr) || verr.Name != "InvalidParameter" {
		t.Fatalf("err = %v, want a *vsherr.Error named InvalidParameter", err)
	}
}
