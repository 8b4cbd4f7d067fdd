package helper

import (
	"regexp"
	"testing"
)

var orderNumberFormat = regexp.MustCompile(`^ORD-\d{13}-\d{4}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := GenerateOrderNumber()
	if !orderNumberFormat.MatchString(number) {
		t.Errorf("order number %q does not match ORD-<millis>-<seq>", number)
	}
}

func TestGenerateOrderNumberDistinctBackToBack(t *testing.T) {
	// Many of these land in the same millisecond; the sequence
	// component must keep them apart.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := GenerateOrderNumber()
		if seen[number] {
			t.Fatalf("duplicate order number %q after %d generations", number, i)
		}
		seen[number] = true
	}
}
