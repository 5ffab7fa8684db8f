package leads

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		lead Lead
		want int
	}{
		{
			"base score only",
			Lead{Message: "hello"},
			30,
		},
		{
			"urgency term",
			Lead{Message: "need this asap"},
			55,
		},
		{
			"budget term",
			Lead{Message: "what is the cost"},
			50,
		},
		{
			"company adds points",
			Lead{Message: "hello", Company: "TechCorp"},
			45,
		},
		{
			"placeholder company ignored",
			Lead{Message: "hello", Company: "Not provided"},
			30,
		},
		{
			"long message adds points",
			Lead{Message: strings.Repeat("automation ", 6)},
			40,
		},
		{
			"everything stacks",
			Lead{
				Message: "urgent: we have budget approved for automating our entire intake pipeline",
				Company: "TechCorp Solutions",
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.lead); got != tt.want {
				t.Fatalf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQualified(t *testing.T) {
	if Qualified(69) {
		t.Fatal("69 should not qualify")
	}
	if !Qualified(70) {
		t.Fatal("70 should qualify")
	}
}
