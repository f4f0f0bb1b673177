package assistant

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestEveryIntentHasAPool(t *testing.T) {
	intents := []Intent{
		IntentMissingEvidence, IntentMissingReleaseDate, IntentCreditsRequired,
		IntentYearFormat, IntentTypeSubtypeMismatch, IntentTitleCapitalization,
		IntentNextBestAction, IntentAlmostReady, IntentIdleNudge, IntentSuccessAck,
	}
	for _, intent := range intents {
		if len(variantPools[intent]) < 10 {
			t.Errorf("%s pool has %d variants, want at least 10", intent, len(variantPools[intent]))
		}
	}
}

func TestPickVariantSkipsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	last := PickVariant(IntentIdleNudge, "", rng)
	for i := 0; i < 100; i++ {
		v := PickVariant(IntentIdleNudge, last.ID, rng)
		if v.ID == last.ID {
			t.Fatalf("iteration %d repeated excluded variant %s", i, v.ID)
		}
		last = v
	}
}

func TestPickVariantIDEncodesIntentAndIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := PickVariant(IntentAlmostReady, "", rng)

	var idx int
	if _, err := fmt.Sscanf(v.ID, "ALMOST_READY-%d", &idx); err != nil {
		t.Fatalf("id %q does not parse: %v", v.ID, err)
	}
	if idx < 0 || idx >= len(variantPools[IntentAlmostReady]) {
		t.Fatalf("index %d out of pool range", idx)
	}
	if v.Text != variantPools[IntentAlmostReady][idx] {
		t.Fatal("text does not match the indexed pool entry")
	}
}

func TestFillTemplate(t *testing.T) {
	tests := []struct {
		name string
		text string
		vars map[string]string
		want string
	}{
		{
			name: "substitutes known keys",
			text: "Looking strong at {confidence}%. Next: {nextAction}.",
			vars: map[string]string{"confidence": "62", "nextAction": "add a director"},
			want: "Looking strong at 62%. Next: add a director.",
		},
		{
			name: "unknown keys stay verbatim",
			text: "Check {fieldName} and {mystery}.",
			vars: map[string]string{"fieldName": "The Last Horizon"},
			want: "Check The Last Horizon and {mystery}.",
		},
		{
			name: "no placeholders",
			text: "Done.",
			vars: map[string]string{"confidence": "10"},
			want: "Done.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillTemplate(tt.text, tt.vars); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
