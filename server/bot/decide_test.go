package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokertabled/server/engine"
)

func testRng() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestEasyChecksWhenFree(t *testing.T) {
	rng := testRng()
	for i := 0; i < 100; i++ {
		d := Decide(rng, engine.Easy, 0, 1000, 20, 20)
		assert.Equal(t, engine.ActionCheck, d.Action, "easy never opens")
	}
}

func TestEasyCallsSmallAndFoldsBig(t *testing.T) {
	rng := testRng()
	for i := 0; i < 100; i++ {
		d := Decide(rng, engine.Easy, 20, 1000, 40, 20)
		assert.Equal(t, engine.ActionCall, d.Action)

		d = Decide(rng, engine.Easy, 200, 1000, 220, 20)
		assert.Equal(t, engine.ActionFold, d.Action, "easy folds to more than four big blinds")
	}
}

func TestAllInForLessAndBrokeFold(t *testing.T) {
	d := Decide(testRng(), engine.Medium, 500, 300, 500, 20)
	assert.Equal(t, engine.ActionCall, d.Action, "short stack calls for its whole stack")

	d = Decide(testRng(), engine.Medium, 500, 0, 500, 20)
	assert.Equal(t, engine.ActionFold, d.Action)
}

func TestMediumOpensTwoBigBlinds(t *testing.T) {
	rng := testRng()
	var raises, checks int
	for i := 0; i < 200; i++ {
		d := Decide(rng, engine.Medium, 0, 1000, 0, 20)
		switch d.Action {
		case engine.ActionRaise:
			raises++
			assert.Equal(t, 40, d.RaiseTo, "medium opens to exactly 2bb")
		case engine.ActionCheck:
			checks++
		default:
			t.Fatalf("unexpected action %s", d.Action)
		}
	}
	assert.Positive(t, raises)
	assert.Positive(t, checks)
	assert.Greater(t, checks, raises, "medium opens roughly a third of the time")
}

func TestHardOpensTwoOrThreeBigBlinds(t *testing.T) {
	rng := testRng()
	var raises int
	for i := 0; i < 200; i++ {
		d := Decide(rng, engine.Hard, 0, 1000, 0, 20)
		if d.Action == engine.ActionRaise {
			raises++
			assert.Contains(t, []int{40, 60}, d.RaiseTo)
		}
	}
	assert.Greater(t, raises, 80, "hard opens more often than not")
}

func TestHardThreeBetsCheapPrices(t *testing.T) {
	rng := testRng()
	var raises, calls int
	for i := 0; i < 200; i++ {
		d := Decide(rng, engine.Hard, 10, 1000, 20, 20)
		switch d.Action {
		case engine.ActionRaise:
			raises++
			assert.Equal(t, 60, d.RaiseTo, "raise targets current bet plus 2bb")
		case engine.ActionCall:
			calls++
		default:
			t.Fatalf("unexpected action %s", d.Action)
		}
	}
	assert.Positive(t, raises)
	assert.Positive(t, calls)
}

func TestHardSometimesLooksUpBigBets(t *testing.T) {
	rng := testRng()
	var calls, folds int
	for i := 0; i < 200; i++ {
		d := Decide(rng, engine.Hard, 200, 1000, 220, 20)
		switch d.Action {
		case engine.ActionCall:
			calls++
		case engine.ActionFold:
			folds++
		default:
			t.Fatalf("unexpected action %s", d.Action)
		}
	}
	assert.Positive(t, calls)
	assert.Greater(t, folds, calls, "big bets are mostly folded")
}
