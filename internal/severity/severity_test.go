package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	// Ranks follow Information < Low < Medium < High
	assert.Equal(t, 0, Information.Rank())
	assert.Equal(t, 1, Low.Rank())
	assert.Equal(t, 2, Medium.Rank())
	assert.Equal(t, 3, High.Rank())

	for i := 1; i < len(Levels); i++ {
		assert.Less(t, Levels[i-1].Rank(), Levels[i].Rank())
	}
}

func TestLevelMeets(t *testing.T) {
	// Every level meets itself
	for _, level := range Levels {
		assert.True(t, level.Meets(level))
	}

	assert.True(t, Medium.Meets(Low))
	assert.True(t, High.Meets(Information))
	assert.False(t, Low.Meets(Medium))
	assert.False(t, Information.Meets(High))

	// Ordinal comparison, not lexical: "Information" > "High" as a
	// string but ranks below it.
	assert.False(t, Information.Meets(High))
	assert.True(t, High.Meets(Information))
}

func TestParse(t *testing.T) {
	level, err := Parse("Medium")
	assert.NoError(t, err)
	assert.Equal(t, Medium, level)

	_, err = Parse("Critical")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Critical")

	// Exact-case matching only
	_, err = Parse("low")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}
