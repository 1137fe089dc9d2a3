package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "lobby", "日本語", "emoji 🎉 pair", "tab\tand\nnewline"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			before := Outstanding()
			p := AllocString(in)
			require.NotZero(t, p)
			assert.Equal(t, before+1, Outstanding())
			assert.Equal(t, in, ReadString(p))
			assert.Equal(t, in, TakeString(p))
			assert.Equal(t, before, Outstanding())
		})
	}
}

func TestStringLengthPrefix(t *testing.T) {
	p := AllocString("日本語")
	defer FreeString(p)

	assert.Equal(t, uint32(6), Load[uint32](p-4), "byte length excludes the terminator")
	assert.Equal(t, uint16(0), Load[uint16](p+6), "terminated by a NUL unit")
}

func TestReadStringNull(t *testing.T) {
	assert.Equal(t, "", ReadString(0))
	assert.Equal(t, "", TakeString(0))
}

func TestFreeStringIgnoresNullAndRepeats(t *testing.T) {
	before := Outstanding()
	FreeString(0)
	p := AllocString("x")
	FreeString(p)
	if !isWindows {
		FreeString(p)
	}
	assert.Equal(t, before, Outstanding())
}
