package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecAnnotation_ExtractsTimeTag(t *testing.T) {
	s := "a nice move [%clk 0:05:23]"
	assert.Equal(t, "0:05:23", timeAnnotationOf(s))
	assert.Equal(t, "a nice move", textAnnotation(s))
}

func TestWithEMT_ReplacesExistingTag(t *testing.T) {
	s := withEMT("thinking hard [%emt 0:01:00]", 0, 2, 30)
	assert.Equal(t, "thinking hard [%emt 0:02:30]", s)
}

func TestWithSquareAnnotation_RemovesOnEmpty(t *testing.T) {
	s := withSquareAnnotation("note[%csl Ge4]", "")
	assert.Equal(t, "note", s)
}

func TestAppendColorCode_AddsThenRemoves(t *testing.T) {
	s := appendColorCode("", "e4", 'G')
	assert.Equal(t, "Ge4", s)

	s2 := appendColorCode(s, "d5", 'R')
	assert.Equal(t, "Ge4,Rd5", s2)

	s3 := appendColorCode(s2, "e4", 'G')
	assert.Equal(t, "Rd5", s3)
}
