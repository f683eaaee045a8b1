package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, InstanceOf, LookupIdent("instanceof"))
	assert.Equal(t, While, LookupIdent("while"))
	assert.Equal(t, Identifier, LookupIdent("While"))
	assert.Equal(t, Identifier, LookupIdent("options"))
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range Keywords() {
		assert.True(t, IsKeyword(LookupIdent(kw)), kw)
	}
	assert.False(t, IsKeyword(Identifier))
	assert.False(t, IsKeyword(AsyncFunction))
}

func TestKeywords(t *testing.T) {
	kws := Keywords()
	assert.Len(t, kws, 10)
	assert.Equal(t, "await", kws[0])
	assert.IsNonDecreasing(t, kws)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "AssignmentOperator", AssignmentOperator.String())
	assert.Equal(t, "FileEnd", FileEnd.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}
