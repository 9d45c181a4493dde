package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownTemplates(t *testing.T) {
	for _, id := range All() {
		assert.Equal(t, id, Resolve(string(id)))
	}
}

func TestResolve_FallbackToClassic(t *testing.T) {
	tests := []string{"", "unknown", "CLASSIC", "modern ", "slate2"}
	for _, id := range tests {
		assert.Equal(t, Classic, Resolve(id), "id %q should fall back to classic", id)
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("elegant"))
	assert.False(t, IsKnown(""))
	assert.False(t, IsKnown("classic2"))
}

func TestAll_CountAndOrder(t *testing.T) {
	all := All()
	assert.Len(t, all, 7)
	assert.Equal(t, Classic, all[0])
	assert.Equal(t, Slate, all[6])
}
