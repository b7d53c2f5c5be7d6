package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	var s Selection
	assert.Equal(t, 0, s.Len())
	assert.False(t, IsPaneOpen(s))

	assert.True(t, s.Toggle(4))
	assert.True(t, s.Contains(4))
	assert.True(t, IsPaneOpen(s))
	id, ok := s.Single()
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	assert.True(t, s.Toggle(1))
	assert.False(t, IsPaneOpen(s))
	assert.Equal(t, []int{1, 4}, s.IDs())
	_, ok = s.Single()
	assert.False(t, ok)

	assert.False(t, s.Toggle(4))
	assert.False(t, s.Contains(4))
	assert.True(t, IsPaneOpen(s))

	assert.False(t, s.Toggle(1))
	assert.Empty(t, s.IDs())
	assert.False(t, IsPaneOpen(s))
}
