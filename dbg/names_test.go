package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	Reset()
	a, b := new(int), new(int)

	nameA := Name(a)
	assert.NotEmpty(t, nameA)
	assert.Equal(t, nameA, Name(a), "names are memoized")
	assert.NotEqual(t, nameA, Name(b))

	var nilPtr *int
	assert.Equal(t, "Ø", Name(nilPtr))

	assert.Panics(t, func() { Name(3) })
}

func TestReset(t *testing.T) {
	Reset()
	a := new(int)
	Name(a)
	Reset()
	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, memo)
	assert.Empty(t, used)
}
