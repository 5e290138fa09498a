package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePalette(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Palette{Name: "Demo", Colors: []string{"FF0000"}}))
	require.NoError(t, Validate(Palette{Name: "Empty", Colors: []string{}}))

	require.Error(t, Validate(Palette{Colors: []string{"FF0000"}}))
	require.Error(t, Validate(Palette{Name: "   ", Colors: []string{"FF0000"}}))
	require.Error(t, Validate(Palette{Name: "Demo"}))
}

func TestPaletteStyleNameIsOneBased(t *testing.T) {
	t.Parallel()

	p := Palette{Name: "Demo", Colors: []string{"FF0000", "00FF00"}}
	assert.Equal(t, "Demo/1", p.StyleName(0))
	assert.Equal(t, "Demo/2", p.StyleName(1))
	assert.Equal(t, 2, p.Len())
}

func TestPaletteCloneIsIndependent(t *testing.T) {
	t.Parallel()

	p := Palette{Name: "Demo", Colors: []string{"FF0000"}}
	c := p.Clone()
	c.Colors[0] = "000000"
	assert.Equal(t, "FF0000", p.Colors[0])
	assert.Equal(t, p.Name, c.Name)
}
