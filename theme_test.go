package fdicons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeIndex(t *testing.T) {
	index, err := ParseThemeIndex([]byte(`[Icon Theme]
Name=Arc
Comment=A flat theme
Inherits=Moka,Adwaita,hicolor
Directories=16x16/apps,24x24/apps,scalable/apps

[16x16/apps]
Size=16
Type=Fixed

[24x24/apps]
Size=24

[scalable/apps]
Size=128
Type=Scalable
MinSize=8
MaxSize=512
`))
	require.NoError(t, err)

	assert.Equal(t, "Arc", index.Name)
	assert.Equal(t, "A flat theme", index.Comment)
	// hicolor is dropped from the parent list, it is always searched last.
	assert.Equal(t, []string{"Moka", "Adwaita"}, index.Inherits)

	require.Len(t, index.Directories, 3)

	fixed := index.Directories[0]
	assert.Equal(t, "16x16/apps", fixed.Name)
	assert.Equal(t, Fixed, fixed.Type)
	assert.Equal(t, 16, fixed.Size)

	// All optional keys missing: defaults apply.
	def := index.Directories[1]
	assert.Equal(t, Threshold, def.Type)
	assert.Equal(t, 1, def.Scale)
	assert.Equal(t, 24, def.MinSize)
	assert.Equal(t, 24, def.MaxSize)
	assert.Equal(t, 2, def.Threshold)

	scalable := index.Directories[2]
	assert.Equal(t, Scalable, scalable.Type)
	assert.Equal(t, 8, scalable.MinSize)
	assert.Equal(t, 512, scalable.MaxSize)
}

func TestParseThemeIndexDropsUnusableDirectories(t *testing.T) {
	index, err := ParseThemeIndex([]byte(`[Icon Theme]
Name=Holey
Directories=good,no-size,no-section,bad-size

[good]
Size=32

[no-size]
Type=Fixed

[bad-size]
Size=many
`))
	require.NoError(t, err)

	require.Len(t, index.Directories, 1)
	assert.Equal(t, "good", index.Directories[0].Name)
}

func TestParseThemeIndexBadOptionalFieldsUseDefaults(t *testing.T) {
	index, err := ParseThemeIndex([]byte(`[Icon Theme]
Name=Sloppy
Directories=24x24/apps

[24x24/apps]
Size=24
Scale=huge
Threshold=narrow
MaxSize=big
Type=Hexagonal
`))
	require.NoError(t, err)

	require.Len(t, index.Directories, 1)
	dir := index.Directories[0]
	assert.Equal(t, 1, dir.Scale)
	assert.Equal(t, 2, dir.Threshold)
	assert.Equal(t, 24, dir.MaxSize)
	assert.Equal(t, Threshold, dir.Type)
}

func TestParseThemeIndexScaledDirectoriesAreSupplementary(t *testing.T) {
	index, err := ParseThemeIndex([]byte(`[Icon Theme]
Name=Scaled
Directories=24x24/apps
ScaledDirectories=24x24/apps,24x24@2/apps

[24x24/apps]
Size=24

[24x24@2/apps]
Size=24
Scale=2
`))
	require.NoError(t, err)

	require.Len(t, index.Directories, 2)
	assert.Equal(t, "24x24/apps", index.Directories[0].Name)
	assert.Equal(t, "24x24@2/apps", index.Directories[1].Name)
	assert.Equal(t, 2, index.Directories[1].Scale)
}

func TestParseThemeIndexToleratesRealWorldFiles(t *testing.T) {
	index, err := ParseThemeIndex([]byte(`# header comment
[Icon Theme]
Name = Spacey
; another comment
FancyUnknownKey=whatever
Directories=24x24/apps
this line is not a key value pair

[24x24/apps]
Size = 24
`))
	require.NoError(t, err)

	assert.Equal(t, "Spacey", index.Name)
	require.Len(t, index.Directories, 1)
	assert.Equal(t, 24, index.Directories[0].Size)
}

func TestParseThemeIndexRequiresIconThemeSection(t *testing.T) {
	_, err := ParseThemeIndex([]byte(`[Something Else]
Name=nope
`))
	require.Error(t, err)
}
