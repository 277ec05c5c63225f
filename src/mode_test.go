package sstv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeTable(t *testing.T) {
	assert.Len(t, modes, 13)

	var vis = map[string]byte{
		"Robot8BW":  0x02,
		"Robot24BW": 0x0A,
		"Robot36":   0x08,
		"MartinM1":  0x2C,
		"MartinM2":  0x28,
		"ScottieS1": 0x3C,
		"ScottieS2": 0x38,
		"PD90":      0x63,
		"PD120":     0x5F,
		"PD160":     0x62,
		"PD180":     0x60,
		"PD240":     0x61,
		"PD290":     0x5E,
	}
	for name, code := range vis {
		var m, err = ModeByName(name)
		require.NoError(t, err)
		assert.Equal(t, code, m.VISCode, name)
		assert.Positive(t, m.Width, name)
		assert.Positive(t, m.Height, name)
	}
}

func TestModeByNameCaseInsensitive(t *testing.T) {
	var m, err = ModeByName("martinm1")
	require.NoError(t, err)
	assert.Equal(t, "MartinM1", m.Name)

	m, err = ModeByName("ROBOT36")
	require.NoError(t, err)
	assert.Equal(t, "Robot36", m.Name)
}

func TestModeByNameUnknown(t *testing.T) {
	var _, err = ModeByName("SC2-180")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SC2-180")
}

func TestModeLines(t *testing.T) {
	var pd120, _ = ModeByName("PD120")
	assert.Equal(t, 248, pd120.Lines())

	var m1, _ = ModeByName("MartinM1")
	assert.Equal(t, 256, m1.Lines())
}

func TestScottieLineLevelSyncIsZero(t *testing.T) {
	// The 9 ms pulse lives in SyncBeforeRedMs and is emitted inside
	// the body; the line-level value from the Martin lineage is dead.
	for _, name := range []string{"ScottieS1", "ScottieS2"} {
		var m, err = ModeByName(name)
		require.NoError(t, err)
		assert.Zero(t, m.SyncMs, name)
		assert.Equal(t, 9.0, m.SyncBeforeRedMs, name)
	}
}

func TestGrayscale(t *testing.T) {
	var r8, _ = ModeByName("Robot8BW")
	assert.True(t, r8.Grayscale())

	var s1, _ = ModeByName("ScottieS1")
	assert.False(t, s1.Grayscale())
}
