package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, Original, c.PeripheralName)
	assert.Equal(t, UpperHex8, c.PeripheralBaseAddress)
	assert.Equal(t, UpperHex, c.RegisterAddressOffset)
	assert.Equal(t, SortNone, c.RegisterClusterSorting)
	assert.Equal(t, PartitionNone, c.RegistersOrClustersFirst)
	assert.Equal(t, BitRangePreserve, c.FieldBitRange)

	// Callers get their own copy.
	c.PeripheralName = Snake
	assert.Equal(t, Original, Default().PeripheralName)
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte(`
peripheralName: constant
registerClusterSorting: offsetReversed
registersOrClustersFirst: clusters
fieldBitRange: msbLsb
`))
	require.NoError(t, err)

	assert.Equal(t, Constant, c.PeripheralName)
	assert.Equal(t, SortOffsetReversed, c.RegisterClusterSorting)
	assert.Equal(t, ClustersFirst, c.RegistersOrClustersFirst)
	assert.Equal(t, BitRangeMsbLsb, c.FieldBitRange)
	assert.Equal(t, UpperHex8, c.PeripheralBaseAddress)
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("peripheralName: kebab\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	_, err = Parse([]byte("noSuchKey: dec\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registerName: pascal\nregisterSize: lowerHex\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Pascal, c.RegisterName)
	assert.Equal(t, LowerHex, c.RegisterSize)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatNames(t *testing.T) {
	for f, name := range identifierFormatNames {
		assert.Equal(t, name, f.String())
		got, ok := fromName(identifierFormatNames, name)
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	for f, name := range numberFormatNames {
		got, ok := fromName(numberFormatNames, name)
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "Sorting(9)", Sorting(9).String())
}
