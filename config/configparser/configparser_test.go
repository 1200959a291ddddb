package configparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Directive names used only by this test file, registered once via
// init so they never collide with a real package's registrations.
var (
	gotModelAddr    uint16
	gotModelOptions []Option
	gotOptionAddr   uint16
	gotOptionValue  string
	gotListAddr     uint16
	gotListValue    string
	gotListOptions  []Option
	switchFired     bool
)

func init() {
	RegisterModel("TESTMODEL", TypeModel, func(addr uint16, _ string, opts []Option) error {
		gotModelAddr = addr
		gotModelOptions = opts
		return nil
	})
	RegisterOption("TESTOPT", func(addr uint16, value string, _ []Option) error {
		gotOptionAddr = addr
		gotOptionValue = value
		return nil
	})
	RegisterModel("TESTLIST", TypeOptions, func(addr uint16, value string, opts []Option) error {
		gotListAddr = addr
		gotListValue = value
		gotListOptions = opts
		return nil
	})
	RegisterSwitch("TESTSWITCH", func(uint16, string, []Option) error {
		switchFired = true
		return nil
	})
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.cfg")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigFileDispatchesModelDirective(t *testing.T) {
	gotModelAddr, gotModelOptions = 0, nil
	path := writeConfig(t, "TESTMODEL 1f foo,bar=baz\n")
	require.NoError(t, LoadConfigFile(path))

	assert.Equal(t, uint16(0x1f), gotModelAddr)
	require.Len(t, gotModelOptions, 2)
	assert.Equal(t, "foo", gotModelOptions[0].Name)
	assert.Equal(t, "bar", gotModelOptions[1].Name)
	assert.Equal(t, "baz", gotModelOptions[1].EqualOpt)
}

func TestLoadConfigFileDispatchesOptionDirective(t *testing.T) {
	path := writeConfig(t, "TESTOPT /path/to/rom.bin\n")
	require.NoError(t, LoadConfigFile(path))

	assert.Equal(t, NoDev, gotOptionAddr)
	assert.Equal(t, "/path/to/rom.bin", gotOptionValue)
}

func TestLoadConfigFileDispatchesSwitchDirective(t *testing.T) {
	switchFired = false
	path := writeConfig(t, "TESTSWITCH\n")
	require.NoError(t, LoadConfigFile(path))
	assert.True(t, switchFired)
}

func TestLoadConfigFileSkipsCommentsAndBlankLines(t *testing.T) {
	switchFired = false
	path := writeConfig(t, "# a full-line comment\n\nTESTSWITCH # trailing comment\n")
	require.NoError(t, LoadConfigFile(path))
	assert.True(t, switchFired)
}

func TestLoadConfigFileRejectsUnknownDirective(t *testing.T) {
	path := writeConfig(t, "NOSUCHDIRECTIVE 0\n")
	assert.Error(t, LoadConfigFile(path))
}

func TestLoadConfigFileRejectsModelDirectiveWithoutAddress(t *testing.T) {
	path := writeConfig(t, "TESTMODEL\n")
	assert.Error(t, LoadConfigFile(path))
}

func TestLoadConfigFileRejectsMissingFile(t *testing.T) {
	assert.Error(t, LoadConfigFile(filepath.Join(t.TempDir(), "missing.cfg")))
}

func TestLoadConfigFileParsesListValuedOption(t *testing.T) {
	path := writeConfig(t, "TESTLIST xyz one,two=2,three\n")
	require.NoError(t, LoadConfigFile(path))

	assert.Equal(t, NoDev, gotListAddr)
	assert.Equal(t, "xyz", gotListValue)
	require.Len(t, gotListOptions, 3)
	assert.Equal(t, "one", gotListOptions[0].Name)
	assert.Equal(t, "two", gotListOptions[1].Name)
	assert.Equal(t, "2", gotListOptions[1].EqualOpt)
	assert.Equal(t, "three", gotListOptions[2].Name)
}
