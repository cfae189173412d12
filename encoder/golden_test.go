package encoder

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

// TestGolden runs every testdata/*.txtar archive. Each archive holds a
// config.yaml overlay, a peripherals.yaml model and the expected want.xml.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		file := file
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			require.NoError(t, err)

			sections := map[string][]byte{}
			for _, f := range archive.Files {
				sections[f.Name] = f.Data
			}
			require.Contains(t, sections, "peripherals.yaml")
			require.Contains(t, sections, "want.xml")

			cfg, err := config.Parse(sections["config.yaml"])
			require.NoError(t, err)
			peripherals, err := svd.LoadPeripherals(sections["peripherals.yaml"])
			require.NoError(t, err)

			elems, err := EncodePeripherals(context.Background(), peripherals, cfg)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, NewPeripherals(elems).WriteXML(&buf, "  "))
			assert.Equal(t, strings.TrimSpace(string(sections["want.xml"])), buf.String())
		})
	}
}
