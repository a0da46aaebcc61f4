package scanfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairscan/fairscan/internal/scanfile"
	"github.com/fairscan/fairscan/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scans.yaml", `
- name: asym_knight
  structured:
    tournament:
      games: 10
      wins: 7
  side_table:
    T Elo Ratio: 1.5
  narrative: "flagged over 15 games"
- name: quiet_rook
  narrative:
    - "clean history"
    - "no flags"
`)

	inputs, err := scanfile.Load(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "asym_knight", inputs[0].Name)
	assert.Equal(t, "flagged over 15 games", inputs[0].NarrativeText())
	assert.NotNil(t, inputs[0].Structured["tournament"])
	assert.Equal(t, "clean history; no flags", inputs[1].NarrativeText())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "scans.json", `[
		{"name": "p1", "structured": {"suspicion": {"score": 4.2}}},
		{"name": "p2", "side_table": {"Wins": 3}}
	]`)

	inputs, err := scanfile.Load(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "p1", inputs[0].Name)
	assert.Equal(t, 3.0, inputs[1].SideTable["Wins"])
}

func TestLoadTopLevelNotAList(t *testing.T) {
	path := writeFile(t, "scans.yaml", `name: not-a-list`)

	_, err := scanfile.Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scanfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadRejectsNamelessEntry(t *testing.T) {
	path := writeFile(t, "scans.yaml", `
- name: ok_player
- structured:
    suspicion:
      score: 1
`)

	_, err := scanfile.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
