package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "fishstats", cmd.Use)

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "load")
}

func TestLoadCmd(t *testing.T) {
	dir := t.TempDir()
	landings := filepath.Join(dir, "BD_desembarque")
	require.NoError(t, os.MkdirAll(landings, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(landings, "BD_desembarque.csv"), []byte(
		"id;ano;region;especie;toneladas\n1;2020;Los Lagos;JUREL;1500\n2;2020;Biobio;JUREL;3\n"), 0o644))

	cmd := getRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"load", "--data", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "desembarques")
	assert.Contains(t, out.String(), "1 records loaded")
}

func TestLoadCmd_BadConfig(t *testing.T) {
	cmd := getRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"load", "--config", filepath.Join(t.TempDir(), "missing.yaml")})

	assert.Error(t, cmd.Execute())
}
