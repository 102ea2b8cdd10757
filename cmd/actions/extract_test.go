package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rawOutput, useGroq, verbose = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("John will send the report."), 0o600))

	out, err := runCLI(t, "", "extract", path)
	require.NoError(t, err)

	var items []entities.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []entities.ActionItem{{Owner: "John", Task: "send the report"}}, items)
}

func TestExtractCommand_Stdin(t *testing.T) {
	out, err := runCLI(t, "Task:   ship   it", "extract", "-")
	require.NoError(t, err)

	var items []entities.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Equal(t, []entities.ActionItem{{Owner: entities.Unassigned, Task: "ship it"}}, items)
}

func TestExtractCommand_Raw(t *testing.T) {
	out, err := runCLI(t, "Task:   ship   it", "extract", "--raw")
	require.NoError(t, err)

	var items []entities.ActionItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ship   it", items[0].Task)
}

func TestExtractCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "", "extract", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
