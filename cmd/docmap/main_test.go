package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGetCommand(t *testing.T) {
	file := writeFile(t, "doc.json", `{"user":{"name":"Alice","tags":["a","b"]}}`)

	out, err := runCLI(t, "get", "-f", file, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\"\n", out)

	out, err = runCLI(t, "get", "-f", file, "user.tags.1")
	require.NoError(t, err)
	assert.Equal(t, "\"b\"\n", out)

	// Fallback chain: first match wins.
	out, err = runCLI(t, "get", "-f", file, "missing", "user.name")
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\"\n", out)

	_, err = runCLI(t, "get", "-f", file, "missing")
	assert.Error(t, err)
}

func TestSetCommand(t *testing.T) {
	file := writeFile(t, "doc.json", `{"items":[{"name":"old"}]}`)

	_, err := runCLI(t, "set", "-f", file, "--index-mode", "explicit", "items.0.name", `"new"`)
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"name":"new"}]}`, string(data))

	// Plain word values that are not valid JSON stay strings.
	_, err = runCLI(t, "set", "-f", file, "owner", "fred")
	require.NoError(t, err)
	data, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"name":"new"}],"owner":"fred"}`, string(data))
}

func TestMapCommand(t *testing.T) {
	src := writeFile(t, "src.json", `{"user":{"id":"hans"}}`)
	dst := writeFile(t, "dst.json", `{}`)

	_, err := runCLI(t, "map", "-f", src, "-t", dst, "user.id", "owner.id")
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":{"id":"hans"}}`, string(data))
}

func TestYAMLMode(t *testing.T) {
	file := writeFile(t, "doc.yaml", "user:\n  name: Alice\n")

	out, err := runCLI(t, "get", "--yaml", "-f", file, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "\"Alice\"\n", out)

	_, err = runCLI(t, "set", "--yaml", "-f", file, "user.role", "admin")
	require.NoError(t, err)

	out, err = runCLI(t, "get", "--yaml", "-f", file, "user.role")
	require.NoError(t, err)
	assert.Equal(t, "\"admin\"\n", out)
}

func TestBadIndexMode(t *testing.T) {
	file := writeFile(t, "doc.json", `{}`)

	_, err := runCLI(t, "get", "-f", file, "--index-mode", "bogus", "x")
	assert.Error(t, err)
}
