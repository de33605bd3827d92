package main

import (
	"io/fs"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jwebster45206/tanelorn/pkg/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tables copies the shipped content into a MapFS, applying edits to the
// named files.
func tables(t *testing.T, edits map[string]func(string) string) fstest.MapFS {
	t.Helper()
	src := os.DirFS("../../" + defaultDir)
	m := fstest.MapFS{}
	for _, name := range content.Files {
		data, err := fs.ReadFile(src, name)
		require.NoError(t, err)
		if edit, ok := edits[name]; ok {
			data = []byte(edit(string(data)))
		}
		m[name] = &fstest.MapFile{Data: data}
	}
	return m
}

func TestValidateFS_ShippedContent(t *testing.T) {
	v := &ContentValidator{}
	assert.NoError(t, v.validateFS(tables(t, nil)))
}

func TestValidateFS_BadID(t *testing.T) {
	v := &ContentValidator{}
	err := v.validateFS(tables(t, map[string]func(string) string{
		"equipment.json": func(s string) string {
			return strings.Replace(s, `"rusty-sword"`, `"Rusty_Sword"`, 1)
		},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weapon ID 'Rusty_Sword' should be lowercase kebab-case")
}

func TestValidateFS_UnknownField(t *testing.T) {
	v := &ContentValidator{}
	err := v.validateFS(tables(t, map[string]func(string) string{
		"castles.json": func(s string) string {
			return strings.Replace(s, `"turn_cost"`, `"turns"`, 1)
		},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "castles.json")
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"whispering-forest", true},
		{"a", true},
		{"iron-gate2", true},
		{"Iron-Gate", false},
		{"iron_gate", false},
		{"-gate", false},
		{"gate-", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isValidID(tt.id); got != tt.want {
			t.Errorf("isValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
