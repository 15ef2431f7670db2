package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"notes.txt", true},
		{"notes.md", true},
		{"NOTES.MD", true},
		{"notes.pdf", false},
		{"notes", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSupported(tt.path), tt.path)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "cells.md", []byte("# Cells\nCells are the basic unit of life."))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "# Cells\nCells are the basic unit of life.", text)
}

func TestLoad_StripsBOM(t *testing.T) {
	path := writeFile(t, "bom.txt", []byte("\ufeffHello there, student."))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello there, student.", text)
}

func TestLoad_Unsupported(t *testing.T) {
	path := writeFile(t, "notes.pdf", []byte("%PDF"))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	var srcErr *Error
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, path, srcErr.Path)
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte{0xff, 0xfe, 0xfd})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotUTF8)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("first version of the notes"))

	loaded := make(chan string, 8)
	w, err := NewWatcher(path, func(text string, err error) {
		if err == nil {
			loaded <- text
		}
	}, nil)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(path, []byte("second version of the notes"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case text := <-loaded:
			// A write may be observed before the new content lands.
			if text == "second version of the notes" {
				cancel()
				select {
				case err := <-done:
					assert.ErrorIs(t, err, context.Canceled)
				case <-time.After(time.Second):
					t.Fatal("watcher did not stop after cancel")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
