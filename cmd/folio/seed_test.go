package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/folio/internal/content"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestSampleBundlePassesValidation(t *testing.T) {
	require.NoError(t, content.ValidateBundle(sampleBundle()))
}

func TestSampleBundleSurvivesExportImport(t *testing.T) {
	store, err := content.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Import(sampleBundle()))

	exported, err := store.Export()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, content.EncodeBundle(&buf, exported))
	decoded, err := content.DecodeBundle(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(exported, decoded); diff != "" {
		t.Fatalf("bundle changed through yaml (-exported +decoded):\n%s", diff)
	}
}

func TestAdminCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"admin", "projects", "add"},
		{"admin", "personal-info", "nav", "add"},
		{"admin", "tech-stack", "add-tech"},
		{"admin", "links", "toggle"},
		{"seed"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestWriteBundleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, writeBundleFile(path, sampleBundle()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := content.DecodeBundle(f)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleBundle(), decoded, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("written bundle mismatch (-want +got):\n%s", diff)
	}

	require.Error(t, writeBundleFile(filepath.Join(t.TempDir(), "missing", "bundle.yaml"), sampleBundle()))
	if _, err := os.Stat("/dev/full"); err == nil {
		require.Error(t, writeBundleFile("/dev/full", sampleBundle()), "write failures must not be reported as success")
	}
}
