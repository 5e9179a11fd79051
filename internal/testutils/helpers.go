// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// WriteFlows writes each file (name -> content) into dir.
func WriteFlows(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644), "write %s", name)
	}
}

// FlowsDir returns a fresh directory holding files, ready for a flow loader.
func FlowsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFlows(t, dir, files)
	return dir
}

// BridgeOfDeath is a complete flow definition used across tests.
const BridgeOfDeath = `---
title: The Bridge of Death
description: Answer me these questions three
start_page_content_id: 8d1a6b3c-0000-4000-8000-000000000001
flow_content_id: 8d1a6b3c-0000-4000-8000-000000000002
start_button_text: Start now
hidden_search_terms:
  - bridge
  - questions
external_related_links:
  - title: Monty Python
    url: https://example.com/monty
nodes:
  - slug: what-is-your-name
    title: What is your name?
    content_id: 8d1a6b3c-0000-4000-8000-000000000003
  - what-is-your-quest
  - slug: what-is-your-favourite-colour
    title: What is your favourite colour?
    body: Blue. No, yellow!
---
Stop. Who would cross the Bridge of Death must answer me these questions three.
`
