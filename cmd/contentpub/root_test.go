package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/contentpub"
	"github.com/aretw0/contentpub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "contentpub version "+strings.TrimSpace(contentpub.Version)+"\n", out)
}

func TestPublishAnswerCommand_DryRun(t *testing.T) {
	out, err := execute(t, "publish-answer", "/help",
		"--dry-run", "--log-level", "error",
		"--publishing-app", "publisher",
		"--title", "Help",
		"--content", "Some help",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "/help published as ")
}

func TestPublishCommand_DryRun(t *testing.T) {
	dir := testutils.FlowsDir(t, map[string]string{"bridge-of-death.md": testutils.BridgeOfDeath})

	out, err := execute(t, "publish", "--dir", dir, "--dry-run", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "published")
}

func TestPreviewCommand_Raw(t *testing.T) {
	dir := testutils.FlowsDir(t, map[string]string{"bridge-of-death.md": testutils.BridgeOfDeath})

	out, err := execute(t, "preview", "--dir", dir, "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "/bridge-of-death")
	assert.Contains(t, out, "8d1a6b3c-0000-4000-8000-000000000003")
	assert.Contains(t, out, "(generated on publish)")
}

func TestUnpublishCommand_RequiresID(t *testing.T) {
	_, err := execute(t, "unpublish")
	assert.Error(t, err)
}
