package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContentFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

const validFile = `---
title: "Salagdoong Beach"
description: "Cliff jumping and clear water near Maria."
keywords: [salagdoong, beach, maria]
category: beaches
tags: [beaches]
publishDate: "2024-02-01"
heroImage:
  src: /images/salagdoong.jpg
  alt: Salagdoong cliff jump platform
---
Body text.
`

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "salagdoong-beach.md", validFile)
	writeContentFile(t, dir, "notes.txt", "ignored, not markdown")

	articles, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "salagdoong-beach", a.Slug)
	assert.Equal(t, "Salagdoong Beach", a.Title)
	assert.Equal(t, DefaultAuthorName, a.Author.Name)
	assert.Equal(t, "Body text.\n", a.Body)
}

func TestLoadDirFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "good.md", validFile)
	invalid := `---
title: "Broken"
description: "Missing most required fields."
---
body
`
	writeContentFile(t, dir, "broken.md", invalid)

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md", "error must name the offending file")
	assert.Contains(t, err.Error(), "category", "error must name the offending field")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}
