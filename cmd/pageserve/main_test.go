package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/pagesearch"
	main "github.com/fwojciec/pagesearch/cmd/pageserve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "pageserve")
	assert.Contains(t, stdout.String(), "config")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_DBRequiresCorpusName(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--db", "informe.db"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, pagesearch.EINVALID, pagesearch.ErrorCode(err))
	assert.Contains(t, err.Error(), "corpus name")
}

func TestMain_Run_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pageserve.yml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  type: carrier-pigeon\n"), 0o644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", path}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestMain_Run_ServesUntilCanceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	corpusPath := filepath.Join(dir, "parsed_strategy.json")
	require.NoError(t, os.WriteFile(corpusPath, []byte(`{
		"resumen_ejecutivo": {"title": "Resumen Ejecutivo", "content": "La publicidad DOOH crece."}
	}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(ctx, []string{"--corpus", corpusPath, "--addr", "127.0.0.1:0"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "starting server")
}
