package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/document-lock/internal/app"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"
)

// memoryOpener hands every command the same in-process application
func memoryOpener(t *testing.T) opener {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.StoreDriverMemory},
		Lock: config.LockConfig{
			AcquireMaxAttempts:        3,
			AcquireRetryIntervalMs:    1,
			AcquireMaxRetryIntervalMs: 5,
			AcquireTimeoutMs:          2000,
			ReleaseTimeoutMs:          1000,
		},
	}
	a, err := app.New(context.Background(), cfg, logger.NewNoopLogger(), app.Options{})
	require.NoError(t, err)

	return func(context.Context, *globalFlags) (*app.App, error) { return a, nil }
}

func run(t *testing.T, open opener, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(open)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestLockctl_AcquireListRelease(t *testing.T) {
	open := memoryOpener(t)

	out, _, err := run(t, open, "acquire", "--holder", "alice", "--reason", "editing",
		"description:DOC-1", "cultural_object:OBJ-7")
	require.NoError(t, err)
	assert.Contains(t, out, "Holder:")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "description:DOC-1")

	out, _, err = run(t, open, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "1 active")

	out, _, err = run(t, open, "list", "--holder", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "0 active")

	_, stderr, err := run(t, open, "acquire", "--holder", "bob", "description:DOC-1")
	require.Error(t, err)
	assert.Contains(t, stderr, "documents are locked by:")
	assert.Contains(t, stderr, "alice")

	out, _, err = run(t, open, "conflicts", "--holder", "bob", "description:DOC-1")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	out, _, err = run(t, open, "conflicts", "--holder", "alice", "description:DOC-1")
	require.NoError(t, err)
	assert.Contains(t, out, "no conflicts")

	a, err := open(context.Background(), nil)
	require.NoError(t, err)
	locks, err := a.Coordinator.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, locks, 1)

	out, _, err = run(t, open, "show", locks[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, locks[0].ID)

	out, _, err = run(t, open, "release", locks[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "released "+locks[0].ID)

	_, stderr, err = run(t, open, "release", locks[0].ID)
	require.Error(t, err)
	assert.Contains(t, stderr, "could not release")
}

func TestLockctl_ArgumentValidation(t *testing.T) {
	open := memoryOpener(t)

	_, _, err := run(t, open, "acquire", "description:DOC-1")
	assert.ErrorContains(t, err, "holder")

	_, _, err = run(t, open, "acquire", "--holder", "alice", "DOC-1")
	assert.ErrorContains(t, err, "expected type:id")

	_, _, err = run(t, open, "conflicts", "description:DOC-1")
	assert.ErrorContains(t, err, "exactly one of --holder or --transaction")

	_, _, err = run(t, open, "conflicts", "--holder", "a", "--transaction", "tx", "description:DOC-1")
	assert.ErrorContains(t, err, "exactly one of --holder or --transaction")

	_, _, err = run(t, open, "show", "missing")
	assert.Error(t, err)
}
