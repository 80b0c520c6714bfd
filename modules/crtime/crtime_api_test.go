package crtime

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hypernetix/crtime/libs/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestPathEmpty(t *testing.T) {
	errx := validateRequestPath("")
	require.NotNil(t, errx)

	var target *errorx.ErrBadRequest
	assert.True(t, errors.As(error(errx), &target), "expected ErrBadRequest, got %T", errx)
	assert.Equal(t, 400, errx.GetStatus())
}

func TestValidateRequestPathRelative(t *testing.T) {
	errx := validateRequestPath("relative/file.txt")
	require.NotNil(t, errx)

	var target *errorx.ErrBadRequest
	assert.True(t, errors.As(error(errx), &target), "expected ErrBadRequest, got %T", errx)
}

func TestValidateRequestPathMissing(t *testing.T) {
	errx := validateRequestPath(filepath.Join(t.TempDir(), "gone"))
	require.NotNil(t, errx)

	var target *errorx.ErrNotFound
	assert.True(t, errors.As(error(errx), &target), "expected ErrNotFound, got %T", errx)
	assert.Equal(t, 404, errx.GetStatus())
}

func TestValidateRequestPathExisting(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "present.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	assert.Nil(t, validateRequestPath(testFile))
	assert.Nil(t, validateRequestPath(tempDir))
}
