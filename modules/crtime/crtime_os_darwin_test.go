//go:build darwin

package crtime

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/hypernetix/crtime/libs/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNtfsCreationTimeMissingAttribute(t *testing.T) {
	// Ordinary local filesystems never carry the ntfs-3g attribute, so the
	// strategy must fail with ErrAttributeRead, not return a zero instant
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "no_xattr.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	_, errx := ntfsCreationTime(testFile)
	require.NotNil(t, errx)

	var target *errorx.ErrAttributeRead
	assert.True(t, errors.As(error(errx), &target), "expected ErrAttributeRead, got %T", errx)
}

func TestNtfsCreationTimeNonexistentPath(t *testing.T) {
	_, errx := ntfsCreationTime(filepath.Join(t.TempDir(), "gone"))
	require.NotNil(t, errx)

	var target *errorx.ErrAttributeRead
	assert.True(t, errors.As(error(errx), &target))
}

func TestFat32CreationTimePassthrough(t *testing.T) {
	// The strategy is a pure passthrough of the status-change time field;
	// verify against a direct stat of the same path
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "passthrough.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	extracted, errx := fat32CreationTime(testFile)
	require.Nil(t, errx)

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	st, ok := info.Sys().(*syscall.Stat_t)
	require.True(t, ok)

	expected := time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
	assert.True(t, extracted.Equal(expected),
		"extracted %v, direct stat reports %v", extracted, expected)
}

func TestFat32CreationTimeIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "twice.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))

	first, errx := fat32CreationTime(testFile)
	require.Nil(t, errx)

	second, errx := fat32CreationTime(testFile)
	require.Nil(t, errx)

	assert.True(t, first.Equal(second))
}

func TestFat32CreationTimeMissingPath(t *testing.T) {
	_, errx := fat32CreationTime(filepath.Join(t.TempDir(), "gone"))
	require.NotNil(t, errx)

	var target *errorx.ErrMetadataRead
	assert.True(t, errors.As(error(errx), &target), "expected ErrMetadataRead, got %T", errx)
}
