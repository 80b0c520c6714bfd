package errorx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorx(t *testing.T) {
	msg := "test error message"
	err := NewErrorx(msg)

	assert.Equal(t, msg, err.Error())

	humaErr := err.HumaError()
	assert.Equal(t, 500, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())
}

func TestNewErrClassification(t *testing.T) {
	msg := "mount table query failed"
	err := NewErrClassification(msg)

	assert.Equal(t, msg, err.Error())
	assert.Equal(t, 422, err.GetStatus())

	humaErr := err.HumaError()
	assert.Equal(t, 422, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())

	var target *ErrClassification
	assert.True(t, errors.As(error(err), &target))
}

func TestNewErrAttributeRead(t *testing.T) {
	msg := "xattr missing"
	err := NewErrAttributeRead(msg)

	assert.Equal(t, msg, err.Error())
	assert.Equal(t, 500, err.GetStatus())

	humaErr := err.HumaError()
	assert.Equal(t, 500, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())

	var target *ErrAttributeRead
	assert.True(t, errors.As(error(err), &target))
}

func TestNewErrMetadataRead(t *testing.T) {
	msg := "stat failed"
	err := NewErrMetadataRead(msg)

	assert.Equal(t, msg, err.Error())
	assert.Equal(t, 500, err.GetStatus())

	var target *ErrMetadataRead
	assert.True(t, errors.As(error(err), &target))
}

func TestNewErrBadRequest(t *testing.T) {
	msg := "bad request"
	err := NewErrBadRequest(msg)

	assert.Equal(t, msg, err.Error())

	humaErr := err.HumaError()
	assert.Equal(t, 400, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())
}

func TestNewErrNotFound(t *testing.T) {
	msg := "resource not found"
	err := NewErrNotFound(msg)

	assert.Equal(t, msg, err.Error())

	humaErr := err.HumaError()
	assert.Equal(t, 404, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())
}

func TestNewErrNotImplemented(t *testing.T) {
	msg := "not supported on this platform"
	err := NewErrNotImplemented(msg)

	assert.Equal(t, msg, err.Error())

	humaErr := err.HumaError()
	assert.Equal(t, 501, humaErr.GetStatus())
	assert.Equal(t, msg, humaErr.Error())
}

func TestErrorKindsAreDistinct(t *testing.T) {
	// Callers distinguish error kinds with errors.As, so one kind must
	// never match another
	classification := NewErrClassification("a")
	attribute := NewErrAttributeRead("b")

	var asAttribute *ErrAttributeRead
	assert.False(t, errors.As(error(classification), &asAttribute))

	var asClassification *ErrClassification
	assert.False(t, errors.As(error(attribute), &asClassification))
}

func TestErrorFormatting(t *testing.T) {
	err := NewErrAttributeRead("failed to read %s from %s: %v", "system.ntfs_crtime_be", "/mnt/win/file.txt", errors.New("no data"))
	assert.Equal(t, "failed to read system.ntfs_crtime_be from /mnt/win/file.txt: no data", err.Error())
}
