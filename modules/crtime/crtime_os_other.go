//go:build !darwin && !linux

package crtime

import (
	"runtime"
	"time"

	"github.com/hypernetix/crtime/libs/errorx"
)

// The extraction strategies depend on a POSIX host with a mount table and
// xattr support; on other platforms they fail cleanly instead of guessing.

func ntfsCreationTime(path string) (time.Time, errorx.Error) {
	return time.Time{}, errorx.NewErrNotImplemented(
		"NTFS creation time extraction is not supported on %s", runtime.GOOS)
}

func fat32CreationTime(path string) (time.Time, errorx.Error) {
	return time.Time{}, errorx.NewErrNotImplemented(
		"FAT32 creation time extraction is not supported on %s", runtime.GOOS)
}
