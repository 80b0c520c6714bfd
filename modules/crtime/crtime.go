// Package crtime extracts file creation timestamps on filesystems where
// POSIX stat does not expose one: NTFS volumes mounted through ntfs-3g and
// FAT32 volumes handled by the kernel vfat driver.
//
// Each call is stateless: classify the mount, run the per-filesystem
// strategy, report the instant or an explicit "unsupported" outcome.
package crtime

import (
	"time"

	"github.com/hypernetix/crtime/libs/errorx"
	"github.com/hypernetix/crtime/libs/logging"
	"github.com/hypernetix/crtime/modules/fstype"
)

var logger = logging.MainLogger.WithField(logging.ServiceField, "crtime")

// Result is the outcome of a creation-time extraction. Unsupported is a
// defined outcome, distinct from both success and error: it means no
// strategy exists for the filesystem type, not that something went wrong.
type Result struct {
	// Time is the creation instant, valid only when Unsupported is false
	Time time.Time

	// Unsupported reports that the filesystem type has no extraction strategy
	Unsupported bool
}

// Extract maps a path to its creation instant using the strategy for the
// supplied filesystem type. The type is trusted as classified by the
// caller; no reclassification happens here.
//
// The default branch returns Result{Unsupported: true} with a nil error for
// every type outside the supported set, regardless of path validity.
func Extract(path string, fs fstype.Type) (Result, errorx.Error) {
	switch fs {
	case fstype.NtfsCompatible:
		t, errx := ntfsCreationTime(path)
		if errx != nil {
			return Result{}, errx
		}
		return Result{Time: t}, nil
	case fstype.Fat32:
		t, errx := fat32CreationTime(path)
		if errx != nil {
			return Result{}, errx
		}
		return Result{Time: t}, nil
	default:
		return Result{Unsupported: true}, nil
	}
}

// Get runs the full pipeline: classify the mount backing path, then extract
// the creation time with the matching strategy
func Get(path string) (fstype.Type, Result, errorx.Error) {
	fs, errx := fstype.Classify(path)
	if errx != nil {
		return fs, Result{}, errx
	}

	res, errx := Extract(path, fs)
	return fs, res, errx
}
