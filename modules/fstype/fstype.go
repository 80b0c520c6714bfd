// Package fstype classifies the filesystem type of the mount backing a path.
//
// Classification is a fresh mount-table query on every call: a path's
// backing mount can change between calls, so results are never cached.
package fstype

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hypernetix/crtime/libs/errorx"
	"github.com/hypernetix/crtime/libs/logging"
	"github.com/shirou/gopsutil/v4/disk"
)

var logger = logging.MainLogger.WithField(logging.ServiceField, "fstype")

// Type is the closed set of filesystem classifications the creation-time
// extractor dispatches on
type Type int

const (
	// Other is any filesystem with no extraction strategy
	Other Type = iota

	// NtfsCompatible is an NTFS volume mounted through a user-space
	// passthrough driver (ntfs-3g / FUSE)
	NtfsCompatible

	// Fat32 is a volume handled by the kernel vfat driver
	Fat32
)

func (t Type) String() string {
	switch t {
	case NtfsCompatible:
		return "ntfs-compatible"
	case Fat32:
		return "fat32"
	default:
		return "other"
	}
}

// Driver names reported by the mount table for the supported filesystems.
// The kernel reports any FUSE block mount as "fuseblk", which in practice
// means ntfs-3g; the in-kernel ntfs3 driver is deliberately absent because
// it does not expose the creation-time extended attribute.
var driverTypes = map[string]Type{
	"fuseblk": NtfsCompatible,
	"ntfs-3g": NtfsCompatible,
	"vfat":    Fat32,
	"msdos":   Fat32,
}

// Classify resolves the mount table entry covering path and maps its driver
// name to a Type. A path that cannot be resolved or a failed mount-table
// query returns an ErrClassification, never a silent Other, so callers can
// tell "genuinely unsupported" from "could not determine".
func Classify(path string) (Type, errorx.Error) {
	if _, err := os.Stat(path); err != nil {
		return Other, errorx.NewErrClassification("cannot classify %s: %v", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Other, errorx.NewErrClassification("cannot resolve %s: %v", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	// Include pseudo filesystems: FUSE mounts are filtered out by
	// gopsutil's "physical devices only" mode on some platforms
	partitions, err := disk.Partitions(true)
	if err != nil {
		return Other, errorx.NewErrClassification("mount table query failed: %v", err)
	}

	driver, ok := driverForPath(abs, partitions)
	if !ok {
		return Other, errorx.NewErrClassification("no mount table entry covers %s", abs)
	}

	t := mapDriverType(driver)
	logger.Debug("Classified %s as %s (driver %s)", abs, t, driver)
	return t, nil
}

// driverForPath finds the mount with the longest mountpoint prefix of path
// and returns its driver name
func driverForPath(path string, partitions []disk.PartitionStat) (string, bool) {
	best := -1
	driver := ""
	for _, p := range partitions {
		mp := p.Mountpoint
		if mp == "" {
			continue
		}
		if !covers(mp, path) {
			continue
		}
		if len(mp) > best {
			best = len(mp)
			driver = p.Fstype
		}
	}
	return driver, best >= 0
}

// covers reports whether mountpoint contains path
func covers(mountpoint, path string) bool {
	if mountpoint == path {
		return true
	}
	prefix := strings.TrimSuffix(mountpoint, string(os.PathSeparator)) + string(os.PathSeparator)
	return strings.HasPrefix(path, prefix)
}

// mapDriverType maps a mount-table driver name to a Type
func mapDriverType(driver string) Type {
	if t, ok := driverTypes[strings.ToLower(driver)]; ok {
		return t
	}
	return Other
}
