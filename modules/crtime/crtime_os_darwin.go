//go:build darwin

package crtime

import (
	"time"

	"github.com/hypernetix/crtime/libs/errorx"
	"golang.org/x/sys/unix"
)

// ntfsCreationTime reads the creation timestamp ntfs-3g exposes as an
// extended attribute and decodes it. A missing or unreadable attribute is
// an ErrAttributeRead; no value is ever fabricated.
func ntfsCreationTime(path string) (time.Time, errorx.Error) {
	size, err := unix.Getxattr(path, ntfsCrtimeXattr, nil)
	if err != nil {
		return time.Time{}, errorx.NewErrAttributeRead(
			"failed to read %s from %s: %v", ntfsCrtimeXattr, path, err)
	}

	buf := make([]byte, size)
	n, err := unix.Getxattr(path, ntfsCrtimeXattr, buf)
	if err != nil {
		return time.Time{}, errorx.NewErrAttributeRead(
			"failed to read %s from %s: %v", ntfsCrtimeXattr, path, err)
	}

	return decodeNtfsTicks(buf[:n])
}

// fat32CreationTime returns the status-change time reported by stat, where
// the msdos driver keeps the on-disk creation time
func fat32CreationTime(path string) (time.Time, errorx.Error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, errorx.NewErrMetadataRead("failed to stat %s: %v", path, err)
	}

	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)), nil
}
