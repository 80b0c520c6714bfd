package crtime

import (
	"encoding/binary"
	"time"

	"github.com/hypernetix/crtime/libs/errorx"
)

// ntfsCrtimeXattr is the extended attribute ntfs-3g reserves for the
// big-endian NTFS creation timestamp.
// See https://www.tuxera.com/community/ntfs-3g-advanced/extended-attributes/
const ntfsCrtimeXattr = "system.ntfs_crtime_be"

const (
	// NTFS timestamps count 100-nanosecond intervals since 1601-01-01 UTC
	ntfsTicksPerSecond = 10_000_000

	// Seconds between the NTFS epoch (1601) and the Unix epoch (1970)
	ntfsToUnixEpochSec = 11_644_473_600
)

// decodeNtfsTicks converts the raw xattr value (8 bytes, big-endian uint64
// of 100ns ticks) to a Unix instant. Division truncates: sub-second
// precision is discarded on purpose, matching the reference decoder
// bit-for-bit.
func decodeNtfsTicks(raw []byte) (time.Time, errorx.Error) {
	if len(raw) != 8 {
		return time.Time{}, errorx.NewErrAttributeRead(
			"malformed %s value: expected 8 bytes, got %d", ntfsCrtimeXattr, len(raw))
	}

	ticks := binary.BigEndian.Uint64(raw)
	unixSec := int64(ticks/ntfsTicksPerSecond) - ntfsToUnixEpochSec

	return time.Unix(unixSec, 0).UTC(), nil
}
