//go:build linux

package stats

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime берет время создания из statx(2).
// Если ФС не хранит btime (маска без STATX_BTIME) — время изменения inode.
func birthTime(path string, _ fs.FileInfo) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT,
		unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if err != nil {
		return time.Time{}, err
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		return statxTime(stx.Btime), nil
	}
	return statxTime(stx.Ctime), nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
