//go:build !linux

package stats

import (
	"io/fs"
	"time"
)

// birthTime: без statx переносимого btime нет, берем время изменения.
// TODO: Birthtimespec из syscall.Stat_t на darwin/freebsd.
func birthTime(_ string, fi fs.FileInfo) (time.Time, error) {
	return fi.ModTime(), nil
}
