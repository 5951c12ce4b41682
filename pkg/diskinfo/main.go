package diskinfo

import (
	"golang.org/x/sys/unix"
)

// Available reports the bytes available to unprivileged users on the
// filesystem mounted at path.
func Available(path string) (uint64, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return 0, err
	}
	return fs.Bavail * uint64(fs.Bsize), nil
}
