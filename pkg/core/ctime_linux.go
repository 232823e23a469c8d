//go:build linux

package core

import (
	"os"
	"syscall"
	"time"
)

// fileCreationTime 获取文件创建时间。Linux上以inode变更时间近似，
// 取不到底层stat时退回修改时间。
func fileCreationTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec))
	}
	return info.ModTime()
}
