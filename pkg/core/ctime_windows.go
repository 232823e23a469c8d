//go:build windows

package core

import (
	"os"
	"syscall"
	"time"
)

// fileCreationTime 获取文件创建时间
func fileCreationTime(info os.FileInfo) time.Time {
	if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, data.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
