//go:build !linux && !windows

package core

import (
	"os"
	"time"
)

// fileCreationTime 获取文件创建时间，无平台支持时退回修改时间
func fileCreationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
