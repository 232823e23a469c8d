//go:build !windows

package core

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// QueryDisk 查询卷的总容量和可用字节数
func QueryDisk(volumePath string) (DiskStatus, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(volumePath, &stat); err != nil {
		return DiskStatus{}, fmt.Errorf("查询磁盘容量失败: %s, 错误: %v", volumePath, err)
	}

	return DiskStatus{
		TotalBytes: stat.Blocks * uint64(stat.Bsize),
		FreeBytes:  stat.Bavail * uint64(stat.Bsize),
	}, nil
}

// VolumePath 将配置中的卷标识转换为可查询的挂载路径。
// 绝对路径原样使用，单字母盘符在非Windows平台退回根文件系统。
func VolumePath(volume string) string {
	if filepath.IsAbs(volume) {
		return volume
	}
	return "/"
}
