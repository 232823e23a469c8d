//go:build windows

package core

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// QueryDisk 查询卷的总容量和可用字节数
func QueryDisk(volumePath string) (DiskStatus, error) {
	pathPtr, err := windows.UTF16PtrFromString(volumePath)
	if err != nil {
		return DiskStatus{}, fmt.Errorf("卷路径转换失败: %s, 错误: %v", volumePath, err)
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return DiskStatus{}, fmt.Errorf("查询磁盘容量失败: %s, 错误: %v", volumePath, err)
	}

	return DiskStatus{
		TotalBytes: totalBytes,
		FreeBytes:  freeBytesAvailable,
	}, nil
}

// VolumePath 将配置中的卷标识转换为可查询的根路径，如 "D" 转为 "D:\"
func VolumePath(volume string) string {
	if len(volume) == 1 {
		return volume + ":\\"
	}
	if strings.HasSuffix(volume, ":") {
		return volume + "\\"
	}
	return volume
}
