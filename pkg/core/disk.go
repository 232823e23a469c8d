package core

// DiskStatus 磁盘容量信息
type DiskStatus struct {
	TotalBytes uint64
	FreeBytes  uint64
}

// UsedPercent 整数使用率，向零截断（如89.6%返回89）
func (d DiskStatus) UsedPercent() int {
	if d.TotalBytes == 0 {
		return 0
	}
	return int((d.TotalBytes - d.FreeBytes) * 100 / d.TotalBytes)
}
