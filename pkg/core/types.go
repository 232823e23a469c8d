package core

import "time"

// Config 主配置结构体
type Config struct {
	Folders                    []string `json:"folders"`                    // 受监控目录，顺序即扫描顺序
	DiskLetter                 string   `json:"diskLetter"`                 // 监控的盘符或卷标识
	MaxDiskUsagePercent        int      `json:"maxDiskUsagePercent"`        // 触发清理的使用率阈值(%)
	MinFreeSpaceAfterCleanupMB int      `json:"minFreeSpaceAfterCleanupMB"` // 清理后的最低剩余空间(MB)
	DebugLogMaxSizeMB          int      `json:"debugLogMaxSizeMB"`          // 调试日志文件最大大小(MB)
	DebugLogMaxAgeDays         int      `json:"debugLogMaxAgeDays"`         // 调试日志保留天数
}

// FileRecord 删除候选文件记录
type FileRecord struct {
	Path    string
	Size    int64
	Created time.Time
}

// CleanResult 清理结果统计
type CleanResult struct {
	FilesRemoved int64
	FilesFailed  int64
	SpaceFreed   int64
}

// RunStats 单次运行统计，用于状态文件
type RunStats struct {
	StartTime    time.Time
	EndTime      time.Time
	FilesRemoved int64
	SpaceFreed   int64
}
