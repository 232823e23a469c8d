package core

import (
	"fmt"
	"os"
	"time"
)

// SaveStats 将本次运行的统计信息写入状态文件，写入失败由调用方记录
func SaveStats(path string, stats RunStats) error {
	content := fmt.Sprintf(
		"最后运行时间: %s\n删除文件数: %d\n释放空间: %.2f MB\n耗时: %v\n",
		stats.EndTime.Format("2006-01-02 15:04:05"),
		stats.FilesRemoved,
		float64(stats.SpaceFreed)/1024/1024,
		stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond),
	)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("保存运行状态失败: %v", err)
	}
	return nil
}
