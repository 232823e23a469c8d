package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ValidateFolders 逐个检查受监控目录是否存在，遇到第一个缺失目录立即返回错误。
// 目录缺失说明配置有误，继续运行有误删风险，整次运行应当中止。
func ValidateFolders(folders []string) error {
	for _, folder := range folders {
		info, err := os.Stat(folder)
		if err != nil {
			return fmt.Errorf("受监控目录不存在: %s", folder)
		}
		if !info.IsDir() {
			return fmt.Errorf("受监控目录不是文件夹: %s", folder)
		}
	}
	return nil
}

// CollectCandidates 按目录顺序收集删除候选文件。每个目录内部按创建时间
// 升序排序后再拼接，即目录1的全部文件排在目录2之前，而不是跨目录
// 按时间全局归并。该顺序是对外可观察的行为，必须保持。
func CollectCandidates(folders []string, logger *RunLogger) []FileRecord {
	var candidates []FileRecord

	for _, folder := range folders {
		files := collectFolderFiles(folder, logger)
		sort.SliceStable(files, func(i, j int) bool {
			return files[i].Created.Before(files[j].Created)
		})
		candidates = append(candidates, files...)
	}

	return candidates
}

// collectFolderFiles 递归收集目录下的所有文件（不含目录本身）
func collectFolderFiles(folder string, logger *RunLogger) []FileRecord {
	var files []FileRecord

	err := filepath.Walk(folder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Error("枚举文件失败: %s, 错误: %v", path, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		files = append(files, FileRecord{
			Path:    path,
			Size:    info.Size(),
			Created: fileCreationTime(info),
		})
		return nil
	})
	if err != nil {
		logger.Error("遍历目录失败: %s, 错误: %v", folder, err)
	}

	return files
}

// Reclaim 按候选顺序逐个删除文件，直到初始可用空间加累计释放空间达到
// 目标值或候选耗尽。停止判断使用运行开始时的可用空间快照，不在循环中
// 重新查询磁盘。单个文件删除失败只记录错误并继续。
func Reclaim(candidates []FileRecord, initialFree, targetFree uint64, logger *RunLogger) CleanResult {
	var result CleanResult

	for _, file := range candidates {
		if err := os.Remove(file.Path); err != nil {
			logger.Error("删除文件失败: %s, 错误: %v", file.Path, err)
			result.FilesFailed++
			continue
		}

		result.FilesRemoved++
		result.SpaceFreed += file.Size
		logger.Debug("删除文件: %s, 大小: %d bytes", file.Path, file.Size)

		if initialFree+uint64(result.SpaceFreed) >= targetFree {
			break
		}
	}

	return result
}
