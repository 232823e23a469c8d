package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"disk-janitor/pkg/constants"
	"disk-janitor/pkg/core"
)

func main() {
	os.Exit(run(executableDir()))
}

// run 执行一次完整的清理流程并返回进程退出码。
// 退出码约定：0为正常结束（含引导模式和无需清理），1为受监控目录缺失。
func run(baseDir string) (code int) {
	logger := core.NewRunLogger(filepath.Join(baseDir, constants.LogDirName))

	// 顶层兜底：任何未处理的异常转为记录后结束，绝不向进程外抛出
	defer func() {
		if r := recover(); r != nil {
			if err := logger.Error("运行发生未处理异常: %v", r); err != nil {
				fmt.Printf("运行发生未处理异常: %v\n", r)
			}
			code = 0
		}
	}()

	startTime := time.Now()

	// 加载配置。文件不存在时写入默认配置并结束本次运行，等待手工修改
	configPath := filepath.Join(baseDir, constants.ConfigFileName)
	config, created, err := core.LoadOrCreate(configPath)
	if err != nil {
		logError(logger, "%v", err)
		return 0
	}
	if created {
		logInfo(logger, "配置文件不存在，已生成默认配置: %s，请按需修改后重新运行", configPath)
		return 0
	}

	logger.EnableDebugLog(config)

	// 校验受监控目录，第一个缺失目录即以状态码1终止，不做任何删除
	if err := core.ValidateFolders(config.Folders); err != nil {
		logError(logger, "%v", err)
		return 1
	}

	// 本次运行的日志从这里开始批量缓存，运行结束时一次性写入
	logger.BeginBatch()
	defer func() {
		if err := logger.Flush(); err != nil {
			fmt.Println(err)
		}
	}()

	// 清理超过保留期的历史日志，失败不影响主流程
	logger.PruneOldLogs(constants.LogRetentionDays)

	// 查询磁盘使用率
	volumePath := core.VolumePath(config.DiskLetter)
	status, err := core.QueryDisk(volumePath)
	if err != nil {
		logError(logger, "%v", err)
		return 0
	}

	usedPercent := status.UsedPercent()
	stats := core.RunStats{StartTime: startTime}

	if usedPercent < config.MaxDiskUsagePercent {
		logInfo(logger, "磁盘 %s 使用率 %d%% 低于阈值 %d%%，无需清理",
			config.DiskLetter, usedPercent, config.MaxDiskUsagePercent)
	} else {
		logInfo(logger, "磁盘 %s 使用率 %d%% 达到阈值 %d%%，开始清理",
			config.DiskLetter, usedPercent, config.MaxDiskUsagePercent)

		candidates := core.CollectCandidates(config.Folders, logger)
		result := core.Reclaim(candidates, status.FreeBytes, config.TargetFreeBytes(), logger)
		stats.FilesRemoved = result.FilesRemoved
		stats.SpaceFreed = result.SpaceFreed

		// 汇总行重新查询一次实时剩余空间，报告真实状态
		currentFree := status.FreeBytes + uint64(result.SpaceFreed)
		if live, err := core.QueryDisk(volumePath); err == nil {
			currentFree = live.FreeBytes
		} else {
			logError(logger, "%v", err)
		}

		logInfo(logger, "清理完成: 删除文件%d个, 失败%d个, 释放空间%.2f MB, 当前剩余空间%.2f MB",
			result.FilesRemoved, result.FilesFailed,
			float64(result.SpaceFreed)/1024/1024, float64(currentFree)/1024/1024)
	}

	stats.EndTime = time.Now()
	if err := core.SaveStats(filepath.Join(baseDir, constants.StatusFileName), stats); err != nil {
		logError(logger, "%v", err)
	}

	return 0
}

// logInfo 记录日志，文件写入失败时仅保留控制台输出
func logInfo(logger *core.RunLogger, format string, args ...interface{}) {
	if err := logger.Info(format, args...); err != nil {
		fmt.Println(err)
	}
}

// logError 记录错误日志，文件写入失败时仅保留控制台输出
func logError(logger *core.RunLogger, format string, args ...interface{}) {
	if err := logger.Error(format, args...); err != nil {
		fmt.Println(err)
	}
}

// executableDir 可执行文件所在目录，取不到时使用当前目录
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
