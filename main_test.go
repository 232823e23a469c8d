package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"disk-janitor/pkg/constants"
	"disk-janitor/pkg/core"
)

func writeConfig(t *testing.T, dir string, config *core.Config) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "    ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ConfigFileName), data, 0644))
}

func readTodayLog(t *testing.T, dir string) string {
	t.Helper()
	name := time.Now().Format(constants.LogFileTimeLayout)
	data, err := os.ReadFile(filepath.Join(dir, constants.LogDirName, name))
	require.NoError(t, err)
	return string(data)
}

func TestRun_Bootstrap(t *testing.T) {
	dir := t.TempDir()

	// 无配置文件时写入默认配置并以状态码0结束，不做任何删除
	require.Equal(t, 0, run(dir))

	data, err := os.ReadFile(filepath.Join(dir, constants.ConfigFileName))
	require.NoError(t, err)

	config := &core.Config{}
	require.NoError(t, json.Unmarshal(data, config))
	require.Equal(t, []string{"D:\\Videos"}, config.Folders)
	require.Equal(t, "D", config.DiskLetter)
	require.Equal(t, 90, config.MaxDiskUsagePercent)
	require.Equal(t, 800, config.MinFreeSpaceAfterCleanupMB)

	require.Contains(t, readTodayLog(t, dir), "已生成默认配置")
}

func TestRun_UnparseableConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte("{broken"), 0644))

	// 配置解析失败按已记录的正常结束处理，除日志外不产生任何副作用
	require.Equal(t, 0, run(dir))
	require.Contains(t, readTodayLog(t, dir), "解析配置文件失败")

	_, err := os.Stat(filepath.Join(dir, constants.StatusFileName))
	require.True(t, os.IsNotExist(err))
}

func TestRun_MissingFolderExitsWithOne(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "watched")
	require.NoError(t, os.MkdirAll(existing, 0755))
	kept := filepath.Join(existing, "keep.dat")
	require.NoError(t, os.WriteFile(kept, []byte("data"), 0644))

	missing := filepath.Join(dir, "does-not-exist")
	writeConfig(t, dir, &core.Config{
		Folders:                    []string{missing, existing},
		DiskLetter:                 "/",
		MaxDiskUsagePercent:        0,
		MinFreeSpaceAfterCleanupMB: 0,
	})

	// 目录缺失即以状态码1终止，即便使用率已超阈值也不删除任何文件
	require.Equal(t, 1, run(dir))

	_, err := os.Stat(kept)
	require.NoError(t, err)
	require.Contains(t, readTodayLog(t, dir), "受监控目录不存在")
}

func TestRun_NoCleanupNeeded(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched")
	require.NoError(t, os.MkdirAll(watched, 0755))
	kept := filepath.Join(watched, "keep.dat")
	require.NoError(t, os.WriteFile(kept, []byte("data"), 0644))

	writeConfig(t, dir, &core.Config{
		Folders:                    []string{watched},
		DiskLetter:                 "/",
		MaxDiskUsagePercent:        100,
		MinFreeSpaceAfterCleanupMB: 0,
	})

	require.Equal(t, 0, run(dir))

	// 使用率低于阈值时不删除文件，且只有一条无需清理记录
	_, err := os.Stat(kept)
	require.NoError(t, err)
	content := readTodayLog(t, dir)
	require.Equal(t, 1, strings.Count(content, "无需清理"))
}

func TestRun_ReclaimsOldestFirst(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched")
	require.NoError(t, os.MkdirAll(watched, 0755))

	oldest := filepath.Join(watched, "z-oldest.dat")
	require.NoError(t, os.WriteFile(oldest, []byte("old"), 0644))
	time.Sleep(20 * time.Millisecond)
	newest := filepath.Join(watched, "a-newest.dat")
	require.NoError(t, os.WriteFile(newest, []byte("new"), 0644))

	// 阈值0必然触发清理，目标0在第一次删除后即达成
	writeConfig(t, dir, &core.Config{
		Folders:                    []string{watched},
		DiskLetter:                 "/",
		MaxDiskUsagePercent:        0,
		MinFreeSpaceAfterCleanupMB: 0,
	})

	require.Equal(t, 0, run(dir))

	// 只删除创建时间最早的一个文件
	_, err := os.Stat(oldest)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(newest)
	require.NoError(t, err)

	content := readTodayLog(t, dir)
	require.Contains(t, content, "开始清理")
	require.Contains(t, content, "清理完成: 删除文件1个")

	// 运行状态文件记录本次结果
	status, err := os.ReadFile(filepath.Join(dir, constants.StatusFileName))
	require.NoError(t, err)
	require.Contains(t, string(status), "删除文件数: 1")
}
