package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultConfig 首次运行时写入的默认配置
func DefaultConfig() *Config {
	return &Config{
		Folders:                    []string{"D:\\Videos"},
		DiskLetter:                 "D",
		MaxDiskUsagePercent:        90,
		MinFreeSpaceAfterCleanupMB: 800,
		DebugLogMaxSizeMB:          10,
		DebugLogMaxAgeDays:         7,
	}
}

// LoadOrCreate 加载配置文件。文件不存在时写入默认配置并返回 created=true，
// 由调用方决定本次运行到此结束（引导模式），而不是在加载器内部退出进程。
func LoadOrCreate(path string) (*Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := writeDefaultConfig(path); err != nil {
				return nil, false, fmt.Errorf("写入默认配置失败: %v", err)
			}
			return DefaultConfig(), true, nil
		}
		return nil, false, fmt.Errorf("读取配置文件失败: %v", err)
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, false, fmt.Errorf("解析配置文件失败: %v", err)
	}

	// 调试日志参数缺省时回填默认值
	if config.DebugLogMaxSizeMB <= 0 {
		config.DebugLogMaxSizeMB = 10
	}
	if config.DebugLogMaxAgeDays <= 0 {
		config.DebugLogMaxAgeDays = 7
	}

	if err := config.Validate(); err != nil {
		return nil, false, err
	}

	return config, false, nil
}

// Validate 校验配置取值范围
func (c *Config) Validate() error {
	if len(c.Folders) == 0 {
		return fmt.Errorf("配置无效: folders 不能为空")
	}
	for _, folder := range c.Folders {
		if folder == "" {
			return fmt.Errorf("配置无效: folders 包含空路径")
		}
	}
	if c.DiskLetter == "" {
		return fmt.Errorf("配置无效: diskLetter 不能为空")
	}
	if c.MaxDiskUsagePercent < 0 || c.MaxDiskUsagePercent > 100 {
		return fmt.Errorf("配置无效: maxDiskUsagePercent 必须在0-100之间，当前值: %d", c.MaxDiskUsagePercent)
	}
	if c.MinFreeSpaceAfterCleanupMB < 0 {
		return fmt.Errorf("配置无效: minFreeSpaceAfterCleanupMB 不能为负数，当前值: %d", c.MinFreeSpaceAfterCleanupMB)
	}
	return nil
}

// writeDefaultConfig 以缩进格式写入默认配置
func writeDefaultConfig(path string) error {
	data, err := json.MarshalIndent(DefaultConfig(), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TargetFreeBytes 清理目标剩余字节数
func (c *Config) TargetFreeBytes() uint64 {
	return uint64(c.MinFreeSpaceAfterCleanupMB) * 1024 * 1024
}
