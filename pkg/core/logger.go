package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
	"gopkg.in/natefinch/lumberjack.v2"

	"disk-janitor/pkg/constants"
)

// removeLogFile 删除日志文件的入口，测试中可替换以模拟删除失败
var removeLogFile = os.Remove

// RunLogger 运行日志记录器。日志行按天写入独立文件并同步输出到标准输出，
// 文件名由写入时刻的日期决定（跨午夜的运行会分写到两个文件）。
type RunLogger struct {
	dir      string
	stdout   io.Writer
	batching bool
	buffer   []string
	debug    *log.Logger
}

// NewRunLogger 创建运行日志记录器，dir为日志目录
func NewRunLogger(dir string) *RunLogger {
	return &RunLogger{
		dir:    dir,
		stdout: os.Stdout,
	}
}

// EnableDebugLog 初始化调试日志，按大小滚动，记录逐文件删除明细
func (l *RunLogger) EnableDebugLog(config *Config) {
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(l.dir, constants.DebugLogFileName),
		MaxSize:    config.DebugLogMaxSizeMB,
		MaxBackups: 3,
		MaxAge:     config.DebugLogMaxAgeDays,
		Compress:   true,
	}
	l.debug = log.New(writer, "", log.LstdFlags)
}

// Info 记录INFO级别日志
func (l *RunLogger) Info(format string, args ...interface{}) error {
	return l.write("INFO", fmt.Sprintf(format, args...))
}

// Error 记录ERROR级别日志
func (l *RunLogger) Error(format string, args ...interface{}) error {
	return l.write("ERROR", fmt.Sprintf(format, args...))
}

// Debug 仅写入调试日志，不进入每日日志文件
func (l *RunLogger) Debug(format string, args ...interface{}) {
	if l.debug != nil {
		l.debug.Printf(format, args...)
	}
}

// BeginBatch 开启批量模式，之后的日志行先缓存，Flush时一次性写入
func (l *RunLogger) BeginBatch() {
	l.batching = true
}

// Flush 将缓存的日志行一次性追加到当天的日志文件
func (l *RunLogger) Flush() error {
	l.batching = false
	if len(l.buffer) == 0 {
		return nil
	}
	lines := l.buffer
	l.buffer = nil
	return l.appendLines(lines)
}

func (l *RunLogger) write(level, message string) error {
	line := fmt.Sprintf("[%s] [%s] %s", time.Now().Format(constants.LogTimeLayout), level, message)
	fmt.Fprintln(l.stdout, line)
	if l.batching {
		l.buffer = append(l.buffer, line)
		return nil
	}
	return l.appendLines([]string{line})
}

// appendLines 追加写入当天日志文件
func (l *RunLogger) appendLines(lines []string) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %v", err)
	}

	name := time.Now().Format(constants.LogFileTimeLayout)
	file, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %v", err)
	}
	defer file.Close()

	if _, err := file.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("写入日志文件失败: %v", err)
	}
	return nil
}

// PruneOldLogs 删除超过保留期的历史日志文件。日志文件名即创建日期，
// 按文件名判断年龄。清扫为尽力而为，单个文件失败不影响其余文件，
// 自身的失败只记录不上抛。
func (l *RunLogger) PruneOldLogs(retentionDays int) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Error("清理历史日志失败: %v", err)
		}
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	for _, entry := range entries {
		if entry.IsDir() || !wildcard.Match(constants.LogFilePattern, entry.Name()) {
			continue
		}

		created, err := time.ParseInLocation(constants.LogFileTimeLayout, entry.Name(), time.Local)
		if err != nil {
			continue
		}
		if !created.Before(cutoff) {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		if err := removeLogFile(path); err != nil {
			l.Error("删除历史日志失败: %s, 错误: %v", path, err)
			continue
		}
		fmt.Fprintf(l.stdout, "已删除历史日志: %s\n", entry.Name())
	}
}
