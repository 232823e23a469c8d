package constants

const (
	// 配置文件名（与可执行文件同目录）
	ConfigFileName = "config.json"
	// 运行状态文件名
	StatusFileName = "janitor.status"

	// 日志目录名（与可执行文件同目录）
	LogDirName = "logs"
	// 每日日志文件命名格式（日-月-年）
	LogFileTimeLayout = "02-01-2006.txt"
	// 日志文件名匹配模式，用于保留期清扫
	LogFilePattern = "*-*-*.txt"
	// 调试日志文件名
	DebugLogFileName = "debug.log"

	// 日志保留天数
	LogRetentionDays = 10

	// 日志行时间戳格式
	LogTimeLayout = "2006-01-02 15:04:05"
)
