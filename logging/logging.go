package logging

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 在 InitLogger 之前使用 nop logger，避免测试或者库调用时 panic
var logger = *zap.NewNop()
var sugarLogger = *zap.NewNop().Sugar()

func GetLogger() *zap.Logger {
	return &logger
}

func GetSugar() *zap.SugaredLogger {
	return &sugarLogger
}

// DefaultLogFile 返回可执行文件同级目录下的 log.log
func DefaultLogFile() string {
	file, _ := exec.LookPath(os.Args[0])
	execPath, _ := filepath.Abs(file)
	if idx := strings.LastIndex(execPath, string(os.PathSeparator)); idx >= 0 {
		execPath = execPath[:idx]
	}
	return fmt.Sprintf("%s%clog.log", execPath, os.PathSeparator)
}

func newEncoderConfig(debug bool) zapcore.EncoderConfig {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "name",
		CallerKey:        "caller",
		FunctionKey:      "function",
		MessageKey:       "message",
		StacktraceKey:    zapcore.OmitKey,
		ConsoleSeparator: "|",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(time.RFC3339Nano))
		},
		EncodeName:     zapcore.FullNameEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if debug {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.ConsoleSeparator = " "
	}
	return encoderConfig
}

// InitLogger 初始化全局 logger，日志同时输出到 stdout 和 logFile
// logFile 为空时使用 DefaultLogFile
func InitLogger(debug bool, logFile string) {
	if logFile == "" {
		logFile = DefaultLogFile()
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   false,
	}

	// 文件中不需要颜色
	fileEncoder := zapcore.NewConsoleEncoder(newEncoderConfig(false))
	consoleEncoder := zapcore.NewConsoleEncoder(newEncoderConfig(debug))

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(fileEncoder, zapcore.AddSync(lumberjackLogger), level),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	)

	l := zap.New(core, zap.AddCaller())

	logger = *l
	sugarLogger = *l.Sugar()
}

// Sync 刷新缓冲的日志
func Sync() {
	_ = logger.Sync()
}
