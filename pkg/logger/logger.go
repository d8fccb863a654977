// Package logger 基于zap的结构化日志封装
//
// 设计说明：
// 1. 包级函数 + SugaredLogger，业务代码不直接依赖zap类型
// 2. 未初始化时使用Nop logger（测试环境不需要显式Init）
// 3. 日志级别、格式、输出目标由配置决定
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init 根据配置初始化全局logger
// format: console | json
// output: stdout | stderr | 文件路径
func Init(level, format, output string, enableCaller bool) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	if format == "console" {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if output != "" {
		cfg.OutputPaths = []string{output}
	}
	cfg.DisableCaller = !enableCaller

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("构建logger失败: %w", err)
	}

	log = l.Sugar()
	return nil
}

// Sync 刷新缓冲的日志（进程退出前调用）
func Sync() {
	_ = log.Sync()
}

// Debug 记录debug日志，kv为键值对
func Debug(message string, kv ...interface{}) {
	log.Debugw(message, kv...)
}

// Info 记录info日志
func Info(message string, kv ...interface{}) {
	log.Infow(message, kv...)
}

// Warn 记录warn日志
func Warn(message string, kv ...interface{}) {
	log.Warnw(message, kv...)
}

// Error 记录error日志
func Error(message string, kv ...interface{}) {
	log.Errorw(message, kv...)
}

// Fatal 记录fatal日志并退出进程
func Fatal(message string, kv ...interface{}) {
	log.Fatalw(message, kv...)
}
