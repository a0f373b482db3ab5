package logger

import (
	"go.uber.org/zap"
)

var l = zap.NewNop()

// Init 按运行模式初始化全局 logger；release 下输出 JSON，其余输出控制台格式。
func Init(mode string) error {
	var (
		z   *zap.Logger
		err error
	)
	if mode == "release" {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	l = z
	return nil
}

// L 返回底层 *zap.Logger。
func L() *zap.Logger { return l }

func Debug(msg string, fields ...zap.Field) { l.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }

// Sync 刷新缓冲日志，进程退出前调用。
func Sync() { _ = l.Sync() }
