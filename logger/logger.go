package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

// Init 配置全局日志:按天切割的文件输出加标准输出。
// 不调用 Init 时 logrus 保持默认的 stderr 输出,库内日志依然可用。
func Init(dir string, level string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lv)

	if dir == "" {
		dir = "log"
	}
	writer, err := rotatelogs.New(
		filepath.Join(dir, "%Y-%m-%d.log"),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("init log writer: %w", err)
	}

	logrus.SetOutput(io.MultiWriter(writer, os.Stdout))
	logrus.SetFormatter(&nested.Formatter{
		HideKeys:              true,
		TimestampFormat:       "2006-01-02 15:04:05",
		CallerFirst:           true,
		NoColors:              true,
		CustomCallerFormatter: callerFormatter,
	})
	logrus.SetReportCaller(true)
	return nil
}

func callerFormatter(frame *runtime.Frame) string {
	return " <" + path.Dir(frame.Function) + "> " + filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line) + " |"
}

func Debug(args ...interface{}) {
	logrus.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Info(args ...interface{}) {
	logrus.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

func Warn(args ...interface{}) {
	logrus.Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	logrus.Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}
