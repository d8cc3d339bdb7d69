package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/MeloQi/EasyGoLib/utils"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Fields = logrus.Fields

var (
	std        = logrus.New()
	fileWriter *lumberjack.Logger
	writerLock sync.Mutex
)

func init() {
	std.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LogFormat:       "[%time%][%lvl%]: %msg%\n",
	})
	std.SetOutput(os.Stdout)
	level := utils.Conf().Section("log").Key("level").MustString("info")
	if l, err := logrus.ParseLevel(level); err == nil {
		std.SetLevel(l)
	}
}

func SetOutput(o io.Writer) {
	std.SetOutput(o)
}

func SetLogFormatter(f logrus.Formatter) {
	std.SetFormatter(f)
}

func SetLevel(l logrus.Level) {
	std.SetLevel(l)
}

func GetLevel() logrus.Level {
	return std.GetLevel()
}

// FileOutput switches logging to a size-rotated file under utils.LogDir().
func FileOutput() io.Writer {
	writerLock.Lock()
	defer writerLock.Unlock()
	if fileWriter == nil {
		fileWriter = &lumberjack.Logger{
			Filename:   filepath.Join(utils.LogDir(), "easylive.log"),
			MaxSize:    utils.Conf().Section("log").Key("max_size").MustInt(10),
			MaxBackups: utils.Conf().Section("log").Key("max_backups").MustInt(7),
			MaxAge:     utils.Conf().Section("log").Key("max_age").MustInt(30),
			Compress:   utils.Conf().Section("log").Key("compress").MustBool(false),
		}
	}
	return fileWriter
}

func CloseFileOutput() {
	writerLock.Lock()
	defer writerLock.Unlock()
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
}

// Debug logs a message at level Debug on the standard logger.
func Debug(args ...interface{}) {
	std.Debug(args...)
}

// Info logs a message at level Info on the standard logger.
func Info(args ...interface{}) {
	std.Info(args...)
}

// Warn logs a message at level Warn on the standard logger.
func Warn(args ...interface{}) {
	std.Warn(args...)
}

// Error logs a message at level Error on the standard logger.
func Error(args ...interface{}) {
	std.Error(args...)
}

// Fatal logs a message at level Fatal on the standard logger.
func Fatal(args ...interface{}) {
	std.Fatal(args...)
}

// Panic logs a message at level Panic on the standard logger.
func Panic(args ...interface{}) {
	std.Panic(args...)
}

func DebugWithFields(msg string, f Fields) {
	std.WithFields(f).Debug(msg)
}

func InfoWithFields(msg string, f Fields) {
	std.WithFields(f).Info(msg)
}

func WarnWithFields(msg string, f Fields) {
	std.WithFields(f).Warn(msg)
}

func ErrorWithFields(msg string, f Fields) {
	std.WithFields(f).Error(msg)
}
