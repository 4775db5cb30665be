package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base    *zap.Logger
	sugared *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	)

	base = zap.New(core,
		zap.Fields(zap.String("service", "weatherarchive")),
		zap.AddCallerSkip(1))
	sugared = base.Sugar()
}

// Infow logs a message with additional context as key-value pairs.
func Infow(message string, keysAndValues ...interface{}) {
	sugared.Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	sugared.Infof(message, args...)
}

// Warnw logs a message with additional context at WarnLevel.
func Warnw(message string, keysAndValues ...interface{}) {
	sugared.Warnw(message, keysAndValues...)
}

// Errorw logs a message with additional context at ErrorLevel.
func Errorw(message string, keysAndValues ...interface{}) {
	sugared.Errorw(message, keysAndValues...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	sugared.Errorf(message, args...)
}

// Fatalw logs a message with additional context, then calls os.Exit.
func Fatalw(message string, keysAndValues ...interface{}) {
	sugared.Fatalw(message, keysAndValues...)
}

// Fatalf formats the message according to the format specifier and calls os.Exit.
func Fatalf(message string, args ...interface{}) {
	sugared.Fatalf(message, args...)
}
