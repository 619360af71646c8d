package log_drivers

import (
	"fmt"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CliLogDriver struct {
	zapLogger *zap.Logger
}

func NewCliLogDriver() *CliLogDriver {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(colorable.NewColorableStdout()),
		zapcore.DebugLevel,
	)

	return &CliLogDriver{
		zapLogger: zap.New(core),
	}
}

func (s *CliLogDriver) Info(msg string, fields ...zapcore.Field) {
	s.zapLogger.Info(msg, fields...)
}

func (s *CliLogDriver) Debug(msg string, fields ...zapcore.Field) {
	s.zapLogger.Debug(msg, fields...)
}

func (s *CliLogDriver) Error(msg string, fields ...zapcore.Field) {
	s.zapLogger.Error(msg, fields...)
}

func (s *CliLogDriver) Warn(msg string, fields ...zapcore.Field) {
	s.zapLogger.Warn(msg, fields...)
}

func (s *CliLogDriver) LogBuildOutput(target string, data string) {
	s.zapLogger.Info(fmt.Sprintf("[%s] %s", target, data))
}
