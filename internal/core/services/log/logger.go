package logger

import (
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	drivers "github.com/stevedore-dev/stevedore/internal/core/services/log/drivers"
)

var logger ports.LogDriverInterface

func NewLogger(mode string) ports.LogDriverInterface {

	if mode == "cli" {
		logger = drivers.NewCliLogDriver()
	} else {
		logger = drivers.NewStructuredLogDriver()
	}

	return logger
}

func Log() ports.LogDriverInterface {
	if logger == nil {
		logger = NewLogger("structured")
	}
	return logger
}
