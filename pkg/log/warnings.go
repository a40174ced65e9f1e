package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/jenniferxq/imylu/pkg/errors"
)

// InstallZerologWarnings routes library warnings into a zerolog logger
// writing to w. Warnings that implement zerolog.LogObjectMarshaler are
// emitted as structured objects, others as plain messages.
func InstallZerologWarnings(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(obj).Msg(warning.Error())
			return
		}
		ev.Msg(warning.Error())
	})
	return logger
}
