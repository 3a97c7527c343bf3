// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log는 Init이 구성하는 패키지 전역 로거다.
var Log = zerolog.New(io.Discard)

// Init은 전역 로거를 초기화한다. w가 nil이면 stderr를 사용한다.
// level은 "debug", "info", "warn", "error" 중 하나이며 그 외 값은 warn으로 처리한다.
func Init(w io.Writer, level string) {
	l := zerolog.WarnLevel
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	}
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	Log = zerolog.New(out).Level(l)
}

// Get은 전역 로거의 포인터를 반환한다.
func Get() *zerolog.Logger {
	return &Log
}
