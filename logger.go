package main

import (
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type logger struct {
	appLog    zerolog.Logger
	lookupLog zerolog.Logger
	selfLog   zerolog.Logger
	renderLog zerolog.Logger
	httpLog   zerolog.Logger
}

func (l *logger) LookupError(ip net.IP, name maplib.ProviderName, err error) {
	l.lookupLog.Error().Str("provider", name.String()).Stringer("ip", ip).Err(err).Msg("")
}

func (l *logger) LookupSkipped(ip net.IP, name maplib.ProviderName, err error) {
	l.lookupLog.Debug().Str("provider", name.String()).Stringer("ip", ip).Err(err).Msg("Lookup was skipped")
}

func (l *logger) SelfLocateError(err error) {
	l.selfLog.Error().Err(err).Msg("")
}

func (l *logger) ExtractError(err error) {
	l.renderLog.Error().Err(err).Msg("Cannot extract IP addresses")
}

func (l *logger) RenderError(err error) {
	l.renderLog.Error().Err(err).Msg("Cannot render a page")
}

func (l *logger) RequestServed(req *http.Request, status, size int, elapsed time.Duration) {
	event := l.httpLog.Info()

	switch {
	case status >= http.StatusInternalServerError:
		event = l.httpLog.Error()
	case status >= http.StatusBadRequest:
		event = l.httpLog.Warn()
	}

	event.
		Str("request_id", middleware.GetReqID(req.Context())).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("remote_addr", req.RemoteAddr).
		Int("status", status).
		Int("bytes", size).
		Dur("elapsed", elapsed).
		Msg("")
}

// Report logs messages which are meant for a user. It is used by CLI
// where there is no page to show them on.
func (l *logger) Report(messages []maplib.Message) {
	for _, v := range messages {
		event := l.renderLog.Info()

		switch v.Level {
		case maplib.LevelWarning:
			event = l.renderLog.Warn()
		case maplib.LevelError:
			event = l.renderLog.Error()
		}

		event.Msg(v.Text)
	}
}

func makeLogWriter(logFile string) io.Writer {
	if logFile == "" {
		return os.Stderr
	}

	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func newLogger(w io.Writer, debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	base := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &logger{
		appLog:    base.With().Str("event_name", "app").Logger(),
		lookupLog: base.With().Str("event_name", "lookup").Logger(),
		selfLog:   base.With().Str("event_name", "self").Logger(),
		renderLog: base.With().Str("event_name", "render").Logger(),
		httpLog:   base.With().Str("event_name", "http").Logger(),
	}
}
