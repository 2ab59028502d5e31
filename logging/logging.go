package logging

import (
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
)

// Repo is the capnslog repository every package logger registers under.
const Repo = "github.com/fetttttjoe/Compiler"

// Setup points all package loggers at w and sets the level by name
// (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE or their first letter).
func Setup(level string, w io.Writer) error {
	lvl, err := capnslog.ParseLevel(strings.ToUpper(level))
	if err != nil {
		return tracerr.Wrap(err)
	}

	capnslog.SetFormatter(capnslog.NewPrettyFormatter(w, lvl >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(lvl)
	return nil
}
