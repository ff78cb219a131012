/*
   Copyright 2026 The smtkv authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements the smtkv log wrapper that formats the logs in our
// custom format as well as logging levels.
package log

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// Log levels constants
const (
	SILENT = "silent"
	ERROR  = "error"
	INFO   = "info"
	DEBUG  = "debug"

	caller = 3
)

// Private interface for the std variable.
type logger interface {
	Error(v ...interface{})
	Errorf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	GetLogger() *log.Logger
}

func getFilter(lv string) *logutils.LevelFilter {

	mapLevel := map[string]logutils.LogLevel{
		ERROR: "ERROR",
		INFO:  "INFO",
		DEBUG: "DEBUG",
	}

	return &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: mapLevel[lv],
		Writer:   os.Stdout,
	}
}

// The default logger is a log.ERROR level.
var std logger = newError(getFilter(ERROR), "smtkv: ", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile|log.LUTC)

// Below is the public interface for the logger, a proxy for the switchable
// implementation defined in std.

// Error is the public log function to write to stdOut and stop execution.
func Error(v ...interface{}) {
	std.Error(v...)
}

// Errorf is the public log function with params to write to stdOut and
// stop execution.
func Errorf(format string, v ...interface{}) {
	std.Errorf(format, v...)
}

// Info is the public log function to write information relative to the
// usage of the library.
func Info(v ...interface{}) {
	std.Info(v...)
}

// Infof is the public log function with params to write information
// relative to the usage of the library.
func Infof(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Debug is the public log function to write information relative to
// internal traces.
func Debug(v ...interface{}) {
	std.Debug(v...)
}

// Debugf is the public log function with params to write information
// relative to internal traces.
func Debugf(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// GetLogger returns the underlying standard logger of the current level
// implementation, suitable for handing to third parties.
func GetLogger() *log.Logger {
	return std.GetLogger()
}

// SetLogger is a function that switches between the different log levels.
func SetLogger(namespace, lv string) {

	prefix := namespace + " "
	flags := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile | log.LUTC

	switch lv {
	case SILENT:
		std = newSilent()
	case ERROR:
		std = newError(getFilter(lv), prefix, flags)
	case INFO:
		std = newInfo(getFilter(lv), prefix, flags)
	case DEBUG:
		std = newDebug(getFilter(lv), prefix, flags)
	default:
		std.Infof("Incorrect level of verbosity (%v) fallback to log.INFO", lv)
		std = newInfo(getFilter(INFO), prefix, flags)
	}
}
