// Debug logging for the d2c CLI. Messages go to ~/.d2c/debug.log so
// normal command output stays clean.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var debugLogger *log.Logger

func initLogger() error {
	if err := os.MkdirAll(configDir(), 0o700); err != nil {
		return err
	}

	logFile := filepath.Join(configDir(), "debug.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	debugLogger = log.New(file, "", log.LstdFlags|log.Lshortfile)
	return nil
}

func logDebug(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
