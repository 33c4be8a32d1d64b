// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"os"
	"strings"
	"time"

	"github.com/fatih/color" //nolint:misspell
)

// Format is the format of the logger.
type Format uint8

const (
	// FormatConsole writes a timestamp, the level, the message
	// and the caller and context fields separated by tabs.
	FormatConsole Format = iota
	// FormatColoured is FormatConsole with a coloured level
	// when writing to a terminal.
	FormatColoured
)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return "console"
	case FormatColoured:
		return "coloured"
	default:
		return "???"
	}
}

func (s *settings) formatLine(level Level, message, caller string) string {
	levelString := level.String()
	padding := strings.Repeat(" ", levelWidth-len(levelString))
	if *s.format == FormatColoured && isTerminal(s.writer) {
		levelString = level.ColouredString()
	}

	line := time.Now().Format(time.RFC3339) + " " + levelString + padding + " " + message

	if caller != "" {
		line += "\t" + caller
	}

	if len(s.context) > 0 {
		keyValues := make([]string, len(s.context))
		for i, kvs := range s.context {
			keyValues[i] = kvs.key + "=" + strings.Join(kvs.values, ",")
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	return line + "\n"
}

func isTerminal(writer interface{}) bool {
	if color.NoColor {
		return false
	}
	return writer == os.Stdout || writer == os.Stderr
}
