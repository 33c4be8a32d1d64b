// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerDepth is the number of frames between runtime.Caller and the
// code calling one of the exported logging methods.
const callerDepth = 3

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func mergeBool(dst **bool, src *bool) {
	if src == nil {
		return
	}
	value := *src
	*dst = &value
}

func defaultBool(dst **bool) {
	if *dst == nil {
		value := false
		*dst = &value
	}
}

func (c *callerSettings) mergeWith(other callerSettings) {
	mergeBool(&c.file, other.file)
	mergeBool(&c.line, other.line)
	mergeBool(&c.funC, other.funC)
}

func (c *callerSettings) setDefaults() {
	defaultBool(&c.file)
	defaultBool(&c.line)
	defaultBool(&c.funC)
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.funC
}

// getCallerString returns the colon separated file, line and function
// of the logging call site, or the empty string if none is enabled.
func getCallerString(c callerSettings) string {
	if !c.enabled() {
		return ""
	}

	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)
	if *c.file {
		fields = append(fields, filepath.Base(file))
	}
	if *c.line {
		fields = append(fields, "L"+strconv.Itoa(line))
	}
	if *c.funC {
		if fn := runtime.FuncForPC(pc); fn != nil {
			fields = append(fields, strings.TrimLeft(filepath.Ext(fn.Name()), "."))
		}
	}

	return strings.Join(fields, ":")
}
