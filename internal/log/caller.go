// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CallerField is a set of caller details appended to each log line.
type CallerField uint8

const (
	// CallerFile shows the base name of the calling file.
	CallerFile CallerField = 1 << iota
	// CallerLine shows the line number of the call.
	CallerLine
	// CallerFunc shows the name of the calling function.
	CallerFunc
)

var callerFieldNames = [...]struct {
	field CallerField
	name  string
}{
	{field: CallerFile, name: "file"},
	{field: CallerLine, name: "line"},
	{field: CallerFunc, name: "func"},
}

// ErrCallerFieldNotRecognised is returned by ParseCallerFields
// for an unknown caller field name.
var ErrCallerFieldNotRecognised = errors.New("caller field is not recognised")

// ParseCallerFields parses a comma separated list of caller field
// names such as "file,line". The empty string and "none" disable
// caller details.
func ParseCallerFields(s string) (fields CallerField, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return 0, nil
	}

	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, known := range callerFieldNames {
			if known.name == name {
				fields |= known.field
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrCallerFieldNotRecognised, name)
		}
	}
	return fields, nil
}

// String returns the comma separated caller field names.
func (f CallerField) String() string {
	if f == 0 {
		return "none"
	}

	names := make([]string, 0, len(callerFieldNames))
	for _, known := range callerFieldNames {
		if f&known.field != 0 {
			names = append(names, known.name)
		}
	}
	return strings.Join(names, ",")
}

// callerDepth skips getCallerString, Logger.log
// and the exported logging method.
const callerDepth = 3

func getCallerString(fields CallerField) string {
	if fields == 0 {
		return ""
	}

	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return "error"
	}

	parts := make([]string, 0, len(callerFieldNames))
	if fields&CallerFile != 0 {
		parts = append(parts, filepath.Base(file))
	}
	if fields&CallerLine != 0 {
		parts = append(parts, "L"+strconv.Itoa(line))
	}
	if fields&CallerFunc != 0 {
		if function := runtime.FuncForPC(pc); function != nil {
			parts = append(parts, strings.TrimPrefix(filepath.Ext(function.Name()), "."))
		}
	}
	return strings.Join(parts, ":")
}
