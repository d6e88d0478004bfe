// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Option is the type to specify settings modifier
// for the logger operation.
type Option func(s *settings)

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	caller  *CallerField
	context []contextKeyValues
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.caller != nil {
		value := *other.caller
		s.caller = &value
	}

	newContext := make([]contextKeyValues, 0, len(s.context)+len(other.context))
	for _, kv := range s.context {
		newContext = append(newContext, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, otherKV := range other.context {
		merged := false
		for i := range newContext {
			if newContext[i].key == otherKV.key {
				newContext[i].values = append(newContext[i].values, otherKV.values...)
				merged = true
				break
			}
		}
		if !merged {
			newContext = append(newContext, contextKeyValues{
				key:    otherKV.key,
				values: append([]string(nil), otherKV.values...),
			})
		}
	}
	s.context = newContext
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.caller == nil {
		var none CallerField
		s.caller = &none
	}
}

// SetLevel sets the level for the logger.
// The level defaults to Info.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCaller sets the caller details shown in each log line.
// The default shows none.
func SetCaller(fields CallerField) Option {
	return func(s *settings) {
		s.caller = &fields
	}
}

// SetWriter set the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds the context for the logger as a key values pair.
// It adds them in order. If a key already exists, the value is added to the
// existing values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}
