// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout is the layout of every timestamp persisted in user
// documents: local wall-clock time with microseconds and no zone offset.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp formats t with [TimestampLayout].
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp written by [Timestamp]. Values without
// the fractional part are accepted as well.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
}
