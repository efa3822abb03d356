// Copyright 2026 The Tombi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package document

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// These mirror the shapes internal/lexer already used to classify the
// four date-time token kinds (localDateRe/localTimeRe/offsetRe); the
// document layer re-parses the same text into numeric components now
// that the token's kind (and therefore its exact shape) is known.
var (
	dateOnlyRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timeOnlyRe = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2})(\.\d+)?)?$`)
	timePrefix = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2})(\.\d+)?)?`)
	offsetRe   = regexp.MustCompile(`^(Z|z|[+-]\d{2}:\d{2})$`)
)

// parseLocalDate parses a bare `YYYY-MM-DD` literal.
func parseLocalDate(raw string) (LocalDate, error) {
	m := dateOnlyRe.FindStringSubmatch(raw)
	if m == nil {
		return LocalDate{}, fmt.Errorf("malformed local date %q", raw)
	}
	y, mo, d, err := parseDateParts(m)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{Text: raw, Year: y, Month: mo, Day: d}, nil
}

// parseLocalTime parses a bare `HH:MM[:SS[.ffffff]]` literal. Missing
// seconds are only legal under TOML 1.1-preview; the caller (lowerValue)
// is responsible for gating that against the active version.
func parseLocalTime(raw string) (LocalTime, error) {
	m := timeOnlyRe.FindStringSubmatch(raw)
	if m == nil {
		return LocalTime{}, fmt.Errorf("malformed local time %q", raw)
	}
	return parseTimeParts(raw, m)
}

// parseLocalDateTime parses a `YYYY-MM-DD[T ]HH:MM:SS` literal with no
// offset.
func parseLocalDateTime(raw string) (LocalDateTime, error) {
	date, rest, err := splitDatePrefix(raw)
	if err != nil {
		return LocalDateTime{}, err
	}
	m := timeOnlyRe.FindStringSubmatch(rest)
	if m == nil {
		return LocalDateTime{}, fmt.Errorf("malformed local date-time %q", raw)
	}
	y, mo, d, err := parseDateParts(dateOnlyRe.FindStringSubmatch(date))
	if err != nil {
		return LocalDateTime{}, err
	}
	lt, err := parseTimeParts(raw, m)
	if err != nil {
		return LocalDateTime{}, err
	}
	t := time.Date(y, time.Month(mo), d, lt.Hour, lt.Minute, lt.Second, lt.Nanosecond, time.UTC)
	return LocalDateTime{Text: raw, Time: t}, nil
}

// parseOffsetDateTime parses a full `YYYY-MM-DD[T ]HH:MM:SS(Z|±HH:MM)`
// literal.
func parseOffsetDateTime(raw string) (OffsetDateTime, error) {
	date, rest, err := splitDatePrefix(raw)
	if err != nil {
		return OffsetDateTime{}, err
	}
	tm := timePrefix.FindStringSubmatch(rest)
	if tm == nil {
		return OffsetDateTime{}, fmt.Errorf("malformed offset date-time %q", raw)
	}
	offPart := rest[len(tm[0]):]
	om := offsetRe.FindStringSubmatch(offPart)
	if om == nil {
		return OffsetDateTime{}, fmt.Errorf("malformed offset date-time %q", raw)
	}
	y, mo, d, err := parseDateParts(dateOnlyRe.FindStringSubmatch(date))
	if err != nil {
		return OffsetDateTime{}, err
	}
	lt, err := parseTimeParts(raw, tm)
	if err != nil {
		return OffsetDateTime{}, err
	}
	loc, err := parseOffset(om[1])
	if err != nil {
		return OffsetDateTime{}, err
	}
	t := time.Date(y, time.Month(mo), d, lt.Hour, lt.Minute, lt.Second, lt.Nanosecond, loc)
	return OffsetDateTime{Text: raw, Time: t}, nil
}

// splitDatePrefix peels a `YYYY-MM-DD` date plus its single `T`/`t`/` `
// separator off the front of raw, returning the remaining text.
func splitDatePrefix(raw string) (date, rest string, err error) {
	if len(raw) < 11 {
		return "", "", fmt.Errorf("malformed date-time %q", raw)
	}
	date = raw[0:10]
	if dateOnlyRe.FindString(date) != date {
		return "", "", fmt.Errorf("malformed date-time %q", raw)
	}
	sep := raw[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return "", "", fmt.Errorf("malformed date-time %q", raw)
	}
	return date, raw[11:], nil
}

func parseDateParts(m []string) (year, month, day int, err error) {
	year, err = strconv.Atoi(m[1])
	if err != nil {
		return
	}
	month, err = strconv.Atoi(m[2])
	if err != nil {
		return
	}
	day, err = strconv.Atoi(m[3])
	return
}

func parseTimeParts(raw string, m []string) (LocalTime, error) {
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return LocalTime{}, err
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return LocalTime{}, err
	}
	second := 0
	if m[3] != "" {
		second, err = strconv.Atoi(m[3])
		if err != nil {
			return LocalTime{}, err
		}
	}
	nanos := 0
	if m[4] != "" {
		digits := m[4][1:]
		if len(digits) > 9 {
			digits = digits[:9]
		}
		for len(digits) < 9 {
			digits += "0"
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return LocalTime{}, err
		}
		nanos = n
	}
	return LocalTime{Text: raw, Hour: hour, Minute: minute, Second: second, Nanosecond: nanos}, nil
}

func parseOffset(off string) (*time.Location, error) {
	if off == "Z" || off == "z" {
		return time.UTC, nil
	}
	sign := 1
	if off[0] == '-' {
		sign = -1
	}
	h, err := strconv.Atoi(off[1:3])
	if err != nil {
		return nil, err
	}
	mnt, err := strconv.Atoi(off[4:6])
	if err != nil {
		return nil, err
	}
	secs := sign * (h*3600 + mnt*60)
	return time.FixedZone(off, secs), nil
}
