// Copyright 2025 Poiesic Systems
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

package gestation

import (
	"fmt"
	"time"
)

const gestationDays = 280

// Method selects the due-date rule applied to the reference date.
type Method int

const (
	// MethodLastPeriod applies Naegele's rule to the first day of the
	// last menstrual period.
	MethodLastPeriod Method = iota + 1
	// MethodConception adds the average gestation from conception.
	MethodConception
	// MethodUltrasound takes the date reported by the exam as-is.
	MethodUltrasound
)

// DueDate computes the estimated due date from a reference date and the
// chosen method.
func DueDate(reference time.Time, method Method) (time.Time, error) {
	switch method {
	case MethodLastPeriod:
		// Naegele's rule. The offsets are applied one at a time; a
		// single combined AddDate normalizes month-end dates differently.
		return reference.AddDate(0, 0, 7).AddDate(0, -3, 0).AddDate(1, 0, 0), nil
	case MethodConception:
		return reference.AddDate(0, 0, 266), nil
	case MethodUltrasound:
		return reference, nil
	default:
		return time.Time{}, fmt.Errorf("gestation: unknown method %d", method)
	}
}

// Progress describes how far along a pregnancy is relative to its due
// date.
type Progress struct {
	Week          int
	Day           int
	DaysRemaining int
}

// ProgressAt derives week/day counts and days remaining by simple date
// subtraction between the due date and now. Both instants are truncated
// to their calendar day first. Before the pregnancy start the elapsed
// counts clamp to zero; past the due date DaysRemaining goes negative.
func ProgressAt(dueDate, now time.Time) Progress {
	due := truncateDay(dueDate)
	today := truncateDay(now)

	remaining := int(due.Sub(today).Hours() / 24)
	elapsed := gestationDays - remaining
	if elapsed < 0 {
		elapsed = 0
	}

	return Progress{
		Week:          elapsed / 7,
		Day:           elapsed % 7,
		DaysRemaining: remaining,
	}
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
