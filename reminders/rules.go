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

package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/materna/companion"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/gestation"
	"github.com/poiesic/materna/storage"
)

const journalIdleDays = 3

// notificationNamespace scopes deterministic notification IDs. Using
// uuid.NewSHA1 over a stable key means the same rule firing for the
// same subject always yields the same ID, so delivery can be deduped
// across scheduler restarts.
var notificationNamespace = uuid.MustParse("8d7f1c2e-5b4a-4f3d-9e6c-1a2b3c4d5e6f")

// Notification is one pending message for the user.
type Notification struct {
	ID    uuid.UUID
	Title string
	Body  string
	At    time.Time
}

func notificationID(key string) uuid.UUID {
	return uuid.NewSHA1(notificationNamespace, []byte(key))
}

// Sources provides the data the rules read.
type Sources struct {
	Profile storage.ProfileStore
	Medical storage.MedicalRepository
	Journal storage.JournalRepository
}

// Rules evaluates the reminder rules against stored data.
type Rules struct {
	sources  Sources
	selector *companion.Selector
}

// NewRules creates a rule evaluator. The selector supplies the weekly
// gestational message text.
func NewRules(sources Sources, selector *companion.Selector) *Rules {
	return &Rules{sources: sources, selector: selector}
}

// Pending evaluates every rule at the given instant and returns the
// notifications due. Rules whose data is missing (no profile, no
// records) simply contribute nothing.
func (r *Rules) Pending(ctx context.Context, now time.Time) ([]Notification, error) {
	var notifications []Notification

	weekly, err := r.weeklyMessage(ctx, now)
	if err != nil {
		return nil, err
	}
	notifications = append(notifications, weekly...)

	appointments, err := r.appointmentReminders(ctx, now)
	if err != nil {
		return nil, err
	}
	notifications = append(notifications, appointments...)

	nudge, err := r.journalNudge(ctx, now)
	if err != nil {
		return nil, err
	}
	notifications = append(notifications, nudge...)

	return notifications, nil
}

// weeklyMessage fires once per completed gestational week while a due
// date is set and the pregnancy is ongoing.
func (r *Rules) weeklyMessage(ctx context.Context, now time.Time) ([]Notification, error) {
	profile, err := r.sources.Profile.GetProfile(ctx)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !profile.HasDueDate() {
		return nil, nil
	}

	progress := gestation.ProgressAt(profile.DueDate, now)
	if progress.Week < 1 || progress.DaysRemaining < 0 {
		return nil, nil
	}

	return []Notification{{
		ID:    notificationID(fmt.Sprintf("week|%d", progress.Week)),
		Title: fmt.Sprintf("Semana %d 🤰", progress.Week),
		Body:  r.selector.WeekMessage(progress.Week),
		At:    now,
	}}, nil
}

// appointmentReminders fires one day before each upcoming appointment.
func (r *Rules) appointmentReminders(ctx context.Context, now time.Time) ([]Notification, error) {
	records, err := r.sources.Medical.All(ctx)
	if err != nil {
		return nil, err
	}

	var notifications []Notification
	for _, record := range records {
		if record.Type != core.MedicalAppointment {
			continue
		}
		lead := record.Date.Add(-24 * time.Hour)
		if now.Before(lead) || now.After(record.Date) {
			continue
		}
		notifications = append(notifications, Notification{
			ID:    notificationID(fmt.Sprintf("appointment|%d", record.Id)),
			Title: "Consulta amanhã 🏥",
			Body:  fmt.Sprintf("Não esqueça: %s em %s.", record.Title, record.Date.Format("02/01 às 15:04")),
			At:    now,
		})
	}
	return notifications, nil
}

// journalNudge fires after a few days without a journal entry.
func (r *Rules) journalNudge(ctx context.Context, now time.Time) ([]Notification, error) {
	entries, err := r.sources.Journal.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	last := entries[0].CreatedAt
	idle := now.Sub(last)
	if idle < journalIdleDays*24*time.Hour {
		return nil, nil
	}

	// Key on the day of the last entry so the nudge repeats only after
	// a new entry resets the clock.
	return []Notification{{
		ID:    notificationID("nudge|" + last.UTC().Format("2006-01-02")),
		Title: "Seu diário sente sua falta 📔",
		Body:  "Faz alguns dias que você não escreve. Que tal registrar como se sente hoje?",
		At:    now,
	}}, nil
}
