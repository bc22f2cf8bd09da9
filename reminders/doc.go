// Package reminders evaluates notification rules over stored records:
// weekly gestational messages, appointment reminders, and journal
// nudges. A small scheduler runs the rules periodically and dedupes
// deliveries by deterministic notification ID.
package reminders
