package companion

import "fmt"

// CelebrateMilestone returns a festive message for a milestone label,
// e.g. "Primeiro sorriso".
func (s *Selector) CelebrateMilestone(label string) string {
	template := celebratoryPool[s.pick(len(celebratoryPool))]
	return fmt.Sprintf(template, label)
}

// WeekMessage returns the message for completing a gestational week.
// Special weeks have exact-match messages that take priority; other
// weeks divisible by 4 draw from a monthly pool; everything else gets
// the generic encouragement.
func (s *Selector) WeekMessage(week int) string {
	if message, ok := specialWeekMessages[week]; ok {
		return message
	}
	if week > 0 && week%4 == 0 {
		template := fourthWeekPool[s.pick(len(fourthWeekPool))]
		return fmt.Sprintf(template, week)
	}
	return defaultWeekMessage
}
