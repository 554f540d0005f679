package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"schedula/models"
)

// intentRule binds one keyword class to an intent with a confidence contribution.
// Rules are evaluated in order, first match wins.
type intentRule struct {
	intent     models.Intent
	confidence int
	keywords   []string
}

// defaultIntentRules is the priority-ordered classification cascade. Delete is
// checked before update: "remove" and "cancel" are delete words that an update
// keyword scan would otherwise shadow.
var defaultIntentRules = []intentRule{
	{models.IntentCreate, 80, []string{
		"yes", "yeah", "yep", "confirm", "correct", "right", "book it", "go ahead", "proceed",
	}},
	{models.IntentDateQuery, 90, []string{
		"what is today", "whats today", "today's date", "todays date",
		"current date", "current day", "what day is it", "what date is it",
	}},
	{models.IntentFreeSlots, 85, []string{
		"free slots", "available slots", "free time", "available time",
		"when am i free", "show free", "available", "open slots", "what slots are free",
	}},
	{models.IntentDelete, 70, []string{
		"delete", "remove", "cancel", "clear", "cancel appointment",
		"cancel meeting", "clear calendar", "remove booking",
	}},
	{models.IntentUpdate, 60, []string{
		"update", "change", "modify", "edit", "reschedule", "move", "shift",
		"adjust", "change time", "move to",
	}},
	{models.IntentList, 60, []string{
		"show", "what", "when", "which", "sessions", "bookings", "check", "see",
		"display", "tell me", "find", "have", "do i have", "list", "view",
	}},
	{models.IntentCreate, 50, []string{
		"book", "schedule", "create", "add", "set up", "arrange", "plan", "reserve",
	}},
}

// MonthVocab binds month name tokens (a regex alternation) to a calendar month.
// The recognized vocabulary is deliberately small; extend it here, not in code.
type MonthVocab struct {
	Tokens string
	Month  time.Month
}

// DefaultMonthVocab covers the months the assistant currently recognizes.
var DefaultMonthVocab = []MonthVocab{
	{Tokens: "july|jul", Month: time.July},
	{Tokens: "june|jun", Month: time.June},
}

type monthPattern struct {
	re    *regexp.Regexp
	month time.Month
}

// compileMonthPatterns expands the vocabulary into the ordered day+month
// shapes we accept: "12-jul", "jul 12", "12th jul".
func compileMonthPatterns(vocab []MonthVocab) []monthPattern {
	var patterns []monthPattern
	for _, v := range vocab {
		patterns = append(patterns,
			monthPattern{regexp.MustCompile(fmt.Sprintf(`(?i)(\d{1,2})[-/](?:%s)`, v.Tokens)), v.Month},
			monthPattern{regexp.MustCompile(fmt.Sprintf(`(?i)(?:%s)\s+(\d{1,2})`, v.Tokens)), v.Month},
			monthPattern{regexp.MustCompile(fmt.Sprintf(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(?:%s)`, v.Tokens)), v.Month},
		)
	}
	return patterns
}

// categoryRule maps a message keyword to a session category label.
type categoryRule struct {
	keyword  string
	category string
}

var defaultCategoryRules = []categoryRule{
	{"training", "Training"},
	{"meeting", "Meeting"},
	{"azure", "Azure"},
	{"python", "Python"},
}

// Time patterns. The update shapes describe old->new, so only the trailing
// clock value is the destination.
var (
	updateTimeRangeRe = regexp.MustCompile(`(?i)from\s+(\d{1,2})(?::(\d{2}))?\s*(pm|am)\s+to\s+(\d{1,2})(?::(\d{2}))?\s*(pm|am)`)
	updateSimpleRe    = regexp.MustCompile(`(?i)(?:to|at)\s+(\d{1,2})\s*(pm|am)`)
	timeRangeRe       = regexp.MustCompile(`(?i)(\d{1,2})\s*(pm|am)\s+(?:to|until|-)\s+(\d{1,2})\s*(pm|am)`)
	singleTimeRe      = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
)

// Extractor parses free-text scheduling requests into structured commands.
type Extractor struct {
	rules      []intentRule
	months     []monthPattern
	categories []categoryRule
}

// NewExtractor builds an Extractor with the default rule tables.
func NewExtractor() *Extractor {
	return NewExtractorWithVocab(DefaultMonthVocab)
}

// NewExtractorWithVocab builds an Extractor recognizing the given month vocabulary.
func NewExtractorWithVocab(vocab []MonthVocab) *Extractor {
	return &Extractor{
		rules:      defaultIntentRules,
		months:     compileMonthPatterns(vocab),
		categories: defaultCategoryRules,
	}
}

// Extract classifies the message and pulls out date, time, duration and
// category cues. It is a pure function of the message and the supplied clock:
// it never fails, falling back to an Unknown command with zero confidence.
func (e *Extractor) Extract(message string, now time.Time) models.ExtractedCommand {
	lower := strings.ToLower(message)

	cmd := models.ExtractedCommand{Intent: models.IntentUnknown}

	// Intent classification: first matching rule wins.
	for _, rule := range e.rules {
		if containsAny(lower, rule.keywords) {
			cmd.Intent = rule.intent
			cmd.Confidence += rule.confidence
			break
		}
	}

	// Relative dates.
	if strings.Contains(lower, "today") {
		d := dateOnly(now)
		cmd.Date = &d
		cmd.Confidence += 25
	} else if strings.Contains(lower, "tomorrow") {
		d := dateOnly(now.AddDate(0, 0, 1))
		cmd.Date = &d
		cmd.Confidence += 25
	}

	// Explicit day+month dates like "July 12", "12-Jul", "7th Jun". For
	// free-slot queries an explicit date overrides a relative one.
	explicitDate := false
	if cmd.Date == nil || cmd.Intent == models.IntentFreeSlots {
		for _, mp := range e.months {
			m := mp.re.FindStringSubmatch(message)
			if m == nil {
				continue
			}
			day, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			d := time.Date(now.Year(), mp.month, day, 0, 0, 0, 0, now.Location())
			cmd.Date = &d
			cmd.Confidence += 25
			explicitDate = true
			break
		}
	}

	// Whole-month free-slot queries; the month is derived from the date later.
	// A phrase like "show free slots for 12 Jul" names a day, so an explicit
	// date always wins over the range phrasing.
	if cmd.Intent == models.IntentFreeSlots && !explicitDate &&
		(strings.Contains(lower, "all free") || strings.Contains(lower, "show free") || strings.Contains(lower, "all slots")) {
		cmd.IsRangeQuery = true
		if cmd.Date == nil {
			d := dateOnly(now)
			cmd.Date = &d
		}
		cmd.Confidence += 30
	}

	e.extractTime(message, &cmd)

	// Category: first hit from the fixed vocabulary wins.
	for _, cr := range e.categories {
		if strings.Contains(lower, cr.keyword) {
			cmd.Category = cr.category
			cmd.Confidence += 10
			break
		}
	}

	return cmd
}

// extractTime parses clock values. Update messages describe a time change, so
// they are matched against dedicated shapes where the trailing value is the
// new start; everything else is read as a session start (and optional end).
func (e *Extractor) extractTime(message string, cmd *models.ExtractedCommand) {
	if cmd.Intent == models.IntentUpdate {
		if m := updateTimeRangeRe.FindStringSubmatch(message); m != nil {
			// "from 9:30 AM to 10 AM" means the new start is 10:00.
			hour := to24Hour(atoi(m[4]), m[6])
			minute := 0
			if m[5] != "" {
				minute = atoi(m[5])
			}
			cmd.Time = &models.ClockTime{Hour: hour, Minute: minute}
			cmd.Confidence += 40
			return
		}
		if m := updateSimpleRe.FindStringSubmatch(message); m != nil {
			cmd.Time = &models.ClockTime{Hour: to24Hour(atoi(m[1]), m[2])}
			cmd.Confidence += 30
		}
		return
	}

	if m := timeRangeRe.FindStringSubmatch(message); m != nil {
		start := to24Hour(atoi(m[1]), m[2])
		end := to24Hour(atoi(m[3]), m[4])
		cmd.Time = &models.ClockTime{Hour: start}
		cmd.EndTime = &models.ClockTime{Hour: end}
		cmd.Duration = float64(end - start)
		cmd.Confidence += 30
		return
	}
	if m := singleTimeRe.FindStringSubmatch(message); m != nil {
		cmd.Time = &models.ClockTime{Hour: to24Hour(atoi(m[1]), m[2])}
		cmd.Duration = 1
		cmd.Confidence += 20
	}
}

// to24Hour converts a 12-hour clock value: pm adds 12 except for 12pm,
// and 12am wraps to 0.
func to24Hour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// dateOnly strips the time-of-day component, keeping the local calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
