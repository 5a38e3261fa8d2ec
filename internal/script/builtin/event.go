package builtin

import (
	"fmt"
	"strings"
	"time"

	"github.com/cacack/deadends/internal/gedcomdate"
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// dateDisplayState holds the process-global display settings the
// original sets with dayformat/monthformat/dateformat and reads back in
// stddate. Parsing itself is not reimplemented here: internal/gedcomdate
// (adapted from gedcom/date.go, calendar.go, lds.go) already parses the
// full GEDCOM date grammar, including calendar escapes, ranges, periods,
// and dual dating; this state only controls how a parsed Date's
// day/month/year are reassembled into a string.
type dateDisplayState struct {
	day, month, date int
}

var dateDisplay = dateDisplayState{day: 0, month: 0, date: 0}

// eventEntries implements the event/date/place accessors. Grounded on
// intrpevent.c.
func eventEntries() []Entry {
	return []Entry{
		{"date", 1, 1, dateBI},
		{"place", 1, 1, placeBI},
		{"year", 1, 1, yearBI},
		{"long", 1, 1, longBI},
		{"short", 1, 1, shortBI},
		{"dayformat", 1, 1, dayformatBI},
		{"monthformat", 1, 1, monthformatBI},
		{"dateformat", 1, 1, dateformatBI},
		{"stddate", 1, 1, stddateBI},
		{"gettoday", 0, 0, gettodayBI},
	}
}

func eventDate(arena *gnode.Arena, event gnode.Ref) string {
	d := arena.FirstChildWithTag(event, "DATE")
	if d == gnode.NoRef {
		return ""
	}
	return arena.Value(d)
}

func eventPlace(arena *gnode.Arena, event gnode.Ref) string {
	p := arena.FirstChildWithTag(event, "PLAC")
	if p == gnode.NoRef {
		return ""
	}
	return arena.Value(p)
}

func dateBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	d := eventDate(arena, ref)
	if d == "" {
		return value.Null, nil
	}
	return value.Str(d), nil
}

func placeBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	p := eventPlace(arena, ref)
	if p == "" {
		return value.Null, nil
	}
	return value.Str(p), nil
}

func yearBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	raw := eventDate(arena, ref)
	if raw == "" {
		return value.Null, nil
	}
	d, parseErr := gedcomdate.ParseDate(raw)
	if parseErr != nil || d.Year == 0 {
		return value.Null, nil
	}
	return value.Str(fmt.Sprintf("%d", d.Year)), nil
}

// eventToString renders "TAG DATE, PLACE" (long form) or just the date
// when short is requested and a date is present, falling back to the
// place.
func eventToString(arena *gnode.Arena, event gnode.Ref, short bool) string {
	d := eventDate(arena, event)
	p := eventPlace(arena, event)
	if short {
		if d != "" {
			return d
		}
		return p
	}
	tag := arena.Tag(event)
	var b strings.Builder
	b.WriteString(tag)
	if d != "" {
		b.WriteString(" ")
		b.WriteString(d)
	}
	if p != "" {
		if d != "" {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(p)
	}
	return b.String()
}

func longBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	return value.Str(eventToString(arena, ref, false)), nil
}

func shortBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	return value.Str(eventToString(arena, ref, true)), nil
}

func dayformatBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	code, err := eval.EvaluateInt(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if code >= 0 && code <= 2 {
		dateDisplay.day = int(code)
	}
	return value.Null, nil
}

func monthformatBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	code, err := eval.EvaluateInt(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if code >= 0 && code <= 6 {
		dateDisplay.month = int(code)
	}
	return value.Null, nil
}

func dateformatBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	code, err := eval.EvaluateInt(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if code >= 0 && code <= 11 {
		dateDisplay.date = int(code)
	}
	return value.Null, nil
}

var shortMonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthString renders a parsed month number per monthformat's code:
// 0 = three-letter abbreviation (the default), 1 = full capitalized
// word is not tracked by gedcomdate so falls back to the abbreviation,
// anything else = zero-padded digits.
func monthString(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	if dateDisplay.month == 0 || dateDisplay.month == 1 {
		return strings.ToUpper(shortMonthNames[month-1])
	}
	return fmt.Sprintf("%02d", month)
}

// dayString renders a parsed day per dayformat's code: 0 = bare number
// (the default), 1 = zero-padded two digits, 2 = ordinal suffix.
func dayString(day int) string {
	if day == 0 {
		return ""
	}
	switch dateDisplay.day {
	case 1:
		return fmt.Sprintf("%02d", day)
	case 2:
		return fmt.Sprintf("%d%s", day, ordinalSuffix(day))
	default:
		return fmt.Sprintf("%d", day)
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// stddate reformats an event's date through gedcomdate.ParseDate per
// the day/month/date codes set by dayformat/monthformat/dateformat.
// dateformat's code selects the field order: 0/default = day month
// year, 1 = month day, year, 2 = year month day.
func stddateBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	raw := eventDate(arena, ref)
	if raw == "" {
		return value.Null, nil
	}
	d, parseErr := gedcomdate.ParseDate(raw)
	if parseErr != nil || d.IsPhrase {
		return value.Null, nil
	}
	day := dayString(d.Day)
	month := monthString(d.Month)
	year := ""
	if d.Year != 0 {
		year = fmt.Sprintf("%d", d.Year)
	}
	switch dateDisplay.date {
	case 1:
		return value.Str(strings.TrimSpace(joinNonEmpty(" ", month, day) + ", " + year)), nil
	case 2:
		return value.Str(joinNonEmpty(" ", year, month, day)), nil
	default:
		return value.Str(joinNonEmpty(" ", day, month, year)), nil
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// gettoday builds a detached EVEN node with today's date as its DATE
// child, matching __gettoday's use of the C library's get_date().
func gettodayBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	arena := ctx.RT.RecordIndex.Arena()
	event := arena.New("EVEN", "")
	now := time.Now()
	dateStr := fmt.Sprintf("%02d %s %d", now.Day(), strings.ToUpper(shortMonthNames[now.Month()-1]), now.Year())
	dateNode := arena.New("DATE", dateStr)
	arena.AppendChild(event, dateNode)
	return value.GNode{Arena: arena, Ref: event}, nil
}
