package builtin

import (
	"fmt"
	"strings"

	"github.com/cacack/deadends/internal/gedcomdate"
	"github.com/cacack/deadends/internal/gnode"
	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/eval"
	"github.com/cacack/deadends/internal/script/runtime"
	"github.com/cacack/deadends/internal/script/value"
)

// extractEntries implements the multi-out-parameter extraction
// built-ins: each takes one or more trailing identifier arguments that
// it binds by side effect rather than returning a value. Grounded on
// builtin.c.
func extractEntries() []Entry {
	return []Entry{
		{"extractdate", 4, 4, extractdateBI},
		{"extractnames", 4, 4, extractnamesBI},
		{"extractplaces", 3, 3, extractplacesBI},
		{"extracttokens", 4, 4, extracttokensBI},
	}
}

// extractdate(NODE, dayVar, monthVar, yearVar) splits a DATE or event
// node's value into numeric day/month/year, binding each identifier.
func extractdateBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	dayVar, err := identArg(call, 1)
	if err != nil {
		return value.Null, fmt.Errorf("the day argument to extractdate must be an identifier")
	}
	monthVar, err := identArg(call, 2)
	if err != nil {
		return value.Null, fmt.Errorf("the month argument to extractdate must be an identifier")
	}
	yearVar, err := identArg(call, 3)
	if err != nil {
		return value.Null, fmt.Errorf("the year argument to extractdate must be an identifier")
	}
	if ref == gnode.NoRef {
		return value.Null, nil
	}
	var raw string
	if arena.Tag(ref) == "DATE" {
		raw = arena.Value(ref)
	} else {
		raw = eventDate(arena, ref)
	}
	day, month, year := 0, 0, 0
	if d, parseErr := gedcomdate.ParseDate(raw); parseErr == nil {
		// An unparseable or empty date is not considered an error by the
		// original; the out-params are simply left at zero.
		day, month, year = d.Day, d.Month, d.Year
	}
	setVar(ctx, dayVar, value.Int(int64(day)))
	setVar(ctx, monthVar, value.Int(int64(month)))
	setVar(ctx, yearVar, value.Int(int64(year)))
	return value.Null, nil
}

// extractnames(NAME-NODE, list, lengthVar, surnameIndexVar) splits a
// NAME node's value into given-name parts, pushing each part onto the
// list and reporting its length and the index of the surname part.
func extractnamesBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil || ref == gnode.NoRef || arena.Tag(ref) != "NAME" {
		return value.Null, fmt.Errorf("the first argument to extractnames must be a NAME node")
	}
	listVal, err := eval.Evaluate(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	list, ok := listVal.(*value.List)
	if !ok {
		return value.Null, fmt.Errorf("the second argument to extractnames must be a list")
	}
	lenVar, err := identArg(call, 2)
	if err != nil {
		return value.Null, fmt.Errorf("the third argument to extractnames must be an identifier")
	}
	surVar, err := identArg(call, 3)
	if err != nil {
		return value.Null, fmt.Errorf("the fourth argument to extractnames must be an identifier")
	}
	raw := arena.Value(ref)
	if raw == "" {
		setVar(ctx, lenVar, value.Int(0))
		setVar(ctx, surVar, value.Int(0))
		return value.Null, nil
	}
	parts, surnameIdx := splitNameParts(raw)
	list.Elements = list.Elements[:0]
	for _, p := range parts {
		list.Elements = append(list.Elements, value.Str(p))
	}
	setVar(ctx, lenVar, value.Int(int64(len(parts))))
	setVar(ctx, surVar, value.Int(int64(surnameIdx)))
	return value.Null, nil
}

// splitNameParts splits a raw "Given /Surname/ Suffix" GEDCOM name into
// its space-separated parts, reporting the (1-based) index of the
// surname part (the one originally wrapped in slashes), or 0 if none.
func splitNameParts(raw string) ([]string, int) {
	fields := strings.Fields(raw)
	var parts []string
	surnameIdx := 0
	for _, f := range fields {
		if strings.HasPrefix(f, "/") {
			f = strings.Trim(f, "/")
			if f != "" {
				parts = append(parts, f)
				surnameIdx = len(parts)
			}
			continue
		}
		if f != "" {
			parts = append(parts, f)
		}
	}
	return parts, surnameIdx
}

// extractplaces(NODE, list, countVar) splits an event or PLAC node's
// place value on commas, pushing each phrase onto the list.
func extractplacesBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	ref, arena, err := eval.EvaluateGNode(call.Args[0], ctx)
	if err != nil || ref == gnode.NoRef {
		return value.Null, fmt.Errorf("the first argument to extractplaces must evaluate to a node")
	}
	listVal, err := eval.Evaluate(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	list, ok := listVal.(*value.List)
	if !ok {
		return value.Null, fmt.Errorf("the second argument to extractplaces must be a list")
	}
	countVar, err := identArg(call, 2)
	if err != nil {
		return value.Null, fmt.Errorf("the third argument to extractplaces must be an identifier")
	}
	var raw string
	if arena.Tag(ref) == "PLAC" {
		raw = arena.Value(ref)
	} else {
		raw = eventPlace(arena, ref)
	}
	list.Elements = list.Elements[:0]
	if raw == "" {
		setVar(ctx, countVar, value.Int(0))
		return value.Null, nil
	}
	phrases := strings.Split(raw, ",")
	for _, p := range phrases {
		list.Elements = append(list.Elements, value.Str(strings.TrimSpace(p)))
	}
	setVar(ctx, countVar, value.Int(int64(len(phrases))))
	return value.Null, nil
}

// extracttokens(STRING, list, countVar, delimiter) splits a string on a
// delimiter string, pushing each token onto the list.
func extracttokensBI(call *ast.BltinCall, ctx *runtime.Context) (value.Value, error) {
	str, err := eval.EvaluateString(call.Args[0], ctx)
	if err != nil {
		return value.Null, err
	}
	listVal, err := eval.Evaluate(call.Args[1], ctx)
	if err != nil {
		return value.Null, err
	}
	list, ok := listVal.(*value.List)
	if !ok {
		return value.Null, fmt.Errorf("the second argument to extracttokens must be a list")
	}
	countVar, err := identArg(call, 2)
	if err != nil {
		return value.Null, fmt.Errorf("the third argument to extracttokens must be an identifier")
	}
	delim, err := eval.EvaluateString(call.Args[3], ctx)
	if err != nil || delim == "" {
		return value.Null, fmt.Errorf("the fourth argument to extracttokens must be a non-empty string delimiter")
	}
	list.Elements = list.Elements[:0]
	tokens := strings.Split(str, delim)
	for _, t := range tokens {
		list.Elements = append(list.Elements, value.Str(t))
	}
	setVar(ctx, countVar, value.Int(int64(len(tokens))))
	return value.Null, nil
}
