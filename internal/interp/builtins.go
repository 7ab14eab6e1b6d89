package interp

import (
	"sort"
	"strconv"
	"strings"
)

// builtinFunc implements one entry of the interpreter's immutable builtin
// table. The semantic analyzer takes its arity hints from its own list of
// the same names in internal/semantic, not from this table. line is the
// call site, for errors.
type builtinFunc func(args []Value, line int) (Value, *RuntimeError)

// variadic marks a builtin whose implementation validates its own
// argument count (min/max take values or one list, round 1 or 2, ...).
const variadic = -1

// builtin pairs an implementation with its fixed argument count. The
// count is enforced at call dispatch, not inside each implementation:
// analysis only arity-checks calls whose callee names the builtin
// directly, so an aliased builtin (`maan f = length` then `f()`) still
// reaches the dispatcher and must fail with a RuntimeError, not a host
// panic.
type builtin struct {
	fn    builtinFunc
	arity int
}

var builtinTable = map[string]builtin{
	"length":  {builtinLength, 1},
	"append":  {builtinAppend, 2},
	"pop":     {builtinPop, 1},
	"insert":  {builtinInsert, 3},
	"sort":    {builtinSort, 1},
	"reverse": {builtinReverse, 1},
	"sum":     {builtinSum, 1},
	"min":     {builtinMin, variadic},
	"max":     {builtinMax, variadic},
	"upper":   {builtinUpper, 1},
	"lower":   {builtinLower, 1},
	"split":   {builtinSplit, 2},
	"join":    {builtinJoin, 2},
	"replace": {builtinReplace, 3},
	"str":     {builtinStr, 1},
	"int":     {builtinInt, 1},
	"float":   {builtinFloat, 1},
	"bool":    {builtinBool, 1},
	"type":    {builtinType, 1},
	"abs":     {builtinAbs, 1},
	"round":   {builtinRound, variadic},
	"range":   {builtinRange, variadic},
}

// registerBuiltins wraps every entry of builtinTable as a
// NativeFunctionValue and defines it in env, giving the interpreter's
// root scope the callable builtins the semantic analyzer also
// pre-declares (the analyzer's list additionally holds likho and poocho,
// which the interpreter runs as statements).
func registerBuiltins(env *Environment) {
	for name, b := range builtinTable {
		env.Define(name, &NativeFunctionValue{Name: name, Fn: b.fn, Arity: b.arity})
	}
}

func builtinLength(args []Value, line int) (Value, *RuntimeError) {
	switch v := args[0].(type) {
	case StringValue:
		return Int(int64(len([]rune(v.Value)))), nil
	case *ListValue:
		return Int(int64(len(v.Elements))), nil
	case *DictValue:
		return Int(int64(len(v.Keys))), nil
	}
	return nil, typeError(line, "length() requires a string, list, or dict")
}

func builtinAppend(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "append() requires a list")
	}
	list.Elements = append(list.Elements, args[1])
	return list, nil
}

func builtinPop(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "pop() requires a list")
	}
	if len(list.Elements) == 0 {
		return nil, indexError(line, "pop from an empty list")
	}
	last := list.Elements[len(list.Elements)-1]
	list.Elements = list.Elements[:len(list.Elements)-1]
	return last, nil
}

func builtinInsert(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "insert() requires a list")
	}
	idxVal, ok := args[1].(NumberValue)
	if !ok || idxVal.IsFloat {
		return nil, typeError(line, "insert() requires an integer index")
	}
	idx := int(idxVal.Int)
	if idx < 0 || idx > len(list.Elements) {
		return nil, indexError(line, "insert index %d out of range", idx)
	}
	list.Elements = append(list.Elements, nil)
	copy(list.Elements[idx+1:], list.Elements[idx:])
	list.Elements[idx] = args[2]
	return list, nil
}

func builtinSort(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "sort() requires a list")
	}
	var sortErr *RuntimeError
	sort.SliceStable(list.Elements, func(i, j int) bool {
		less, err := lessThan(list.Elements[i], list.Elements[j], line)
		if err != nil {
			sortErr = err
		}
		return less
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return list, nil
}

func builtinReverse(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "reverse() requires a list")
	}
	for i, j := 0, len(list.Elements)-1; i < j; i, j = i+1, j-1 {
		list.Elements[i], list.Elements[j] = list.Elements[j], list.Elements[i]
	}
	return list, nil
}

func builtinSum(args []Value, line int) (Value, *RuntimeError) {
	list, ok := args[0].(*ListValue)
	if !ok {
		return nil, typeError(line, "sum() requires a list")
	}
	isFloat := false
	var iTotal int64
	var fTotal float64
	for _, el := range list.Elements {
		n, ok := el.(NumberValue)
		if !ok {
			return nil, typeError(line, "sum() requires a list of numbers")
		}
		if n.IsFloat {
			isFloat = true
		}
		iTotal += n.Int
		fTotal += n.AsFloat()
	}
	if isFloat {
		return Float(fTotal), nil
	}
	return Int(iTotal), nil
}

func builtinMin(args []Value, line int) (Value, *RuntimeError) { return minMax(args, line, true) }
func builtinMax(args []Value, line int) (Value, *RuntimeError) { return minMax(args, line, false) }

func minMax(args []Value, line int, wantMin bool) (Value, *RuntimeError) {
	values := args
	if len(args) == 1 {
		if list, ok := args[0].(*ListValue); ok {
			values = list.Elements
		}
	}
	if len(values) == 0 {
		return nil, typeError(line, "min()/max() requires at least one value")
	}
	best := values[0]
	for _, v := range values[1:] {
		less, err := lessThan(v, best, line)
		if err != nil {
			return nil, err
		}
		if less == wantMin {
			best = v
		}
	}
	return best, nil
}

func builtinUpper(args []Value, line int) (Value, *RuntimeError) {
	s, ok := args[0].(StringValue)
	if !ok {
		return nil, typeError(line, "upper() requires a string")
	}
	return StringValue{Value: strings.ToUpper(s.Value)}, nil
}

func builtinLower(args []Value, line int) (Value, *RuntimeError) {
	s, ok := args[0].(StringValue)
	if !ok {
		return nil, typeError(line, "lower() requires a string")
	}
	return StringValue{Value: strings.ToLower(s.Value)}, nil
}

func builtinSplit(args []Value, line int) (Value, *RuntimeError) {
	s, ok1 := args[0].(StringValue)
	sep, ok2 := args[1].(StringValue)
	if !ok1 || !ok2 {
		return nil, typeError(line, "split() requires two strings")
	}
	parts := strings.Split(s.Value, sep.Value)
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = StringValue{Value: p}
	}
	return &ListValue{Elements: elems}, nil
}

func builtinJoin(args []Value, line int) (Value, *RuntimeError) {
	list, ok1 := args[0].(*ListValue)
	sep, ok2 := args[1].(StringValue)
	if !ok1 || !ok2 {
		return nil, typeError(line, "join() requires a list and a string")
	}
	parts := make([]string, len(list.Elements))
	for i, e := range list.Elements {
		s, ok := e.(StringValue)
		if !ok {
			return nil, typeError(line, "join() requires a list of strings")
		}
		parts[i] = s.Value
	}
	return StringValue{Value: strings.Join(parts, sep.Value)}, nil
}

func builtinReplace(args []Value, line int) (Value, *RuntimeError) {
	s, ok1 := args[0].(StringValue)
	old, ok2 := args[1].(StringValue)
	repl, ok3 := args[2].(StringValue)
	if !ok1 || !ok2 || !ok3 {
		return nil, typeError(line, "replace() requires three strings")
	}
	return StringValue{Value: strings.ReplaceAll(s.Value, old.Value, repl.Value)}, nil
}

func builtinStr(args []Value, line int) (Value, *RuntimeError) {
	return StringValue{Value: args[0].String()}, nil
}

func builtinInt(args []Value, line int) (Value, *RuntimeError) {
	switch v := args[0].(type) {
	case NumberValue:
		return Int(int64(v.AsFloat())), nil
	case StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return nil, typeError(line, "cannot convert %q to a number", v.Value)
		}
		return Int(n), nil
	case BoolValue:
		if v.Value {
			return Int(1), nil
		}
		return Int(0), nil
	}
	return nil, typeError(line, "int() requires a number, string, or bool")
}

func builtinFloat(args []Value, line int) (Value, *RuntimeError) {
	switch v := args[0].(type) {
	case NumberValue:
		return Float(v.AsFloat()), nil
	case StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return nil, typeError(line, "cannot convert %q to a number", v.Value)
		}
		return Float(f), nil
	}
	return nil, typeError(line, "float() requires a number or string")
}

func builtinBool(args []Value, line int) (Value, *RuntimeError) {
	return BoolValue{Value: Truthy(args[0])}, nil
}

func builtinType(args []Value, line int) (Value, *RuntimeError) {
	return StringValue{Value: strings.ToLower(args[0].Type())}, nil
}

func builtinAbs(args []Value, line int) (Value, *RuntimeError) {
	n, ok := args[0].(NumberValue)
	if !ok {
		return nil, typeError(line, "abs() requires a number")
	}
	if n.IsFloat {
		if n.Float < 0 {
			return Float(-n.Float), nil
		}
		return n, nil
	}
	if n.Int < 0 {
		return Int(-n.Int), nil
	}
	return n, nil
}

func builtinRound(args []Value, line int) (Value, *RuntimeError) {
	if len(args) < 1 || len(args) > 2 {
		return nil, typeError(line, "round() takes 1 or 2 arguments")
	}
	n, ok := args[0].(NumberValue)
	if !ok {
		return nil, typeError(line, "round() requires a number")
	}
	digits := 0
	if len(args) > 1 {
		d, ok := args[1].(NumberValue)
		if !ok || d.IsFloat {
			return nil, typeError(line, "round() digits must be an integer")
		}
		digits = int(d.Int)
	}
	scale := 1.0
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	rounded := float64(int64(n.AsFloat()*scale+sign(n.AsFloat())*0.5)) / scale
	if digits == 0 {
		return Int(int64(rounded)), nil
	}
	return Float(rounded), nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func builtinRange(args []Value, line int) (Value, *RuntimeError) {
	var start, end int64
	switch len(args) {
	case 1:
		n, ok := args[0].(NumberValue)
		if !ok || n.IsFloat {
			return nil, typeError(line, "range() requires an integer")
		}
		end = n.Int
	case 2:
		s, ok1 := args[0].(NumberValue)
		e, ok2 := args[1].(NumberValue)
		if !ok1 || !ok2 || s.IsFloat || e.IsFloat {
			return nil, typeError(line, "range() requires integers")
		}
		start, end = s.Int, e.Int
	default:
		return nil, typeError(line, "range() takes 1 or 2 arguments")
	}
	elems := make([]Value, 0, end-start)
	for i := start; i < end; i++ {
		elems = append(elems, Int(i))
	}
	return &ListValue{Elements: elems}, nil
}

// lessThan orders two values for sort()/min()/max(): numbers compare
// numerically, strings lexicographically; mixed types are a TypeError.
func lessThan(a, b Value, line int) (bool, *RuntimeError) {
	an, aok := a.(NumberValue)
	bn, bok := b.(NumberValue)
	if aok && bok {
		return an.AsFloat() < bn.AsFloat(), nil
	}
	as, aok := a.(StringValue)
	bs, bok := b.(StringValue)
	if aok && bok {
		return as.Value < bs.Value, nil
	}
	return false, typeError(line, "cannot compare %s and %s", a.Type(), b.Type())
}
