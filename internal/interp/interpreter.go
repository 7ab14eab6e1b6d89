// Package interp implements phase 5: a tree-walking evaluator over an
// already-parsed, already-analyzed AST. Control flow (break/continue/
// return/throw) is modeled as an explicit signal value returned
// alongside every statement, never as a Go panic, so every scope exit
// path (normal fall-through or any of the four signals) balances its
// own environment push with a pop.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/ast"
)

// Interpreter holds the mutable state of one program execution: the
// global scope, the active class table, the call-depth counter backing
// the recursion guard, and the stack of method-call frames backing
// `yeh`/`upar`.
type Interpreter struct {
	global            *Environment
	classes           map[string]*ClassValue
	frames            []selfFrame
	callDepth         int
	maxRecursionDepth int
	out               io.Writer
	in                *bufio.Reader
}

// New creates an Interpreter that writes to out and reads `poocho`
// prompts from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{
		classes:           make(map[string]*ClassValue),
		out:               out,
		in:                bufio.NewReader(in),
		maxRecursionDepth: MaxRecursionDepth,
	}
}

// SetMaxRecursionDepth overrides the call-depth ceiling; n <= 0 is
// ignored and the built-in default is kept.
func (i *Interpreter) SetMaxRecursionDepth(n int) {
	if n > 0 {
		i.maxRecursionDepth = n
	}
}

// Execute runs prog to completion or until an uncaught ThrowSignal
// escapes every enclosing koshish/pakad, in which case it is reported as
// a RuntimeError.
func (i *Interpreter) Execute(prog *ast.Program) error {
	i.global = NewEnvironment()
	registerBuiltins(i.global)

	f := i.execStmts(prog.Statements, i.global)
	if f.kind == sigThrow {
		return i.formatUncaught(f)
	}
	return nil
}

func (i *Interpreter) formatUncaught(f flow) error {
	if exc, ok := f.value.(*ExceptionValue); ok {
		return &RuntimeError{Kind: exc.Kind, Line: exc.Line, Message: exc.Message}
	}
	return &RuntimeError{Kind: KindUserException, Line: f.line, Message: f.value.String()}
}

func (i *Interpreter) execBlock(block *ast.BlockStatement, outer *Environment) flow {
	return i.execStmts(block.Statements, NewEnclosedEnvironment(outer))
}

func (i *Interpreter) execStmts(stmts []ast.Statement, env *Environment) flow {
	for _, stmt := range stmts {
		f := i.execStmt(stmt, env)
		if f.kind != sigNone {
			return f
		}
	}
	return none()
}

func (i *Interpreter) execStmt(stmt ast.Statement, env *Environment) flow {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		return i.execBlock(s, env)
	case *ast.ExpressionStatement:
		_, f := i.evalExpr(s.Expr, env)
		return f
	case *ast.VarDecl:
		v, f := i.evalExpr(s.Value, env)
		if f.kind != sigNone {
			return f
		}
		env.Define(s.Name, v)
		return none()
	case *ast.Assignment:
		v, f := i.evalExpr(s.Value, env)
		if f.kind != sigNone {
			return f
		}
		env.Assign(s.Name, v)
		return none()
	case *ast.IndexAssignment:
		return i.execIndexAssignment(s, env)
	case *ast.PropertyAssignment:
		return i.execPropertyAssignment(s, env)
	case *ast.BreakStmt:
		return breakFlow()
	case *ast.ContinueStmt:
		return continueFlow()
	case *ast.ReturnStmt:
		if s.Value == nil {
			return returnFlow(NoneValue{})
		}
		v, f := i.evalExpr(s.Value, env)
		if f.kind != sigNone {
			return f
		}
		return returnFlow(v)
	case *ast.PrintStmt:
		return i.execPrint(s, env)
	case *ast.InputStmt:
		return i.execInput(s, env)
	case *ast.ThrowStmt:
		v, f := i.evalExpr(s.Value, env)
		if f.kind != sigNone {
			return f
		}
		return throwFlow(v, s.Line())
	case *ast.ImportStmt:
		return none()
	case *ast.IfStmt:
		return i.execIf(s, env)
	case *ast.WhileStmt:
		return i.execWhile(s, env)
	case *ast.ForEachStmt:
		return i.execForEach(s, env)
	case *ast.TryStmt:
		return i.execTry(s, env)
	case *ast.FunctionDef:
		env.Define(s.Name, &FunctionValue{Name: s.Name, Params: s.Params, Body: s.Body, Closure: env})
		return none()
	case *ast.ClassDef:
		return i.execClassDef(s, env)
	}
	return none()
}

func (i *Interpreter) execPrint(s *ast.PrintStmt, env *Environment) flow {
	parts := make([]string, len(s.Args))
	for idx, a := range s.Args {
		v, f := i.evalExpr(a, env)
		if f.kind != sigNone {
			return f
		}
		parts[idx] = v.String()
	}
	fmt.Fprint(i.out, strings.Join(parts, " "))
	if !s.NoNewline {
		fmt.Fprint(i.out, "\n")
	}
	return none()
}

func (i *Interpreter) execInput(s *ast.InputStmt, env *Environment) flow {
	if s.HasPrompt {
		fmt.Fprint(i.out, s.Prompt)
	}
	line, _ := i.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	env.Assign(s.VarName, StringValue{Value: line})
	return none()
}

func (i *Interpreter) execIf(s *ast.IfStmt, env *Environment) flow {
	cond, f := i.evalExpr(s.Condition, env)
	if f.kind != sigNone {
		return f
	}
	if Truthy(cond) {
		return i.execBlock(s.Then, env)
	}
	for _, elif := range s.Elifs {
		c, f := i.evalExpr(elif.Condition, env)
		if f.kind != sigNone {
			return f
		}
		if Truthy(c) {
			return i.execBlock(elif.Body, env)
		}
	}
	if s.Else != nil {
		return i.execBlock(s.Else, env)
	}
	return none()
}

func (i *Interpreter) execWhile(s *ast.WhileStmt, env *Environment) flow {
	for {
		cond, f := i.evalExpr(s.Condition, env)
		if f.kind != sigNone {
			return f
		}
		if !Truthy(cond) {
			return none()
		}
		bodyFlow := i.execBlock(s.Body, env)
		switch bodyFlow.kind {
		case sigBreak:
			return none()
		case sigContinue, sigNone:
			continue
		default: // return, throw
			return bodyFlow
		}
	}
}

func (i *Interpreter) execForEach(s *ast.ForEachStmt, env *Environment) flow {
	iterable, f := i.evalExpr(s.Iterable, env)
	if f.kind != sigNone {
		return f
	}
	list, ok := iterable.(*ListValue)
	if !ok {
		return throwFlow(wrapError(typeError(s.Line(), "'har ... mein' requires a list, got %s", iterable.Type())), s.Line())
	}
	for _, elem := range list.Elements {
		iterEnv := NewEnclosedEnvironment(env)
		iterEnv.Define(s.VarName, elem)
		bodyFlow := i.execStmts(s.Body.Statements, iterEnv)
		switch bodyFlow.kind {
		case sigBreak:
			return none()
		case sigContinue, sigNone:
			continue
		default:
			return bodyFlow
		}
	}
	return none()
}

func (i *Interpreter) execTry(s *ast.TryStmt, env *Environment) flow {
	tryFlow := i.execBlock(s.Body, env)

	var result flow
	if tryFlow.kind == sigThrow {
		catchEnv := NewEnclosedEnvironment(env)
		catchEnv.Define(s.CatchVar, tryFlow.value)
		result = i.execStmts(s.CatchBody.Statements, catchEnv)
	} else {
		result = tryFlow
	}

	if s.FinallyBody != nil {
		finallyFlow := i.execBlock(s.FinallyBody, env)
		if finallyFlow.kind != sigNone {
			return finallyFlow
		}
	}
	return result
}

func (i *Interpreter) execClassDef(s *ast.ClassDef, env *Environment) flow {
	var parent *ClassValue
	if s.Parent != "" {
		p, ok := i.classes[s.Parent]
		if !ok {
			return throwFlow(wrapError(nameError(s.Line(), s.Parent)), s.Line())
		}
		parent = p
	}
	class := &ClassValue{Name: s.Name, Parent: parent, Methods: make(map[string]*FunctionValue)}
	for _, m := range s.Methods {
		class.Methods[m.Name] = &FunctionValue{Name: m.Name, Params: m.Params, Body: m.Body, Closure: env}
	}
	i.classes[s.Name] = class
	env.Define(s.Name, class)
	return none()
}

func (i *Interpreter) execIndexAssignment(s *ast.IndexAssignment, env *Environment) flow {
	target, f := i.evalExpr(s.Target, env)
	if f.kind != sigNone {
		return f
	}
	idx, f := i.evalExpr(s.Index, env)
	if f.kind != sigNone {
		return f
	}
	val, f := i.evalExpr(s.Value, env)
	if f.kind != sigNone {
		return f
	}
	return i.indexSet(target, idx, val, s.Line())
}

func (i *Interpreter) execPropertyAssignment(s *ast.PropertyAssignment, env *Environment) flow {
	target, f := i.evalExpr(s.Target, env)
	if f.kind != sigNone {
		return f
	}
	val, f := i.evalExpr(s.Value, env)
	if f.kind != sigNone {
		return f
	}
	inst, ok := target.(*InstanceValue)
	if !ok {
		return throwFlow(wrapError(attributeError(s.Line(), "cannot assign a property on a %s", target.Type())), s.Line())
	}
	inst.Fields[s.Name] = val
	return none()
}

// invoke binds args to fn's parameters in a scope enclosed by its
// closure and executes its body, enforcing the recursion guard and
// collapsing a caught ReturnSignal into the call's resulting value.
func (i *Interpreter) invoke(fn *FunctionValue, args []Value, line int) (Value, flow) {
	i.callDepth++
	defer func() { i.callDepth-- }()
	if i.callDepth > i.maxRecursionDepth {
		return nil, throwFlow(wrapError(recursionError(line)), line)
	}

	callEnv := NewEnclosedEnvironment(fn.Closure)
	for idx, p := range fn.Params {
		if idx < len(args) {
			callEnv.Define(p, args[idx])
		} else {
			callEnv.Define(p, NoneValue{})
		}
	}

	if fn.Body != nil {
		bodyFlow := i.execStmts(fn.Body.Statements, callEnv)
		switch bodyFlow.kind {
		case sigReturn:
			return bodyFlow.value, none()
		case sigThrow:
			return nil, bodyFlow
		default:
			return NoneValue{}, none()
		}
	}

	v, f := i.evalExpr(fn.ExprBody, callEnv)
	if f.kind != sigNone {
		return nil, f
	}
	return v, none()
}

// evalExpr evaluates expr and returns its value, or a sigThrow flow if
// evaluation (or something it called) raised an exception.
func (i *Interpreter) evalExpr(expr ast.Expression, env *Environment) (Value, flow) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat {
			return Float(e.FloatValue), none()
		}
		return Int(e.IntValue), none()
	case *ast.StringLiteral:
		return StringValue{Value: e.Value}, none()
	case *ast.BoolLiteral:
		return BoolValue{Value: e.Value}, none()
	case *ast.NoneLiteral:
		return NoneValue{}, none()
	case *ast.ListLiteral:
		elems := make([]Value, len(e.Elements))
		for idx, el := range e.Elements {
			v, f := i.evalExpr(el, env)
			if f.kind != sigNone {
				return nil, f
			}
			elems[idx] = v
		}
		return &ListValue{Elements: elems}, none()
	case *ast.DictLiteral:
		dict := NewDict()
		for _, entry := range e.Entries {
			k, f := i.evalExpr(entry.Key, env)
			if f.kind != sigNone {
				return nil, f
			}
			v, f := i.evalExpr(entry.Value, env)
			if f.kind != sigNone {
				return nil, f
			}
			dict.Set(k.String(), v)
		}
		return dict, none()
	case *ast.Identifier:
		if v, ok := env.Get(e.Name); ok {
			return v, none()
		}
		return nil, throwFlow(wrapError(nameError(e.Line(), e.Name)), e.Line())
	case *ast.ThisExpr:
		frame := i.currentFrame()
		if frame == nil {
			return NoneValue{}, none()
		}
		return frame.self, none()
	case *ast.SuperExpr:
		return i.evalSuper(e, env)
	case *ast.NewObject:
		return i.evalNewObject(e, env)
	case *ast.MethodCall:
		return i.evalMethodCall(e, env)
	case *ast.PropertyAccess:
		target, f := i.evalExpr(e.Target, env)
		if f.kind != sigNone {
			return nil, f
		}
		inst, ok := target.(*InstanceValue)
		if !ok {
			return nil, throwFlow(wrapError(attributeError(e.Line(), "cannot read a property of %s", target.Type())), e.Line())
		}
		return i.resolveProperty(inst, e.Name, e.Line())
	case *ast.FunctionCall:
		return i.evalFunctionCall(e, env)
	case *ast.Lambda:
		return &FunctionValue{Params: e.Params, ExprBody: e.Body, Closure: env}, none()
	case *ast.BinaryExpr:
		return i.evalBinary(e, env)
	case *ast.UnaryExpr:
		return i.evalUnary(e, env)
	case *ast.ParenExpr:
		return i.evalExpr(e.Inner, env)
	case *ast.IndexExpr:
		target, f := i.evalExpr(e.Target, env)
		if f.kind != sigNone {
			return nil, f
		}
		idx, f := i.evalExpr(e.Index, env)
		if f.kind != sigNone {
			return nil, f
		}
		return i.indexGet(target, idx, e.Line())
	}
	return NoneValue{}, none()
}

func (i *Interpreter) evalArgs(exprs []ast.Expression, env *Environment) ([]Value, flow) {
	args := make([]Value, len(exprs))
	for idx, a := range exprs {
		v, f := i.evalExpr(a, env)
		if f.kind != sigNone {
			return nil, f
		}
		args[idx] = v
	}
	return args, none()
}

func (i *Interpreter) evalFunctionCall(e *ast.FunctionCall, env *Environment) (Value, flow) {
	callee, f := i.evalExpr(e.Callee, env)
	if f.kind != sigNone {
		return nil, f
	}
	args, f := i.evalArgs(e.Args, env)
	if f.kind != sigNone {
		return nil, f
	}
	switch fn := callee.(type) {
	case *FunctionValue:
		return i.invoke(fn, args, e.Line())
	case *NativeFunctionValue:
		if fn.Arity != variadic && len(args) != fn.Arity {
			err := typeError(e.Line(), "%s() expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
			return nil, throwFlow(wrapError(err), e.Line())
		}
		v, err := fn.Fn(args, e.Line())
		if err != nil {
			return nil, throwFlow(wrapError(err), e.Line())
		}
		return v, none()
	default:
		return nil, throwFlow(wrapError(typeError(e.Line(), "%s is not callable", callee.Type())), e.Line())
	}
}

func (i *Interpreter) evalMethodCall(e *ast.MethodCall, env *Environment) (Value, flow) {
	target, f := i.evalExpr(e.Target, env)
	if f.kind != sigNone {
		return nil, f
	}
	args, f := i.evalArgs(e.Args, env)
	if f.kind != sigNone {
		return nil, f
	}
	inst, ok := target.(*InstanceValue)
	if !ok {
		return nil, throwFlow(wrapError(attributeError(e.Line(), "cannot call method '%s' on %s", e.Name, target.Type())), e.Line())
	}
	method, owner, ok := inst.Class.methodAt(e.Name)
	if !ok {
		return nil, throwFlow(wrapError(attributeError(e.Line(), "'%s' has no method '%s'", inst.Class.Name, e.Name)), e.Line())
	}
	return i.callMethod(method, inst, owner, e.Name, args, e.Line())
}

func (i *Interpreter) evalNewObject(e *ast.NewObject, env *Environment) (Value, flow) {
	class, ok := i.classes[e.ClassName]
	if !ok {
		return nil, throwFlow(wrapError(nameError(e.Line(), e.ClassName)), e.Line())
	}
	args, f := i.evalArgs(e.Args, env)
	if f.kind != sigNone {
		return nil, f
	}
	inst, f := i.instantiate(class, args, e.Line())
	if f.kind != sigNone {
		return nil, f
	}
	return inst, none()
}

func (i *Interpreter) evalSuper(e *ast.SuperExpr, env *Environment) (Value, flow) {
	frame := i.currentFrame()
	if frame == nil || frame.ownerClass.Parent == nil {
		return nil, throwFlow(wrapError(attributeError(e.Line(), "'upar' has no parent class to call here")), e.Line())
	}
	method, owner, ok := frame.ownerClass.Parent.methodAt(frame.methodName)
	if !ok {
		return nil, throwFlow(wrapError(attributeError(e.Line(), "parent class has no method '%s'", frame.methodName)), e.Line())
	}
	args, f := i.evalArgs(e.Args, env)
	if f.kind != sigNone {
		return nil, f
	}
	return i.callMethod(method, frame.self, owner, frame.methodName, args, e.Line())
}

func (i *Interpreter) indexGet(target, idx Value, line int) (Value, flow) {
	switch t := target.(type) {
	case *ListValue:
		n, ok := idx.(NumberValue)
		if !ok || n.IsFloat {
			return nil, throwFlow(wrapError(typeError(line, "list index must be an integer")), line)
		}
		pos := int(n.Int)
		if pos < 0 {
			pos += len(t.Elements)
		}
		if pos < 0 || pos >= len(t.Elements) {
			return nil, throwFlow(wrapError(indexError(line, "list index %d out of range", n.Int)), line)
		}
		return t.Elements[pos], none()
	case *DictValue:
		key := idx.String()
		v, ok := t.Values[key]
		if !ok {
			return nil, throwFlow(wrapError(indexError(line, "key %s not found", key)), line)
		}
		return v, none()
	case StringValue:
		n, ok := idx.(NumberValue)
		if !ok || n.IsFloat {
			return nil, throwFlow(wrapError(typeError(line, "string index must be an integer")), line)
		}
		runes := []rune(t.Value)
		pos := int(n.Int)
		if pos < 0 {
			pos += len(runes)
		}
		if pos < 0 || pos >= len(runes) {
			return nil, throwFlow(wrapError(indexError(line, "string index %d out of range", n.Int)), line)
		}
		return StringValue{Value: string(runes[pos])}, none()
	}
	return nil, throwFlow(wrapError(typeError(line, "%s is not indexable", target.Type())), line)
}

func (i *Interpreter) indexSet(target, idx, val Value, line int) flow {
	switch t := target.(type) {
	case *ListValue:
		n, ok := idx.(NumberValue)
		if !ok || n.IsFloat {
			return throwFlow(wrapError(typeError(line, "list index must be an integer")), line)
		}
		pos := int(n.Int)
		if pos < 0 {
			pos += len(t.Elements)
		}
		if pos < 0 || pos >= len(t.Elements) {
			return throwFlow(wrapError(indexError(line, "list index %d out of range", n.Int)), line)
		}
		t.Elements[pos] = val
		return none()
	case *DictValue:
		t.Set(idx.String(), val)
		return none()
	}
	return throwFlow(wrapError(typeError(line, "%s does not support item assignment", target.Type())), line)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr, env *Environment) (Value, flow) {
	left, f := i.evalExpr(e.Left, env)
	if f.kind != sigNone {
		return nil, f
	}

	switch e.Operator {
	case "aur":
		if !Truthy(left) {
			return BoolValue{Value: false}, none()
		}
		right, f := i.evalExpr(e.Right, env)
		if f.kind != sigNone {
			return nil, f
		}
		return BoolValue{Value: Truthy(right)}, none()
	case "ya":
		if Truthy(left) {
			return BoolValue{Value: true}, none()
		}
		right, f := i.evalExpr(e.Right, env)
		if f.kind != sigNone {
			return nil, f
		}
		return BoolValue{Value: Truthy(right)}, none()
	}

	right, f := i.evalExpr(e.Right, env)
	if f.kind != sigNone {
		return nil, f
	}

	switch e.Operator {
	case "+":
		return addValues(left, right, e.Line())
	case "-", "*", "/", "%":
		return arithValues(left, right, e.Operator, e.Line())
	case "==":
		return BoolValue{Value: valuesEqual(left, right)}, none()
	case "!=":
		return BoolValue{Value: !valuesEqual(left, right)}, none()
	case "<", ">", "<=", ">=":
		return compareValues(left, right, e.Operator, e.Line())
	}
	return NoneValue{}, none()
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr, env *Environment) (Value, flow) {
	operand, f := i.evalExpr(e.Operand, env)
	if f.kind != sigNone {
		return nil, f
	}
	switch e.Operator {
	case "-":
		n, ok := operand.(NumberValue)
		if !ok {
			return nil, throwFlow(wrapError(typeError(e.Line(), "unary '-' requires a number, got %s", operand.Type())), e.Line())
		}
		if n.IsFloat {
			return Float(-n.Float), none()
		}
		return Int(-n.Int), none()
	case "nahi":
		return BoolValue{Value: !Truthy(operand)}, none()
	}
	return NoneValue{}, none()
}

func addValues(l, r Value, line int) (Value, flow) {
	if ln, ok := l.(NumberValue); ok {
		if rn, ok := r.(NumberValue); ok {
			if ln.IsFloat || rn.IsFloat {
				return Float(ln.AsFloat() + rn.AsFloat()), none()
			}
			return Int(ln.Int + rn.Int), none()
		}
	}
	if ls, ok := l.(StringValue); ok {
		if rs, ok := r.(StringValue); ok {
			return StringValue{Value: ls.Value + rs.Value}, none()
		}
	}
	if ll, ok := l.(*ListValue); ok {
		if rl, ok := r.(*ListValue); ok {
			combined := make([]Value, 0, len(ll.Elements)+len(rl.Elements))
			combined = append(combined, ll.Elements...)
			combined = append(combined, rl.Elements...)
			return &ListValue{Elements: combined}, none()
		}
	}
	return nil, throwFlow(wrapError(typeError(line, "'+' requires two numbers, two strings, or two lists, got %s and %s", l.Type(), r.Type())), line)
}

func arithValues(l, r Value, op string, line int) (Value, flow) {
	ln, ok1 := l.(NumberValue)
	rn, ok2 := r.(NumberValue)
	if !ok1 || !ok2 {
		return nil, throwFlow(wrapError(typeError(line, "'%s' requires two numbers, got %s and %s", op, l.Type(), r.Type())), line)
	}
	isDivOrMod := op == "/" || op == "%"
	if isDivOrMod {
		zero := (!rn.IsFloat && rn.Int == 0) || (rn.IsFloat && rn.Float == 0)
		if zero {
			return nil, throwFlow(wrapError(divisionByZeroError(line)), line)
		}
	}
	switch op {
	case "-":
		if ln.IsFloat || rn.IsFloat {
			return Float(ln.AsFloat() - rn.AsFloat()), none()
		}
		return Int(ln.Int - rn.Int), none()
	case "*":
		if ln.IsFloat || rn.IsFloat {
			return Float(ln.AsFloat() * rn.AsFloat()), none()
		}
		return Int(ln.Int * rn.Int), none()
	case "/":
		if ln.IsFloat || rn.IsFloat {
			return Float(ln.AsFloat() / rn.AsFloat()), none()
		}
		return Int(ln.Int / rn.Int), none()
	case "%":
		if ln.IsFloat || rn.IsFloat {
			return Float(math.Mod(ln.AsFloat(), rn.AsFloat())), none()
		}
		return Int(ln.Int % rn.Int), none()
	}
	return NoneValue{}, none()
}

func compareValues(l, r Value, op string, line int) (Value, flow) {
	if ln, ok := l.(NumberValue); ok {
		if rn, ok := r.(NumberValue); ok {
			return BoolValue{Value: numCompare(ln, rn, op)}, none()
		}
	}
	if ls, ok := l.(StringValue); ok {
		if rs, ok := r.(StringValue); ok {
			return BoolValue{Value: strCompare(ls.Value, rs.Value, op)}, none()
		}
	}
	return nil, throwFlow(wrapError(typeError(line, "'%s' requires two comparable operands of the same type, got %s and %s", op, l.Type(), r.Type())), line)
}

func numCompare(a, b NumberValue, op string) bool {
	af, bf := a.AsFloat(), b.AsFloat()
	switch op {
	case "<":
		return af < bf
	case ">":
		return af > bf
	case "<=":
		return af <= bf
	case ">=":
		return af >= bf
	}
	return false
}

func strCompare(a, b string, op string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func valuesEqual(l, r Value) bool {
	switch lv := l.(type) {
	case NumberValue:
		rv, ok := r.(NumberValue)
		return ok && lv.AsFloat() == rv.AsFloat()
	case StringValue:
		rv, ok := r.(StringValue)
		return ok && lv.Value == rv.Value
	case BoolValue:
		rv, ok := r.(BoolValue)
		return ok && lv.Value == rv.Value
	case NoneValue:
		_, ok := r.(NoneValue)
		return ok
	case *ListValue:
		rv, ok := r.(*ListValue)
		if !ok || len(lv.Elements) != len(rv.Elements) {
			return false
		}
		for idx, el := range lv.Elements {
			if !valuesEqual(el, rv.Elements[idx]) {
				return false
			}
		}
		return true
	default:
		return l == r
	}
}
