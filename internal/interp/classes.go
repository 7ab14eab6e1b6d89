package interp

// selfFrame tracks the receiver and the class a currently-executing
// method was resolved on, so `yeh` and `upar(args)` can be evaluated
// without threading extra parameters through every call.
type selfFrame struct {
	self       *InstanceValue
	ownerClass *ClassValue
	methodName string
}

// methodAt resolves name by walking the class chain parent-ward and also
// reports the class the method was actually found on, which becomes the
// new ownerClass for any further `upar` call made from inside it.
func (c *ClassValue) methodAt(name string) (*FunctionValue, *ClassValue, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.Methods[name]; ok {
			return m, cls, true
		}
	}
	return nil, nil, false
}

// instantiate allocates a fresh instance and, if the class chain defines
// `__init__`, invokes it bound to the new instance.
func (i *Interpreter) instantiate(class *ClassValue, args []Value, line int) (*InstanceValue, flow) {
	inst := NewInstance(class)
	if init, owner, ok := class.methodAt("__init__"); ok {
		_, f := i.callMethod(init, inst, owner, "__init__", args, line)
		if f.kind != sigNone {
			return nil, f
		}
	}
	return inst, none()
}

// callMethod invokes fn (already resolved to ownerClass) bound to self,
// pushing a selfFrame so `yeh`/`upar` resolve correctly for the duration
// of the call.
func (i *Interpreter) callMethod(fn *FunctionValue, self *InstanceValue, ownerClass *ClassValue, name string, args []Value, line int) (Value, flow) {
	i.frames = append(i.frames, selfFrame{self: self, ownerClass: ownerClass, methodName: name})
	defer func() { i.frames = i.frames[:len(i.frames)-1] }()
	return i.invoke(fn, args, line)
}

// currentFrame returns the innermost active method frame, or nil outside
// any method body (semantic analysis already rejects `yeh`/`upar` there,
// but a nil check keeps the interpreter itself total).
func (i *Interpreter) currentFrame() *selfFrame {
	if len(i.frames) == 0 {
		return nil
	}
	return &i.frames[len(i.frames)-1]
}

// resolveProperty reads target.name: own fields first, then a bound
// method from the class chain.
func (i *Interpreter) resolveProperty(target *InstanceValue, name string, line int) (Value, flow) {
	if v, ok := target.Fields[name]; ok {
		return v, none()
	}
	if m, _, ok := target.Class.methodAt(name); ok {
		return m, none()
	}
	return nil, throwFlow(wrapError(attributeError(line, "'%s' has no property or method '%s'", target.Class.Name, name)), line)
}
