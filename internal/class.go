package internal

import "fmt"

// Class is the Class variant: a name, its own methods, and an optional
// superclass. Grounded on the teacher's grotskyClass.go, trimmed to single
// inheritance with no static methods (not part of SPEC_FULL.md §3).
type Class struct {
	name       string
	superclass *Class
	methods    map[string]*function
}

func (c *Class) findMethod(name string) *function {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interp *Interpreter, arguments []Value, paren Token) Value {
	instance := &Instance{class: c, fields: make(map[string]Value)}
	if init := c.findMethod("init"); init != nil {
		init.bind(instance).Call(interp, arguments, paren)
	}
	return instance
}

func (c *Class) String() string {
	return c.name
}

// Instance is the Instance variant: a Class plus its own field values.
// Grounded on the teacher's grotskyObject.go get/set shape.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (o *Instance) get(interp *Interpreter, name Token) Value {
	if val, ok := o.fields[name.Lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(name.Lexeme); method != nil {
		return method.bind(o)
	}
	interp.runtimeErr(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
	return nil
}

func (o *Instance) set(name Token, value Value) {
	o.fields[name.Lexeme] = value
}

func (o *Instance) String() string {
	return fmt.Sprintf("<instanceof %s>", o.class.name)
}
