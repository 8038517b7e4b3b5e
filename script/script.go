// Package script runs tengo programs that drive scripted section elements.
//
// A program declares an update handler and, optionally, an on_hit handler,
// both taking the host engine and a state map that persists between runs.
// The whole program body runs on every call, so top-level code should only
// declare handlers:
//
//	update := func(engine, state) {
//		if is_undefined(state.t) { state.t = 0 }
//		state.t += 1
//		if state.t % 60 == 0 { engine.shoot(1, 180) }
//	}
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bombsim/logger"
	"github.com/sirupsen/logrus"
)

// Phases a program can handle.
const (
	PhaseUpdate = "update"
	PhaseHit    = "hit"
)

var handlerNames = map[string]string{
	PhaseUpdate: "update",
	PhaseHit:    "on_hit",
}

var declRe = regexp.MustCompile(`(?m)^\s*(update|on_hit)\s*:=`)

// ErrNoUpdate is returned by Compile for a program without an update
// handler.
var ErrNoUpdate = errors.New("script: no update handler")

// Func is a host function exposed to a program. Arguments arrive converted
// to Go values (int, float64, bool, string, []any, map[string]any) and the
// result is converted back.
type Func func(args ...any) any

// Engine is the set of host functions a program receives as its first
// handler argument.
type Engine map[string]Func

// Runtime is one compiled program and its persistent state. A runtime that
// failed once stays failed and keeps returning the first error.
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	handlers map[string]bool
	err      error
}

// Compile prepares src for running. name identifies the program in errors
// and logs.
func Compile(name string, src []byte) (*Runtime, error) {
	handlers := map[string]bool{}
	for _, m := range declRe.FindAllSubmatch(src, -1) {
		handlers[string(m[1])] = true
	}
	if !handlers["update"] {
		return nil, fmt.Errorf("script: compile %s: %w", name, ErrNoUpdate)
	}

	var dispatch strings.Builder
	dispatch.WriteString("\n")
	for phase, fn := range handlerNames {
		if handlers[fn] {
			fmt.Fprintf(&dispatch, "if __phase == %q { %s(__engine, __state) }\n", phase, fn)
		}
	}

	s := tengo.NewScript(append(append([]byte{}, src...), dispatch.String()...))
	_ = s.Add("__phase", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap("math", "text", "times"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	rt := &Runtime{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		handlers: map[string]bool{},
	}
	for phase, fn := range handlerNames {
		rt.handlers[phase] = handlers[fn]
	}
	return rt, nil
}

// Handles reports whether the program declares a handler for phase.
func (rt *Runtime) Handles(phase string) bool {
	return rt != nil && rt.handlers[phase]
}

// Err is the error that stopped the runtime, if any.
func (rt *Runtime) Err() error { return rt.err }

// State returns a copy of the program's persistent state.
func (rt *Runtime) State() map[string]any {
	out, _ := objectToAny(rt.state).(map[string]any)
	return out
}

// Run executes the handler of phase with engine. Phases the program does
// not handle are a no-op.
func (rt *Runtime) Run(phase string, engine Engine) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	if rt.err != nil {
		return rt.err
	}
	if !rt.handlers[phase] {
		return nil
	}
	if err := rt.run(phase, engine); err != nil {
		rt.err = fmt.Errorf("script: run %s %s: %w", rt.name, phase, err)
		logger.Log.WithFields(logrus.Fields{
			"script": rt.name,
			"phase":  phase,
		}).WithError(err).Error("script stopped")
		return rt.err
	}
	return nil
}

func (rt *Runtime) run(phase string, engine Engine) error {
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", buildEngine(engine)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildEngine(engine Engine) *tengo.ImmutableMap {
	values := make(map[string]tengo.Object, len(engine))
	for name, fn := range engine {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			in := make([]any, len(args))
			for i, a := range args {
				in[i] = objectToAny(a)
			}
			out := fn(in...)
			if out == nil {
				return tengo.UndefinedValue, nil
			}
			return tengo.FromInterface(out)
		}}
	}
	return &tengo.ImmutableMap{Value: values}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.ImmutableArray:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}

// Float converts a script argument to float64, accepting ints.
func Float(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

// Int converts a script argument to int, truncating floats.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// Bool converts a script argument to bool. Only true and non-zero numbers
// are true.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}

// Ints converts an array argument to a slice of ints.
func Ints(v any) []int {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, a := range arr {
		out = append(out, Int(a))
	}
	return out
}

// Arg returns args[i] or nil.
func Arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
