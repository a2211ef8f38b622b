// SPDX-License-Identifier: MIT
// Package param lets a component expose named, externally settable
// configuration values to its host application.
//
// A component declares each parameter once, binding a typed setter and getter:
//
//	s := param.NewSet()
//	param.Declare(s, "num_per_batch", r.SetNumPerBatch, r.NumPerBatch)
//
// The host then reads and writes parameters by name using their string
// rendering (s.Set("num_per_batch", "10")). Validation stays with the
// component: Set parses the string and forwards the typed value to the
// declared setter, returning whatever error the setter reports.
package param

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Sentinel errors for parameter access.
var (
	// ErrUnknown indicates a name that was never declared.
	ErrUnknown = errors.New("param: unknown parameter")

	// ErrDuplicate indicates a second declaration under an existing name.
	ErrDuplicate = errors.New("param: duplicate parameter")

	// ErrParse indicates a string value that does not parse as the parameter type.
	ErrParse = errors.New("param: cannot parse value")
)

// Value enumerates the parameter types a Set can carry.
type Value interface {
	bool | int | uint | uint64 | float64 | string
}

// Param is one named, string-addressable parameter.
type Param interface {
	Name() string
	// Value renders the current value.
	Value() string
	// SetValue parses s and forwards it to the bound setter.
	SetValue(s string) error
}

// Set is an ordered registry of parameters. Safe for concurrent use; the
// bound setters decide their own concurrency rules.
type Set struct {
	mu     sync.RWMutex
	params map[string]Param
}

// NewSet returns an empty registry.
func NewSet() *Set {
	return &Set{params: make(map[string]Param)}
}

// Declare registers a typed parameter under name.
// Returns ErrDuplicate if name is taken.
func Declare[T Value](s *Set, name string, set func(T) error, get func() T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.params[name]; ok {
		return fmt.Errorf("Declare(%q): %w", name, ErrDuplicate)
	}
	s.params[name] = &typed[T]{name: name, set: set, get: get}

	return nil
}

// Set parses value and forwards it to the parameter's setter.
func (s *Set) Set(name, value string) error {
	p, err := s.lookup(name)
	if err != nil {
		return err
	}

	return p.SetValue(value)
}

// Get renders the current value of name.
func (s *Set) Get(name string) (string, error) {
	p, err := s.lookup(name)
	if err != nil {
		return "", err
	}

	return p.Value(), nil
}

// Has reports whether name is declared.
func (s *Set) Has(name string) bool {
	_, err := s.lookup(name)
	return err == nil
}

// Names returns the declared names in ascending order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.params))
	for n := range s.params {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Apply sets every entry of values in ascending name order and stops at the
// first error. Unknown names are reported before any setter runs.
func (s *Set) Apply(values map[string]string) error {
	names := make([]string, 0, len(values))
	for n := range values {
		if !s.Has(n) {
			return fmt.Errorf("Apply(%q): %w", n, ErrUnknown)
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := s.Set(n, values[n]); err != nil {
			return err
		}
	}

	return nil
}

// Values renders every parameter, keyed by name.
func (s *Set) Values() map[string]string {
	out := make(map[string]string)
	for _, n := range s.Names() {
		v, _ := s.Get(n)
		out[n] = v
	}

	return out
}

func (s *Set) lookup(name string) (Param, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.params[name]
	if !ok {
		return nil, fmt.Errorf("param %q: %w", name, ErrUnknown)
	}

	return p, nil
}

// typed binds a Value type to its setter and getter.
type typed[T Value] struct {
	name string
	set  func(T) error
	get  func() T
}

func (p *typed[T]) Name() string { return p.name }

func (p *typed[T]) Value() string { return format(p.get()) }

func (p *typed[T]) SetValue(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return fmt.Errorf("param %q: %q: %w", p.name, s, err)
	}
	if err = p.set(v); err != nil {
		return fmt.Errorf("param %q: %w", p.name, err)
	}

	return nil
}

// parse converts s into T through the underlying kind.
func parse[T Value](s string) (T, error) {
	var (
		zero T
		out  any
		err  error
	)
	switch any(zero).(type) {
	case bool:
		out, err = strconv.ParseBool(s)
	case int:
		var v int64
		v, err = strconv.ParseInt(s, 10, 0)
		out = int(v)
	case uint:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 0)
		out = uint(v)
	case uint64:
		out, err = strconv.ParseUint(s, 10, 64)
	case float64:
		out, err = strconv.ParseFloat(s, 64)
	case string:
		out = s
	default:
		return zero, fmt.Errorf("unsupported type %T: %w", zero, ErrParse)
	}
	if err != nil {
		return zero, fmt.Errorf("%v: %w", err, ErrParse)
	}

	return out.(T), nil
}

// format renders v the way parse reads it back.
func format[T Value](v T) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
