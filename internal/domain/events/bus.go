// Package events is a tiny in-process bus keyed by event type. Subscribers
// run synchronously on the publisher's goroutine; a panicking subscriber
// never takes the publisher down.
package events

import (
	"reflect"
	"sync"
)

type subscriber func(any)

var (
	mu   sync.RWMutex
	subs = map[string][]subscriber{} // type name -> subscribers
)

func typeNameOf[T any]() string {
	var zero *T
	rt := reflect.TypeOf(zero).Elem() // *T -> T without dereferencing nil
	return rt.PkgPath() + "." + rt.Name()
}

// Subscribe registers fn for events of type T and returns a cancel func.
func Subscribe[T any](fn func(T)) func() {
	name := typeNameOf[T]()
	wrapped := func(v any) {
		if ev, ok := v.(T); ok {
			fn(ev)
		}
	}

	mu.Lock()
	subs[name] = append(subs[name], wrapped)
	idx := len(subs[name]) - 1
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		ss := subs[name]
		if idx >= 0 && idx < len(ss) {
			subs[name] = append(ss[:idx], ss[idx+1:]...)
		}
	}
}

// Publish delivers ev to every subscriber of its type.
func Publish[T any](ev T) {
	name := typeNameOf[T]()
	mu.RLock()
	ss := append([]subscriber(nil), subs[name]...)
	mu.RUnlock()
	for _, s := range ss {
		func() {
			defer func() {
				_ = recover()
			}()
			s(ev)
		}()
	}
}

// Count returns the number of subscribers for type T.
func Count[T any]() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(subs[typeNameOf[T]()])
}
