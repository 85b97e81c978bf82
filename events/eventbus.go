package events

import (
	"reflect"
	"sync"
)

type eventHandler struct {
	receiver Listener
}

var _ EventSystem = new(Bus)

// Bus is an in-process EventSystem. Delivery is synchronous: Publish calls
// every subscribed Listener on the calling goroutine before returning.
type Bus struct {
	handlers map[string][]*eventHandler
	lock     sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]*eventHandler),
	}
}

func (e *Bus) Publish(event Event) {
	if event == nil {
		return
	}

	e.lock.RLock()
	defer e.lock.RUnlock()

	subs, ok := e.handlers[event.Topic()]
	if !ok {
		// no subscriber ok
		return
	}

	// call all receivers
	for _, sub := range subs {
		sub.receiver.OnReceive(event)
	}
}

func (e *Bus) Subscribe(topic string, receiver Listener) {
	if receiver == nil {
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	handlers := e.handlers[topic]
	e.handlers[topic] = append(handlers, &eventHandler{receiver: receiver})
}

func (e *Bus) Unsubscribe(topic string, receiver Listener) {
	if receiver == nil {
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	handlers, ok := e.handlers[topic]
	if !ok {
		// no subscriber for this topic
		return
	}

	// find receiver
	idx := findIndex(handlers, receiver)
	if idx == -1 {
		// receiver not in list
		return
	}

	// remove receiver at position idx
	last := len(handlers) - 1
	handlers[idx] = handlers[last]
	handlers[last] = nil
	handlers = handlers[0:last]

	if len(handlers) > 0 {
		e.handlers[topic] = handlers
	} else {
		// let's remove topic entry
		delete(e.handlers, topic)
	}
}

// findIndex returns the position of receiver in handlers.
// Returns -1 if not found
func findIndex(handlers []*eventHandler, receiver Listener) int {
	for i, h := range handlers {
		if sameListener(h.receiver, receiver) {
			return i
		}
	}

	return -1
}

// sameListener compares listeners without panicking on func-typed ones,
// which == cannot handle. Two ListenerFunc values made from the same
// function literal compare equal.
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	if ta.Comparable() {
		return a == b
	}

	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return false
}
