// Package events provides a small in-process publish/subscribe system.
// It pairs well with a service registry: services resolve the Publisher or
// Subscriber halves and stay unaware of each other.
package events

// Event is something that happened, published under a topic.
type Event interface {
	Topic() string
	Message() any
}

// New returns a plain Event carrying message under topic.
func New(topic string, message any) Event {
	return &event{topic: topic, message: message}
}

type event struct {
	message any
	topic   string
}

func (e *event) Topic() string {
	return e.topic
}

func (e *event) Message() any {
	return e.message
}

// Listener is notified of every Event published under a topic it
// subscribed to.
type Listener interface {
	OnReceive(event Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnReceive(event Event) {
	f(event)
}

// Publisher is the sending half of an event system.
type Publisher interface {
	Publish(event Event)
}

// Subscriber is the receiving half of an event system.
type Subscriber interface {
	Subscribe(topic string, receiver Listener)
	Unsubscribe(topic string, receiver Listener)
}

// EventSystem groups both halves.
type EventSystem interface {
	Publisher
	Subscriber
}
