// Package events relays "game changed" notifications from the writers of a
// game to everyone watching it. Notifications carry only the game id;
// subscribers reload the game themselves.
package events

import "context"

// Notifier announces that the game with the given id changed.
type Notifier interface {
	Notify(ctx context.Context, id string) error
}

// Subscriber delivers change notifications for one game. The channel is
// closed after the returned cancel func is called or ctx ends.
type Subscriber interface {
	Subscribe(ctx context.Context, id string) (<-chan string, func())
}

// Relay is both ends of a notification backend.
type Relay interface {
	Notifier
	Subscriber
	Close() error
}
