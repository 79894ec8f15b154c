package notify

import (
	"fmt"
	"io"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

type Notification struct {
	Type        Type
	Title       string
	Description string
}

// Notifier is the toast collaborator. Fire and forget: callers never inspect
// an outcome.
type Notifier interface {
	Notify(notification Notification)
}

// TerminalNotifier prints notifications to the terminal transport.
type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(notification Notification) {
	marker := "✔"
	if notification.Type == TypeError {
		marker = "✖"
	}
	fmt.Fprintf(n.out, "\n%s %s\n  %s\n", marker, notification.Title, notification.Description)
}
