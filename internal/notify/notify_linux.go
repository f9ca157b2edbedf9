//go:build linux

package notify

import (
	"fmt"
	"log"
	"os/exec"
)

// NotifySendNotifier sends Linux desktop notifications via notify-send.
// Notifications are sent in a non-blocking goroutine so slow delivery
// cannot stall the dispatcher.
type NotifySendNotifier struct {
	// enabled controls whether notifications are actually sent.
	// When false, Notify is a no-op.
	enabled bool
}

// NewNotifySendNotifier creates a new Linux notification sender.
// If enabled is false, notifications are silently dropped.
func NewNotifySendNotifier(enabled bool) *NotifySendNotifier {
	return &NotifySendNotifier{enabled: enabled}
}

// NewPlatformNotifier creates the platform-appropriate notifier for Linux.
func NewPlatformNotifier(enabled bool) Notifier {
	return NewNotifySendNotifier(enabled)
}

// Notify sends a Linux desktop notification for the given message.
// The call returns immediately; errors are logged and do not propagate.
func (n *NotifySendNotifier) Notify(msg Message) {
	if !n.enabled {
		return
	}

	title := fmt.Sprintf("ergotop: %s", msg.Title)
	body := fmt.Sprintf("%s %s", msg.Category.Icon(), msg.Body)

	urgency := "normal"
	if msg.Priority == "high" {
		urgency = "critical"
	}

	go func() {
		if err := sendNotifySend(title, body, urgency); err != nil {
			log.Printf("WARNING: failed to send Linux notification: %v", err)
		}
	}()
}

// sendNotifySend executes notify-send to display a desktop notification.
func sendNotifySend(title, body, urgency string) error {
	cmd := exec.Command("notify-send", "--urgency", urgency, "--app-name", "ergotop", title, body)
	return cmd.Run()
}
