/* notify.go
 * Contains the Discord webhook notifier used to alert on retrieval
 * failures that left a team without any data.
 */

package notify

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type Notifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
}

// NewNotifier creates a webhook notifier.
// Preconditions: Receives the Discord webhook id and token
// Postconditions: Returns the notifier, or an error if either is empty
func NewNotifier(webhookID string, webhookToken string) (*Notifier, error) {
	if webhookID == "" || webhookToken == "" {
		return nil, fmt.Errorf("webhookID and webhookToken are required")
	}

	// Webhook execution needs no bot token; the session only carries the
	// REST client
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}

	return &Notifier{
		session:      session,
		webhookID:    webhookID,
		webhookToken: webhookToken,
	}, nil
}

// SendError posts an error message to the configured webhook.
// Preconditions: Receives the message text
// Postconditions: Returns an error if the webhook call fails
func (n *Notifier) SendError(message string) error {
	_, err := n.session.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Content: "**Feed generator error**\n" + message,
	})
	if err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}
	return nil
}
