package email

import "fmt"

// Provider sends outbound email. Services treat it as fire-and-forget and
// must tolerate a nil provider.
type Provider interface {
	// Send delivers a single message
	Send(email *Email) error

	// SendWelcome sends the post-registration welcome message
	SendWelcome(to, firstName string) error
}

// NoopProvider is used when email is disabled
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error { return nil }

func (p *NoopProvider) SendWelcome(to, firstName string) error { return nil }

func welcomeBody(firstName string) string {
	name := firstName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s,\n\nYour CareerNode account is ready. Browse open positions or post your first job at any time.\n\n— The CareerNode team\n",
		name,
	)
}
