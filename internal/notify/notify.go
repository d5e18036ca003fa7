// Package notify fans out new-listing notifications to recorded leads.
// The fan-out is fire-and-forget: a delivery failure is logged and never
// surfaces to the request that triggered it.
package notify

import (
	"fmt"

	"estates-backend/internal/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

type NewListing struct {
	PropertyID uint
	Title      string
	City       string
	Price      *float64
}

type Notifier interface {
	NotifyNewListing(listing NewListing, leads []models.Lead) error
}

type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *SendGridNotifier) NotifyNewListing(listing NewListing, leads []models.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	subject, body := buildListingMessage(listing)
	from := mail.NewEmail(n.fromName, n.fromEmail)

	var failed int
	for _, lead := range leads {
		to := mail.NewEmail(lead.Name, lead.Email)
		msg := mail.NewSingleEmail(from, subject, to, body, body)
		resp, err := n.client.Send(msg)
		if err != nil {
			failed++
			logrus.WithError(err).WithField("lead_id", lead.ID).Warn("notification send failed")
			continue
		}
		if resp.StatusCode >= 400 {
			failed++
			logrus.WithFields(logrus.Fields{
				"lead_id": lead.ID,
				"status":  resp.StatusCode,
			}).Warn("notification rejected by provider")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d notifications failed", failed, len(leads))
	}
	return nil
}

func buildListingMessage(listing NewListing) (subject, body string) {
	subject = "New listing: " + listing.Title
	body = fmt.Sprintf("A new property %q is now listed.", listing.Title)
	if listing.City != "" {
		body += " Location: " + listing.City + "."
	}
	if listing.Price != nil {
		body += fmt.Sprintf(" Expected price: %.0f.", *listing.Price)
	}
	return subject, body
}

// NopNotifier is used when no mail provider is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyNewListing(NewListing, []models.Lead) error {
	return nil
}
