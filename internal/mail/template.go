package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Kukaas/marketplace/internal/common"
)

const (
	SellerSubject = "You have a new message on Marketplace"
	BuyerSubject  = "Your message was sent"
)

// One fixed card layout for every notification; only the inner content
// and the optional reply target vary.
var cardTemplate = template.Must(template.New("card").Parse(`<div style="font-family: Arial, sans-serif; background: #f0f2f5; padding: 32px;">
  <div style="max-width: 480px; margin: 0 auto; background: #fff; border-radius: 10px; box-shadow: 0 2px 8px #0001; padding: 24px;">
    <div style="font-size: 22px; font-weight: bold; color: #1877f2; margin-bottom: 12px;">Marketplace</div>
    <div style="margin-bottom: 18px; color: #222; font-size: 16px;">{{.Content}}</div>
    {{if .ReplyTo}}<a href="mailto:{{.ReplyTo}}" style="display: inline-block; background: #1877f2; color: #fff; font-weight: bold; padding: 10px 24px; border-radius: 6px; text-decoration: none; font-size: 16px;">Reply</a>{{end}}
  </div>
  <div style="text-align: center; color: #888; font-size: 12px; margin-top: 24px;">This is an automated message from Marketplace.</div>
</div>`))

var quotedMessage = template.Must(template.New("quote").Parse(`<div style="background:#f0f2f5;border-radius:8px;padding:12px 16px;margin:12px 0;font-size:15px;border:1px solid #e4e6eb;">{{.}}</div>`))

type cardData struct {
	Content template.HTML
	ReplyTo string
}

func renderCard(content template.HTML, replyTo string) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, cardData{Content: content, ReplyTo: replyTo}); err != nil {
		return "", fmt.Errorf("render email card: %w", err)
	}
	return buf.String(), nil
}

func renderQuote(message string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := quotedMessage.Execute(&buf, message); err != nil {
		return "", fmt.Errorf("render quoted message: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// SellerNotification builds the email sent to the listing owner. The
// buyer's address doubles as the reply target.
func SellerNotification(payload common.MessageEmailPayload) (string, error) {
	quote, err := renderQuote(payload.Message)
	if err != nil {
		return "", err
	}

	content := template.HTML(fmt.Sprintf(
		`You received a new message for your listing:<br>%s<div style="margin-top:8px;">From: <b>%s</b></div>`,
		quote,
		template.HTMLEscapeString(payload.BuyerEmail),
	))
	return renderCard(content, payload.BuyerEmail)
}

// BuyerConfirmation builds the confirmation email echoed back to the
// buyer. It carries no reply button.
func BuyerConfirmation(payload common.MessageEmailPayload) (string, error) {
	quote, err := renderQuote(payload.Message)
	if err != nil {
		return "", err
	}

	content := template.HTML(fmt.Sprintf(
		`Your message to the seller was received. They will reply soon.<br>%s`,
		quote,
	))
	return renderCard(content, "")
}
