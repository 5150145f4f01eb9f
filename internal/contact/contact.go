// Package contact implements the mailto button.
package contact

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ncruces/zenity"
)

var ErrNoAddress = errors.New("no contact address configured")

// MailtoURL builds a mailto link. Spaces in the subject become %20 rather
// than '+', which mail clients show literally.
func MailtoURL(address, subject string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrNoAddress
	}
	u := url.URL{Scheme: "mailto", Opaque: address}
	if subject != "" {
		u.RawQuery = "subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	}
	return u.String(), nil
}

// Button asks for confirmation and opens the mail client.
type Button struct {
	Address string
	Subject string

	// confirm and open are swapped out in tests
	confirm func(address string) error
	open    func(link string) error
}

func NewButton(address, subject string) *Button {
	return &Button{
		Address: address,
		Subject: subject,
		confirm: confirmDialog,
		open:    openURL,
	}
}

// Press runs the whole interaction. A cancelled dialog is not an error.
func (b *Button) Press() error {
	link, err := MailtoURL(b.Address, b.Subject)
	if err != nil {
		return err
	}
	if err := b.confirm(b.Address); err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("contact dialog: %w", err)
	}
	if err := b.open(link); err != nil {
		return fmt.Errorf("open %s: %w", link, err)
	}
	log.Printf("[Contact] opened %s", link)
	return nil
}

func confirmDialog(address string) error {
	return zenity.Question(
		"Send an email to "+address+"?",
		zenity.Title("Contact"),
		zenity.OKLabel("Open mail client"),
		zenity.CancelLabel("Cancel"),
	)
}

func openURL(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	case "darwin":
		cmd = exec.Command("open", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	return cmd.Start()
}
