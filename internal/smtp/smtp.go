package smtp

import (
	"context"
	"fmt"

	"github.com/JMURv/authcore/internal/config"
	md "github.com/JMURv/authcore/internal/models"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	server string
	port   int
	user   string
	pass   string
	base   string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		base:   fmt.Sprintf("%s://%s:%d", conf.Server.Scheme, conf.Server.Domain, conf.Server.Port),
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

// SendLinkToken delivers a one-time token to its owner. This is the default
// token-delivery capability; tests swap it for a callback.
func (s *EmailServer) SendLinkToken(_ context.Context, t *md.LinkToken) error {
	var m *gomail.Message
	switch t.Purpose {
	case md.PurposePasswordReset:
		m = s.GetMessageBase("Reset your password", t.Email)
		m.SetBody(
			"text/plain",
			fmt.Sprintf("Use this token to reset your password: %s", t.Token),
		)
	case md.PurposeVerifyEmail:
		m = s.GetMessageBase("Verify your email", t.Email)
		m.SetBody(
			"text/plain",
			fmt.Sprintf("Follow the link to verify your email: %s/auth/verify-email?token=%s", s.base, t.Token),
		)
	default:
		m = s.GetMessageBase("Your sign-in link", t.Email)
		m.SetBody(
			"text/plain",
			fmt.Sprintf("Follow the link to sign in: %s/auth/magic-link/verify?token=%s", s.base, t.Token),
		)
	}

	return s.Send(m)
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
