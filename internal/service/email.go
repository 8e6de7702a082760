package service

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/models"
)

// Mailer sends one HTML message, optionally with an inline PNG
type Mailer interface {
	Send(to, subject, htmlBody string, inlinePNG []byte) error
}

// SMTPMailer delivers mail through the configured relay with gomail.
// Without a relay the message is logged instead.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	m := &SMTPMailer{from: cfg.MailFrom}
	if cfg.MailEnabled() {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return m
}

// InlineImageID is the Content-ID of the inline PNG
const InlineImageID = "reservation_qr"

func (m *SMTPMailer) Send(to, subject, htmlBody string, inlinePNG []byte) error {
	if m.dialer == nil {
		log.Printf("SMTP not configured, logging email to=%s subject=%q", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if len(inlinePNG) > 0 {
		msg.Embed(InlineImageID+".png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(inlinePNG)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<" + InlineImageID + ">"},
			"Content-Disposition": {"inline"},
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// EmailService renders and sends the member facing mails
type EmailService struct {
	mailer  Mailer
	baseURL string
}

func NewEmailService(mailer Mailer, baseURL string) *EmailService {
	return &EmailService{mailer: mailer, baseURL: baseURL}
}

var _ IEmailService = (*EmailService)(nil)

var verificationMail = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>メール認証</title></head>
<body>
<p>{{.Name}} 様</p>
<p>NAGOYAMESHIへの会員登録ありがとうございます。以下のリンクをクリックして、会員登録を完了してください。</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
</body></html>`))

var reservationMail = template.Must(template.New("reservation").Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>予約完了</title></head>
<body>
<p>{{.Name}} 様</p>
<p>以下の内容で予約を承りました。</p>
<table>
<tr><th>店舗名</th><td>{{.Restaurant}}</td></tr>
<tr><th>来店日時</th><td>{{.Date}} {{.Time}}</td></tr>
<tr><th>来店人数</th><td>{{.People}}名</td></tr>
</table>
<p>来店時に以下のQRコードをご提示ください。</p>
<p><img src="cid:{{.ImageID}}" alt="QR"></p>
</body></html>`))

// SendVerificationEmail mails the signup confirmation link
func (s *EmailService) SendVerificationEmail(user *models.User, token string) error {
	var body bytes.Buffer
	err := verificationMail.Execute(&body, map[string]string{
		"Name": user.Name,
		"URL":  fmt.Sprintf("%s/signup/verify?token=%s", s.baseURL, token),
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(user.Email, "メール認証", body.String(), nil)
}

// SendReservationConfirmation mails the reservation summary with its QR code
func (s *EmailService) SendReservationConfirmation(user *models.User, restaurant *models.Restaurant, reservation *models.Reservation, qr []byte) error {
	var body bytes.Buffer
	err := reservationMail.Execute(&body, map[string]interface{}{
		"Name":       user.Name,
		"Restaurant": restaurant.Name,
		"Date":       reservation.ReservationDate.Format("2006年01月02日"),
		"Time":       reservation.ReservationTime,
		"People":     reservation.NumberOfPeople,
		"ImageID":    InlineImageID,
	})
	if err != nil {
		return err
	}
	return s.mailer.Send(user.Email, "予約完了のお知らせ", body.String(), qr)
}
