package utility

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// MailSender chứa cấu hình SMTP để gửi email cảnh báo
type MailSender struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// Enabled cho biết sender có đủ cấu hình để gửi mail không
func (m *MailSender) Enabled() bool {
	return m != nil && m.Host != "" && m.FromEmail != ""
}

// SendHTML gửi một email HTML tới danh sách người nhận
func (m *MailSender) SendHTML(recipients []string, subject, htmlContent string) error {
	if !m.Enabled() {
		return fmt.Errorf("mail sender is not configured")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail))
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return dialer.DialAndSend(msg)
}
