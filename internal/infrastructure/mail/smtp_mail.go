package mail

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	SenderName string
}

// sender 메시지 발송기. gomail.Dialer 가 구현합니다.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPClient SMTP를 통한 이메일 발송 클라이언트
type SMTPClient struct {
	config SMTPConfig
	dialer sender
	logger *zap.Logger
}

// NewSMTPClient SMTP 클라이언트 생성. 587 포트는 STARTTLS 로 연결됩니다.
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// SendMail 이메일 발송
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	return m.send(ctx, m.newMessage(to, subject, body))
}

// SendMailWithAttachment 첨부 파일이 있는 이메일 발송
func (m *SMTPClient) SendMailWithAttachment(ctx context.Context, to, subject, body string, attachments map[string][]byte) error {
	msg := m.newMessage(to, subject, body)

	for name, data := range attachments {
		content := data
		msg.Attach(name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {contentType(name)},
			}),
		)
	}

	return m.send(ctx, msg)
}

func (m *SMTPClient) newMessage(to, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.From, m.config.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}

func (m *SMTPClient) send(ctx context.Context, msg *gomail.Message) error {
	to := msg.GetHeader("To")
	subject := msg.GetHeader("Subject")

	// 요청이 이미 취소된 경우 SMTP 연결을 만들지 않음
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("이메일 발송 취소: %w", err)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("이메일 발송 실패",
			zap.Strings("to", to),
			zap.Strings("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("이메일 발송 실패: %w", err)
	}

	m.logger.Info("이메일 발송 성공",
		zap.Strings("to", to),
		zap.Strings("subject", subject),
	)

	return nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
