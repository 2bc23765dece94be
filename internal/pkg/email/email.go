package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/geokjeongma/ai-server/config"
)

type Service struct {
	cfg *config.EmailConfig
}

func NewService(cfg *config.EmailConfig) *Service {
	return &Service{cfg: cfg}
}

// SendVerificationCode 이메일 인증 코드 발송
func (s *Service) SendVerificationCode(to, code string) error {
	subject := "이메일 인증 코드 - 걱정마AI"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2563eb;">이메일 인증</h2>
        <p>안녕하세요,</p>
        <p>걱정마AI 계정 가입을 위한 인증 코드입니다:</p>
        <div style="background-color: #f3f4f6; padding: 15px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">
            %s
        </div>
        <p>인증 코드는 10분 동안 유효합니다. 빠른 시간 내에 인증을 완료해 주세요.</p>
        <p>본인이 요청하지 않았다면 이 메일을 무시하셔도 됩니다.</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">이 메일은 자동으로 발송되었습니다. 회신하지 마세요.</p>
    </div>
</body>
</html>
`, code)

	return s.sendHTML(to, subject, body)
}

// SendWelcome 가입 환영 메일 발송
func (s *Service) SendWelcome(to, username string) error {
	subject := "환영합니다 - 걱정마AI"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2563eb;">환영합니다!</h2>
        <p>안녕하세요, %s님!</p>
        <p>걱정마AI에 가입해 주셔서 감사합니다.</p>
        <p>지금 바로 이용해 보세요:</p>
        <ul>
            <li>AI 콘텐츠 생성 도구와 템플릿</li>
            <li>7일 챌린저 미션으로 AI캐시 적립</li>
            <li>커뮤니티에서 소상공인들과 소통</li>
        </ul>
        <p>가입 보너스 AI캐시가 지급되었습니다!</p>
        <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
        <p style="color: #6b7280; font-size: 12px;">이 메일은 자동으로 발송되었습니다. 회신하지 마세요.</p>
    </div>
</body>
</html>
`, username)

	return s.sendHTML(to, subject, body)
}

// sendHTML HTML 메일 발송
func (s *Service) sendHTML(to, subject, body string) error {
	headers := make(map[string]string)
	headers["From"] = s.cfg.From
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
