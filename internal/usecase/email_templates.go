package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Fjodor83/MyFidelityCard/internal/usecase/dto"
)

// 메일 제목
const (
	subjectRegistration  = "🎁 Completa la tua registrazione Fidelity Card"
	subjectProfileAccess = "🔑 Accedi alla tua area personale Fidelity Card"
	subjectWelcomeFormat = "🎉 Benvenuto %s! La tua Fidelity Card è pronta"
)

const emailStyle = `
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
        .container { max-width: 600px; margin: 30px auto; background-color: #ffffff; border-radius: 10px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #105a12 0%, #053e30 100%); color: white; padding: 40px 20px; text-align: center; }
        .header h1 { margin: 0; font-size: 28px; }
        .content { padding: 40px 30px; }
        .content h2 { color: #333; margin-top: 0; }
        .content p { color: #666; line-height: 1.6; font-size: 16px; }
        .info-box { background-color: #f8f9fa; border-left: 4px solid #105a12; padding: 15px; margin: 20px 0; }
        .code-box { background: linear-gradient(135deg, #105a12 0%, #053e30 100%); color: white; padding: 30px; text-align: center; border-radius: 10px; margin: 30px 0; }
        .code { font-size: 36px; font-weight: bold; letter-spacing: 3px; }
        .button { background-color: #105a12; border-radius: 5px; padding: 15px 40px; }
        .button a { color: #ffffff; font-size: 16px; font-weight: bold; text-decoration: none; }
        .footer { background-color: #f8f9fa; padding: 20px; text-align: center; color: #999; font-size: 14px; }`

const footer = `
        <div class='footer'>
            <p>© Suns - Zero&amp;Company. Tutti i diritti riservati.</p>
        </div>`

var registrationTemplate = template.Must(template.New("registration").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>☀️ Suns - Zero&amp;Company</h1>
            <p>La tua Fidelity Card ti aspetta!</p>
        </div>
        <div class='content'>
            <h2>Ciao! 👋</h2>
            <p>Per completare la tua registrazione presso <strong>{{.StoreName}}</strong> e ricevere la tua Suns Fidelity Card digitale, clicca sul pulsante qui sotto:</p>
            <table border='0' cellpadding='0' cellspacing='0' style='margin: 20px auto;'>
                <tr><td align='center' class='button'><a href='{{.Link}}'>COMPLETA REGISTRAZIONE</a></td></tr>
            </table>
            <div class='info-box'>
                <p style='margin: 0;'><strong>⏰ Attenzione:</strong> Questo link è valido per <strong>{{.ExpireMinutes}} minuti</strong>.</p>
                <p>Se non riesci a cliccare il pulsante, copia questo link nel tuo browser:</p>
                <p style='word-break: break-all; color: #105a12;'>{{.Link}}</p>
            </div>
        </div>` + footer + `
    </div>
</body>
</html>`))

var profileAccessTemplate = template.Must(template.New("profile_access").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>☀️ Fidelity Card</h1>
            <p>Bentornato!</p>
        </div>
        <div class='content'>
            <h2>Ciao {{.FirstName}}! 👋</h2>
            <p>Abbiamo ricevuto una richiesta di accesso alla tua area personale.</p>
            <table border='0' cellpadding='0' cellspacing='0' style='margin: 20px auto;'>
                <tr><td align='center' class='button'><a href='{{.Link}}'>ACCEDI AL PROFILO</a></td></tr>
            </table>
            <div class='info-box'>
                <p style='margin: 0;'><strong>⏰ Link valido per {{.ExpireMinutes}} minuti.</strong></p>
                <p>Se non hai richiesto tu l'accesso, puoi ignorare questa email.</p>
            </div>
        </div>` + footer + `
    </div>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>☀️ Benvenuto in Suns!</h1>
            <p>La tua Fidelity Card è attiva</p>
        </div>
        <div class='content'>
            <h2>Ciao {{.FirstName}}! 🎉</h2>
            <p>La tua registrazione{{if .StoreName}} presso <strong>{{.StoreName}}</strong>{{end}} è stata completata con successo!</p>
            <div class='code-box'>
                <h2>Il tuo Codice Fidelity</h2>
                <div class='code'>{{.Code}}</div>
            </div>
            <p><strong>📱 La tua card digitale è allegata a questa email.</strong></p>
            <div class='info-box'>
                <h3 style='color: #333; margin-top: 0;'>✨ I tuoi vantaggi:</h3>
                <ul>
                    <li><strong>Accumula punti</strong> ad ogni acquisto</li>
                    <li><strong>Sconti esclusivi</strong> riservati ai membri</li>
                    <li><strong>Promozioni speciali</strong> in anteprima</li>
                </ul>
            </div>
        </div>` + footer + `
    </div>
</body>
</html>`))

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%s 템플릿 렌더링 실패: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func renderRegistrationEmail(data dto.RegistrationEmailData) (string, error) {
	return renderTemplate(registrationTemplate, data)
}

func renderProfileAccessEmail(data dto.ProfileAccessEmailData) (string, error) {
	return renderTemplate(profileAccessTemplate, data)
}

func renderWelcomeEmail(data dto.WelcomeEmailData) (string, error) {
	return renderTemplate(welcomeTemplate, data)
}
