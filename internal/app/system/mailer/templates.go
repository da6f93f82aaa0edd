// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// LeadNotificationData holds data for the new-lead notification email.
type LeadNotificationData struct {
	SiteName     string
	Reference    string
	Name         string
	Email        string
	Organization string
	Role         string
	Message      string
	Forwarded    bool
}

// BuildLeadNotification creates the internal notification email with both
// HTML and text bodies. The recipient is set by the caller.
func BuildLeadNotification(data LeadNotificationData) Email {
	return Email{
		Subject:  fmt.Sprintf("[%s] New contact request from %s", data.SiteName, data.Name),
		TextBody: buildLeadText(data),
		HTMLBody: buildLeadHTML(data),
	}
}

func buildLeadText(data LeadNotificationData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("New contact request (ref %s)\n\n", data.Reference))
	buf.WriteString(fmt.Sprintf("Name: %s\n", data.Name))
	buf.WriteString(fmt.Sprintf("Email: %s\n", data.Email))
	if data.Organization != "" {
		buf.WriteString(fmt.Sprintf("Organization: %s\n", data.Organization))
	}
	if data.Role != "" {
		buf.WriteString(fmt.Sprintf("Role: %s\n", data.Role))
	}
	buf.WriteString("\nMessage:\n")
	buf.WriteString(data.Message + "\n\n")
	if data.Forwarded {
		buf.WriteString("This lead was also forwarded to the form processor.\n")
	} else {
		buf.WriteString("Forwarding to the form processor FAILED; this email is the only copy.\n")
	}
	return buf.String()
}

func buildLeadHTML(data LeadNotificationData) string {
	tmpl := template.Must(template.New("lead").Parse(leadHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const leadHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>New contact request</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 24px 32px; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 20px; color: #0f172a;">{{.SiteName}}: new contact request</h1>
              <p style="margin: 4px 0 0; font-size: 13px; color: #6b7280;">Reference {{.Reference}}</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px;">
              <table role="presentation" cellspacing="0" cellpadding="0" style="font-size: 14px; color: #374151;">
                <tr><td style="padding: 4px 16px 4px 0; color: #6b7280;">Name</td><td>{{.Name}}</td></tr>
                <tr><td style="padding: 4px 16px 4px 0; color: #6b7280;">Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
                {{if .Organization}}<tr><td style="padding: 4px 16px 4px 0; color: #6b7280;">Organization</td><td>{{.Organization}}</td></tr>{{end}}
                {{if .Role}}<tr><td style="padding: 4px 16px 4px 0; color: #6b7280;">Role</td><td>{{.Role}}</td></tr>{{end}}
              </table>
              <p style="margin: 20px 0 8px; font-size: 13px; color: #6b7280;">Message</p>
              <div style="background-color: #f9fafb; border-radius: 6px; padding: 16px; font-size: 14px; color: #111827; white-space: pre-wrap;">{{.Message}}</div>
              {{if not .Forwarded}}
              <p style="margin: 20px 0 0; font-size: 13px; color: #b91c1c;">Forwarding to the form processor failed; this email is the only copy.</p>
              {{end}}
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
