package email

import (
	"bytes"
	"fmt"
	"html/template"

	"gigportal_backend/platform/i18n"
)

const baseTemplate = `{{define "email"}}<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family:Helvetica,Arial,sans-serif;color:#1f2933;background:#f5f7fa;padding:24px">
<table role="presentation" width="100%" style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px">
<tr><td>
<h1 style="font-size:22px;margin:0 0 16px">{{.Heading}}</h1>
{{template "body" .}}
{{if .CTAURL}}<p style="margin:24px 0"><a href="{{.CTAURL}}" style="background:#2563eb;color:#ffffff;padding:12px 20px;border-radius:6px;text-decoration:none">{{.CTALabel}}</a></p>{{end}}
</td></tr>
</table>
</body>
</html>{{end}}`

var bodyTemplates = map[string]string{
	"listing_published": `{{define "body"}}<p>{{.Greeting}}</p>
<p>{{.Intro}}</p>
<p><strong>{{.ListingTitle}}</strong></p>
{{if .HasQRCode}}<p>{{.QRHint}}</p>{{end}}{{end}}`,
	"freelancer_welcome": `{{define "body"}}<p>{{.Greeting}}</p>
<p>{{.Intro}}</p>{{end}}`,
}

type baseEmailData struct {
	Lang     string
	Title    string
	Heading  string
	Greeting string
	Intro    string
	CTALabel string
	CTAURL   string
}

type listingPublishedEmailData struct {
	baseEmailData
	ListingTitle string
	HasQRCode    bool
	QRHint       string
}

type freelancerWelcomeEmailData struct {
	baseEmailData
}

func renderEmailTemplate(name string, data any) (string, error) {
	body, ok := bodyTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %s", name)
	}
	tmpl, err := template.New(name).Parse(baseTemplate)
	if err == nil {
		_, err = tmpl.Parse(body)
	}
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func greeting(locale, name string) string {
	if name == "" {
		return i18n.Pick(locale, "Hi,", "Hoi,")
	}
	return i18n.Pick(locale, "Hi ", "Hoi ") + name + ","
}

func renderListingPublished(data ListingPublished) (string, error) {
	locale := i18n.Normalize(data.Locale)
	heading := i18n.Pick(locale, "Your service is live", "Je dienst staat online")
	return renderEmailTemplate("listing_published", listingPublishedEmailData{
		baseEmailData: baseEmailData{
			Lang:     locale,
			Title:    heading,
			Heading:  heading,
			Greeting: greeting(locale, data.DisplayName),
			Intro: i18n.Pick(locale,
				"Clients can now find and order the following service:",
				"Klanten kunnen de volgende dienst nu vinden en bestellen:"),
			CTALabel: i18n.Pick(locale, "View your service", "Bekijk je dienst"),
			CTAURL:   data.ShareURL,
		},
		ListingTitle: data.Title,
		HasQRCode:    len(data.QRCode) > 0,
		QRHint: i18n.Pick(locale,
			"The attached QR code links straight to your service. Print it on flyers or business cards.",
			"De bijgevoegde QR-code linkt direct naar je dienst. Zet hem op flyers of visitekaartjes."),
	})
}

func renderFreelancerWelcome(data FreelancerWelcome) (string, error) {
	locale := i18n.Normalize(data.Locale)
	heading := i18n.Pick(locale, "Welcome to Gigportal", "Welkom bij Gigportal")
	return renderEmailTemplate("freelancer_welcome", freelancerWelcomeEmailData{
		baseEmailData: baseEmailData{
			Lang:     locale,
			Title:    heading,
			Heading:  heading,
			Greeting: greeting(locale, data.DisplayName),
			Intro: i18n.Pick(locale,
				"Your freelancer profile is ready. Add your first service so clients can hire you.",
				"Je freelancerprofiel is klaar. Voeg je eerste dienst toe zodat klanten je kunnen inhuren."),
			CTALabel: i18n.Pick(locale, "Add a service", "Dienst toevoegen"),
			CTAURL:   data.DashboardURL,
		},
	})
}
