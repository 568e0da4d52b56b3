package email

import (
	"fmt"

	"gigportal_backend/platform/i18n"
)

const (
	subjectListingPublishedFmtEN = "Your service %q is live"
	subjectListingPublishedFmtNL = "Je dienst %q staat online"
	subjectFreelancerWelcomeEN   = "Welcome to Gigportal"
	subjectFreelancerWelcomeNL   = "Welkom bij Gigportal"
)

func listingPublishedSubject(locale, title string) string {
	return fmt.Sprintf(i18n.Pick(locale, subjectListingPublishedFmtEN, subjectListingPublishedFmtNL), title)
}

func freelancerWelcomeSubject(locale string) string {
	return i18n.Pick(locale, subjectFreelancerWelcomeEN, subjectFreelancerWelcomeNL)
}
