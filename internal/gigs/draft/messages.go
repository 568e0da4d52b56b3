package draft

import "gigportal_backend/platform/i18n"

type messageID int

const (
	msgNoFreelancer messageID = iota
	msgNoUser
	msgTitleTooShort
	msgDescriptionTooShort
	msgPriceNotPositive
	msgGeneric
)

var messages = map[messageID][2]string{
	msgNoFreelancer: {
		"You need a freelancer profile before you can add a service.",
		"Je hebt een freelancerprofiel nodig voordat je een dienst kunt toevoegen.",
	},
	msgNoUser: {
		"We could not find your account. Please sign in again.",
		"We konden je account niet vinden. Log opnieuw in.",
	},
	msgTitleTooShort: {
		"Title must be at least 10 characters.",
		"De titel moet minimaal 10 tekens bevatten.",
	},
	msgDescriptionTooShort: {
		"Description must be at least 50 characters.",
		"De beschrijving moet minimaal 50 tekens bevatten.",
	},
	msgPriceNotPositive: {
		"Package price must be greater than 0.",
		"De pakketprijs moet groter zijn dan 0.",
	},
	msgGeneric: {
		"Something went wrong. Please try again.",
		"Er is iets misgegaan. Probeer het opnieuw.",
	},
}

func message(locale string, id messageID) string {
	m := messages[id]
	return i18n.Pick(locale, m[0], m[1])
}
