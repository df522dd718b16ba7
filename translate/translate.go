// Package translate formats user visible messages in the caller's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is the best match for the user's locales, falling back to en-US.
var Language = sync.OnceValue(func() language.Tag {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.MatchLanguage(locales...)
})

var printer = sync.OnceValue(func() *message.Printer {
	return message.NewPrinter(Language())
})

// From formats an en-US Sprintf() style message in the user's language.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}
