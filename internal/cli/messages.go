package cli

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Summary lines printed after a conversion. Arguments are the dependency
// count and the output path.
const (
	msgWrote     = "Wrote %d dependencies to %s\n"
	msgUnchanged = "%[2]s already up to date, rewrote %[1]d dependencies\n"
	msgUpToDate  = "%[2]s is up to date (%[1]d dependencies)\n"
)

var printer = message.NewPrinter(language.English)

func init() {
	mustSet(msgWrote, plural.Selectf(1, "%d",
		plural.One, "Wrote %[1]d dependency to %[2]s\n",
		plural.Other, "Wrote %[1]d dependencies to %[2]s\n",
	))
	mustSet(msgUnchanged, plural.Selectf(1, "%d",
		plural.One, "%[2]s already up to date, rewrote %[1]d dependency\n",
		plural.Other, "%[2]s already up to date, rewrote %[1]d dependencies\n",
	))
	mustSet(msgUpToDate, plural.Selectf(1, "%d",
		plural.One, "%[2]s is up to date (%[1]d dependency)\n",
		plural.Other, "%[2]s is up to date (%[1]d dependencies)\n",
	))
}

func mustSet(key string, msg catalog.Message) {
	if err := message.Set(language.English, key, msg); err != nil {
		panic(err)
	}
}
