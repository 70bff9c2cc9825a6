package renderer

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var englishCatalog []byte

var catalog = loadCatalog(englishCatalog)

// dynamicGet looks keys up through a function value so that vet does not
// treat translated strings as constant printf formats.
var dynamicGet = catalog.Get

func loadCatalog(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// T translates a message key. Unknown keys are returned as-is. Entries with
// verbs are formatted by the caller with fmt.Sprintf.
func T(key string) string {
	return dynamicGet(key)
}
