package languages

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/hashicorp/go-set/v2"
)

const (
	Go         = "Go"
	Java       = "Java"
	JavaScript = "JavaScript"
	C          = "C"
	Solidity   = "Solidity"
)

// Languages with a front end able to produce a syntax tree from source files.
var supported = set.From[string]([]string{Go, Java, JavaScript, C})

func IsSupported(language string) bool {
	return supported.Contains(language)
}

func Supported() []string {
	result := supported.Slice()
	sort.Strings(result)
	return result
}

// Detect returns the language of a file, based on its name only. Returns "" for
// vendored files and for languages without a front end.
func Detect(path string) string {
	if enry.IsVendor(filepath.ToSlash(path)) {
		return ""
	}

	lang, _ := enry.GetLanguageByExtension(path)
	if lang == "" {
		return ""
	}

	// .h files are reported as C++ or Objective-C too, but the C grammar copes
	if strings.EqualFold(filepath.Ext(path), ".h") {
		lang = C
	}

	if !IsSupported(lang) {
		return ""
	}

	return lang
}
