// Package extract recognises registration fields in free-text patient
// messages.  Each field has an ordered list of pattern alternatives; the
// first alternative that matches (and survives normalization) wins for that
// field.  Fields are extracted independently of one another and extraction
// holds no state.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"intake-chatbot/pkg"
)

// rule pairs a pattern alternative with the normalization applied to its
// capture.  A normalize returning ok == false means the alternative counts
// as non-matching and the next one is tried.
type rule struct {
	re        *regexp.Regexp
	normalize func(string) (string, bool)
}

// rules holds the pattern alternatives per field, in priority order.  The
// patterns are the Brazilian-Portuguese forms the intake bot supports; the
// address capture deliberately requires the ", number, postal-code" suffix
// (documented narrow coverage, do not broaden without a new requirement).
var rules = map[pkg.Field][]rule{
	pkg.FieldName: {
		{regexp.MustCompile(`(?i)meu nome é\s*([A-Za-zÀ-ÿ\s]+)`), trimTitle},
		{regexp.MustCompile(`(?i)chamo[-\s]*me\s*([A-Za-zÀ-ÿ\s]+)`), trimTitle},
		{regexp.MustCompile(`(?i)nome\s*[:\-]?\s*([A-Za-zÀ-ÿ\s]+)`), trimTitle},
	},
	pkg.FieldAge: {
		{regexp.MustCompile(`(?i)tenho\s*(\d{1,3})\s*anos`), validAge},
		{regexp.MustCompile(`(?i)idade\s*[:\-]?\s*(\d{1,3})`), validAge},
	},
	pkg.FieldAddress: {
		{regexp.MustCompile(`(?i)moro (?:na|no|em)\s*([A-Za-zÀ-ÿ\s]+,\s*\d+,\s*\d{5}-?\d{3})`), trimTitle},
		{regexp.MustCompile(`(?i)endere[cç]o\s*[:\-]?\s*([A-Za-zÀ-ÿ\s]+,\s*\d+,\s*\d{5}-?\d{3})`), trimTitle},
		{regexp.MustCompile(`(?i)(?:rua|avenida|av\.?)\s*([A-Za-zÀ-ÿ\s]+,\s*\d+,\s*\d{5}-?\d{3})`), trimTitle},
	},
	pkg.FieldPhone: {
		// A phone-shaped token anywhere in the message, no lead-in required.
		{regexp.MustCompile(`(\(?\d{2}\)?\s*\d{4,5}-?\d{4})`), digitsOnly},
	},
	pkg.FieldSymptoms: {
		// \b keeps "sinto" from matching inside "sintomas", which would
		// shadow the label alternative below.
		{regexp.MustCompile(`(?i)\bsinto\b\s*([A-Za-zÀ-ÿ\s,]+)`), trimCapitalize},
		{regexp.MustCompile(`(?i)estou com\s*([A-Za-zÀ-ÿ\s,]+)`), trimCapitalize},
		{regexp.MustCompile(`(?i)sintomas\s*[:\-]?\s*(.*)`), trimCapitalize},
	},
}

// Extract recognises fields in a single message.  The result contains only
// the fields found in this message; absence means "not found this turn".
func Extract(message string) pkg.Fields {
	found := make(pkg.Fields)
	for _, field := range pkg.AllFields {
		for _, r := range rules[field] {
			m := r.re.FindStringSubmatch(message)
			if m == nil {
				continue
			}
			if value, ok := r.normalize(m[1]); ok {
				found[field] = value
				break
			}
		}
	}
	return found
}

func trimTitle(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return cases.Title(language.BrazilianPortuguese).String(s), true
}

// validAge accepts ages strictly between 0 and 120; anything else is treated
// as a non-match so later alternatives still get a chance.
func validAge(s string) (string, bool) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age <= 0 || age >= 120 {
		return "", false
	}
	return strconv.Itoa(age), true
}

var nonDigit = regexp.MustCompile(`\D`)

func digitsOnly(s string) (string, bool) {
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return "", false
	}
	return digits, true
}

// trimCapitalize upper-cases the first rune and lower-cases the remainder,
// matching how the bot has always echoed symptoms back.
func trimCapitalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	first, size := utf8.DecodeRuneInString(s)
	rest := strings.ToLower(s[size:])
	return string(unicode.ToUpper(first)) + rest, true
}
