package validation

import (
	"regexp"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/domain"
)

var emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// personalDomains are consumer mailbox providers. Organizations must
// register with an address on their own domain.
var personalDomains = map[string]struct{}{}

func init() {
	for _, d := range []string{
		// Google, Microsoft, Yahoo, Apple
		"gmail.com", "googlemail.com",
		"outlook.com", "hotmail.com", "live.com", "msn.com", "hotmail.co.uk", "outlook.in", "live.in",
		"yahoo.com", "yahoo.co.in", "yahoo.co.uk", "yahoo.in", "ymail.com", "rocketmail.com",
		"icloud.com", "me.com", "mac.com",
		// AOL / Verizon
		"aol.com", "aim.com", "verizon.net",
		// privacy focused
		"protonmail.com", "proton.me", "pm.me", "tutanota.com", "tutanota.de", "tutamail.com", "tuta.io",
		"hushmail.com", "mailfence.com", "startmail.com", "posteo.de", "runbox.com", "fastmail.com", "fastmail.fm",
		// mail.com vanity domains
		"mail.com", "email.com", "usa.com", "consultant.com", "engineer.com", "myself.com", "post.com",
		"writeme.com", "techie.com", "dr.com", "europe.com", "asia.com", "cheerful.com",
		// regional and legacy providers
		"zoho.com", "zohomail.com", "yandex.com", "yandex.ru", "mail.ru", "gmx.com", "gmx.net", "gmx.de",
		"web.de", "rediffmail.com", "qq.com", "163.com", "126.com", "sina.com", "naver.com", "inbox.com",
		"lycos.com", "comcast.net",
	} {
		personalDomains[d] = struct{}{}
	}
}

// ValidateEmailFormat checks the address shape only.
func ValidateEmailFormat(email string) error {
	if !emailFormat.MatchString(strings.TrimSpace(email)) {
		return domain.ErrInvalidEmailFormat
	}
	return nil
}

// ValidateEmailDomain checks the address shape and then rejects personal
// mailbox providers. The two failures carry different messages.
func ValidateEmailDomain(email string) error {
	if err := ValidateEmailFormat(email); err != nil {
		return err
	}
	if IsPersonalDomain(email) {
		return domain.ErrRestrictedEmailDomain
	}
	return nil
}

// IsPersonalDomain reports whether the domain part of email is a personal
// provider or a subdomain of one. Matching is case-insensitive and happens on
// label boundaries, so mail.gmail.com matches and notgmail.com does not.
func IsPersonalDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	d := strings.ToLower(strings.TrimSpace(email[at+1:]))
	for d != "" {
		if _, ok := personalDomains[d]; ok {
			return true
		}
		dot := strings.IndexByte(d, '.')
		if dot < 0 {
			return false
		}
		d = d[dot+1:]
	}
	return false
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
