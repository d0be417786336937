package oauth

import "regexp"

var (
	inviteRe   = regexp.MustCompile(`^(?:https?://)?discord(?:\.gg|(?:app)?\.com/invite)/(.+)`)
	templateRe = regexp.MustCompile(`^(?:https?://)?discord(?:\.new|(?:app)?\.com/template)/(.+)`)
)

// ResolveInvite reduces an invite URL to its bare code. A string that
// is not an invite URL is assumed to already be a code.
func ResolveInvite(invite string) string {
	if m := inviteRe.FindStringSubmatch(invite); m != nil {
		return m[1]
	}
	return invite
}

// ResolveTemplate reduces a guild template URL to its bare code, same
// contract as ResolveInvite.
func ResolveTemplate(code string) string {
	if m := templateRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return code
}
