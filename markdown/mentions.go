package markdown

import (
	"regexp"

	"github.com/denismitr/discordkit/snowflake"
)

var (
	mentionRe        = regexp.MustCompile(`@(everyone|here|[!&]?[0-9]{17,20})`)
	userMentionRe    = regexp.MustCompile(`<@!?([0-9]+)>`)
	channelMentionRe = regexp.MustCompile(`<#([0-9]+)>`)
	roleMentionRe    = regexp.MustCompile(`<@&([0-9]+)>`)
)

// EscapeMentions defuses everyone, here, user and role mentions by
// inserting a zero-width space after the @. Channel mentions are left
// alone, they ping nobody.
func EscapeMentions(text string) string {
	return mentionRe.ReplaceAllString(text, "@\u200b$1")
}

// Mentions returns the user IDs mentioned as <@id> or <@!id> in text.
func Mentions(text string) []snowflake.ID {
	return extract(userMentionRe, text)
}

// ChannelMentions returns the channel IDs mentioned as <#id> in text.
func ChannelMentions(text string) []snowflake.ID {
	return extract(channelMentionRe, text)
}

// RoleMentions returns the role IDs mentioned as <@&id> in text.
func RoleMentions(text string) []snowflake.ID {
	return extract(roleMentionRe, text)
}

func extract(re *regexp.Regexp, text string) []snowflake.ID {
	var ids []snowflake.ID
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		id, err := snowflake.Parse(m[1])
		if err != nil {
			// longer than 64 bits, cannot be a real ID
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
