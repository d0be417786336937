package oauth

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/denismitr/discordkit/maputils"
	"github.com/denismitr/discordkit/snowflake"
)

const authorizeEndpoint = "https://discord.com/oauth2/authorize"

type config struct {
	permissions        uint64
	hasPermissions     bool
	guild              snowflake.ID
	redirectURI        string
	scopes             []string
	disableGuildSelect bool
}

type Option func(*config)

// WithPermissions requests a permission bitset for the bot.
func WithPermissions(bits uint64) Option {
	return func(c *config) {
		c.permissions = bits
		c.hasPermissions = true
	}
}

// WithGuild preselects a guild on the authorization screen.
func WithGuild(id snowflake.ID) Option {
	return func(c *config) {
		c.guild = id
	}
}

// WithRedirectURI switches the flow to an authorization code grant
// towards the given redirect URI.
func WithRedirectURI(uri string) Option {
	return func(c *config) {
		c.redirectURI = uri
	}
}

// WithScopes overrides the default ("bot") scope list.
func WithScopes(scopes ...string) Option {
	return func(c *config) {
		c.scopes = scopes
	}
}

// WithDisabledGuildSelect stops the user from changing the guild
// dropdown. Only meaningful together with WithGuild.
func WithDisabledGuildSelect() Option {
	return func(c *config) {
		c.disableGuildSelect = true
	}
}

// AuthURL builds the OAuth2 URL for inviting the bot identified by
// clientID into guilds.
func AuthURL(clientID snowflake.ID, options ...Option) string {
	var cfg config
	for _, o := range options {
		o(&cfg)
	}

	scopes := cfg.scopes
	if len(scopes) == 0 {
		scopes = []string{"bot"}
	}

	var b strings.Builder
	b.WriteString(authorizeEndpoint)
	b.WriteString("?client_id=")
	b.WriteString(clientID.String())
	b.WriteString("&scope=")
	b.WriteString(strings.Join(scopes, "+"))

	params := map[string]string{}
	if cfg.hasPermissions {
		params["permissions"] = strconv.FormatUint(cfg.permissions, 10)
	}
	if cfg.guild != 0 {
		params["guild_id"] = cfg.guild.String()
	}
	if cfg.disableGuildSelect {
		params["disable_guild_select"] = "true"
	}

	// deterministic append order, empty values never make it in
	params = maputils.Filter(params, func(_, v string) bool { return v != "" })
	for _, key := range []string{"permissions", "guild_id", "disable_guild_select"} {
		if v, ok := params[key]; ok {
			b.WriteString("&")
			b.WriteString(key)
			b.WriteString("=")
			b.WriteString(v)
		}
	}

	if cfg.redirectURI != "" {
		b.WriteString("&response_type=code&")
		b.WriteString(url.Values{"redirect_uri": {cfg.redirectURI}}.Encode())
	}

	return b.String()
}
