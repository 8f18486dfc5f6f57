// Package config resolves lessonmark settings from defaults, config.toml
// and LESSONMARK_* environment variables.
package config

// ConfigOption describes a configuration key and its default.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration keys, their defaults and
// meanings. It is the single source of truth for defaults.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "api_url", Default: "http://localhost:8000", Comment: "Platform server URL; requests go to api_url/api"},
		{Key: "token", Default: "", Comment: "Bearer token from `lessonmark login` or the web client"},

		{Key: "render.escape_prose_text", Default: false, Comment: "Escape HTML in prose when rendering lessons"},
		{Key: "render.sanitize", Default: false, Comment: "Filter rendered lesson HTML through a UGC allow-list"},
		{Key: "preview.width", Default: 80, Comment: "Wrap width for terminal previews; 0 uses 80"},
		{Key: "chat.poll_interval", Default: "5s", Comment: "How often the chat window polls for new messages"},

		{Key: "serve.addr", Default: ":8080", Comment: "Listen address for the render service"},
		{Key: "redis.addr", Default: "", Comment: "Redis address for the render cache; empty disables caching"},
		{Key: "redis.ttl", Default: "24h", Comment: "Expiry for cached fragments; 0 keeps them until evicted"},

		{Key: "log.level", Default: "info", Comment: "debug, info, warn or error"},
		{Key: "transcript_dir", Default: "", Comment: "Where chat transcripts are saved; defaults to ~/.lessonmark/transcripts"},
	}
}
