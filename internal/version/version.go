package version

// Build metadata injected at release time via -ldflags. The defaults
// apply when running from source.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
