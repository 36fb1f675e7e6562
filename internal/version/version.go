package version

// Set at build time with -ldflags "-X github.com/memelaunch/launcher/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)
