package version

const Version = "0.1.0"

var (
	// Commit and Date are set at build time with
	// -ldflags "-X github.com/sebamiro/geth/version.Commit=..."
	Commit = ""
	Date   = ""

	VersionWithMeta = Version
)

func init() {
	if Commit != "" {
		VersionWithMeta = Version + "+" + Commit
	}
}
