package version

var (
	Version    = "0.1.0"
	Prerelease = "dev"
)

func String() string {
	if Prerelease != "" {
		return Version + "-" + Prerelease
	}
	return Version
}
