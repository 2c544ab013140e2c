package version

var (
	// Version is the current toolbox version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build info for -version output.
func String() string {
	return Version + " (" + GitSHA + ", built " + BuildTime + ")"
}
