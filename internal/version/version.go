package version

// Set at build time with
//
//	-ldflags "-X github.com/vaheed/infra-ccu-info/internal/version.Version=v1.2.0 ..."
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Full returns Version, with the commit appended as build metadata and the
// build date in parentheses when they are known.
func Full() string {
	s := Version
	if Commit != "" {
		s += "+" + Commit
	}
	if BuildDate != "" {
		s += " (" + BuildDate + ")"
	}
	return s
}
