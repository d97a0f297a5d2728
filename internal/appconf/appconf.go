// Package appconf holds application-level configuration shared by the
// binaries and the test harness.
package appconf

// Environment is the operating environment the server runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unrecognized values fall back to Development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Config holds the settings for the API server.
type Config struct {
	Port      int
	Env       Environment
	DBPath    string
	RateLimit int // requests per second per client; <= 0 disables limiting
}
