package exec

// PlatformCommand exposes opener command selection for tests.
func PlatformCommand(goos, rawURL string) (string, []string, error) {
	return platformCommand(goos, rawURL)
}
