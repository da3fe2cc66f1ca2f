package config

// SetUserHomeDirForTest swaps out how the global config layer locates the
// user's home directory, so tests can point it at a scratch dir. The
// returned function restores the real lookup.
func SetUserHomeDirForTest(fn func() (string, error)) func() {
	restore := userHomeDir
	userHomeDir = fn
	return func() {
		userHomeDir = restore
	}
}
