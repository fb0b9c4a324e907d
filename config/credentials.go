package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/skillsenselab/scribe/logger"
)

// tokenKey is the credential both the environment variable and the
// credential-file entries are named after.
const tokenKey = "HF_TOKEN"

// credentialFiles are the candidate credential files, tried in order after
// the environment variable.
var credentialFiles = []string{"../.credentials", ".credentials"}

// TokenSource yields a credential value, reporting whether one was found.
// Sources never error: a missing variable, a missing file, and a malformed
// file are all the same silent "not found".
type TokenSource func() (string, bool)

// EnvSource reads the named environment variable.
func EnvSource(key string) TokenSource {
	return func() (string, bool) {
		v := os.Getenv(key)
		return v, v != ""
	}
}

// FileSource scans a dotenv-style file for the named key. Values may be
// wrapped in double quotes; godotenv strips them. Empty values are treated
// as not found so the next candidate gets a chance.
func FileSource(path, key string) TokenSource {
	return func() (string, bool) {
		values, err := godotenv.Read(path)
		if err != nil {
			return "", false
		}
		v := values[key]
		return v, v != ""
	}
}

// ResolveToken tries each source in order and returns the first non-empty
// value. Absence is a normal outcome, not an error.
func ResolveToken(sources ...TokenSource) (string, bool) {
	for _, src := range sources {
		if v, ok := src(); ok {
			return v, true
		}
	}
	return "", false
}

// LookupHFToken resolves the HF_TOKEN credential for the sidecar:
// environment variable first, then the candidate credential files. The token
// value itself is never logged.
func LookupHFToken() (string, bool) {
	if v, ok := EnvSource(tokenKey)(); ok {
		logger.Debug("HF_TOKEN loaded from environment")
		return v, true
	}
	for _, path := range credentialFiles {
		if v, ok := FileSource(path, tokenKey)(); ok {
			logger.Info("HF_TOKEN loaded from credentials file", logger.Fields("path", path))
			return v, true
		}
	}
	logger.Warn("HF_TOKEN not found; transcription runs without diarization token")
	return "", false
}
