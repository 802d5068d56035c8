package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Roto contracts share a single version, bumped on every release that needs
// an on-chain update. 0.1.0 was the initial token-only deployment.
const (
	major = 0
	minor = 2
	patch = 0

	// Version is encoded as major*1_000_000 + minor*1_000 + patch.
	Version = major*1_000_000 + minor*1_000 + patch

	// ErrAlreadyUpdated is thrown by CheckVersion if the running contract
	// is not older than the code being installed.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion aborts update from version that is not below Version.
func CheckVersion(from int) {
	if from >= Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion adds running contract version to update data, new code
// receives it as the last deploy argument.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
