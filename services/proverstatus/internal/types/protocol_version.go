package types

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ProtocolSemanticVersion is a protocol version in the `0.<minor>.<patch>` form.
// Persisted records keep minor and patch in separate columns.
type ProtocolSemanticVersion struct {
	Minor uint16
	Patch uint32
}

func NewProtocolSemanticVersion(minor, patch int64) (ProtocolSemanticVersion, error) {
	if minor < 0 || minor > int64(^uint16(0)) {
		return ProtocolSemanticVersion{}, fmt.Errorf("%w: minor %d is out of range", ErrInvalidProtocolVersion, minor)
	}
	if patch < 0 || patch > int64(^uint32(0)) {
		return ProtocolSemanticVersion{}, fmt.Errorf("%w: patch %d is out of range", ErrInvalidProtocolVersion, patch)
	}
	return ProtocolSemanticVersion{Minor: uint16(minor), Patch: uint32(patch)}, nil
}

// ParseProtocolSemanticVersion parses strings like "0.24.2".
func ParseProtocolSemanticVersion(str string) (ProtocolSemanticVersion, error) {
	version, err := semver.StrictNewVersion(str)
	if err != nil {
		return ProtocolSemanticVersion{}, fmt.Errorf("%w: %q: %w", ErrInvalidProtocolVersion, str, err)
	}
	if version.Major() != 0 {
		return ProtocolSemanticVersion{}, fmt.Errorf("%w: %q: major version must be 0", ErrInvalidProtocolVersion, str)
	}
	if version.Prerelease() != "" || version.Metadata() != "" {
		return ProtocolSemanticVersion{}, fmt.Errorf(
			"%w: %q: pre-release and metadata parts are not allowed", ErrInvalidProtocolVersion, str)
	}
	return NewProtocolSemanticVersion(int64(version.Minor()), int64(version.Patch()))
}

func (v ProtocolSemanticVersion) Semver() *semver.Version {
	return semver.New(0, uint64(v.Minor), uint64(v.Patch), "", "")
}

func (v ProtocolSemanticVersion) String() string {
	return v.Semver().String()
}

// Set implements pflag.Value.
func (v *ProtocolSemanticVersion) Set(str string) error {
	parsed, err := ParseProtocolSemanticVersion(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (*ProtocolSemanticVersion) Type() string {
	return "ProtocolSemanticVersion"
}
