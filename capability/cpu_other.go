//go:build !amd64 && !arm64 && !arm

package capability

// detectFeaturesImpl is a fallback implementation
// for unsupported architectures
func detectFeaturesImpl(*Features) {}
