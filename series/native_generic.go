//go:build purego || !amd64

package series

const nativeBackend = "generic"
