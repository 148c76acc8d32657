//go:build amd64 && !purego

package series

const nativeBackend = "avx"
