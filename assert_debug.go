//go:build vecdev_debug

package vecdev

const debugAssertions = true
