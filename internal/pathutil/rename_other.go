//go:build !unix && !windows

package pathutil

func isCrossDevice(err error) bool {
	return false
}
