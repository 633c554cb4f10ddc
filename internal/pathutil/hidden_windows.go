//go:build windows
// +build windows

package pathutil

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// MarkHidden sets the hidden attribute on Windows so the clipboard root
// (e.g. %USERPROFILE%\.xcp) stays out of Explorer listings.
func MarkHidden(path string) error {
	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	attributes, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return err
	}

	if attributes&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		return nil
	}
	return windows.SetFileAttributes(ptr, attributes|windows.FILE_ATTRIBUTE_HIDDEN)
}
