//go:build windows

package main

import "golang.org/x/sys/windows"

// terminalWidth returns the column count of the console on fd, or 0 when
// fd is not a console.
func terminalWidth(fd int) int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0
	}
	return int(info.Window.Right - info.Window.Left + 1)
}
