//go:build !unix && !windows

package main

func terminalWidth(int) int { return 0 }
