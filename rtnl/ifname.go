package rtnl

import "net"

// SystemIfName resolves interface indexes on the host running the decoder.
// It is only meaningful when tracing a process in the same network namespace.
func SystemIfName(index int32) (string, bool) {
	if index <= 0 {
		return "", false
	}
	ifi, err := net.InterfaceByIndex(int(index))
	if err != nil {
		return "", false
	}
	return ifi.Name, true
}
