package main

import (
	"fmt"
	"strings"
)

type command uint8

const (
	cmdUncover command = iota + 1
	cmdFlag
	cmdQuit
	cmdLast
)

func (c command) key() string {
	switch c {
	case cmdUncover:
		return "u"
	case cmdFlag:
		return "f"
	case cmdQuit:
		return "q"
	default:
		return ""
	}
}

func (c command) String() string {
	switch c {
	case cmdUncover:
		return "uncover"
	case cmdFlag:
		return "flag"
	case cmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

var errBadCommand error

func init() {
	var keys []string
	for c := cmdUncover; c < cmdLast; c++ {
		keys = append(keys, "'"+c.key()+"'")
	}
	errBadCommand = fmt.Errorf("command must be one of %s", strings.Join(keys, ", "))
}

func decodeCommand(s string) (command, error) {
	s = strings.ToLower(s)
	for c := cmdUncover; c < cmdLast; c++ {
		if s == c.key() || s == c.String() {
			return c, nil
		}
	}
	return 0, errBadCommand
}
