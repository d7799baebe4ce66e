package asn1core

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases. This house style keeps every call site
terse and keeps the stdlib surface this package actually touches
visible in one place.
*/
var (
	mkerr  func(string) error = errors.New
	itoa   func(int) string   = strconv.Itoa
	join   func([]string, string) string = strings.Join
	split  func(string, string) []string = strings.Split
	hexstr func([]byte) string = hex.EncodeToString
	hasPfx func(string, string) bool = strings.HasPrefix
	hasSfx func(string, string) bool = strings.HasSuffix
	trimS  func(string) string = strings.TrimSpace
	beq    func([]byte, []byte) bool = bytes.Equal
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func fmtUint64(v uint64) string { return strconv.FormatUint(v, 10) }

func parseUint64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
