// Package color parses and formats the hex colors found in theme files.
package color
