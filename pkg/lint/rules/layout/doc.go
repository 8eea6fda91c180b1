// Package layout contains rules about the indentation of source lines.
package layout
