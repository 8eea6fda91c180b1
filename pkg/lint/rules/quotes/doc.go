// Package quotes contains rules about the quote characters of string,
// template and JSX attribute literals. Fixes go through
// rewrite.ConvertQuotes, so a converted literal always denotes the same
// value; literals that cannot be converted safely are reported without a
// fix.
package quotes
