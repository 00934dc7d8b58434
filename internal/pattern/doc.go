// Package pattern implements the hex/text wildcard patterns used by Search
// mode: a sequence of literal-byte or wildcard pieces, parsed from either a
// hex string (nibble pairs, or ** for a wildcard byte) or a plain text
// string (bytes, or * for a wildcard byte), and matched against a rope
// range.
package pattern
