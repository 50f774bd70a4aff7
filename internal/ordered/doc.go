// Package ordered decodes a dashboard document into a [Config]: one optional
// slot per section kind, each remembering the position at which its key
// appeared in the source.
//
// The decoder reads keys one at a time from a [document.Cursor], resolves
// each against the section registry, and only then decodes the value with
// that section's schema. Intercepting the key before the value is what makes
// source order observable; positions are assigned from a counter that
// advances once per key, recognized or not.
//
// Default policies:
//
//   - an unrecognized key is skipped, consumes a position, and is listed in
//     [Config.Skipped]
//   - a repeated section overwrites the earlier one and takes the later
//     position
//
// [WithStrict] turns both into errors ([section.ErrUnknownSection],
// [section.ErrDuplicateSection]). A document without keys always fails with
// [section.ErrEmptyDocument]. Any failure aborts the decode; no partial
// Config is returned.
package ordered
