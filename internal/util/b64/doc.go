// Package b64 implements a multi-variant Base64 codec: encoding, decoding,
// validation and best-effort cleanup of malformed input across the standard,
// URL-safe, historical RFC-style and uuencode alphabets.
//
// Decoding is deliberately lenient: characters outside the variant's
// alphabet contribute the value zero instead of failing the whole decode.
// This tolerates alphabets with intentionally skipped codepoints but can
// mask genuine corruption; use DecodeStrict when that matters.
//
// All operations are pure functions over their inputs. The only shared
// state is the per-Codec alphabet table cache, which is write-once per
// variant and safe for concurrent use.
package b64
