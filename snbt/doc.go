// Package snbt implements SNBT, the stringified text dialect of NBT used
// by Minecraft commands and debug output.
//
// Six version Profiles are provided (V1_7 through V1_21_5); each selects
// a legacy string-splitting parser or a modern cursor-based recursive
// descent parser, plus flags for single-quote support, numeric type
// suffixes, and typed-array syntax (only the single-quote flag changes
// parsing or writing). Parse dispatches to the right parser for a Profile;
// Write uses the modern serializer rules for every Profile, except that
// the legacy Profiles write compound keys raw.
package snbt
