// Package zuid builds short, URL-safe, collision-resistant string identifiers.
//
// A Factory is configured once per entity that needs ids and is then called
// repeatedly. Each id is laid out as
//
//	prefix + [timestamp] + random
//
// where every segment after the prefix is written in the factory's charset
// (62 alphanumeric symbols by default) and left-padded with the charset's zero
// symbol to a fixed width. Ids of one factory therefore always have the same
// length, and timestamped ids sort lexicographically in generation order.
//
// Two sizing modes exist and are never mixed:
//
//   - Byte mode (Config.EntropySize): a fixed number of random bytes is read,
//     interpreted as one big-endian integer and encoded. The id length is the
//     smallest width able to hold 2^(8*EntropySize)-1, or an explicit
//     Config.Length at least that large.
//   - Character mode (Config.Chars): every output position is drawn
//     independently and uniformly from the charset. There is no encoding
//     waste, but the random segment is not a single uniformly drawn integer.
//
// A Factory holds no mutable state and is safe for concurrent use.
package zuid
