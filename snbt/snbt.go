package snbt

import "github.com/MinecraftDataGenerator/mc-nbt/nbt"

// Parse decodes an SNBT string into a Node tree using the parser selected
// by profile.LegacyParser.
func Parse(s string, profile Profile) (*nbt.Node, error) {
	if profile.LegacyParser {
		return parseLegacy(s)
	}
	return parseModern(s, profile)
}
