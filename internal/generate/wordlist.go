package generate

// a small diceware-style list; entries are common enough to memorise
// but avoid anything on the default strength denylist
var wordlist = []string{
	"acorn", "alpine", "amber", "anchor", "antler", "apricot",
	"arrow", "aspen", "atlas", "badger", "bamboo", "banner",
	"barley", "basalt", "beacon", "bellows", "birch", "bishop",
	"blanket", "bonfire", "boulder", "bramble", "brook", "bugle",
	"cabin", "cactus", "camel", "candle", "canyon", "caravan",
	"carpet", "cedar", "cello", "chapel", "cinder", "citrus",
	"clover", "cobalt", "comet", "compass", "copper", "coral",
	"cortex", "cosmos", "cradle", "crater", "cricket", "crystal",
	"cypress", "dagger", "dahlia", "dapple", "dolphin", "dune",
	"ember", "emerald", "falcon", "fennel", "fern", "fiddle",
	"fjord", "flint", "fossil", "fresco", "galaxy", "garnet",
	"gazelle", "geyser", "ginger", "glacier", "granite", "grove",
	"harbor", "hazel", "heron", "hickory", "hollow", "ivory",
	"jasper", "juniper", "kestrel", "lagoon", "lantern", "larch",
	"lava", "lichen", "lilac", "lotus", "lunar", "magnet",
	"mahogany", "mango", "maple", "marble", "meadow", "mesa",
	"mineral", "mirror", "mosaic", "moss", "mulberry", "myrtle",
	"nebula", "nectar", "nickel", "nimbus", "oasis", "obsidian",
	"ocelot", "onyx", "opal", "orchard", "oriole", "osprey",
	"otter", "paddle", "pagoda", "papaya", "parcel", "pebble",
	"pelican", "peony", "pepper", "pigeon", "pine", "pistachio",
	"plateau", "plum", "pollen", "poplar", "prairie", "prism",
	"puffin", "quartz", "quiver", "raven", "reef", "ridge",
	"ripple", "river", "rowan", "saffron", "sage", "sandal",
	"sapphire", "satchel", "seagull", "sequoia", "shadow", "shale",
	"silver", "sorrel", "sparrow", "spruce", "summit", "sunflower",
	"tangelo", "teak", "tempest", "thistle", "timber", "topaz",
	"trellis", "trout", "tulip", "tundra", "turnip", "umber",
	"valley", "velvet", "violet", "walnut", "walrus", "willow",
	"wren", "zephyr",
}
