package vrf

// wordlist is the fixed dictionary word/phrase sampling draws from,
// grounded on the original's use of parity_wordlist::WORDS. The exact
// corpus is not part of the consensus contract (only its existence and
// determinism are), so a compact representative list is used here.
var wordlist = []string{
	"amber", "anchor", "ashen", "aspect", "atlas", "basin", "beacon", "birch",
	"borealis", "bramble", "canyon", "cedar", "cinder", "clover", "cobalt",
	"copper", "coral", "crescent", "cypress", "dapple", "dawn", "delta",
	"dune", "ember", "falcon", "feldspar", "fennel", "fern", "flint",
	"frost", "garnet", "glacier", "granite", "harbor", "hazel", "heron",
	"hollow", "indigo", "ivory", "jasper", "juniper", "kestrel", "lagoon",
	"lantern", "lichen", "linden", "lotus", "lumen", "maple", "marrow",
	"meadow", "mercury", "meridian", "mica", "moss", "nebula", "nettle",
	"nimbus", "obsidian", "ochre", "onyx", "opal", "orchid", "osprey",
	"oxide", "pebble", "petrel", "pewter", "pine", "plume", "quartz",
	"quill", "rapids", "raven", "reed", "ridge", "rime", "ripple", "rowan",
	"rust", "saffron", "sage", "sandstone", "satin", "shale", "shimmer",
	"sienna", "silt", "slate", "sliver", "sorrel", "spruce", "talon",
	"tansy", "tern", "thistle", "tidal", "timber", "topaz", "trellis",
	"tundra", "umber", "vale", "verdant", "violet", "vireo", "willow",
	"wisp", "zephyr",
}
