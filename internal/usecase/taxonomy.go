package usecase

// The synonym taxonomy maps a canonical search term to the literal substrings
// whose presence in a product's searchable text counts as a match for that
// term. Entries deliberately overlap ("heels" and "pumps" share synonyms);
// a product may satisfy several canonical terms at once. The table is
// assembled once at init and never mutated afterwards; new vocabulary is
// added by extending these literals, not by adding code branches.
//
// All keys and synonyms are lowercase with diacritics already stripped,
// because they are compared against Normalize'd haystacks.

var bagSynonyms = map[string][]string{
	"bag":          {"bag", "tote", "satchel", "hobo", "crossbody", "shoulder bag", "clutch", "handbag", "purse", "bucket bag", "pochette"},
	"handbag":      {"handbag", "bag", "purse", "tote", "satchel", "shoulder bag", "flap"},
	"purse":        {"purse", "handbag", "clutch", "pochette", "wallet on chain"},
	"tote":         {"tote", "shopper", "carryall", "cabas"},
	"crossbody":    {"crossbody", "cross-body", "cross body", "messenger"},
	"clutch":       {"clutch", "pochette", "evening bag", "wristlet", "minaudiere"},
	"shoulder bag": {"shoulder bag", "hobo", "flap bag", "baguette"},
	"wallet":       {"wallet", "cardholder", "card case", "card holder", "billfold", "coin purse"},
	"backpack":     {"backpack", "rucksack", "knapsack"},
}

var clothingSynonyms = map[string][]string{
	"dress":    {"dress", "gown", "midi", "maxi", "shift", "slip dress", "sundress", "sheath"},
	"gown":     {"gown", "evening dress", "ball gown"},
	"top":      {"top", "blouse", "shirt", "tee", "t-shirt", "camisole", "tank"},
	"blouse":   {"blouse", "shirt", "top", "camisole"},
	"shirt":    {"shirt", "blouse", "button-down", "button down", "oxford shirt", "tee"},
	"sweater":  {"sweater", "jumper", "pullover", "cardigan", "knit", "turtleneck"},
	"cardigan": {"cardigan", "knit", "sweater"},
	"jacket":   {"jacket", "blazer", "bomber", "moto", "windbreaker", "denim jacket"},
	"blazer":   {"blazer", "sport coat", "suit jacket"},
	"coat":     {"coat", "trench", "overcoat", "parka", "peacoat", "puffer"},
	"pants":    {"pants", "trousers", "slacks", "chinos", "wide leg"},
	"trousers": {"trousers", "pants", "slacks"},
	"jeans":    {"jeans", "denim", "jean"},
	"skirt":    {"skirt", "midi skirt", "mini skirt", "pencil skirt", "pleated skirt", "wrap skirt"},
	"shorts":   {"shorts", "bermuda", "short"},
	"suit":     {"suit", "two-piece", "two piece", "tailored", "blazer"},
	"swimsuit": {"swimsuit", "swim", "bikini", "one-piece", "one piece", "bathing suit"},
}

var shoeSynonyms = map[string][]string{
	"shoes":    {"shoe", "sneaker", "loafer", "pump", "heel", "boot", "sandal", "flat", "mule", "oxford", "trainer"},
	"sneakers": {"sneaker", "trainer", "tennis shoe", "runner", "high top", "high-top", "low top", "low-top", "slip-on"},
	"sneaker":  {"sneaker", "trainer", "tennis shoe", "runner"},
	"heels":    {"heel", "stiletto", "pump", "kitten heel", "block heel", "slingback", "platform heel"},
	"pumps":    {"pump", "stiletto", "slingback", "heel", "pointed toe"},
	"boots":    {"boot", "bootie", "ankle boot", "combat boot", "chelsea boot", "knee high boot", "knee-high boot", "riding boot"},
	"sandals":  {"sandal", "slide", "thong sandal", "gladiator", "espadrille"},
	"flats":    {"flat", "ballet flat", "ballerina", "loafer", "moccasin"},
	"loafers":  {"loafer", "moccasin", "driving shoe", "slip-on", "slip on"},
	"mules":    {"mule", "slide", "clog"},
	"wedges":   {"wedge", "wedge heel", "espadrille wedge"},
	"oxfords":  {"oxford", "brogue", "derby", "lace-up", "lace up"},
}

// The platform subgroup is the combinatorial "platform + shoe type" space:
// "platform" alone fans out to every subtype, and each two-word phrase is
// its own canonical term so exact-phrase queries resolve directly.
var platformShoeSynonyms = map[string][]string{
	"platform": {
		"platform", "flatform",
		"platform sneaker", "platform trainer", "platform tennis",
		"platform boot", "platform bootie",
		"platform heel", "platform pump", "platform stiletto",
		"platform sandal", "platform slide",
		"platform loafer", "platform mule", "platform wedge",
		"platform oxford", "platform espadrille", "platform mary jane",
	},
	"platform sneaker":      {"platform sneaker", "platform trainer", "platform tennis", "flatform sneaker"},
	"platform sneakers":     {"platform sneaker", "platform trainer", "platform tennis", "flatform sneaker"},
	"platform tennis shoes": {"platform tennis", "platform sneaker", "platform trainer"},
	"platform boot":         {"platform boot", "platform bootie", "platform ankle boot", "platform combat"},
	"platform boots":        {"platform boot", "platform bootie", "platform ankle boot", "platform combat"},
	"platform heel":         {"platform heel", "platform pump", "platform stiletto"},
	"platform heels":        {"platform heel", "platform pump", "platform stiletto"},
	"platform pump":         {"platform pump", "platform heel"},
	"platform pumps":        {"platform pump", "platform heel"},
	"platform sandal":       {"platform sandal", "platform slide", "flatform sandal"},
	"platform sandals":      {"platform sandal", "platform slide", "flatform sandal"},
	"platform loafer":       {"platform loafer", "flatform loafer", "chunky loafer", "lug sole loafer"},
	"platform loafers":      {"platform loafer", "flatform loafer", "chunky loafer", "lug sole loafer"},
	"platform mule":         {"platform mule", "flatform mule"},
	"platform mules":        {"platform mule", "flatform mule"},
	"platform wedge":        {"platform wedge", "espadrille wedge", "wedge platform"},
	"platform wedges":       {"platform wedge", "espadrille wedge", "wedge platform"},
	"platform oxford":       {"platform oxford", "platform brogue", "creeper"},
	"platform espadrille":   {"platform espadrille", "espadrille wedge"},
	"platform mary jane":    {"platform mary jane", "mary jane platform"},
}

var accessorySynonyms = map[string][]string{
	"belt":       {"belt", "waist belt", "chain belt"},
	"scarf":      {"scarf", "shawl", "wrap", "bandana", "silk square", "twilly"},
	"hat":        {"hat", "cap", "beanie", "beret", "bucket hat", "fedora"},
	"sunglasses": {"sunglasses", "shades", "eyewear"},
	"jewelry":    {"jewelry", "necklace", "bracelet", "ring", "earring", "brooch", "pendant", "bangle"},
	"necklace":   {"necklace", "pendant", "chain", "choker"},
	"bracelet":   {"bracelet", "bangle", "cuff"},
	"earrings":   {"earring", "stud", "hoop", "drop earring"},
	"watch":      {"watch", "timepiece", "chronograph"},
	"gloves":     {"glove", "mitten"},
}

// Designer-brand aliases use the same mechanism as garment categories:
// one lookup table, one algorithm. Synonyms are pre-normalized, so accent
// variants collapse to a single form.
var brandSynonyms = map[string][]string{
	"chanel":              {"chanel", "coco chanel"},
	"gucci":               {"gucci"},
	"hermes":              {"hermes"},
	"prada":               {"prada"},
	"louis vuitton":       {"louis vuitton", "vuitton"},
	"vuitton":             {"louis vuitton", "vuitton"},
	"bottega":             {"bottega veneta", "bottega"},
	"bottega veneta":      {"bottega veneta", "bottega"},
	"saint laurent":       {"saint laurent", "yves saint laurent", "ysl"},
	"ysl":                 {"saint laurent", "yves saint laurent", "ysl"},
	"balenciaga":          {"balenciaga"},
	"celine":              {"celine"},
	"dior":                {"dior", "christian dior"},
	"fendi":               {"fendi"},
	"givenchy":            {"givenchy"},
	"valentino":           {"valentino", "valentino garavani"},
	"tom ford":            {"tom ford"},
	"burberry":            {"burberry"},
	"cartier":             {"cartier"},
	"rolex":               {"rolex"},
	"tiffany":             {"tiffany"},
	"van cleef":           {"van cleef"},
	"bulgari":             {"bulgari", "bvlgari"},
	"louboutin":           {"christian louboutin", "louboutin"},
	"christian louboutin": {"christian louboutin", "louboutin"},
	"jimmy choo":          {"jimmy choo"},
	"manolo":              {"manolo blahnik", "manolo"},
	"manolo blahnik":      {"manolo blahnik", "manolo"},
	"mcqueen":             {"alexander mcqueen", "mcqueen"},
	"alexander mcqueen":   {"alexander mcqueen", "mcqueen"},
	"versace":             {"versace"},
	"armani":              {"armani", "giorgio armani", "emporio armani"},
	"miu miu":             {"miu miu"},
	"michael kors":        {"michael kors"},
	"isabel marant":       {"isabel marant"},
	"jil sander":          {"jil sander"},
	"chloe":               {"chloe"},
	"loewe":               {"loewe"},
	"goyard":              {"goyard"},
	"ferragamo":           {"ferragamo", "salvatore ferragamo"},
}

// synonymTable is the merged read-only lookup consulted by the matcher.
var synonymTable = mergeSynonymGroups(
	bagSynonyms,
	clothingSynonyms,
	shoeSynonyms,
	platformShoeSynonyms,
	accessorySynonyms,
	brandSynonyms,
)

func mergeSynonymGroups(groups ...map[string][]string) map[string][]string {
	merged := make(map[string][]string)
	for _, group := range groups {
		for term, syns := range group {
			merged[term] = syns
		}
	}
	return merged
}

// synonymsFor returns the synonym substrings registered for a canonical term.
func synonymsFor(term string) ([]string, bool) {
	syns, ok := synonymTable[term]
	return syns, ok
}

// isCanonicalTerm reports whether term is registered in the taxonomy.
// term must already be normalized.
func isCanonicalTerm(term string) bool {
	_, ok := synonymTable[term]
	return ok
}
