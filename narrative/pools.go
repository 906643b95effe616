package narrative

// Phrase pools, one per axis value. Phrases are lowercase fragments; the
// renderer capitalizes whichever lands first in the sentence.

var shapeElongated = []string{
	"stretched out like a long walk on the beach",
	"reaching across the room like an outstretched hand",
	"drawn out in a slow ribbon",
	"strung out like fairy lights",
	"unrolled like a love letter",
}

var shapeCompact = []string{
	"curled up in a tight embrace",
	"folded in on itself like a warm hug",
	"huddled close like two people under one umbrella",
	"wrapped into a snug little knot",
	"packed as close as a slow dance",
}

var shapeBalanced = []string{
	"perfectly proportioned from every angle",
	"evenly poised like a well-set table",
	"balanced like a good compromise",
	"shaped with an easy symmetry",
	"neither too loose nor too tight",
}

var sizeTiny = []string{
	"a pocket-sized fold",
	"a tiny spark of chemistry",
	"a modest little molecule",
	"a short and sweet chain",
}

var sizeMedium = []string{
	"a mid-sized molecule with room to grow",
	"a comfortably sized chain",
	"a fold of respectable proportions",
	"a protein of just the right size",
}

var sizeLarge = []string{
	"a sprawling molecule with plenty to say",
	"a grand chain of many parts",
	"a generously built protein",
	"a large fold with a big heart",
}

var uniqueVery = []string{
	"unlike anything nature has tried before",
	"a shape the predictor has barely dreamed of",
	"wonderfully unpredictable",
	"one of a kind in every sense",
}

var uniqueNormal = []string{
	"with a few surprises tucked inside",
	"confident in some places and mysterious in others",
	"familiar at first glance but full of quirks",
	"mostly settled with a little mischief",
}

var uniqueFamiliar = []string{
	"built like something nature already knows",
	"as dependable as an old friend",
	"confidently recognizable",
	"reassuringly well understood",
}

var connectors = []string{
	"and",
	"yet",
	"while also being",
	"and somehow",
}
