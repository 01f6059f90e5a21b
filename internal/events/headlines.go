package events

import (
	"fmt"

	"github.com/jdmills/campaigncraft/internal/rng"
)

// Headline copy per event kind, shown in the news panel and transcripts.
var templates = map[Kind][][2]string{
	KindNewsCycle: {
		{"Jobs Report Released", "Monthly employment numbers shift the narrative"},
		{"Stock Market Swing", "Market volatility becomes a campaign issue"},
		{"Inflation Data", "New inflation figures dominate the headlines"},
	},
	KindScandal: {
		{"Campaign Finance Questions", "Irregularities discovered in %s's donations"},
		{"Staff Controversy", "Senior %s staffer resigns amid allegations"},
		{"Past Statement Resurfaces", "Old posts from %s's camp cause controversy"},
	},
	KindEndorsement: {
		{"Celebrity Endorsement", "Major celebrity publicly backs %s"},
		{"Union Endorsement", "Powerful labor union announces support for %s"},
		{"Newspaper Endorsement", "Influential editorial board weighs in for %s"},
	},
	KindGaffe: {
		{"Hot Mic Moment", "%s caught saying something regrettable"},
		{"Debate Stumble", "Awkward %s moment goes viral from the debate"},
		{"Geography Gaffe", "%s mixes up local facts on the stump"},
	},
	KindViral: {
		{"Ad Goes Viral", "%s's spot resonates unexpectedly with voters"},
		{"Town Hall Moment", "Emotional exchange between %s and a voter spreads online"},
		{"Meme Magic", "%s becomes a positive internet sensation"},
	},
	KindCrisis: {
		{"Natural Disaster", "A hurricane tests %s's crisis leadership"},
		{"International Incident", "A foreign policy crisis puts %s on the spot"},
		{"Public Health Issue", "A health emergency demands a response from %s"},
	},
}

func headline(r *rng.Source, kind Kind, target string) (string, string) {
	options := templates[kind]
	if len(options) == 0 {
		return kind.String(), ""
	}
	pick := options[r.IntN(len(options))]
	detail := pick[1]
	if target != "" {
		detail = fmt.Sprintf(pick[1], target)
	}
	return pick[0], detail
}
