package publish

import "strings"

// teamHandles maps scoreboard abbreviations to social handles for captions.
var teamHandles = map[string]string{
	"ATL":  "@ATLHawks",
	"BOS":  "@celtics",
	"BKN":  "@BrooklynNets",
	"CHA":  "@hornets",
	"CHI":  "@chicagobulls",
	"CLE":  "@cavs",
	"DAL":  "@dallasmavs",
	"DEN":  "@nuggets",
	"DET":  "@DetroitPistons",
	"GS":   "@warriors",
	"HOU":  "@HoustonRockets",
	"IND":  "@Pacers",
	"LAC":  "@LAClippers",
	"LAL":  "@Lakers",
	"MEM":  "@memgrizz",
	"MIA":  "@MiamiHEAT",
	"MIL":  "@Bucks",
	"MIN":  "@Timberwolves",
	"NO":   "@PelicansNBA",
	"NY":   "@nyknicks",
	"OKC":  "@OKCThunder",
	"ORL":  "@OrlandoMagic",
	"PHI":  "@sixers",
	"PHX":  "@Suns",
	"POR":  "@trailblazers",
	"SAC":  "@SacramentoKings",
	"SA":   "@spurs",
	"TOR":  "@Raptors",
	"UTAH": "@utahjazz",
	"WSH":  "@WashWizards",
}

// Handle returns the social handle for a team abbreviation, falling back to
// the raw abbreviation when unknown.
func Handle(abbrev string) string {
	if handle, ok := teamHandles[strings.ToUpper(abbrev)]; ok {
		return handle
	}
	return abbrev
}
