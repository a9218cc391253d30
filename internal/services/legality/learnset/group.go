package learnset

import (
	"strings"

	"github.com/louisbranch/legality/internal/services/legality/domain/moveevo"
)

// Learn groups, one per game pairing that shares a learnset.
var (
	GroupDP   = moveevo.LearnGroup{Name: "dp", Generation: 4}
	GroupPt   = moveevo.LearnGroup{Name: "pt", Generation: 4}
	GroupHGSS = moveevo.LearnGroup{Name: "hgss", Generation: 4}
	GroupBW   = moveevo.LearnGroup{Name: "bw", Generation: 5}
	GroupB2W2 = moveevo.LearnGroup{Name: "b2w2", Generation: 5}
	GroupXY   = moveevo.LearnGroup{Name: "xy", Generation: 6}
	GroupORAS = moveevo.LearnGroup{Name: "oras", Generation: 6}
	GroupSM   = moveevo.LearnGroup{Name: "sm", Generation: 7}
	GroupUSUM = moveevo.LearnGroup{Name: "usum", Generation: 7}
	GroupSWSH = moveevo.LearnGroup{Name: "swsh", Generation: 8}
	GroupBDSP = moveevo.LearnGroup{Name: "bdsp", Generation: 8}
	GroupLA   = moveevo.LearnGroup{Name: "la", Generation: 8}
	GroupSV   = moveevo.LearnGroup{Name: "sv", Generation: 9}
)

var versionGroups = map[string]moveevo.LearnGroup{
	"d":    GroupDP,
	"p":    GroupDP,
	"pt":   GroupPt,
	"hg":   GroupHGSS,
	"ss":   GroupHGSS,
	"b":    GroupBW,
	"w":    GroupBW,
	"b2":   GroupB2W2,
	"w2":   GroupB2W2,
	"x":    GroupXY,
	"y":    GroupXY,
	"or":   GroupORAS,
	"as":   GroupORAS,
	"sn":   GroupSM,
	"mn":   GroupSM,
	"us":   GroupUSUM,
	"um":   GroupUSUM,
	"sw":   GroupSWSH,
	"sh":   GroupSWSH,
	"bd":   GroupBDSP,
	"sp":   GroupBDSP,
	"pla":  GroupLA,
	"sl":   GroupSV,
	"vl":   GroupSV,
	"dp":   GroupDP,
	"hgss": GroupHGSS,
	"bw":   GroupBW,
	"b2w2": GroupB2W2,
	"xy":   GroupXY,
	"oras": GroupORAS,
	"sm":   GroupSM,
	"usum": GroupUSUM,
	"swsh": GroupSWSH,
	"bdsp": GroupBDSP,
	"la":   GroupLA,
	"sv":   GroupSV,
}

// latestGroups is the fallback group for each format.
var latestGroups = map[moveevo.Generation]moveevo.LearnGroup{
	4: GroupHGSS,
	5: GroupB2W2,
	6: GroupORAS,
	7: GroupUSUM,
	8: GroupSWSH,
	9: GroupSV,
}

// generationGroups lists every group of a generation, oldest first.
var generationGroups = map[moveevo.Generation][]moveevo.LearnGroup{
	4: {GroupDP, GroupPt, GroupHGSS},
	5: {GroupBW, GroupB2W2},
	6: {GroupXY, GroupORAS},
	7: {GroupSM, GroupUSUM},
	8: {GroupSWSH, GroupBDSP, GroupLA},
	9: {GroupSV},
}

// Resolver maps a creature's game version to its learn group.
type Resolver struct{}

var _ moveevo.GroupResolver = Resolver{}

// CurrentGroup returns the group for c.Version when it belongs to c.Format,
// and the latest group of c.Format otherwise. Formats without a group
// resolve to the zero LearnGroup.
func (Resolver) CurrentGroup(c moveevo.Creature) moveevo.LearnGroup {
	group, ok := versionGroups[strings.ToLower(strings.TrimSpace(c.Version))]
	if ok && group.Generation == c.Format {
		return group
	}
	return latestGroups[c.Format]
}

// GroupByName returns the learn group with the given name.
func GroupByName(name string) (moveevo.LearnGroup, bool) {
	group, ok := versionGroups[strings.ToLower(strings.TrimSpace(name))]
	if !ok || group.Name != strings.ToLower(strings.TrimSpace(name)) {
		return moveevo.LearnGroup{}, false
	}
	return group, true
}
