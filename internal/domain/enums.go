package domain

// EntityKind identifies which catalogue an entity slug belongs to.
type EntityKind string

const (
	EntityKindDomain  EntityKind = "domain"
	EntityKindProject EntityKind = "project"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindDomain, EntityKindProject:
		return true
	}
	return false
}

// ParseEntityKind accepts both the singular kind and the plural route segment
// ("domains", "projects").
func ParseEntityKind(s string) (EntityKind, bool) {
	switch s {
	case "domain", "domains":
		return EntityKindDomain, true
	case "project", "projects":
		return EntityKindProject, true
	}
	return "", false
}

// Ranking is a team member's conviction score for an entity.
type Ranking string

const (
	RankingAPlus Ranking = "A+"
	RankingA     Ranking = "A"
	RankingB     Ranking = "B"
	RankingC     Ranking = "C"
	RankingD     Ranking = "D"
	RankingE     Ranking = "E"
	// RankingX marks internal-capability entities. It is not part of the conviction order.
	RankingX Ranking = "X"
)

// AllRankings lists every ranking in display order.
var AllRankings = []Ranking{RankingAPlus, RankingA, RankingB, RankingC, RankingD, RankingE, RankingX}

func (r Ranking) String() string { return string(r) }

func (r Ranking) IsValid() bool {
	switch r {
	case RankingAPlus, RankingA, RankingB, RankingC, RankingD, RankingE, RankingX:
		return true
	}
	return false
}

// ConvictionOrder returns the position of r in the conviction ordering
// (0 = A+, highest). X and unknown values return -1.
func (r Ranking) ConvictionOrder() int {
	switch r {
	case RankingAPlus:
		return 0
	case RankingA:
		return 1
	case RankingB:
		return 2
	case RankingC:
		return 3
	case RankingD:
		return 4
	case RankingE:
		return 5
	}
	return -1
}

// DecisionStatus is the current verdict recorded for an entity.
type DecisionStatus string

const (
	DecisionExplore          DecisionStatus = "Explore"
	DecisionAdvance          DecisionStatus = "Advance"
	DecisionPark             DecisionStatus = "Park"
	DecisionKill             DecisionStatus = "Kill"
	DecisionSpinOutCandidate DecisionStatus = "Spin-Out Candidate"
)

// AllDecisionStatuses lists the valid statuses in the order the UI offers them.
var AllDecisionStatuses = []DecisionStatus{
	DecisionExplore, DecisionAdvance, DecisionPark, DecisionKill, DecisionSpinOutCandidate,
}

func (s DecisionStatus) String() string { return string(s) }

func (s DecisionStatus) IsValid() bool {
	switch s {
	case DecisionExplore, DecisionAdvance, DecisionPark, DecisionKill, DecisionSpinOutCandidate:
		return true
	}
	return false
}

// CanTransition reports whether a decision may move from one status to another.
// There is no directed graph: any valid status may follow any other. An empty
// from means no decision has been recorded yet.
func CanTransition(from, to DecisionStatus) bool {
	if !to.IsValid() {
		return false
	}
	return from == "" || from.IsValid()
}
