package structure

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/abstractlayout/laf/pkg/model"
)

// candidate is a triangle-of-interest grouping that has already passed the
// external-edge check.
type candidate struct {
	members []string // sorted, unique
	anchor  string    // sole external in-edge target, "" if none
	source  string    // sole external out-edge origin, "" if none
}

// detectVirtualContainers applies the triangle-of-interest rule from
// spec.md §3/§4.1: iteratively pick the largest eligible hub-centred
// cluster (a vertex plus its not-yet-consumed predecessors and
// successors) whose external in-edges all target a single anchor member
// and external out-edges all originate from a single source member, ties
// broken by lowest minimum member id, until no candidate remains.
func detectVirtualContainers(primaries []string, es *edgeSet) ([]model.VirtualContainer, map[string]string) {
	consumed := make(map[string]bool)
	memberVC := make(map[string]string)
	var result []model.VirtualContainer

	preds := make(map[string][]string)
	for from, tos := range es.out {
		for _, to := range tos {
			preds[to] = append(preds[to], from)
		}
	}

	sortedPrimaries := append([]string(nil), primaries...)
	sort.Strings(sortedPrimaries)

	existing := make(map[string]bool, len(primaries))
	for _, p := range primaries {
		existing[p] = true
	}

	counter := 0
	for {
		var best *candidate
		for _, hub := range sortedPrimaries {
			if consumed[hub] {
				continue
			}
			members := hubMemberSet(hub, es.out[hub], preds[hub], consumed)
			if len(members) < 3 {
				continue
			}
			c := validateCandidate(members, es)
			if c == nil {
				continue
			}
			if best == nil || betterCandidate(c, best) {
				best = c
			}
		}
		if best == nil {
			break
		}

		id := fmt.Sprintf("_toi_vc_%d", counter)
		counter++
		if existing[id] {
			// An input element already claims this id (vanishingly rare in
			// practice); fall back to a uuid-derived suffix so VC ids stay
			// unique rather than colliding with a real element.
			id = fmt.Sprintf("_toi_vc_%d_%s", counter, uuid.NewString())
		}
		existing[id] = true
		vc := model.VirtualContainer{
			ID:      id,
			Members: best.members,
			Anchor:  best.anchor,
			Source:  best.source,
		}
		result = append(result, vc)
		for _, m := range best.members {
			consumed[m] = true
			memberVC[m] = id
		}
	}

	return result, memberVC
}

// hubMemberSet returns the sorted union of hub with its not-yet-consumed
// predecessors and successors.
func hubMemberSet(hub string, succ, pred []string, consumed map[string]bool) []string {
	set := map[string]bool{hub: true}
	add := func(ids []string) {
		for _, id := range ids {
			if !consumed[id] {
				set[id] = true
			}
		}
	}
	add(succ)
	add(pred)
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// validateCandidate enforces rule (a)/(b) of the triangle-of-interest
// test: every edge crossing into members must target the same node, and
// every edge crossing out must originate from the same node. Returns nil
// if either rule is violated.
func validateCandidate(members []string, es *edgeSet) *candidate {
	inSet := make(map[string]bool, len(members))
	for _, m := range members {
		inSet[m] = true
	}

	anchors := map[string]bool{}
	sources := map[string]bool{}
	for from, tos := range es.out {
		fromIn := inSet[from]
		for _, to := range tos {
			toIn := inSet[to]
			switch {
			case !fromIn && toIn:
				anchors[to] = true
			case fromIn && !toIn:
				sources[from] = true
			}
		}
	}
	if len(anchors) > 1 || len(sources) > 1 {
		return nil
	}

	c := &candidate{members: members}
	for a := range anchors {
		c.anchor = a
	}
	for s := range sources {
		c.source = s
	}
	return c
}

func betterCandidate(a, b *candidate) bool {
	if len(a.members) != len(b.members) {
		return len(a.members) > len(b.members)
	}
	return a.members[0] < b.members[0]
}
