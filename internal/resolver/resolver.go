// Package resolver implements the deduplication core: given an ordered
// sequence of leads it produces a set in which both ids and emails are
// unique. Resolution is a pure in-memory computation; all grouping state
// is local to one call.
package resolver

import (
	"sort"

	"leadsweep/internal/model"
)

// Result is the outcome of one resolution run.
type Result struct {
	// Leads is the surviving set, sorted ascending by entry date
	// (ties broken by input position).
	Leads []model.Lead
	// Incomplete counts records excluded for a missing id or email.
	Incomplete int
	// Duplicates counts complete records removed as id or email duplicates.
	Duplicates int
}

// Removed returns the total number of input records that did not survive.
func (r Result) Removed() int {
	return r.Incomplete + r.Duplicates
}

// Resolve deduplicates leads so that no two survivors share an id and no
// two share an email. Deterministic for a fixed input order.
//
// The recency rule: for two leads under the same key, the one with the
// strictly later entry date wins; on exactly equal dates the one that
// appeared later in the input wins. The rule is applied as a max-reduction
// over each whole key group, so groups of any size resolve to the single
// undominated member.
//
// Collapsing runs in two passes: first by id over the full input, then by
// email over the id-survivors. The email pass only ever removes records,
// so id-uniqueness established by the first pass is preserved.
func Resolve(leads []model.Lead) Result {
	var result Result

	byID := make(map[string]model.Lead, len(leads))
	complete := 0
	for _, lead := range leads {
		if !lead.Complete() {
			result.Incomplete++
			continue
		}
		complete++
		if current, ok := byID[lead.ID]; !ok || supersedes(lead, current) {
			byID[lead.ID] = lead
		}
	}

	// The email pass must scan in input order, never map iteration order:
	// the tie-break depends on which record came later.
	idSurvivors := make([]model.Lead, 0, len(byID))
	for _, lead := range byID {
		idSurvivors = append(idSurvivors, lead)
	}
	sort.Slice(idSurvivors, func(i, j int) bool {
		return idSurvivors[i].Position() < idSurvivors[j].Position()
	})

	byEmail := make(map[string]model.Lead, len(idSurvivors))
	for _, lead := range idSurvivors {
		if current, ok := byEmail[lead.Email]; !ok || supersedes(lead, current) {
			byEmail[lead.Email] = lead
		}
	}

	survivors := make([]model.Lead, 0, len(byEmail))
	for _, lead := range byEmail {
		survivors = append(survivors, lead)
	}
	sort.Slice(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		return a.Position() < b.Position()
	})

	result.Leads = survivors
	result.Duplicates = complete - len(survivors)
	return result
}

// supersedes reports whether candidate replaces current under the
// recency rule.
func supersedes(candidate, current model.Lead) bool {
	if candidate.EntryDate.After(current.EntryDate) {
		return true
	}
	if current.EntryDate.After(candidate.EntryDate) {
		return false
	}
	return candidate.Position() > current.Position()
}
