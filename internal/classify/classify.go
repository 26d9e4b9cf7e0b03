// Package classify derives coarse intent and subject tags from a raw query.
package classify

import (
	"strings"

	"studyqa/internal/domain"
	"studyqa/internal/textnorm"
)

// GeneralStudies is the subject reported when no keyword list matches.
const GeneralStudies = "General Studies"

// Subject names used by the default keyword lists.
const (
	CyberSecurity    = "Cyber Security"
	OperatingSystems = "Operating Systems"
	DBMS             = "DBMS"
	Programming      = "Programming"
)

type intentRule struct {
	intent   domain.Intent
	prefixes []string
	contains []string
}

// Rules are evaluated in order; the first match wins.
var intentRules = []intentRule{
	{intent: domain.IntentDefinition, prefixes: []string{"what is", "define"}},
	{intent: domain.IntentExplanation, prefixes: []string{"explain", "describe"}},
	{intent: domain.IntentReason, prefixes: []string{"why"}},
	{intent: domain.IntentComparison, contains: []string{"difference", "compare"}},
}

// SubjectRule maps a subject to the keywords that identify it.
type SubjectRule struct {
	Subject  string
	Keywords []string
}

// DefaultSubjects lists the built-in subjects in priority order. The
// specialized security list comes before the general-purpose ones.
var DefaultSubjects = []SubjectRule{
	{Subject: CyberSecurity, Keywords: []string{
		"security", "cyber", "cybersecurity", "malware", "phishing", "firewall",
		"encryption", "cryptography", "virus", "ransomware", "vulnerability",
		"attack", "hacking", "intrusion", "authentication",
	}},
	{Subject: OperatingSystems, Keywords: []string{
		"deadlock", "paging", "cpu", "process", "thread", "scheduling",
		"semaphore", "thrashing", "kernel", "os",
	}},
	{Subject: DBMS, Keywords: []string{
		"sql", "dbms", "normalization", "database", "transaction", "acid",
	}},
	{Subject: Programming, Keywords: []string{
		"python", "class", "inheritance", "polymorphism", "function", "object",
	}},
}

// DetectIntent applies the case-insensitive prefix and substring rules.
func DetectIntent(query string) domain.Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range intentRules {
		for _, p := range r.prefixes {
			if strings.HasPrefix(q, p) {
				return r.intent
			}
		}
		for _, c := range r.contains {
			if strings.Contains(q, c) {
				return r.intent
			}
		}
	}
	return domain.IntentGeneral
}

// DetectSubject returns the first subject in DefaultSubjects with a
// keyword that starts one of the query's words.
func DetectSubject(query string) string {
	return DetectSubjectWith(DefaultSubjects, query)
}

// DetectSubjectWith is DetectSubject over a caller-supplied rule list.
// A keyword matches any word it prefixes, so plurals and hyphenated
// compounds ("deadlocks", "cyber-attacks") keep their subject. Keywords
// of two letters or fewer must match a whole word.
func DetectSubjectWith(rules []SubjectRule, query string) string {
	words := strings.Fields(textnorm.Normalize(query))
	for _, r := range rules {
		for _, k := range r.Keywords {
			if hasKeyword(words, k) {
				return r.Subject
			}
		}
	}
	return GeneralStudies
}

func hasKeyword(words []string, keyword string) bool {
	for _, w := range words {
		if w == keyword || (len(keyword) > 2 && strings.HasPrefix(w, keyword)) {
			return true
		}
	}
	return false
}

// Tag derives both query tags.
func Tag(query string) domain.QueryMeta {
	return domain.QueryMeta{Intent: DetectIntent(query), Subject: DetectSubject(query)}
}
