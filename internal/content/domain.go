package content

import "strings"

type domainRule struct {
	domain   Domain
	keywords []string
}

// domainRules is ordered: the first rule with a keyword present in the
// title or description wins.
var domainRules = []domainRule{
	{DomainHealthcare, []string{"health", "medical"}},
	{DomainAgriculture, []string{"agri", "farm"}},
	{DomainTransportation, []string{"transport", "traffic"}},
	{DomainEducation, []string{"education", "learning"}},
	{DomainEnvironment, []string{"environment", "pollution"}},
	{DomainFintech, []string{"finance", "banking"}},
	{DomainSmartCity, []string{"smart city", "urban"}},
	{DomainTourism, []string{"tourist", "travel"}},
}

// Classify maps a problem to a Domain. It is total: every input resolves to
// exactly one domain, with general as the fallback.
func Classify(title, description string) Domain {
	text := strings.ToLower(title) + " " + strings.ToLower(description)
	for _, rule := range domainRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.domain
			}
		}
	}
	return DomainGeneral
}
