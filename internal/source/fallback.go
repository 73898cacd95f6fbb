package source

import (
	"fmt"
	"net/url"
	"strings"

	"skillmatch/internal/domain/skill"
)

// Fallback rotation tables. Fixed so a given skill list always yields
// the same synthetic jobs.
var fallbackPlatforms = []string{"LinkedIn", "Indeed", "Glassdoor", "Wellfound", "RemoteOK"}

var fallbackCompanies = []string{
	"TechNova Labs",
	"BlueOrbit Systems",
	"Stackline Digital",
	"Corely Software",
	"Nimbus Works",
}

var fallbackSearchURLs = map[string]string{
	"LinkedIn":  "https://www.linkedin.com/jobs/search/?keywords=%s",
	"Indeed":    "https://www.indeed.com/jobs?q=%s",
	"Glassdoor": "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=%s",
	"Wellfound": "https://wellfound.com/jobs?q=%s",
	"RemoteOK":  "https://remoteok.com/remote-%s-jobs",
}

// FallbackGenerator synthesizes candidate jobs from the caller's own
// skills so an empty or failing primary source never surfaces as a dead
// end. Output is deterministic: one templated job per top-K skill, with
// platform and company drawn from a fixed rotation.
type FallbackGenerator struct {
	TopK int
}

const defaultFallbackTopK = 5

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{TopK: defaultFallbackTopK}
}

func (g *FallbackGenerator) Generate(q Query) []Job {
	topK := defaultFallbackTopK
	if g != nil && g.TopK > 0 {
		topK = g.TopK
	}

	picked := make([]string, 0, topK)
	seen := make(map[string]struct{}, topK)
	for _, name := range q.Skills {
		key := skill.Normalize(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		picked = append(picked, strings.TrimSpace(name))
		if len(picked) == topK {
			break
		}
	}

	location := strings.TrimSpace(q.Location)
	if location == "" {
		location = "Remote"
	}

	out := make([]Job, 0, len(picked))
	for i, name := range picked {
		platform := fallbackPlatforms[i%len(fallbackPlatforms)]
		company := fallbackCompanies[i%len(fallbackCompanies)]

		title := strings.TrimSpace(q.Title)
		if title == "" {
			title = name + " Developer"
		} else {
			title = fmt.Sprintf("%s (%s)", title, name)
		}

		out = append(out, Job{
			Title:    title,
			Company:  company,
			Location: location,
			Description: fmt.Sprintf(
				"%s is looking for someone with strong %s experience. Suggested based on your skill profile.",
				company, name,
			),
			ApplicationLink: fallbackLink(platform, name),
			Platform:        platform,
			RequiredSkills: []Requirement{
				{Name: name, Importance: skill.ImportanceRequired},
			},
		})
	}
	return out
}

func fallbackLink(platform, skillName string) string {
	tpl, ok := fallbackSearchURLs[platform]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tpl, url.QueryEscape(skillName))
}
