package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

const maxKnowledgeItems = 5

// Composer assembles replies from the chat catalog. The randomness
// source is injected so tests can pin template selection.
type Composer struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewComposer creates a composer over the given catalog and randomness
// source.
func NewComposer(c *catalog.Catalog, rng *rand.Rand) *Composer {
	return &Composer{catalog: c, rng: rng}
}

// Respond builds the reply for one classified message. The context, when
// non-empty, appends an intent-specific personalization sentence.
func (c *Composer) Respond(intent types.Intent, context *types.ChatContext) string {
	if intent == types.IntentGeneral {
		return c.pick(c.catalog.GeneralResponses)
	}

	opener := c.catalog.FallbackOpener
	if openers := c.catalog.TemplatesForIntent(intent); len(openers) > 0 {
		opener = c.pick(openers)
	}

	var sb strings.Builder
	sb.WriteString(opener)
	sb.WriteString("\n\n")

	items := c.knowledgeFor(intent)
	if len(items) > maxKnowledgeItems {
		items = items[:maxKnowledgeItems]
	}
	if len(items) > 0 {
		for _, item := range items {
			sb.WriteString(item)
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf(
			"\nWould you like me to elaborate on any of these points or help you with something specific related to %s?",
			strings.ReplaceAll(intent.String(), "_", " ")))
	}

	sb.WriteString(personalize(intent, context))

	return sb.String()
}

// knowledgeFor resolves the knowledge list for an intent by the naming
// convention "<intent>_steps" then "<intent>_tips". When neither key
// exists the first catalog category is returned; that fallback mirrors
// the historical behavior and is relied on by several intents.
func (c *Composer) knowledgeFor(intent types.Intent) []string {
	if items := c.catalog.KnowledgeByKey(intent.String() + "_steps"); items != nil {
		return items
	}
	if items := c.catalog.KnowledgeByKey(intent.String() + "_tips"); items != nil {
		return items
	}
	if len(c.catalog.Knowledge) > 0 {
		return c.catalog.Knowledge[0].Items
	}
	return nil
}

func (c *Composer) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.Intn(len(options))]
}

func personalize(intent types.Intent, context *types.ChatContext) string {
	if context.Empty() {
		return ""
	}

	const prefix = "\n\n💡 Personalized tip: "

	switch intent {
	case types.IntentCareerChange:
		switch context.ExperienceLevel {
		case types.ExperienceEntry:
			return prefix + "As someone early in your career, you have great flexibility to explore different paths. Focus on building transferable skills."
		case types.ExperienceMid, types.ExperienceSenior:
			return prefix + "With your experience level, you can leverage your existing expertise while transitioning. Consider roles that value your background."
		}
	case types.IntentSkillDevelopment:
		if len(context.Skills) > 0 {
			skills := context.Skills
			if len(skills) > 3 {
				skills = skills[:3]
			}
			return prefix + fmt.Sprintf(
				"Based on your current skills in %s, I'd recommend focusing on complementary skills that enhance your expertise.",
				strings.Join(skills, ", "))
		}
	case types.IntentJobSearch:
		if len(context.Interests) > 0 {
			interests := context.Interests
			if len(interests) > 2 {
				interests = interests[:2]
			}
			return prefix + fmt.Sprintf(
				"Given your interests in %s, consider targeting companies and roles in these areas for better job satisfaction.",
				strings.Join(interests, ", "))
		}
	}

	return ""
}
